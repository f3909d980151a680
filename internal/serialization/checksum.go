package serialization

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
)

// Checksum computes the SHA-256 checksum of the parameter stream written by m.
// Two networks with bit-identical parameters have the same checksum.
func Checksum(m io.WriterTo) ([32]byte, error) {
	h := sha256.New()
	if _, err := m.WriteTo(h); err != nil {
		return [32]byte{}, err
	}
	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum, nil
}

// ComputeChecksumReader computes the SHA-256 checksum of everything in r,
// e.g. a saved parameter file.
func ComputeChecksumReader(r io.Reader) ([32]byte, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return [32]byte{}, err
	}
	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum, nil
}

// ValidateChecksum returns ErrChecksumMismatch unless got equals want.
func ValidateChecksum(got, want [32]byte) error {
	if got != want {
		return fmt.Errorf("%w: got %x, want %x", ErrChecksumMismatch, got[:8], want[:8])
	}
	return nil
}

// ParseChecksum decodes a 64-character hex SHA-256 checksum, as printed by
// hex.EncodeToString.
func ParseChecksum(s string) ([32]byte, error) {
	var sum [32]byte
	b, err := hex.DecodeString(s)
	if err != nil {
		return sum, fmt.Errorf("parse checksum: %w", err)
	}
	if len(b) != len(sum) {
		return sum, fmt.Errorf("parse checksum: %d bytes, want %d", len(b), len(sum))
	}
	copy(sum[:], b)
	return sum, nil
}
