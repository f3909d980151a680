package serialization

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
)

// SaveFile writes m's parameter stream to path, replacing any existing file.
func SaveFile(path string, m io.WriterTo) (err error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for model saving
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "can't save parameters, couldn't create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "can't save parameters, couldn't close %s", path)
		}
	}()

	if _, err := m.WriteTo(f); err != nil {
		return errors.Wrapf(err, "can't save parameters to %s", path)
	}
	return nil
}

// LoadFile reads a parameter stream from path into m.
func LoadFile(path string, m io.ReaderFrom) error {
	//nolint:gosec // G304: File path comes from user input, which is expected for model loading
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "can't load parameters, couldn't open %s", path)
	}
	defer f.Close() //nolint:errcheck // Read-only file

	if _, err := m.ReadFrom(bufio.NewReader(f)); err != nil {
		return errors.Wrapf(err, "can't load parameters from %s", path)
	}
	return nil
}

// FileChecksum computes the SHA-256 checksum of a saved parameter file.
func FileChecksum(path string) ([32]byte, error) {
	//nolint:gosec // G304: File path comes from user input
	f, err := os.Open(path)
	if err != nil {
		return [32]byte{}, errors.Wrapf(err, "couldn't open %s", path)
	}
	defer f.Close() //nolint:errcheck // Read-only file

	sum, err := ComputeChecksumReader(f)
	if err != nil {
		return [32]byte{}, errors.Wrapf(err, "couldn't read %s", path)
	}
	return sum, nil
}

// VerifyFile checks that the file at path has the checksum want.
// A mismatch is reported as ErrChecksumMismatch.
func VerifyFile(path string, want [32]byte) error {
	got, err := FileChecksum(path)
	if err != nil {
		return err
	}
	return errors.Wrapf(ValidateChecksum(got, want), "verify %s", path)
}
