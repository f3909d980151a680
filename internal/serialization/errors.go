package serialization

import "errors"

// Common errors.
var (
	ErrChecksumMismatch = errors.New("checksum mismatch: parameters differ")
)
