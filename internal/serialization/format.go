package serialization

import "encoding/binary"

// Format constants.
const (
	ValueSize = 8 // Bytes per float64 value
)

// ByteOrder is the byte order of every stored value.
var ByteOrder = binary.BigEndian

// StreamSize returns the number of bytes needed to store paramCount values.
func StreamSize(paramCount int) int64 {
	return int64(paramCount) * ValueSize
}
