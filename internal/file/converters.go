package file

import (
	"encoding/binary"
	"math"

	"github.com/gostonefire/filestructs/internal/conf"
)

// Address - Byte offset from the beginning of a file, used in place of a pointer to a record
type Address int64

// NoAddress - Sentinel address meaning "no record"
const NoAddress = Address(conf.NoAddress)

// IsNone - Returns true if the address is the NoAddress sentinel
func (A Address) IsNone() bool {
	return A == NoAddress
}

// PutAddress - Encodes an address as an int32 into the first 4 bytes of buf
func PutAddress(buf []byte, address Address) {
	binary.LittleEndian.PutUint32(buf, uint32(int32(address)))
}

// GetAddress - Decodes an int32 address from the first 4 bytes of buf
func GetAddress(buf []byte) Address {
	return Address(int32(binary.LittleEndian.Uint32(buf)))
}

// PutFloat64 - Encodes a float64 into the first 8 bytes of buf
func PutFloat64(buf []byte, value float64) {
	binary.LittleEndian.PutUint64(buf, math.Float64bits(value))
}

// GetFloat64 - Decodes a float64 from the first 8 bytes of buf
func GetFloat64(buf []byte) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(buf))
}

// AppendString - Appends s to buf as a uint16 length prefix followed by its bytes.
// The caller makes sure len(s) <= conf.MaxStringLength.
func AppendString(buf []byte, s string) []byte {
	buf = binary.LittleEndian.AppendUint16(buf, uint16(len(s)))
	return append(buf, s...)
}

// StringLength - Returns the number of bytes s occupies on file including its length prefix
func StringLength(s string) int64 {
	return conf.StringLengthPrefix + int64(len(s))
}
