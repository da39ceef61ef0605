package flatbuffers

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// Every accessor in this file assumes `buf` is at least as long as the
// scalar being read or written, and that the address is naturally aligned.
// Neither assumption is checked here; the arena and the builder guarantee
// alignment by construction, and the reader trusts a well-formed buffer
// rather than re-verifying bounds on every access.

func GetBool(buf []byte) bool {
	return buf[0] != 0
}

func WriteBool(buf []byte, n bool) {
	if n {
		buf[0] = 1
	} else {
		buf[0] = 0
	}
}

func GetByte(buf []byte) byte { return buf[0] }

func WriteByte(buf []byte, n byte) { buf[0] = n }

func GetUint8(buf []byte) uint8 { return buf[0] }

func WriteUint8(buf []byte, n uint8) { buf[0] = n }

func GetUint16(buf []byte) uint16 {
	return binary.LittleEndian.Uint16(buf)
}

func WriteUint16(buf []byte, n uint16) {
	binary.LittleEndian.PutUint16(buf, n)
}

func GetUint32(buf []byte) uint32 {
	return binary.LittleEndian.Uint32(buf)
}

func WriteUint32(buf []byte, n uint32) {
	binary.LittleEndian.PutUint32(buf, n)
}

func GetUint64(buf []byte) uint64 {
	return binary.LittleEndian.Uint64(buf)
}

func WriteUint64(buf []byte, n uint64) {
	binary.LittleEndian.PutUint64(buf, n)
}

func GetInt8(buf []byte) int8 { return int8(buf[0]) }

func WriteInt8(buf []byte, n int8) { buf[0] = byte(n) }

func GetInt16(buf []byte) int16 {
	return int16(binary.LittleEndian.Uint16(buf))
}

func WriteInt16(buf []byte, n int16) {
	binary.LittleEndian.PutUint16(buf, uint16(n))
}

func GetInt32(buf []byte) int32 {
	return int32(binary.LittleEndian.Uint32(buf))
}

func WriteInt32(buf []byte, n int32) {
	binary.LittleEndian.PutUint32(buf, uint32(n))
}

func GetInt64(buf []byte) int64 {
	return int64(binary.LittleEndian.Uint64(buf))
}

func WriteInt64(buf []byte, n int64) {
	binary.LittleEndian.PutUint64(buf, uint64(n))
}

// GetFloat32 bit-casts the little-endian word to a float32. This is correct
// on any host whose FPU shares its integer byte order, which holds for every
// mainstream architecture but is not guaranteed by the Go language spec.
func GetFloat32(buf []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf))
}

func WriteFloat32(buf []byte, n float32) {
	binary.LittleEndian.PutUint32(buf, math.Float32bits(n))
}

func GetFloat64(buf []byte) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(buf))
}

func WriteFloat64(buf []byte, n float64) {
	binary.LittleEndian.PutUint64(buf, math.Float64bits(n))
}

func GetUOffsetT(buf []byte) UOffsetT {
	return UOffsetT(GetUint32(buf))
}

func WriteUOffsetT(buf []byte, n UOffsetT) {
	WriteUint32(buf, uint32(n))
}

func GetSOffsetT(buf []byte) SOffsetT {
	return SOffsetT(GetInt32(buf))
}

func WriteSOffsetT(buf []byte, n SOffsetT) {
	WriteInt32(buf, int32(n))
}

func GetVOffsetT(buf []byte) VOffsetT {
	return VOffsetT(GetUint16(buf))
}

func WriteVOffsetT(buf []byte, n VOffsetT) {
	WriteUint16(buf, uint16(n))
}

// byteSliceToString reinterprets a byte slice as a string without copying.
// The slice must not be mutated afterward; it is a view into the caller's
// buffer for as long as the returned string is alive. A copying `string(b)`
// conversion would silently turn every string read into an allocation, so
// this takes the unsafe view deliberately.
func byteSliceToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}
