package flatbuffers

// Struct is a fixed-size, densely packed, always-inlined value. Unlike
// Table, field offsets are compile-time constants and there is no vtable:
// every field is present, and reading one never goes through Offset.
type Struct struct {
	Bytes []byte
	Pos   UOffsetT
}

func (s *Struct) GetBool(off UOffsetT) bool       { return GetBool(s.Bytes[s.Pos+off:]) }
func (s *Struct) GetByte(off UOffsetT) byte       { return GetByte(s.Bytes[s.Pos+off:]) }
func (s *Struct) GetUint8(off UOffsetT) uint8     { return GetUint8(s.Bytes[s.Pos+off:]) }
func (s *Struct) GetUint16(off UOffsetT) uint16   { return GetUint16(s.Bytes[s.Pos+off:]) }
func (s *Struct) GetUint32(off UOffsetT) uint32   { return GetUint32(s.Bytes[s.Pos+off:]) }
func (s *Struct) GetUint64(off UOffsetT) uint64   { return GetUint64(s.Bytes[s.Pos+off:]) }
func (s *Struct) GetInt8(off UOffsetT) int8       { return GetInt8(s.Bytes[s.Pos+off:]) }
func (s *Struct) GetInt16(off UOffsetT) int16     { return GetInt16(s.Bytes[s.Pos+off:]) }
func (s *Struct) GetInt32(off UOffsetT) int32     { return GetInt32(s.Bytes[s.Pos+off:]) }
func (s *Struct) GetInt64(off UOffsetT) int64     { return GetInt64(s.Bytes[s.Pos+off:]) }
func (s *Struct) GetFloat32(off UOffsetT) float32 { return GetFloat32(s.Bytes[s.Pos+off:]) }
func (s *Struct) GetFloat64(off UOffsetT) float64 { return GetFloat64(s.Bytes[s.Pos+off:]) }

// GetStruct returns a nested struct inlined at local offset off.
func (s *Struct) GetStruct(off UOffsetT) *Struct {
	return &Struct{Bytes: s.Bytes, Pos: s.Pos + off}
}

// MutateBool and the rest of this family patch a field in place at a
// compile-time-known local offset; every field in a struct is always
// present, so unlike Table's slot mutators these never fail.

func (s *Struct) MutateBool(off UOffsetT, n bool) { WriteBool(s.Bytes[s.Pos+off:], n) }
func (s *Struct) MutateByte(off UOffsetT, n byte) { WriteByte(s.Bytes[s.Pos+off:], n) }
func (s *Struct) MutateUint8(off UOffsetT, n uint8) { WriteUint8(s.Bytes[s.Pos+off:], n) }
func (s *Struct) MutateUint16(off UOffsetT, n uint16) { WriteUint16(s.Bytes[s.Pos+off:], n) }
func (s *Struct) MutateUint32(off UOffsetT, n uint32) { WriteUint32(s.Bytes[s.Pos+off:], n) }
func (s *Struct) MutateUint64(off UOffsetT, n uint64) { WriteUint64(s.Bytes[s.Pos+off:], n) }
func (s *Struct) MutateInt8(off UOffsetT, n int8) { WriteInt8(s.Bytes[s.Pos+off:], n) }
func (s *Struct) MutateInt16(off UOffsetT, n int16) { WriteInt16(s.Bytes[s.Pos+off:], n) }
func (s *Struct) MutateInt32(off UOffsetT, n int32) { WriteInt32(s.Bytes[s.Pos+off:], n) }
func (s *Struct) MutateInt64(off UOffsetT, n int64) { WriteInt64(s.Bytes[s.Pos+off:], n) }
func (s *Struct) MutateFloat32(off UOffsetT, n float32) { WriteFloat32(s.Bytes[s.Pos+off:], n) }
func (s *Struct) MutateFloat64(off UOffsetT, n float64) { WriteFloat64(s.Bytes[s.Pos+off:], n) }
