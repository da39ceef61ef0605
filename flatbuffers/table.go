package flatbuffers

// Table is a read-only view into a vtable-mediated object inside a
// FlatBuffers byte buffer. Pos is the table's own position; every field
// access goes through the vtable located at Pos - GetSOffsetT(Pos).
type Table struct {
	Bytes []byte
	Pos   UOffsetT
}

// Offset resolves field slot (a 0-based field index, the same numbering
// StartTable/TrackField use on the write side) to a field's byte offset
// from the start of the table, or zero if the field is absent or the vtable
// predates it. The vtable's own two metadata words (vtable_size,
// object_size) sit ahead of the per-field slots, so slot i lives at vtable
// byte (i+VtableMetadataFields)*SizeVOffsetT.
func (t *Table) Offset(slot VOffsetT) VOffsetT {
	vtable := UOffsetT(SOffsetT(t.Pos) - t.GetSOffsetT(t.Pos))
	vtableOffset := VOffsetT((VtableMetadataFields + int(slot)) * SizeVOffsetT)
	if vtableOffset < t.GetVOffsetT(vtable) {
		return t.GetVOffsetT(vtable + UOffsetT(vtableOffset))
	}
	return 0
}

// Indirect follows the UOffsetT stored at off, relative to off itself.
func (t *Table) Indirect(off UOffsetT) UOffsetT {
	return off + GetUOffsetT(t.Bytes[off:])
}

// String reads the string whose length prefix starts at the absolute address
// off, as returned by Indirect or VectorIterator.Next.
func (t *Table) String(off UOffsetT) string {
	return byteSliceToString(t.ByteVector(off))
}

// ByteVector returns the payload of the byte vector whose length prefix
// starts at the absolute address off (without the length prefix, or, for
// strings, the trailing NUL). It performs no indirection of its own.
func (t *Table) ByteVector(off UOffsetT) []byte {
	length := GetUOffsetT(t.Bytes[off:])
	start := off + UOffsetT(SizeUOffsetT)
	return t.Bytes[start : start+length]
}

// VectorLen returns the element count of the vector whose offset is stored
// at off, a field offset relative to the table's own Pos.
func (t *Table) VectorLen(off UOffsetT) int {
	off += t.Pos
	off += GetUOffsetT(t.Bytes[off:])
	return int(GetUOffsetT(t.Bytes[off:]))
}

// Vector returns the absolute address of the first element of the vector
// whose offset is stored at off (a field offset relative to Pos), skipping
// past the length prefix.
func (t *Table) Vector(off UOffsetT) UOffsetT {
	off += t.Pos
	x := off + GetUOffsetT(t.Bytes[off:])
	x += UOffsetT(SizeUOffsetT)
	return x
}

// Union repoints t2 at the union value stored at the field offset off.
func (t *Table) Union(t2 *Table, off UOffsetT) {
	off += t.Pos
	pos := off + GetUOffsetT(t.Bytes[off:])
	t2.Pos = pos
	t2.Bytes = t.Bytes
}

// Iterate returns a lazy forward iterator over a vector of references
// (tables or strings) whose offset is stored at off, a field offset
// relative to Pos. Each element is itself a UOffsetT, dereferenced relative
// to its own address.
func (t *Table) Iterate(off UOffsetT) *VectorIterator {
	base := t.Vector(off)
	n := t.VectorLen(off)
	return &VectorIterator{tab: t, base: base, n: n}
}

// VectorIterator walks a reference vector one element at a time without
// materializing the whole vector.
type VectorIterator struct {
	tab  *Table
	base UOffsetT
	n    int
	i    int
}

// Next returns the absolute address of the next element's referent, or
// false once the vector is exhausted.
func (it *VectorIterator) Next() (UOffsetT, bool) {
	if it.i >= it.n {
		return 0, false
	}
	elemAddr := it.base + UOffsetT(it.i*SizeUOffsetT)
	it.i++
	return it.tab.Indirect(elemAddr), true
}

// Len returns the total number of elements the iterator will yield.
func (it *VectorIterator) Len() int { return it.n }

func (t *Table) GetBool(off UOffsetT) bool       { return GetBool(t.Bytes[off:]) }
func (t *Table) GetByte(off UOffsetT) byte       { return GetByte(t.Bytes[off:]) }
func (t *Table) GetUint8(off UOffsetT) uint8     { return GetUint8(t.Bytes[off:]) }
func (t *Table) GetUint16(off UOffsetT) uint16   { return GetUint16(t.Bytes[off:]) }
func (t *Table) GetUint32(off UOffsetT) uint32   { return GetUint32(t.Bytes[off:]) }
func (t *Table) GetUint64(off UOffsetT) uint64   { return GetUint64(t.Bytes[off:]) }
func (t *Table) GetInt8(off UOffsetT) int8       { return GetInt8(t.Bytes[off:]) }
func (t *Table) GetInt16(off UOffsetT) int16     { return GetInt16(t.Bytes[off:]) }
func (t *Table) GetInt32(off UOffsetT) int32     { return GetInt32(t.Bytes[off:]) }
func (t *Table) GetInt64(off UOffsetT) int64     { return GetInt64(t.Bytes[off:]) }
func (t *Table) GetFloat32(off UOffsetT) float32 { return GetFloat32(t.Bytes[off:]) }
func (t *Table) GetFloat64(off UOffsetT) float64 { return GetFloat64(t.Bytes[off:]) }

func (t *Table) GetUOffsetT(off UOffsetT) UOffsetT { return GetUOffsetT(t.Bytes[off:]) }
func (t *Table) GetVOffsetT(off UOffsetT) VOffsetT { return GetVOffsetT(t.Bytes[off:]) }
func (t *Table) GetSOffsetT(off UOffsetT) SOffsetT { return GetSOffsetT(t.Bytes[off:]) }

// GetStructSlot returns the nested, inlined struct stored at vtable slot
// slot, or nil if the field is absent.
func (t *Table) GetStructSlot(slot VOffsetT) *Struct {
	off := t.Offset(slot)
	if off == 0 {
		return nil
	}
	return &Struct{Bytes: t.Bytes, Pos: t.Pos + UOffsetT(off)}
}

// The GetXxxSlot family reads a scalar field through the vtable, returning
// the default d when the field is absent.

func (t *Table) GetBoolSlot(slot VOffsetT, d bool) bool {
	off := t.Offset(slot)
	if off == 0 {
		return d
	}
	return t.GetBool(t.Pos + UOffsetT(off))
}

func (t *Table) GetByteSlot(slot VOffsetT, d byte) byte {
	off := t.Offset(slot)
	if off == 0 {
		return d
	}
	return t.GetByte(t.Pos + UOffsetT(off))
}

func (t *Table) GetInt8Slot(slot VOffsetT, d int8) int8 {
	off := t.Offset(slot)
	if off == 0 {
		return d
	}
	return t.GetInt8(t.Pos + UOffsetT(off))
}

func (t *Table) GetUint8Slot(slot VOffsetT, d uint8) uint8 {
	off := t.Offset(slot)
	if off == 0 {
		return d
	}
	return t.GetUint8(t.Pos + UOffsetT(off))
}

func (t *Table) GetInt16Slot(slot VOffsetT, d int16) int16 {
	off := t.Offset(slot)
	if off == 0 {
		return d
	}
	return t.GetInt16(t.Pos + UOffsetT(off))
}

func (t *Table) GetUint16Slot(slot VOffsetT, d uint16) uint16 {
	off := t.Offset(slot)
	if off == 0 {
		return d
	}
	return t.GetUint16(t.Pos + UOffsetT(off))
}

func (t *Table) GetInt32Slot(slot VOffsetT, d int32) int32 {
	off := t.Offset(slot)
	if off == 0 {
		return d
	}
	return t.GetInt32(t.Pos + UOffsetT(off))
}

func (t *Table) GetUint32Slot(slot VOffsetT, d uint32) uint32 {
	off := t.Offset(slot)
	if off == 0 {
		return d
	}
	return t.GetUint32(t.Pos + UOffsetT(off))
}

func (t *Table) GetInt64Slot(slot VOffsetT, d int64) int64 {
	off := t.Offset(slot)
	if off == 0 {
		return d
	}
	return t.GetInt64(t.Pos + UOffsetT(off))
}

func (t *Table) GetUint64Slot(slot VOffsetT, d uint64) uint64 {
	off := t.Offset(slot)
	if off == 0 {
		return d
	}
	return t.GetUint64(t.Pos + UOffsetT(off))
}

func (t *Table) GetFloat32Slot(slot VOffsetT, d float32) float32 {
	off := t.Offset(slot)
	if off == 0 {
		return d
	}
	return t.GetFloat32(t.Pos + UOffsetT(off))
}

func (t *Table) GetFloat64Slot(slot VOffsetT, d float64) float64 {
	off := t.Offset(slot)
	if off == 0 {
		return d
	}
	return t.GetFloat64(t.Pos + UOffsetT(off))
}

// CheckField reports whether the field at slot is physically present,
// distinguishing a stored value equal to the default from true absence.
func (t *Table) CheckField(slot VOffsetT) bool {
	return t.Offset(slot) != 0
}

// MutateBool and the rest of this family patch a scalar already present at
// an absolute address. They never resize the buffer and must not race a
// concurrent reader of the same buffer.

func (t *Table) MutateBool(off UOffsetT, n bool) bool     { WriteBool(t.Bytes[off:], n); return true }
func (t *Table) MutateByte(off UOffsetT, n byte) bool     { WriteByte(t.Bytes[off:], n); return true }
func (t *Table) MutateUint8(off UOffsetT, n uint8) bool   { WriteUint8(t.Bytes[off:], n); return true }
func (t *Table) MutateUint16(off UOffsetT, n uint16) bool { WriteUint16(t.Bytes[off:], n); return true }
func (t *Table) MutateUint32(off UOffsetT, n uint32) bool { WriteUint32(t.Bytes[off:], n); return true }
func (t *Table) MutateUint64(off UOffsetT, n uint64) bool { WriteUint64(t.Bytes[off:], n); return true }
func (t *Table) MutateInt8(off UOffsetT, n int8) bool     { WriteInt8(t.Bytes[off:], n); return true }
func (t *Table) MutateInt16(off UOffsetT, n int16) bool   { WriteInt16(t.Bytes[off:], n); return true }
func (t *Table) MutateInt32(off UOffsetT, n int32) bool   { WriteInt32(t.Bytes[off:], n); return true }
func (t *Table) MutateInt64(off UOffsetT, n int64) bool   { WriteInt64(t.Bytes[off:], n); return true }

func (t *Table) MutateFloat32(off UOffsetT, n float32) bool {
	WriteFloat32(t.Bytes[off:], n)
	return true
}

func (t *Table) MutateFloat64(off UOffsetT, n float64) bool {
	WriteFloat64(t.Bytes[off:], n)
	return true
}

func (t *Table) MutateUOffsetT(off UOffsetT, n UOffsetT) bool {
	WriteUOffsetT(t.Bytes[off:], n)
	return true
}

func (t *Table) MutateVOffsetT(off UOffsetT, n VOffsetT) bool {
	WriteVOffsetT(t.Bytes[off:], n)
	return true
}

func (t *Table) MutateSOffsetT(off UOffsetT, n SOffsetT) bool {
	WriteSOffsetT(t.Bytes[off:], n)
	return true
}

// The MutateXxxSlot family patches a field through its vtable slot, and
// reports false without writing anything if the slot is absent. Mutation
// cannot flip a field from absent to present.

func (t *Table) MutateBoolSlot(slot VOffsetT, n bool) bool {
	if off := t.Offset(slot); off != 0 {
		t.MutateBool(t.Pos+UOffsetT(off), n)
		return true
	}
	return false
}

func (t *Table) MutateByteSlot(slot VOffsetT, n byte) bool {
	if off := t.Offset(slot); off != 0 {
		t.MutateByte(t.Pos+UOffsetT(off), n)
		return true
	}
	return false
}

func (t *Table) MutateInt8Slot(slot VOffsetT, n int8) bool {
	if off := t.Offset(slot); off != 0 {
		t.MutateInt8(t.Pos+UOffsetT(off), n)
		return true
	}
	return false
}

func (t *Table) MutateUint8Slot(slot VOffsetT, n uint8) bool {
	if off := t.Offset(slot); off != 0 {
		t.MutateUint8(t.Pos+UOffsetT(off), n)
		return true
	}
	return false
}

func (t *Table) MutateInt16Slot(slot VOffsetT, n int16) bool {
	if off := t.Offset(slot); off != 0 {
		t.MutateInt16(t.Pos+UOffsetT(off), n)
		return true
	}
	return false
}

func (t *Table) MutateUint16Slot(slot VOffsetT, n uint16) bool {
	if off := t.Offset(slot); off != 0 {
		t.MutateUint16(t.Pos+UOffsetT(off), n)
		return true
	}
	return false
}

func (t *Table) MutateInt32Slot(slot VOffsetT, n int32) bool {
	if off := t.Offset(slot); off != 0 {
		t.MutateInt32(t.Pos+UOffsetT(off), n)
		return true
	}
	return false
}

func (t *Table) MutateUint32Slot(slot VOffsetT, n uint32) bool {
	if off := t.Offset(slot); off != 0 {
		t.MutateUint32(t.Pos+UOffsetT(off), n)
		return true
	}
	return false
}

func (t *Table) MutateInt64Slot(slot VOffsetT, n int64) bool {
	if off := t.Offset(slot); off != 0 {
		t.MutateInt64(t.Pos+UOffsetT(off), n)
		return true
	}
	return false
}

func (t *Table) MutateUint64Slot(slot VOffsetT, n uint64) bool {
	if off := t.Offset(slot); off != 0 {
		t.MutateUint64(t.Pos+UOffsetT(off), n)
		return true
	}
	return false
}

func (t *Table) MutateFloat32Slot(slot VOffsetT, n float32) bool {
	if off := t.Offset(slot); off != 0 {
		t.MutateFloat32(t.Pos+UOffsetT(off), n)
		return true
	}
	return false
}

func (t *Table) MutateFloat64Slot(slot VOffsetT, n float64) bool {
	if off := t.Offset(slot); off != 0 {
		t.MutateFloat64(t.Pos+UOffsetT(off), n)
		return true
	}
	return false
}
