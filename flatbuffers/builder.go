package flatbuffers

import (
	"math"

	"github.com/blastbao/flatgo/memory"
)

// Builder is a state machine for constructing a single FlatBuffers object
// graph, leaf objects first. It writes into a reverse-growing arena: each
// Prepend/Place call moves the write head toward lower addresses, so an
// object's distance from the end of the buffer never changes even when the
// underlying array is reallocated.
type Builder struct {
	// Bytes gives raw access to the arena. Most callers want FinishedBytes
	// instead, which slices off the unused prefix.
	Bytes []byte

	alloc memory.Allocator

	minalign      int
	forceDefaults bool

	vtable    []UOffsetT // slot -> field position-from-end, for the object under construction
	objectEnd UOffsetT
	vtables   []UOffsetT // position-from-end of every vtable emitted so far, for dedup

	head     UOffsetT
	nested   bool
	finished bool
}

const fileIdentifierLength = 4

// NewBuilder allocates a Builder whose arena starts at initialSize bytes and
// grows as needed using the default, 64-byte-aligned allocator.
func NewBuilder(initialSize int) *Builder {
	return NewBuilderWithAllocator(initialSize, memory.NewGoAllocator())
}

// NewBuilderWithAllocator is NewBuilder with a caller-supplied growth
// strategy, e.g. a pooling or instrumented Allocator.
func NewBuilderWithAllocator(initialSize int, alloc memory.Allocator) *Builder {
	if initialSize <= 0 {
		initialSize = 0
	}
	b := &Builder{alloc: alloc}
	if initialSize == 0 {
		b.Bytes = make([]byte, 0)
	} else {
		b.Bytes = alloc.Allocate(initialSize)
	}
	b.head = UOffsetT(len(b.Bytes))
	b.minalign = 1
	b.vtables = make([]UOffsetT, 0, 16)
	return b
}

// Reset truncates the arena back to its full capacity and clears bookkeeping,
// letting a Builder be reused across many buffers without reallocating.
func (b *Builder) Reset() {
	if b.Bytes != nil {
		b.Bytes = b.Bytes[:cap(b.Bytes)]
	}
	if b.vtables != nil {
		b.vtables = b.vtables[:0]
	}
	if b.vtable != nil {
		b.vtable = b.vtable[:0]
	}
	b.head = UOffsetT(len(b.Bytes))
	b.minalign = 1
	b.nested = false
	b.finished = false
}

// ForceDefaults controls whether fields equal to their declared default are
// still physically written. Off by default: scalars equal to their default
// are skipped unless ForceDefaults is set.
func (b *Builder) ForceDefaults(fd bool) {
	b.forceDefaults = fd
}

// GetSize returns the number of live bytes currently held in the arena.
func (b *Builder) GetSize() int {
	return int(b.Offset())
}

// GetBuffer returns the live region of the arena, whether or not Finish has
// been called. Prefer FinishedBytes once the buffer is complete.
func (b *Builder) GetBuffer() []byte {
	return b.Bytes[b.head:]
}

// FinishedBytes returns the completed buffer. Panics if Finish has not been
// called.
func (b *Builder) FinishedBytes() []byte {
	b.assertFinished()
	return b.Bytes[b.head:]
}

// StartTable begins a table with numfields vtable slots, all initially
// absent.
func (b *Builder) StartTable(numfields int) {
	b.assertNotNested()
	b.nested = true

	if cap(b.vtable) < numfields || b.vtable == nil {
		b.vtable = make([]UOffsetT, numfields)
	} else {
		b.vtable = b.vtable[:numfields]
		for i := range b.vtable {
			b.vtable[i] = 0
		}
	}
	b.objectEnd = b.Offset()
}

// WriteVtable closes out the object started by StartTable: it writes the
// table's back-pointer placeholder, then either points the object at an
// existing structurally-identical vtable or emits a fresh one.
func (b *Builder) WriteVtable() (n UOffsetT) {
	// The object's first field is a placeholder SOffsetT; its value is
	// overwritten below once the vtable's final position is known.
	b.PrependSOffsetT(0)

	objectOffset := b.Offset()
	existingVtable := UOffsetT(0)

	// Trailing all-absent slots don't need to be stored.
	i := len(b.vtable) - 1
	for ; i >= 0 && b.vtable[i] == 0; i-- {
	}
	b.vtable = b.vtable[:i+1]

	// Search backwards: a vtable matching this object's is likely to have
	// been emitted recently by a run of same-shaped tables.
	for i := len(b.vtables) - 1; i >= 0; i-- {
		vt2Offset := b.vtables[i]
		vt2Start := len(b.Bytes) - int(vt2Offset)
		vt2Len := GetVOffsetT(b.Bytes[vt2Start:])

		metadata := VtableMetadataFields * SizeVOffsetT
		vt2End := vt2Start + int(vt2Len)
		vt2 := b.Bytes[vt2Start+metadata : vt2End]

		if vtableEqual(b.vtable, objectOffset, vt2) {
			existingVtable = vt2Offset
			break
		}
	}

	if existingVtable == 0 {
		// No match: write this vtable, in reverse field order since the
		// arena fills last-first.
		for i := len(b.vtable) - 1; i >= 0; i-- {
			var off UOffsetT
			if b.vtable[i] != 0 {
				off = objectOffset - b.vtable[i]
			}
			if off > math.MaxUint16 {
				panic("vtable slot offset does not fit in a VOffsetT")
			}
			b.PrependVOffsetT(VOffsetT(off))
		}

		objectSize := objectOffset - b.objectEnd
		if objectSize > math.MaxUint16 {
			panic("table object size does not fit in a VOffsetT")
		}
		b.PrependVOffsetT(VOffsetT(objectSize))

		vBytes := (len(b.vtable) + VtableMetadataFields) * SizeVOffsetT
		b.PrependVOffsetT(VOffsetT(vBytes))

		objectStart := SOffsetT(len(b.Bytes)) - SOffsetT(objectOffset)
		WriteSOffsetT(b.Bytes[objectStart:], SOffsetT(b.Offset())-SOffsetT(objectOffset))

		b.vtables = append(b.vtables, b.Offset())
	} else {
		// Duplicate: drop the vtable we just staged and repoint the object
		// at the existing one.
		objectStart := SOffsetT(len(b.Bytes)) - SOffsetT(objectOffset)
		b.head = UOffsetT(objectStart)
		WriteSOffsetT(b.Bytes[b.head:], SOffsetT(existingVtable)-SOffsetT(objectOffset))
	}

	b.vtable = b.vtable[:0]
	return objectOffset
}

// EndTable finishes the table started by StartTable.
func (b *Builder) EndTable() UOffsetT {
	b.assertNested()
	n := b.WriteVtable()
	b.nested = false
	return n
}

// growByteBuffer doubles the arena (via the configured Allocator) and
// migrates the live bytes to the top of the new array, since the buffer is
// built from the end backwards.
func (b *Builder) growByteBuffer() {
	if (int64(len(b.Bytes)) & int64(0xC0000000)) != 0 {
		panic("cannot grow buffer beyond 2 gigabytes")
	}
	newLen := len(b.Bytes) * 2
	if newLen == 0 {
		newLen = 1
	}

	newBytes := b.alloc.Reallocate(newLen, b.Bytes)
	if len(newBytes) != newLen {
		// Reallocate is only required to preserve content; pad/extend here
		// so the doubling invariant always holds regardless of allocator.
		grown := make([]byte, newLen)
		copy(grown, newBytes)
		newBytes = grown
	}
	b.Bytes = newBytes

	middle := newLen / 2
	copy(b.Bytes[middle:], b.Bytes[:middle])
}

// Head is the start of live data in the arena, measured from the left.
func (b *Builder) Head() UOffsetT {
	return b.head
}

// Offset is the current arena size, equivalently the position-from-end of
// the next byte to be written.
func (b *Builder) Offset() UOffsetT {
	return UOffsetT(len(b.Bytes)) - b.head
}

// Pad writes n zero bytes at the current position.
func (b *Builder) Pad(n int) {
	for i := 0; i < n; i++ {
		b.PlaceByte(0)
	}
}

// Prep ensures the arena can hold an element of the given size after
// additionalBytes more bytes are written, padding so the element lands on a
// `size`-byte boundary.
func (b *Builder) Prep(size, additionalBytes int) {
	if size > b.minalign {
		b.minalign = size
	}

	alignSize := (^(len(b.Bytes) - int(b.Head()) + additionalBytes)) + 1
	alignSize &= (size - 1)

	for int(b.head) <= alignSize+size+additionalBytes {
		oldBufSize := len(b.Bytes)
		b.growByteBuffer()
		b.head += UOffsetT(len(b.Bytes) - oldBufSize)
	}

	b.Pad(alignSize)
}

// PreAlign is Prep without tracking a pending write; it is used before
// appending raw bytes (e.g. a struct) whose size the caller already knows.
func (b *Builder) PreAlign(len, alignment int) {
	b.Prep(alignment, len)
}

// PrependSOffsetT writes an SOffsetT relative to where it lands.
func (b *Builder) PrependSOffsetT(off SOffsetT) {
	b.Prep(SizeSOffsetT, 0)
	if !(UOffsetT(off) <= b.Offset()) {
		panic("unreachable: off <= b.Offset()")
	}
	off2 := SOffsetT(b.Offset()) - off + SOffsetT(SizeSOffsetT)
	b.PlaceSOffsetT(off2)
}

// PrependUOffsetT writes a UOffsetT relative to where it lands.
func (b *Builder) PrependUOffsetT(off UOffsetT) {
	b.Prep(SizeUOffsetT, 0)
	if !(off <= b.Offset()) {
		panic("unreachable: off <= b.Offset()")
	}
	off2 := b.Offset() - off + UOffsetT(SizeUOffsetT)
	b.PlaceUOffsetT(off2)
}

// StartVector begins a vector of numElems elements of elemSize bytes each,
// aligned to the stricter of the UOffsetT width and the element alignment.
func (b *Builder) StartVector(elemSize, numElems, alignment int) UOffsetT {
	b.assertNotNested()
	b.nested = true
	b.Prep(SizeUint32, elemSize*numElems)
	b.Prep(alignment, elemSize*numElems)
	return b.Offset()
}

// EndVector writes the vector's length prefix and closes it out.
func (b *Builder) EndVector(vectorNumElems int) UOffsetT {
	b.assertNested()
	b.PlaceUOffsetT(UOffsetT(vectorNumElems))
	b.nested = false
	return b.Offset()
}

// CreateString writes s as a length-prefixed, NUL-terminated byte vector
// and returns its position-from-end.
func (b *Builder) CreateString(s string) UOffsetT {
	b.assertNotNested()
	b.nested = true

	b.Prep(SizeUOffsetT, (len(s)+1)*SizeByte)
	b.PlaceByte(0)

	l := UOffsetT(len(s))
	b.head -= l
	copy(b.Bytes[b.head:b.head+l], s)

	return b.EndVector(len(s))
}

// CreateStringOffset is CreateString with a phantom-typed return value.
func (b *Builder) CreateStringOffset(s string) Offset[String] {
	return NewOffset[String](b.CreateString(s))
}

// CreateByteString writes a byte slice as a string (NUL-terminated).
func (b *Builder) CreateByteString(s []byte) UOffsetT {
	b.assertNotNested()
	b.nested = true

	b.Prep(SizeUOffsetT, (len(s)+1)*SizeByte)
	b.PlaceByte(0)

	l := UOffsetT(len(s))
	b.head -= l
	copy(b.Bytes[b.head:b.head+l], s)

	return b.EndVector(len(s))
}

// CreateByteVector writes a plain byte vector (no NUL terminator).
func (b *Builder) CreateByteVector(v []byte) UOffsetT {
	b.assertNotNested()
	b.nested = true

	b.Prep(SizeUOffsetT, len(v)*SizeByte)

	l := UOffsetT(len(v))
	b.head -= l
	copy(b.Bytes[b.head:b.head+l], v)

	return b.EndVector(len(v))
}

// CreateUninitializedVector reserves space for a vector of n elemSize-byte
// elements and returns both its offset and a slice the caller fills in
// directly, avoiding a separate staging buffer.
func (b *Builder) CreateUninitializedVector(n, elemSize int) (UOffsetT, []byte) {
	b.assertNotNested()
	b.nested = true

	b.Prep(SizeUOffsetT, n*elemSize)
	b.Prep(elemSize, n*elemSize)

	l := UOffsetT(n * elemSize)
	b.head -= l
	dst := b.Bytes[b.head : b.head+l]

	return b.EndVector(n), dst
}

func (b *Builder) assertNested() {
	if !b.nested {
		panic("Incorrect creation order: must be inside object.")
	}
}

func (b *Builder) assertNotNested() {
	if b.nested {
		panic("Incorrect creation order: object must not be nested.")
	}
}

func (b *Builder) assertFinished() {
	if !b.finished {
		panic("Incorrect use of FinishedBytes(): must call 'Finish' first.")
	}
}

// PrependBoolSlot prepends a bool field at vtable slot o, unless x equals
// default d and ForceDefaults is off.
func (b *Builder) PrependBoolSlot(o int, x, d bool) {
	val, def := byte(0), byte(0)
	if x {
		val = 1
	}
	if d {
		def = 1
	}
	b.PrependByteSlot(o, val, def)
}

func (b *Builder) PrependByteSlot(o int, x, d byte) {
	if x != d || b.forceDefaults {
		b.PrependByte(x)
		b.TrackField(o)
	}
}

func (b *Builder) PrependUint8Slot(o int, x, d uint8) {
	if x != d || b.forceDefaults {
		b.PrependUint8(x)
		b.TrackField(o)
	}
}

func (b *Builder) PrependUint16Slot(o int, x, d uint16) {
	if x != d || b.forceDefaults {
		b.PrependUint16(x)
		b.TrackField(o)
	}
}

func (b *Builder) PrependUint32Slot(o int, x, d uint32) {
	if x != d || b.forceDefaults {
		b.PrependUint32(x)
		b.TrackField(o)
	}
}

func (b *Builder) PrependUint64Slot(o int, x, d uint64) {
	if x != d || b.forceDefaults {
		b.PrependUint64(x)
		b.TrackField(o)
	}
}

func (b *Builder) PrependInt8Slot(o int, x, d int8) {
	if x != d || b.forceDefaults {
		b.PrependInt8(x)
		b.TrackField(o)
	}
}

func (b *Builder) PrependInt16Slot(o int, x, d int16) {
	if x != d || b.forceDefaults {
		b.PrependInt16(x)
		b.TrackField(o)
	}
}

func (b *Builder) PrependInt32Slot(o int, x, d int32) {
	if x != d || b.forceDefaults {
		b.PrependInt32(x)
		b.TrackField(o)
	}
}

func (b *Builder) PrependInt64Slot(o int, x, d int64) {
	if x != d || b.forceDefaults {
		b.PrependInt64(x)
		b.TrackField(o)
	}
}

func (b *Builder) PrependFloat32Slot(o int, x, d float32) {
	if x != d || (b.forceDefaults && !(math.IsNaN(float64(x)) && math.IsNaN(float64(d)))) {
		b.PrependFloat32(x)
		b.TrackField(o)
	}
}

func (b *Builder) PrependFloat64Slot(o int, x, d float64) {
	if x != d || (b.forceDefaults && !(math.IsNaN(x) && math.IsNaN(d))) {
		b.PrependFloat64(x)
		b.TrackField(o)
	}
}

// PrependUOffsetTSlot prepends a reference field. A zero offset always
// means "no value" and is skipped regardless of ForceDefaults.
func (b *Builder) PrependUOffsetTSlot(o int, x, d UOffsetT) {
	if x != d && x != 0 {
		b.PrependUOffsetT(x)
		b.TrackField(o)
	}
}

// PrependStructSlot records a struct field's position. Structs are already
// inline at x, so this only updates the vtable slot.
func (b *Builder) PrependStructSlot(voffset int, x, d UOffsetT) {
	if x != d {
		b.assertNested()
		if x != b.Offset() {
			panic("inline data write outside of object")
		}
		b.TrackField(voffset)
	}
}

// TrackField records the current write position as field slotnum's location
// in the vtable under construction.
func (b *Builder) TrackField(slotnum int) {
	b.vtable[slotnum] = UOffsetT(b.Offset())
}

// FinishWithFileIdentifier finalizes the buffer like Finish, additionally
// writing a 4-byte file identifier ahead of the root offset.
func (b *Builder) FinishWithFileIdentifier(rootTable UOffsetT, fid []byte) {
	if fid == nil || len(fid) != fileIdentifierLength {
		panic("incorrect file identifier length")
	}
	b.Prep(b.minalign, SizeInt32+fileIdentifierLength)
	for i := fileIdentifierLength - 1; i >= 0; i-- {
		b.PlaceByte(fid[i])
	}
	b.Finish(rootTable)
}

// Finish completes the buffer: the root UOffsetT, pointing at rootTable, is
// the first thing a reader consumes.
func (b *Builder) Finish(rootTable UOffsetT) {
	b.assertNotNested()
	b.Prep(b.minalign, SizeUOffsetT)
	b.PrependUOffsetT(rootTable)
	b.finished = true
}

// vtableEqual compares an in-progress vtable (as slot->position entries)
// against an already-written one's raw bytes.
func vtableEqual(a []UOffsetT, objectStart UOffsetT, b []byte) bool {
	if len(a)*SizeVOffsetT != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		x := GetVOffsetT(b[i*SizeVOffsetT : (i+1)*SizeVOffsetT])
		if x == 0 && a[i] == 0 {
			continue
		}
		y := SOffsetT(objectStart) - SOffsetT(a[i])
		if SOffsetT(x) != y {
			return false
		}
	}
	return true
}

func (b *Builder) PrependBool(x bool) {
	b.Prep(SizeBool, 0)
	b.PlaceBool(x)
}

func (b *Builder) PrependUint8(x uint8) {
	b.Prep(SizeUint8, 0)
	b.PlaceUint8(x)
}

func (b *Builder) PrependUint16(x uint16) {
	b.Prep(SizeUint16, 0)
	b.PlaceUint16(x)
}

func (b *Builder) PrependUint32(x uint32) {
	b.Prep(SizeUint32, 0)
	b.PlaceUint32(x)
}

func (b *Builder) PrependUint64(x uint64) {
	b.Prep(SizeUint64, 0)
	b.PlaceUint64(x)
}

func (b *Builder) PrependInt8(x int8) {
	b.Prep(SizeInt8, 0)
	b.PlaceInt8(x)
}

func (b *Builder) PrependInt16(x int16) {
	b.Prep(SizeInt16, 0)
	b.PlaceInt16(x)
}

func (b *Builder) PrependInt32(x int32) {
	b.Prep(SizeInt32, 0)
	b.PlaceInt32(x)
}

func (b *Builder) PrependInt64(x int64) {
	b.Prep(SizeInt64, 0)
	b.PlaceInt64(x)
}

func (b *Builder) PrependFloat32(x float32) {
	b.Prep(SizeFloat32, 0)
	b.PlaceFloat32(x)
}

func (b *Builder) PrependFloat64(x float64) {
	b.Prep(SizeFloat64, 0)
	b.PlaceFloat64(x)
}

func (b *Builder) PrependByte(x byte) {
	b.Prep(SizeByte, 0)
	b.PlaceByte(x)
}

func (b *Builder) PrependVOffsetT(x VOffsetT) {
	b.Prep(SizeVOffsetT, 0)
	b.PlaceVOffsetT(x)
}

func (b *Builder) PlaceBool(x bool) {
	b.head -= UOffsetT(SizeBool)
	WriteBool(b.Bytes[b.head:], x)
}

func (b *Builder) PlaceUint8(x uint8) {
	b.head -= UOffsetT(SizeUint8)
	WriteUint8(b.Bytes[b.head:], x)
}

func (b *Builder) PlaceUint16(x uint16) {
	b.head -= UOffsetT(SizeUint16)
	WriteUint16(b.Bytes[b.head:], x)
}

func (b *Builder) PlaceUint32(x uint32) {
	b.head -= UOffsetT(SizeUint32)
	WriteUint32(b.Bytes[b.head:], x)
}

func (b *Builder) PlaceUint64(x uint64) {
	b.head -= UOffsetT(SizeUint64)
	WriteUint64(b.Bytes[b.head:], x)
}

func (b *Builder) PlaceInt8(x int8) {
	b.head -= UOffsetT(SizeInt8)
	WriteInt8(b.Bytes[b.head:], x)
}

func (b *Builder) PlaceInt16(x int16) {
	b.head -= UOffsetT(SizeInt16)
	WriteInt16(b.Bytes[b.head:], x)
}

func (b *Builder) PlaceInt32(x int32) {
	b.head -= UOffsetT(SizeInt32)
	WriteInt32(b.Bytes[b.head:], x)
}

func (b *Builder) PlaceInt64(x int64) {
	b.head -= UOffsetT(SizeInt64)
	WriteInt64(b.Bytes[b.head:], x)
}

func (b *Builder) PlaceFloat32(x float32) {
	b.head -= UOffsetT(SizeFloat32)
	WriteFloat32(b.Bytes[b.head:], x)
}

func (b *Builder) PlaceFloat64(x float64) {
	b.head -= UOffsetT(SizeFloat64)
	WriteFloat64(b.Bytes[b.head:], x)
}

func (b *Builder) PlaceByte(x byte) {
	b.head -= UOffsetT(SizeByte)
	WriteByte(b.Bytes[b.head:], x)
}

func (b *Builder) PlaceVOffsetT(x VOffsetT) {
	b.head -= UOffsetT(SizeVOffsetT)
	WriteVOffsetT(b.Bytes[b.head:], x)
}

func (b *Builder) PlaceSOffsetT(x SOffsetT) {
	b.head -= UOffsetT(SizeSOffsetT)
	WriteSOffsetT(b.Bytes[b.head:], x)
}

func (b *Builder) PlaceUOffsetT(x UOffsetT) {
	b.head -= UOffsetT(SizeUOffsetT)
	WriteUOffsetT(b.Bytes[b.head:], x)
}
