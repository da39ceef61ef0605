package flatbuffers

// Rooted is implemented by generated-style accessor types that wrap a Table
// and know how to position themselves over it. GetRootAs uses it to hand
// back a ready-to-use accessor instead of a bare Table.
type Rooted interface {
	Init(buf []byte, pos UOffsetT)
}

// GetRootAs dereferences the root UOffsetT at the given byte offset
// (0, unless a size prefix or nested buffer is in play) and positions newT
// over the table it points to.
func GetRootAs[T Rooted](buf []byte, offset UOffsetT, newT func() T) T {
	n := GetUOffsetT(buf[offset:])
	t := newT()
	t.Init(buf, n+offset)
	return t
}

// GetRootTable is GetRootAs for callers with no generated accessor type,
// returning the bare Table at the buffer's root.
func GetRootTable(buf []byte, offset UOffsetT) *Table {
	n := GetUOffsetT(buf[offset:])
	return &Table{Bytes: buf, Pos: n + offset}
}
