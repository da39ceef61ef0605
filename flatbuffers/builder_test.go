package flatbuffers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateStringWireLayout(t *testing.T) {
	b := NewBuilder(0)
	off := b.CreateString("hello")
	finished := b.Bytes[b.Head():]

	strPos := UOffsetT(len(finished)) - off
	length := GetUOffsetT(finished[strPos:])
	require.EqualValues(t, 5, length)

	payload := finished[strPos+UOffsetT(SizeUOffsetT) : strPos+UOffsetT(SizeUOffsetT)+length]
	require.Equal(t, "hello", string(payload))
	require.Equal(t, byte(0), finished[strPos+UOffsetT(SizeUOffsetT)+length], "string must be NUL terminated")
}

func TestCreateStringEmpty(t *testing.T) {
	b := NewBuilder(0)
	off := b.CreateString("")
	finished := b.Bytes[b.Head():]
	strPos := UOffsetT(len(finished)) - off
	require.EqualValues(t, 0, GetUOffsetT(finished[strPos:]))
}

func TestForceDefaultsWritesDefaultValue(t *testing.T) {
	b := NewBuilder(0)
	b.ForceDefaults(true)
	b.StartTable(1)
	b.PrependInt32Slot(0, 0, 0)
	off := b.EndTable()
	b.Finish(off)

	tab := Table{Bytes: b.Bytes[b.Head():], Pos: UOffsetT(len(b.Bytes[b.Head():])) - off}
	require.True(t, tab.CheckField(0), "forced field must be physically present even though it equals its default")
	require.EqualValues(t, 0, tab.GetInt32Slot(0, 99))
}

func TestWithoutForceDefaultsOmitsDefaultValue(t *testing.T) {
	b := NewBuilder(0)
	b.StartTable(1)
	b.PrependInt32Slot(0, 0, 0)
	off := b.EndTable()
	b.Finish(off)

	tab := Table{Bytes: b.Bytes[b.Head():], Pos: UOffsetT(len(b.Bytes[b.Head():])) - off}
	require.False(t, tab.CheckField(0), "a field equal to its default must be omitted unless ForceDefaults is set")
}

func TestVtableDeduplication(t *testing.T) {
	b := NewBuilder(0)

	b.StartTable(2)
	b.PrependInt32Slot(0, 1, 0)
	b.PrependInt32Slot(1, 2, 0)
	off1 := b.EndTable()

	b.StartTable(2)
	b.PrependInt32Slot(0, 3, 0)
	b.PrependInt32Slot(1, 4, 0)
	off2 := b.EndTable()

	require.Len(t, b.vtables, 1, "two identically shaped objects must share one vtable")

	tab1 := Table{Bytes: b.Bytes[b.Head():], Pos: UOffsetT(len(b.Bytes[b.Head():])) - off1}
	tab2 := Table{Bytes: b.Bytes[b.Head():], Pos: UOffsetT(len(b.Bytes[b.Head():])) - off2}
	require.EqualValues(t, 1, tab1.GetInt32Slot(0, 0))
	require.EqualValues(t, 3, tab2.GetInt32Slot(0, 0))
}

func TestVtableNotSharedForDifferentShapes(t *testing.T) {
	b := NewBuilder(0)

	b.StartTable(2)
	b.PrependInt32Slot(0, 1, 0)
	b.PrependInt32Slot(1, 2, 0)
	b.EndTable()

	b.StartTable(2)
	b.PrependInt32Slot(0, 3, 0)
	// slot 1 left absent this time: different vtable shape
	b.EndTable()

	require.Len(t, b.vtables, 2)
}

func TestNaNAlwaysWrittenEvenAsDefault(t *testing.T) {
	nan := float32(0)
	nan = nan / nan // NaN without invoking math, keeping this file free of an extra import

	b := NewBuilder(0)
	b.StartTable(1)
	b.PrependFloat32Slot(0, nan, nan)
	off := b.EndTable()
	b.Finish(off)

	tab := Table{Bytes: b.Bytes[b.Head():], Pos: UOffsetT(len(b.Bytes[b.Head():])) - off}
	require.True(t, tab.CheckField(0), "NaN != NaN under IEEE754, so even a NaN default can't be elided by simple comparison")
}

func TestGrowByteBufferPreservesOffsets(t *testing.T) {
	b := NewBuilder(1)
	offs := make([]UOffsetT, 0, 64)
	for i := 0; i < 64; i++ {
		offs = append(offs, b.CreateString("x"))
	}
	finished := b.Bytes[b.Head():]
	for i, off := range offs {
		pos := UOffsetT(len(finished)) - off
		require.Equal(t, byte('x'), finished[pos+UOffsetT(SizeUOffsetT)], "entry %d displaced after growth", i)
	}
}

func TestAssertNotNestedPanics(t *testing.T) {
	b := NewBuilder(0)
	b.StartTable(1)
	require.Panics(t, func() {
		b.StartTable(1)
	})
}

func TestAssertNestedPanics(t *testing.T) {
	b := NewBuilder(0)
	require.Panics(t, func() {
		b.EndTable()
	})
}

func TestFinishWithFileIdentifierRejectsWrongLength(t *testing.T) {
	b := NewBuilder(0)
	b.StartTable(0)
	off := b.EndTable()
	require.Panics(t, func() {
		b.FinishWithFileIdentifier(off, []byte("bad"))
	})
}

func TestFinishWithFileIdentifier(t *testing.T) {
	b := NewBuilder(0)
	b.StartTable(0)
	off := b.EndTable()
	b.FinishWithFileIdentifier(off, []byte("TEST"))

	finished := b.Bytes[b.Head():]
	root := GetUOffsetT(finished)
	require.Equal(t, "TEST", string(finished[SizeUOffsetT:SizeUOffsetT+fileIdentifierLength]))
	require.Greater(t, int(root), 0)
}
