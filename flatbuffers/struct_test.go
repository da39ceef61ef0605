package flatbuffers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStructFieldsAlwaysPresent(t *testing.T) {
	b := NewBuilder(0)
	WidgetStart(b)
	posOff := CreateVec2(b, 10, -20)
	WidgetAddPos(b, posOff)
	off := WidgetEnd(b)
	b.Finish(off)

	w := GetRootAsWidget(b.FinishedBytes(), 0)
	pos := w.Pos()
	require.NotNil(t, pos)
	require.Equal(t, int32(10), pos.X())
	require.Equal(t, int32(-20), pos.Y())
}

func TestStructMutation(t *testing.T) {
	b := NewBuilder(0)
	WidgetStart(b)
	posOff := CreateVec2(b, 1, 2)
	WidgetAddPos(b, posOff)
	off := WidgetEnd(b)
	b.Finish(off)

	w := GetRootAsWidget(b.FinishedBytes(), 0)
	pos := w.Pos()
	pos.s.MutateInt32(0, 42)
	require.Equal(t, int32(42), pos.X())
	require.Equal(t, int32(2), pos.Y(), "mutating X must not disturb Y")
}
