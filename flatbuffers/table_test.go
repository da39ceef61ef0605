package flatbuffers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWidgetRoundTrip(t *testing.T) {
	b := NewBuilder(0)
	off := createWidget(b, "sprocket", 7, 3, 4, []string{"metal", "small"})
	b.Finish(off)

	w := GetRootAsWidget(b.FinishedBytes(), 0)
	require.Equal(t, "sprocket", w.Name())
	require.EqualValues(t, 7, w.Count())
	require.Equal(t, int32(3), w.Pos().X())
	require.Equal(t, int32(4), w.Pos().Y())
	require.Equal(t, 2, w.TagsLength())
	require.Equal(t, "metal", w.Tags(0))
	require.Equal(t, "small", w.Tags(1))
}

func TestWidgetAbsentFieldsReturnDefaults(t *testing.T) {
	b := NewBuilder(0)
	WidgetStart(b)
	off := WidgetEnd(b)
	b.Finish(off)

	w := GetRootAsWidget(b.FinishedBytes(), 0)
	require.Equal(t, "", w.Name())
	require.EqualValues(t, 0, w.Count())
	require.Nil(t, w.Pos())
	require.Equal(t, 0, w.TagsLength())
}

func TestMutateInt32Slot(t *testing.T) {
	b := NewBuilder(0)
	off := createWidget(b, "sprocket", 7, 0, 0, nil)
	b.Finish(off)

	w := GetRootAsWidget(b.FinishedBytes(), 0)
	require.EqualValues(t, 7, w.Count())

	ok := w.tab.MutateInt32Slot(widgetCountSlot, 99)
	require.True(t, ok)
	require.EqualValues(t, 99, w.Count())
}

func TestMutateSlotFailsWhenFieldAbsent(t *testing.T) {
	b := NewBuilder(0)
	WidgetStart(b)
	off := WidgetEnd(b)
	b.Finish(off)

	w := GetRootAsWidget(b.FinishedBytes(), 0)
	ok := w.tab.MutateInt32Slot(widgetCountSlot, 5)
	require.False(t, ok, "mutation cannot turn an absent field present")
}

func TestIterateOverReferenceVector(t *testing.T) {
	b := NewBuilder(0)
	off := createWidget(b, "sprocket", 1, 0, 0, []string{"a", "b", "c"})
	b.Finish(off)

	w := GetRootAsWidget(b.FinishedBytes(), 0)
	tagsOff := w.tab.Offset(widgetTagsSlot)
	require.NotZero(t, tagsOff)

	it := w.tab.Iterate(UOffsetT(tagsOff))
	require.Equal(t, 3, it.Len())

	var got []string
	for {
		addr, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, w.tab.String(addr))
	}
	require.Equal(t, []string{"a", "b", "c"}, got)
}
