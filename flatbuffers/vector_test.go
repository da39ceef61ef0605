package flatbuffers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateVectorOfScalarsInt16(t *testing.T) {
	b := NewBuilder(0)
	values := []int16{1, -2, 3, -4, 5}
	vecOff := CreateVectorOfScalars(b, values)
	b.Finish(vecOff.UOffset())

	finished := b.FinishedBytes()
	vecPos := GetUOffsetT(finished) // root points straight at the vector's length prefix
	length := GetUOffsetT(finished[vecPos:])
	require.EqualValues(t, len(values), length)

	base := vecPos + UOffsetT(SizeUOffsetT)
	require.Zero(t, int(base)%2, "int16 elements must land on a 2-byte boundary")

	for i, want := range values {
		got := ScalarVectorAt[int16](finished, base, i)
		require.Equal(t, want, got)
	}
}

func TestCreateBoolVector(t *testing.T) {
	b := NewBuilder(0)
	values := []bool{true, false, true}
	vecOff := CreateBoolVector(b, values)
	b.Finish(vecOff.UOffset())

	finished := b.FinishedBytes()
	vecPos := GetUOffsetT(finished)
	length := GetUOffsetT(finished[vecPos:])
	require.EqualValues(t, 3, length)

	base := vecPos + UOffsetT(SizeUOffsetT)
	require.Equal(t, byte(1), finished[base])
	require.Equal(t, byte(0), finished[base+1])
	require.Equal(t, byte(1), finished[base+2])
}

func TestCreateVectorOfStructs(t *testing.T) {
	type pair struct{ x, y int32 }
	b := NewBuilder(0)
	items := []pair{{1, 2}, {3, 4}, {5, 6}}

	vecOff := CreateVectorOfStructs(b, items, 8, 4, func(b *Builder, item *pair) {
		b.PrependInt32(item.y)
		b.PrependInt32(item.x)
	})
	b.Finish(vecOff.UOffset())

	finished := b.FinishedBytes()
	vecPos := GetUOffsetT(finished)
	length := GetUOffsetT(finished[vecPos:])
	require.EqualValues(t, 3, length)

	base := vecPos + UOffsetT(SizeUOffsetT)
	for i, want := range items {
		elemAddr := base + UOffsetT(i*8)
		require.Equal(t, want.x, GetInt32(finished[elemAddr:]))
		require.Equal(t, want.y, GetInt32(finished[elemAddr+4:]))
	}
}

func TestCreateVectorOfOffsets(t *testing.T) {
	b := NewBuilder(0)
	a := b.CreateStringOffset("alpha")
	beta := b.CreateStringOffset("beta")

	vecOff := CreateVectorOfOffsets(b, []Offset[String]{a, beta})
	b.Finish(vecOff.UOffset())

	// The root points straight at the vector (no table indirection here), so
	// walk it by hand rather than through a table-relative accessor.
	finished := b.FinishedBytes()
	vecPos := GetUOffsetT(finished)
	require.EqualValues(t, 2, GetUOffsetT(finished[vecPos:]))

	base := vecPos + UOffsetT(SizeUOffsetT)
	tmp := &Table{Bytes: finished}
	elem0 := tmp.Indirect(base)
	elem1 := tmp.Indirect(base + UOffsetT(SizeUOffsetT))
	require.Equal(t, "alpha", tmp.String(elem0))
	require.Equal(t, "beta", tmp.String(elem1))
}
