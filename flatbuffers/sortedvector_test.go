package flatbuffers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateVectorOfSortedTables(t *testing.T) {
	b := NewBuilder(0)
	names := []string{"zebra", "apple", "mango"}
	offs := make([]UOffsetT, len(names))
	for i, n := range names {
		offs[i] = createWidget(b, n, int32(i), 0, 0, nil)
	}

	vecOff := CreateVectorOfSortedTables(b, offs, func() *Widget { return &Widget{} })
	b.Finish(vecOff)

	finished := b.FinishedBytes()
	vecPos := GetUOffsetT(finished)
	length := GetUOffsetT(finished[vecPos:])
	require.EqualValues(t, 3, length)

	base := vecPos + UOffsetT(SizeUOffsetT)
	tmp := &Table{Bytes: finished}

	var got []string
	for i := 0; i < int(length); i++ {
		elemAddr := tmp.Indirect(base + UOffsetT(i*SizeUOffsetT))
		w := &Widget{}
		w.Init(finished, elemAddr)
		got = append(got, w.Name())
	}
	require.Equal(t, []string{"apple", "mango", "zebra"}, got)
}
