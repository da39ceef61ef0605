package flatbuffers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetRootAsAndGetRootTableAgree(t *testing.T) {
	b := NewBuilder(0)
	off := createWidget(b, "gizmo", 3, 0, 0, nil)
	b.Finish(off)

	buf := b.FinishedBytes()
	w := GetRootAsWidget(buf, 0)
	require.Equal(t, "gizmo", w.Name())

	bare := GetRootTable(buf, 0)
	require.Equal(t, w.tab.Pos, bare.Pos)
}
