package memory

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGoAllocatorAligns64(t *testing.T) {
	a := NewGoAllocator()
	buf := a.Allocate(100)
	require.Len(t, buf, 100)
	require.Zero(t, addressOf(buf)%alignment)
}

func TestGoAllocatorReallocatePreservesContent(t *testing.T) {
	a := NewGoAllocator()
	buf := a.Allocate(4)
	copy(buf, []byte{1, 2, 3, 4})

	grown := a.Reallocate(8, buf)
	require.Len(t, grown, 8)
	require.Equal(t, []byte{1, 2, 3, 4, 0, 0, 0, 0}, grown, "Reallocate copies existing content to the start; the Builder re-aligns it to the right half itself")
}

func TestGoAllocatorReallocateSameSizeIsNoop(t *testing.T) {
	a := NewGoAllocator()
	buf := a.Allocate(4)
	same := a.Reallocate(4, buf)
	require.Same(t, &buf[0], &same[0])
}

func TestGoAllocatorFreeIsNoop(t *testing.T) {
	a := NewGoAllocator()
	buf := a.Allocate(4)
	require.NotPanics(t, func() { a.Free(buf) })
}
