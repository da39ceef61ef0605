// Package memory supplies the pluggable byte-array allocator used by the
// flatbuffers arena when it grows. It is adapted from the 64-byte-aligned
// Go allocator the Arrow columnar library pairs with its own buffers; here
// it backs a single reverse-growing arena instead of a ref-counted buffer
// pool.
package memory

const alignment = 64

// Allocator grows and releases the byte arrays a Builder's arena is backed
// by. Implementations may pool, align, or instrument allocations; the
// default GoAllocator just aligns to a cache line.
type Allocator interface {
	Allocate(size int) []byte
	Reallocate(size int, b []byte) []byte
	Free(b []byte)
}

// GoAllocator allocates plain Go byte slices, shifted so that the first
// usable byte sits on a 64-byte boundary.
type GoAllocator struct{}

// NewGoAllocator returns the default cache-line-aligned allocator.
func NewGoAllocator() *GoAllocator { return &GoAllocator{} }

func (a *GoAllocator) Allocate(size int) []byte {
	buf := make([]byte, size+alignment)
	addr := addressOf(buf)
	next := roundUpToMultipleOf64(addr)
	if addr != next {
		shift := next - addr
		return buf[shift : size+shift : size+shift]
	}
	return buf[:size:size]
}

func (a *GoAllocator) Reallocate(size int, b []byte) []byte {
	if size == len(b) {
		return b
	}
	newBuf := a.Allocate(size)
	copy(newBuf, b)
	return newBuf
}

func (a *GoAllocator) Free(b []byte) {}

var _ Allocator = (*GoAllocator)(nil)
