package flatbuffers

// Offset is a UOffsetT tagged, at compile time only, with the type of object
// it refers to: a table, a String, or a Vector[E]. The tag exists purely so
// that generated-style accessor code can't accidentally hand a table offset
// to a function expecting a string offset; on the wire, and at runtime,
// Offset[T] is nothing more than the UOffsetT it wraps.
type Offset[T any] struct {
	offset UOffsetT
}

// UOffset returns the raw, untyped offset.
func (o Offset[T]) UOffset() UOffsetT { return o.offset }

// IsNil reports whether this offset represents "no value" (a zero offset,
// the same sentinel the builder uses to skip writing a null reference
// field).
func (o Offset[T]) IsNil() bool { return o.offset == 0 }

// NewOffset wraps a raw UOffsetT with a phantom referent type. Builder
// helpers that hand back a typed offset (CreateStringOffset,
// CreateVectorOfScalars, CreateBoolVector, CreateVectorOfStructs,
// CreateVectorOfOffsets) use this to recover type safety without changing
// the bytes written.
func NewOffset[T any](o UOffsetT) Offset[T] {
	return Offset[T]{offset: o}
}
