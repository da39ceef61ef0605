package flatbuffers

import "unsafe"

// String tags an Offset as referring to a FlatBuffers string, so
// CreateStringOffset's return value can't be passed where a table offset is
// expected. It carries no data of its own.
type String struct{}

// Vector tags an Offset as referring to a vector of E, used by
// CreateVectorOfScalars and CreateVectorOfStructs to hand back a
// phantom-typed offset instead of a bare UOffsetT.
type Vector[E any] struct{}

// Numeric constrains the element type CreateVectorOfScalars will accept.
// Bool vectors are written with CreateBoolVector, since bool is not a
// numeric type.
type Numeric interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64 | ~float32 | ~float64
}

func placeScalar[T Numeric](b *Builder, v T) {
	switch x := any(v).(type) {
	case int8:
		b.PlaceInt8(x)
	case uint8:
		b.PlaceUint8(x)
	case int16:
		b.PlaceInt16(x)
	case uint16:
		b.PlaceUint16(x)
	case int32:
		b.PlaceInt32(x)
	case uint32:
		b.PlaceUint32(x)
	case int64:
		b.PlaceInt64(x)
	case uint64:
		b.PlaceUint64(x)
	case float32:
		b.PlaceFloat32(x)
	case float64:
		b.PlaceFloat64(x)
	default:
		panic("unsupported scalar vector element type")
	}
}

// CreateVectorOfScalars writes v as a vector of inlined, densely packed
// scalars and returns its phantom-typed offset. Elements are appended in
// reverse so the arena, which fills from high addresses down, ends up
// holding them in forward order.
func CreateVectorOfScalars[T Numeric](b *Builder, v []T) Offset[Vector[T]] {
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	b.StartVector(elemSize, len(v), elemSize)
	for i := len(v) - 1; i >= 0; i-- {
		placeScalar(b, v[i])
	}
	return NewOffset[Vector[T]](b.EndVector(len(v)))
}

// CreateBoolVector writes v as a vector of one-byte booleans.
func CreateBoolVector(b *Builder, v []bool) Offset[Vector[bool]] {
	b.StartVector(SizeBool, len(v), SizeBool)
	for i := len(v) - 1; i >= 0; i-- {
		b.PlaceBool(v[i])
	}
	return NewOffset[Vector[bool]](b.EndVector(len(v)))
}

// CreateVectorOfStructs writes v as a vector of inlined structs. write must
// emit exactly structSize bytes per element, in the reverse of the field
// order the struct type declares (highest-offset field first), the same discipline
// PrependStructSlot expects of a standalone struct field.
func CreateVectorOfStructs[T any](b *Builder, v []T, structSize, structAlign int, write func(b *Builder, item *T)) Offset[Vector[T]] {
	b.StartVector(structSize, len(v), structAlign)
	for i := len(v) - 1; i >= 0; i-- {
		write(b, &v[i])
	}
	return NewOffset[Vector[T]](b.EndVector(len(v)))
}

// CreateVectorOfOffsets writes a vector of references (table or string
// offsets), in the UOffsetT-indirected form every non-scalar vector element
// uses.
func CreateVectorOfOffsets[T any](b *Builder, offsets []Offset[T]) Offset[Vector[T]] {
	b.StartVector(SizeUOffsetT, len(offsets), SizeUOffsetT)
	for i := len(offsets) - 1; i >= 0; i-- {
		b.PrependUOffsetT(offsets[i].UOffset())
	}
	return NewOffset[Vector[T]](b.EndVector(len(offsets)))
}

// ScalarVectorAt reads element i of a scalar vector whose first element
// lives at base (as returned by Table.Vector). It performs no bounds check;
// callers are expected to have validated i against Table.VectorLen, or to
// have run the buffer through the verify package first.
func ScalarVectorAt[T Numeric](bytes []byte, base UOffsetT, i int) T {
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	addr := base + UOffsetT(i*elemSize)
	var out T
	switch any(zero).(type) {
	case int8:
		out = any(GetInt8(bytes[addr:])).(T)
	case uint8:
		out = any(GetUint8(bytes[addr:])).(T)
	case int16:
		out = any(GetInt16(bytes[addr:])).(T)
	case uint16:
		out = any(GetUint16(bytes[addr:])).(T)
	case int32:
		out = any(GetInt32(bytes[addr:])).(T)
	case uint32:
		out = any(GetUint32(bytes[addr:])).(T)
	case int64:
		out = any(GetInt64(bytes[addr:])).(T)
	case uint64:
		out = any(GetUint64(bytes[addr:])).(T)
	case float32:
		out = any(GetFloat32(bytes[addr:])).(T)
	case float64:
		out = any(GetFloat64(bytes[addr:])).(T)
	}
	return out
}
