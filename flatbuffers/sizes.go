package flatbuffers

// SOffsetT is a signed back-reference: the displacement from a table to its
// vtable, which readers subtract from the table's position. The stored value
// is positive when the vtable precedes the table (a vtable written for this
// table) and negative when it follows it (a shared vtable written earlier).
type SOffsetT int32

// UOffsetT is an unsigned forward reference: the distance, in bytes, from the
// offset word itself to its referent. Every UOffsetT in a finished buffer is
// non-negative by construction.
type UOffsetT uint32

// VOffsetT is a vtable slot value: the referenced field's byte offset from
// the start of its table, or zero if the field is absent.
type VOffsetT uint16

// Byte widths of the fixed-width wire types. Every object in the finished
// buffer aligns to the widest of these it contains.
const (
	SizeUint8  = 1
	SizeUint16 = 2
	SizeUint32 = 4
	SizeUint64 = 8

	SizeInt8  = 1
	SizeInt16 = 2
	SizeInt32 = 4
	SizeInt64 = 8

	SizeFloat32 = 4
	SizeFloat64 = 8

	SizeByte = 1
	SizeBool = 1

	SizeSOffsetT = 4
	SizeUOffsetT = 4
	SizeVOffsetT = 2
)

// VtableMetadataFields is the number of VOffsetT-wide header slots every
// vtable carries ahead of its per-field entries: vtable_size and
// object_size.
const VtableMetadataFields = 2
