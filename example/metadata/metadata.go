// Package metadata is a worked example of generated-style accessor code
// sitting on top of the flatbuffers runtime: a small schema-free key/value
// table, plus the hand-written equivalent of what a schema compiler would
// emit for it.
package metadata

import "github.com/blastbao/flatgo/flatbuffers"

const (
	keysSlot   = 0
	valuesSlot = 1
)

// Metadata is a table of parallel key and value string vectors: Keys(i) and
// Values(i) describe the same entry.
type Metadata struct {
	tab flatbuffers.Table
}

// GetRootAsMetadata positions a Metadata over the table at the buffer's
// root.
func GetRootAsMetadata(buf []byte, offset flatbuffers.UOffsetT) *Metadata {
	return flatbuffers.GetRootAs(buf, offset, func() *Metadata { return &Metadata{} })
}

// Init implements flatbuffers.Rooted.
func (rcv *Metadata) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv.tab.Bytes = buf
	rcv.tab.Pos = i
}

// Table exposes the underlying table for lower-level access.
func (rcv *Metadata) Table() flatbuffers.Table { return rcv.tab }

// KeysLength returns the number of key/value pairs.
func (rcv *Metadata) KeysLength() int {
	off := rcv.tab.Offset(keysSlot)
	if off == 0 {
		return 0
	}
	return rcv.tab.VectorLen(flatbuffers.UOffsetT(off))
}

// Keys returns the j'th key.
func (rcv *Metadata) Keys(j int) string {
	off := rcv.tab.Offset(keysSlot)
	if off == 0 {
		return ""
	}
	it := rcv.tab.Iterate(flatbuffers.UOffsetT(off))
	for i := 0; i <= j; i++ {
		addr, ok := it.Next()
		if !ok {
			return ""
		}
		if i == j {
			return rcv.tab.String(addr)
		}
	}
	return ""
}

// ValuesLength returns the number of values, which should always equal
// KeysLength for a table built through CreateMetadata.
func (rcv *Metadata) ValuesLength() int {
	off := rcv.tab.Offset(valuesSlot)
	if off == 0 {
		return 0
	}
	return rcv.tab.VectorLen(flatbuffers.UOffsetT(off))
}

// Values returns the j'th value.
func (rcv *Metadata) Values(j int) string {
	off := rcv.tab.Offset(valuesSlot)
	if off == 0 {
		return ""
	}
	it := rcv.tab.Iterate(flatbuffers.UOffsetT(off))
	for i := 0; i <= j; i++ {
		addr, ok := it.Next()
		if !ok {
			return ""
		}
		if i == j {
			return rcv.tab.String(addr)
		}
	}
	return ""
}

// Lookup scans the key vector for key and returns its paired value.
func (rcv *Metadata) Lookup(key string) (string, bool) {
	n := rcv.KeysLength()
	for i := 0; i < n; i++ {
		if rcv.Keys(i) == key {
			return rcv.Values(i), true
		}
	}
	return "", false
}

const (
	originalTypeKey = "FLATGO_ORIGINAL_TYPE"
	logicalTypeKey  = "LogicalType"
	mapTypeValue    = "MAP"
)

// IsMapType reports whether this metadata marks its field as a map, under
// either the schema-declared LogicalType key or the original-type fallback
// key a producer may have used before LogicalType existed.
func (rcv *Metadata) IsMapType() bool {
	if v, ok := rcv.Lookup(logicalTypeKey); ok {
		return v == mapTypeValue
	}
	if v, ok := rcv.Lookup(originalTypeKey); ok {
		return v == mapTypeValue
	}
	return false
}

// MetadataStart opens the table; call MetadataAddKeys/MetadataAddValues
// before MetadataEnd.
func MetadataStart(b *flatbuffers.Builder) { b.StartTable(2) }

// MetadataAddKeys sets the keys vector field.
func MetadataAddKeys(b *flatbuffers.Builder, keys flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(keysSlot, keys, 0)
}

// MetadataAddValues sets the values vector field.
func MetadataAddValues(b *flatbuffers.Builder, values flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(valuesSlot, values, 0)
}

// MetadataEnd closes the table opened by MetadataStart.
func MetadataEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT { return b.EndTable() }

// CreateMetadata is the non-generated convenience path: given parallel
// key/value slices, it builds both string vectors and the table in one
// call and returns the finished table's offset. keys and values must be
// the same length.
func CreateMetadata(b *flatbuffers.Builder, keys, values []string) flatbuffers.UOffsetT {
	if len(keys) != len(values) {
		panic("metadata: keys and values must be the same length")
	}

	keyOffsets := make([]flatbuffers.UOffsetT, len(keys))
	for i, k := range keys {
		keyOffsets[i] = b.CreateString(k)
	}
	valueOffsets := make([]flatbuffers.UOffsetT, len(values))
	for i, v := range values {
		valueOffsets[i] = b.CreateString(v)
	}

	b.StartVector(flatbuffers.SizeUOffsetT, len(keyOffsets), flatbuffers.SizeUOffsetT)
	for i := len(keyOffsets) - 1; i >= 0; i-- {
		b.PrependUOffsetT(keyOffsets[i])
	}
	keysVec := b.EndVector(len(keyOffsets))

	b.StartVector(flatbuffers.SizeUOffsetT, len(valueOffsets), flatbuffers.SizeUOffsetT)
	for i := len(valueOffsets) - 1; i >= 0; i-- {
		b.PrependUOffsetT(valueOffsets[i])
	}
	valuesVec := b.EndVector(len(valueOffsets))

	MetadataStart(b)
	MetadataAddKeys(b, keysVec)
	MetadataAddValues(b, valuesVec)
	return MetadataEnd(b)
}
