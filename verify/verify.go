// Package verify is an opt-in, schema-less soundness pass over a finished
// flatbuffers buffer. The core reader trusts its input and will panic or
// read garbage on a malformed buffer; callers that accept buffers from an
// untrusted source should run them through this package first.
package verify

import (
	"unicode/utf8"

	"golang.org/x/xerrors"

	"github.com/blastbao/flatgo/flatbuffers"
)

// Sentinel errors, wrapped with xerrors.Errorf so callers can match them
// with errors.Is even once position information has been attached.
var (
	ErrBufferTooShort  = xerrors.New("verify: buffer too short")
	ErrOffsetOutOfRange = xerrors.New("verify: offset out of range")
	ErrInvalidVtable    = xerrors.New("verify: invalid vtable")
	ErrInvalidUTF8      = xerrors.New("verify: invalid utf-8 in string")
	ErrTruncatedVector  = xerrors.New("verify: vector length exceeds buffer")
	ErrMisaligned       = xerrors.New("verify: offset violates required alignment")
)

// Verifier walks the single buffer it was created over. It keeps no state
// beyond that buffer and its depth limit, and never writes to the buffer.
type Verifier struct {
	buf      []byte
	maxDepth int
}

// DefaultMaxDepth bounds recursion through nested tables, guarding against a
// buffer engineered with a cyclic or very deep offset chain.
const DefaultMaxDepth = 64

// NewVerifier returns a Verifier over buf with the default recursion depth.
func NewVerifier(buf []byte) *Verifier {
	return &Verifier{buf: buf, maxDepth: DefaultMaxDepth}
}

// Buffer runs a structural check of buf: that the root offset is in range,
// that the root table's vtable is well-formed, and that every vtable entry
// it declares points at bytes actually inside buf. It does not know the
// schema, so it cannot validate that a field's declared type matches its
// bytes, and it does not follow fields into strings, vectors or nested
// tables: bytes reachable only through them (including a cut-off tail of
// the buffer) are left unchecked. String, StringAt, Vector and NestedTable
// check those for fields the caller knows about.
func Buffer(buf []byte) error {
	v := NewVerifier(buf)
	return v.Root(0)
}

// Root verifies the table whose position is stored, as a UOffsetT, at byte
// offset off in the buffer (ordinarily 0).
func (v *Verifier) Root(off flatbuffers.UOffsetT) error {
	if len(v.buf) < int(off)+flatbuffers.SizeUOffsetT {
		return ErrBufferTooShort
	}
	pos := flatbuffers.GetUOffsetT(v.buf[off:]) + off
	return v.table(pos, v.maxDepth)
}

func (v *Verifier) inBounds(pos flatbuffers.UOffsetT, size int) error {
	if int(pos) < 0 || int(pos)+size > len(v.buf) {
		return ErrOffsetOutOfRange
	}
	return nil
}

// table validates the vtable a table at pos refers to, and that every slot
// it declares resolves to an in-bounds field.
func (v *Verifier) table(pos flatbuffers.UOffsetT, depth int) error {
	if depth <= 0 {
		return xerrors.Errorf("verify: nesting too deep at pos %d: %w", pos, ErrInvalidVtable)
	}
	if err := v.inBounds(pos, flatbuffers.SizeSOffsetT); err != nil {
		return xerrors.Errorf("table at %d: %w", pos, err)
	}
	soff := flatbuffers.GetSOffsetT(v.buf[pos:])
	vtablePos := flatbuffers.UOffsetT(int64(pos) - int64(soff))
	if err := v.inBounds(vtablePos, flatbuffers.SizeVOffsetT*2); err != nil {
		return xerrors.Errorf("vtable for table at %d: %w", pos, err)
	}

	vtableSize := flatbuffers.GetVOffsetT(v.buf[vtablePos:])
	if int(vtableSize) < flatbuffers.SizeVOffsetT*flatbuffers.VtableMetadataFields {
		return xerrors.Errorf("vtable at %d: %w", vtablePos, ErrInvalidVtable)
	}
	if vtableSize%flatbuffers.SizeVOffsetT != 0 {
		return xerrors.Errorf("vtable at %d: odd size: %w", vtablePos, ErrInvalidVtable)
	}
	if err := v.inBounds(vtablePos, int(vtableSize)); err != nil {
		return xerrors.Errorf("vtable at %d: %w", vtablePos, err)
	}

	numFields := (int(vtableSize) - flatbuffers.SizeVOffsetT*flatbuffers.VtableMetadataFields) / flatbuffers.SizeVOffsetT
	for i := 0; i < numFields; i++ {
		slotPos := vtablePos + flatbuffers.UOffsetT((flatbuffers.VtableMetadataFields+i)*flatbuffers.SizeVOffsetT)
		fieldOff := flatbuffers.GetVOffsetT(v.buf[slotPos:])
		if fieldOff == 0 {
			continue
		}
		if err := v.inBounds(pos+flatbuffers.UOffsetT(fieldOff), 1); err != nil {
			return xerrors.Errorf("field at vtable slot %d: %w", i, err)
		}
	}
	return nil
}

// String verifies the string stored at a field offset off inside the table
// at tablePos, returning its bytes (sans length prefix and NUL) once
// validated as well-formed UTF-8 lying entirely inside the buffer.
func (v *Verifier) String(tablePos, off flatbuffers.UOffsetT) (string, error) {
	fieldAddr := tablePos + off
	if err := v.inBounds(fieldAddr, flatbuffers.SizeUOffsetT); err != nil {
		return "", xerrors.Errorf("string field at %d: %w", fieldAddr, err)
	}
	strPos := fieldAddr + flatbuffers.GetUOffsetT(v.buf[fieldAddr:])
	return v.StringAt(strPos)
}

// StringAt verifies the string whose length prefix starts at the already
// fully-resolved absolute address pos, as produced by Table.Indirect on a
// vector element. Unlike String, it performs no further indirection.
func (v *Verifier) StringAt(pos flatbuffers.UOffsetT) (string, error) {
	if err := v.inBounds(pos, flatbuffers.SizeUOffsetT); err != nil {
		return "", xerrors.Errorf("string length at %d: %w", pos, err)
	}
	length := flatbuffers.GetUOffsetT(v.buf[pos:])
	start := pos + flatbuffers.UOffsetT(flatbuffers.SizeUOffsetT)
	if err := v.inBounds(start, int(length)+1); err != nil {
		return "", xerrors.Errorf("string payload at %d: %w", start, err)
	}
	data := v.buf[start : start+length]
	if !utf8.Valid(data) {
		return "", xerrors.Errorf("string at %d: %w", start, ErrInvalidUTF8)
	}
	return string(data), nil
}

// Vector verifies the vector stored at a field offset off inside the table
// at tablePos, whose elements are elemSize bytes wide, and returns the
// absolute address of its first element and its length.
func (v *Verifier) Vector(tablePos, off flatbuffers.UOffsetT, elemSize int) (flatbuffers.UOffsetT, int, error) {
	fieldAddr := tablePos + off
	if err := v.inBounds(fieldAddr, flatbuffers.SizeUOffsetT); err != nil {
		return 0, 0, xerrors.Errorf("vector field at %d: %w", fieldAddr, err)
	}
	vecPos := fieldAddr + flatbuffers.GetUOffsetT(v.buf[fieldAddr:])
	if err := v.inBounds(vecPos, flatbuffers.SizeUOffsetT); err != nil {
		return 0, 0, xerrors.Errorf("vector length at %d: %w", vecPos, err)
	}
	length := flatbuffers.GetUOffsetT(v.buf[vecPos:])
	base := vecPos + flatbuffers.UOffsetT(flatbuffers.SizeUOffsetT)
	if err := v.inBounds(base, int(length)*elemSize); err != nil {
		return 0, 0, xerrors.Errorf("vector payload at %d: %w", base, ErrTruncatedVector)
	}
	return base, int(length), nil
}

// NestedTable verifies a table reached indirectly through a field offset
// off inside the table at tablePos, recursing with one less depth budget.
func (v *Verifier) NestedTable(tablePos, off flatbuffers.UOffsetT, depth int) error {
	fieldAddr := tablePos + off
	if err := v.inBounds(fieldAddr, flatbuffers.SizeUOffsetT); err != nil {
		return xerrors.Errorf("nested table field at %d: %w", fieldAddr, err)
	}
	nestedPos := fieldAddr + flatbuffers.GetUOffsetT(v.buf[fieldAddr:])
	return v.table(nestedPos, depth-1)
}

// Aligned reports whether pos satisfies the given byte alignment, returning
// ErrMisaligned if not.
func Aligned(pos flatbuffers.UOffsetT, alignment int) error {
	if int(pos)%alignment != 0 {
		return xerrors.Errorf("position %d not aligned to %d: %w", pos, alignment, ErrMisaligned)
	}
	return nil
}
