package flatbuffers

import "sort"

// KeyedTable is implemented by generated-style accessor types whose schema
// declares a key field, so CreateVectorOfSortedTables can order them without
// knowing the schema itself. CompareKey reads directly out of the arena the
// offsets were written into, the same way Init does.
type KeyedTable interface {
	Rooted
	CompareKey(other KeyedTable) int
}

// CreateVectorOfSortedTables sorts offsets by their referent's key field and
// writes them as a vector of references. offsets are positions-from-end, as
// returned by EndTable, all written against the same Builder's arena before
// this call. newT constructs an empty accessor used only to read keys during
// the sort; it is not retained.
func CreateVectorOfSortedTables[T KeyedTable](b *Builder, offsets []UOffsetT, newT func() T) UOffsetT {
	sort.Sort(sortableOffsets[T]{b: b, offsets: offsets, newT: newT})

	b.StartVector(SizeUOffsetT, len(offsets), SizeUOffsetT)
	for i := len(offsets) - 1; i >= 0; i-- {
		b.PrependUOffsetT(offsets[i])
	}
	return b.EndVector(len(offsets))
}

type sortableOffsets[T KeyedTable] struct {
	b       *Builder
	offsets []UOffsetT
	newT    func() T
}

func (s sortableOffsets[T]) Len() int { return len(s.offsets) }

func (s sortableOffsets[T]) Swap(i, j int) {
	s.offsets[i], s.offsets[j] = s.offsets[j], s.offsets[i]
}

func (s sortableOffsets[T]) Less(i, j int) bool {
	ti, tj := s.newT(), s.newT()
	ti.Init(s.b.Bytes, UOffsetT(len(s.b.Bytes))-s.offsets[i])
	tj.Init(s.b.Bytes, UOffsetT(len(s.b.Bytes))-s.offsets[j])
	return ti.CompareKey(tj) < 0
}
