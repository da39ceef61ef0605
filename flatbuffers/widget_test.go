package flatbuffers

// This file hand-writes the accessor code a schema compiler would generate
// for a small "Widget" table, used across this package's tests the way a
// compiled .fbs schema would be used in a real project:
//
//	table Widget {
//	  name:string;
//	  count:int32;
//	  pos:Vec2;
//	  tags:[string];
//	}
//	struct Vec2 { x:int32; y:int32; }

const (
	widgetNameSlot  = 0
	widgetCountSlot = 1
	widgetPosSlot   = 2
	widgetTagsSlot  = 3
)

type Vec2 struct {
	s Struct
}

func (v *Vec2) X() int32 { return v.s.GetInt32(0) }
func (v *Vec2) Y() int32 { return v.s.GetInt32(4) }

// CreateVec2 writes a Vec2 inline at the builder's current position. It must
// be called while a table is under construction, immediately before the
// AddPos call that references it.
func CreateVec2(b *Builder, x, y int32) UOffsetT {
	b.Prep(4, 8)
	b.PrependInt32(y)
	b.PrependInt32(x)
	return b.Offset()
}

type Widget struct {
	tab Table
}

func (w *Widget) Init(buf []byte, i UOffsetT) {
	w.tab.Bytes = buf
	w.tab.Pos = i
}

func (w *Widget) Name() string {
	off := w.tab.Offset(widgetNameSlot)
	if off == 0 {
		return ""
	}
	return w.tab.String(w.tab.Indirect(w.tab.Pos + UOffsetT(off)))
}

func (w *Widget) Count() int32 {
	return w.tab.GetInt32Slot(widgetCountSlot, 0)
}

func (w *Widget) Pos() *Vec2 {
	s := w.tab.GetStructSlot(widgetPosSlot)
	if s == nil {
		return nil
	}
	return &Vec2{s: *s}
}

func (w *Widget) TagsLength() int {
	off := w.tab.Offset(widgetTagsSlot)
	if off == 0 {
		return 0
	}
	return w.tab.VectorLen(UOffsetT(off))
}

func (w *Widget) Tags(j int) string {
	off := w.tab.Offset(widgetTagsSlot)
	if off == 0 {
		return ""
	}
	base := w.tab.Vector(UOffsetT(off))
	addr := w.tab.Indirect(base + UOffsetT(j*SizeUOffsetT))
	return w.tab.String(addr)
}

// CompareKey orders widgets by name, making Widget usable with
// CreateVectorOfSortedTables.
func (w *Widget) CompareKey(other KeyedTable) int {
	o := other.(*Widget)
	a, b := w.Name(), o.Name()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func WidgetStart(b *Builder) { b.StartTable(4) }

func WidgetAddName(b *Builder, name UOffsetT) { b.PrependUOffsetTSlot(widgetNameSlot, name, 0) }

func WidgetAddCount(b *Builder, count int32) { b.PrependInt32Slot(widgetCountSlot, count, 0) }

func WidgetAddPos(b *Builder, pos UOffsetT) { b.PrependStructSlot(widgetPosSlot, pos, 0) }

func WidgetAddTags(b *Builder, tags UOffsetT) { b.PrependUOffsetTSlot(widgetTagsSlot, tags, 0) }

func WidgetEnd(b *Builder) UOffsetT { return b.EndTable() }

// createWidget builds one full Widget and returns its offset, for tests
// that don't care about the individual Add calls.
func createWidget(b *Builder, name string, count int32, x, y int32, tags []string) UOffsetT {
	nameOff := b.CreateString(name)

	tagOffs := make([]UOffsetT, len(tags))
	for i, t := range tags {
		tagOffs[i] = b.CreateString(t)
	}
	b.StartVector(SizeUOffsetT, len(tagOffs), SizeUOffsetT)
	for i := len(tagOffs) - 1; i >= 0; i-- {
		b.PrependUOffsetT(tagOffs[i])
	}
	tagsVec := b.EndVector(len(tagOffs))

	WidgetStart(b)
	WidgetAddTags(b, tagsVec)
	posOff := CreateVec2(b, x, y)
	WidgetAddPos(b, posOff)
	WidgetAddCount(b, count)
	WidgetAddName(b, nameOff)
	return WidgetEnd(b)
}

func GetRootAsWidget(buf []byte, offset UOffsetT) *Widget {
	return GetRootAs(buf, offset, func() *Widget { return &Widget{} })
}
