package widgets

import (
	"testing"

	"github.com/go-loom/loom/pkg/errors"
	"github.com/go-loom/loom/pkg/event"
	"github.com/go-loom/loom/pkg/geom"
	"github.com/go-loom/loom/pkg/layout"
	"github.com/go-loom/loom/pkg/theme"
	"github.com/go-loom/loom/pkg/widget"
)

// recordingErrors collects reported anomalies instead of logging them.
type recordingErrors struct {
	errs   []*errors.LoomError
	misses []*errors.RoutingError
}

func (r *recordingErrors) HandleError(err *errors.LoomError) {
	r.errs = append(r.errs, err)
}

func (r *recordingErrors) HandleRoutingMiss(err *errors.RoutingError) {
	r.misses = append(r.misses, err)
}

func TestRowLayout(t *testing.T) {
	left := NewLabel("ab")
	fill := NewFiller(layout.StretchLow)
	right := NewLabel("cdef")
	row := NewRow[event.NoMsg](left, fill, right)
	layoutSolo(row, geom.RectFromXYWH(0, 0, 10, 1))

	want := []geom.Rect{
		geom.RectFromXYWH(0, 0, 2, 1),
		geom.RectFromXYWH(2, 0, 4, 1),
		geom.RectFromXYWH(6, 0, 4, 1),
	}
	got := []geom.Rect{left.Rect(), fill.Rect(), right.Rect()}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("child %d rect = %v, want %v", i, got[i], want[i])
		}
	}

	// The layout pass is a pure function of rules and rect.
	row.SetRect(theme.Cells{}, geom.RectFromXYWH(0, 0, 10, 1))
	if fill.Rect() != want[1] {
		t.Errorf("repeated SetRect moved filler to %v", fill.Rect())
	}
}

func TestColumnLayoutAllocatesEveryRow(t *testing.T) {
	col := NewColumn[event.NoMsg](NewLabel("a"), NewLabel("b"), NewLabel("c"))
	layoutSolo(col, geom.RectFromXYWH(0, 0, 5, 9))

	total := 0
	for i := 0; i < col.Len(); i++ {
		r := col.Child(i).WidgetCore().Rect()
		if r.Size.Width != 5 {
			t.Errorf("child %d width = %d, want 5", i, r.Size.Width)
		}
		total += r.Size.Height
	}
	if total != 9 {
		t.Errorf("allocated heights sum to %d, want 9", total)
	}
}

func TestUnhandledEventRisesToAncestor(t *testing.T) {
	label := NewLabel("inert")
	col := NewColumn[event.NoMsg](label)
	layoutSolo(col, geom.RectFromXYWH(0, 0, 10, 1))

	mgr := event.NewManager()

	// A key event addressed to the label is consumed by nobody: the
	// label pushes it up, the column's generic handling has no use for
	// it either, so it leaves the tree as Unhandled.
	r := col.Handle(mgr, event.AddrID(label.ID()), event.Key{Rune: 'x'})
	ev, ok := r.UnhandledEvent()
	if !ok {
		t.Fatalf("got %#v, want Unhandled", r)
	}
	if k, ok := ev.(event.Key); !ok || k.Rune != 'x' {
		t.Fatalf("unhandled event = %#v, want the original Key", ev)
	}

	// A press on the label falls through to the column's generic
	// handling, which takes focus at the nearest ancestor.
	r = col.Handle(mgr, event.AddrCoord(geom.Coord{X: 1}),
		event.PressStart{Source: event.MouseButton(0), Coord: geom.Coord{X: 1}})
	if !r.IsNone() {
		t.Fatalf("press response = %#v, want None", r)
	}
	if focus, ok := mgr.Focus(); !ok || focus != col.ID() {
		t.Fatalf("focus = (%d, %v), want column id %d", focus, ok, col.ID())
	}
}

func TestStaleIDFallsBackToAncestor(t *testing.T) {
	a := NewLabel("a")
	b := NewLabel("b")
	row := NewRow[event.NoMsg](a, b)
	layoutSolo(row, geom.RectFromXYWH(0, 0, 4, 1))

	stale := b.ID()
	row.Remove(1)

	rec := &recordingErrors{}
	mgr := event.NewManager()
	mgr.SetErrorHandler(rec)

	// The stale id is still inside the row's range but no child claims
	// it: the row reports the miss and handles the event itself.
	r := row.Handle(mgr, event.AddrID(stale), event.FocusGained{})
	if !r.IsNone() {
		t.Fatalf("got %#v, want None", r)
	}
	if focus, ok := mgr.Focus(); !ok || focus != row.ID() {
		t.Fatalf("focus = (%d, %v), want row id %d", focus, ok, row.ID())
	}
	if len(rec.misses) != 1 {
		t.Fatalf("recorded %d routing misses, want 1", len(rec.misses))
	}
	miss := rec.misses[0]
	if miss.Target != uint64(stale) || miss.Ancestor != uint64(row.ID()) {
		t.Fatalf("miss = {Target: %d, Ancestor: %d}, want {%d, %d}",
			miss.Target, miss.Ancestor, stale, row.ID())
	}
}

func TestAdaptedChildrenReportParentType(t *testing.T) {
	type action int
	inc := NewTextButton("+", 1)
	dec := NewTextButton("-", -1)
	row := NewRow[action](
		event.Adapt(inc, func(d int) action { return action(d) }),
		event.Adapt(dec, func(d int) action { return action(d) }),
		event.IgnoreMsg[bool, action](NewCheckBox(false)),
	)
	layoutSolo(row, geom.RectFromXYWH(0, 0, 20, 3))

	mgr := event.NewManager()
	r := row.Handle(mgr, event.AddrID(dec.ID()), event.Activate{})
	got, ok := r.Message()
	if !ok || got != action(-1) {
		t.Fatalf("activate '-': got (%d, %v), want (-1, true)", got, ok)
	}

	// The check box's own message is discarded by IgnoreMsg.
	box := row.Child(2).WidgetCore()
	r = row.Handle(mgr, event.AddrID(box.ID()), event.Activate{})
	if !r.IsNone() {
		t.Fatalf("check box toggle: got %#v, want None", r)
	}
}

// Ids stay the routing source of truth after relayout grows the tree.
func TestPushThenReassign(t *testing.T) {
	row := NewRow[event.NoMsg](NewLabel("a"))
	layoutSolo(row, geom.RectFromXYWH(0, 0, 4, 1))
	oldRowID := row.ID()

	row.Push(NewLabel("b"))
	next := widget.AssignIDs(row, 1)
	if next != widget.ID(4) {
		t.Fatalf("next id = %d, want 4", next)
	}
	if row.ID() == oldRowID {
		t.Fatal("row id unchanged after the tree grew")
	}
	if found := widget.Find(row, row.Child(1).WidgetCore().ID()); found != row.Child(1) {
		t.Fatal("Find did not resolve the pushed child")
	}
}
