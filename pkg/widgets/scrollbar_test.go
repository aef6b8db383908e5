package widgets

import (
	"testing"

	"github.com/go-loom/loom/pkg/event"
	"github.com/go-loom/loom/pkg/geom"
	"github.com/go-loom/loom/pkg/layout"
	"github.com/go-loom/loom/pkg/theme"
	"github.com/go-loom/loom/pkg/widget"
)

// layoutSolo mounts a single widget at the given rect, running the full
// two-phase contract so cached rules are in place.
func layoutSolo(w widget.Widget, rect geom.Rect) {
	sh := theme.Cells{}
	widget.AssignIDs(w, 1)
	w.SizeRules(sh, layout.AxisInfo{Axis: geom.Horizontal})
	w.SizeRules(sh, layout.AxisInfo{Axis: geom.Vertical, FixedOther: true, OtherLen: rect.Size.Width})
	w.SetRect(sh, rect)
}

func TestScrollBarHandleDrag(t *testing.T) {
	bar := NewScrollBar(geom.Horizontal)
	layoutSolo(bar, geom.RectFromXYWH(0, 0, 100, 1))
	bar.SetLengths(100, 20)

	if bar.MaxValue() != 80 {
		t.Fatalf("MaxValue() = %d, want 80", bar.MaxValue())
	}
	if bar.handleLen != 20 {
		t.Fatalf("handleLen = %d, want 20", bar.handleLen)
	}

	mgr := event.NewManager()
	src := event.MouseButton(0)

	r := bar.Handle(mgr, event.AddrCoord(geom.Coord{X: 10}), event.PressStart{Source: src, Coord: geom.Coord{X: 10}})
	if !r.IsNone() {
		t.Fatalf("press on handle: got %#v, want None", r)
	}
	if id, ok := mgr.PressGrab(src); !ok || id != bar.ID() {
		t.Fatalf("grab holder = (%d, %v), want (%d, true)", id, ok, bar.ID())
	}

	r = bar.Handle(mgr, event.AddrID(bar.ID()), event.PressMove{Source: src, Coord: geom.Coord{X: 50}, Delta: geom.Coord{X: 40}})
	v, ok := r.Message()
	if !ok || v != 40 {
		t.Fatalf("drag to 50: got (%d, %v), want (40, true)", v, ok)
	}
	if bar.Value() != 40 {
		t.Fatalf("Value() = %d, want 40", bar.Value())
	}

	r = bar.Handle(mgr, event.AddrID(bar.ID()), event.PressEnd{Source: src, Coord: geom.Coord{X: 50}})
	if !r.IsNone() {
		t.Fatalf("release: got %#v, want None", r)
	}
	mgr.ReleaseGrab(src)
	if _, ok := mgr.PressGrab(src); ok {
		t.Fatal("grab still held after release")
	}
}

func TestScrollBarTrackJump(t *testing.T) {
	bar := NewScrollBar(geom.Horizontal)
	layoutSolo(bar, geom.RectFromXYWH(0, 0, 100, 1))
	bar.SetLengths(100, 20)

	mgr := event.NewManager()
	src := event.MouseButton(0)

	// Press the track at 90: the handle centres there, so its start
	// moves to 80 and the value follows.
	r := bar.Handle(mgr, event.AddrCoord(geom.Coord{X: 90}), event.PressStart{Source: src, Coord: geom.Coord{X: 90}})
	v, ok := r.Message()
	if !ok || v != 80 {
		t.Fatalf("track press: got (%d, %v), want (80, true)", v, ok)
	}
}

func TestScrollBarDegenerate(t *testing.T) {
	bar := NewScrollBar(geom.Vertical)
	layoutSolo(bar, geom.RectFromXYWH(0, 0, 1, 40))

	// Content fits: the handle fills the track and the value pins at 0.
	bar.SetLengths(30, 50)
	if bar.MaxValue() != 0 {
		t.Fatalf("MaxValue() = %d, want 0", bar.MaxValue())
	}
	if bar.handleLen != 40 {
		t.Fatalf("handleLen = %d, want full track 40", bar.handleLen)
	}
	if bar.SetValue(10) {
		t.Fatal("SetValue(10) reported a change with MaxValue 0")
	}

	// Huge content: the handle clamps at the theme minimum.
	bar.SetLengths(4000, 20)
	if bar.handleLen != 1 {
		t.Fatalf("handleLen = %d, want minimum 1", bar.handleLen)
	}
}

func TestScrollBarSetValueClamps(t *testing.T) {
	bar := NewScrollBar(geom.Horizontal)
	layoutSolo(bar, geom.RectFromXYWH(0, 0, 100, 1))
	bar.SetLengths(200, 50)

	if !bar.SetValue(9999) {
		t.Fatal("SetValue(9999) reported no change")
	}
	if bar.Value() != bar.MaxValue() {
		t.Fatalf("Value() = %d, want clamp to %d", bar.Value(), bar.MaxValue())
	}
	if !bar.SetValue(-5) {
		t.Fatal("SetValue(-5) reported no change")
	}
	if bar.Value() != 0 {
		t.Fatalf("Value() = %d, want clamp to 0", bar.Value())
	}
}
