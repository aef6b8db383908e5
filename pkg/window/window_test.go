package window_test

import (
	"testing"

	"github.com/go-loom/loom/pkg/draw"
	"github.com/go-loom/loom/pkg/event"
	"github.com/go-loom/loom/pkg/geom"
	"github.com/go-loom/loom/pkg/testkit"
	"github.com/go-loom/loom/pkg/widgets"
)

func TestTapReportsButtonMessage(t *testing.T) {
	btn := widgets.NewTextButton("ok", 1)
	root := widgets.NewColumn[int](btn)
	tester := testkit.NewTester[int](root)

	tester.Tap(2, 1)
	if got := tester.TakeMessages(); len(got) != 1 || got[0] != 1 {
		t.Fatalf("messages = %v, want [1]", got)
	}
	if focus, ok := tester.Manager().Focus(); !ok || focus != btn.ID() {
		t.Fatalf("focus = (%d, %v), want button", focus, ok)
	}
	if _, ok := tester.Manager().PressGrab(event.MouseButton(0)); ok {
		t.Fatal("grab survived the release")
	}
}

func TestGrabKeepsGestureOnButton(t *testing.T) {
	btn := widgets.NewTextButton("ok", 1)
	root := widgets.NewColumn[int](btn)
	tester := testkit.NewTester[int](root)

	tester.Press(2, 1)
	tester.MoveTo(300, 300)
	tester.Release(300, 300)

	if got := tester.Messages(); len(got) != 0 {
		t.Fatalf("messages = %v, want none after release outside", got)
	}
	if _, ok := tester.Manager().PressGrab(event.MouseButton(0)); ok {
		t.Fatal("grab survived the release")
	}
}

func TestMotionMovesHover(t *testing.T) {
	btn := widgets.NewTextButton("ok", 1)
	root := widgets.NewColumn[int](btn)
	tester := testkit.NewTester[int](root)

	tester.Hover(2, 1)
	if hl := tester.Manager().HighlightState(btn.ID()); hl != draw.HighlightHover {
		t.Fatalf("highlight = %v, want hover", hl)
	}

	rec := tester.DrawFrame()
	buttons := rec.OpsOfKind("button")
	if len(buttons) != 1 || buttons[0].Highlight != draw.HighlightHover {
		t.Fatalf("button ops = %v, want one hover-highlighted face", buttons)
	}

	tester.Hover(2000, 2000)
	if hl := tester.Manager().HighlightState(btn.ID()); hl != draw.HighlightNone {
		t.Fatalf("highlight = %v, want none after pointer left", hl)
	}
}

func TestRequestResizeRunsRelayout(t *testing.T) {
	left := widgets.NewLabel("a")
	root := widgets.NewRow[event.NoMsg](left)
	tester := testkit.NewTester[event.NoMsg](root)
	tester.DrawFrame()

	root.Push(widgets.NewLabel("b"))
	tester.Manager().RequestResize()
	if !tester.Window().NeedsFrame() {
		t.Fatal("NeedsFrame() = false with a resize pending")
	}

	rec := tester.DrawFrame()
	if got := len(rec.OpsOfKind("text")); got != 2 {
		t.Fatalf("drew %d text runs, want 2 after relayout", got)
	}
	if right := root.Child(1); !root.WidgetCore().Contains(right.WidgetCore().ID()) {
		t.Fatal("pushed child id outside the root's range after relayout")
	}
}

func TestUnfocusedKeyIsDropped(t *testing.T) {
	btn := widgets.NewTextButton("ok", 1)
	root := widgets.NewColumn[int](btn)
	tester := testkit.NewTester[int](root)

	// No focus yet: the key lands on the root and rises out unhandled.
	tester.TypeRune('x')
	if got := tester.Messages(); len(got) != 0 {
		t.Fatalf("messages = %v, want none", got)
	}

	tester.Tap(2, 1)
	tester.TakeMessages()
	tester.TypeRune('x')
	if got := tester.Messages(); len(got) != 0 {
		t.Fatalf("messages = %v, want none for an unbound key", got)
	}
}

func TestResizeKeepsRootCoveringSurface(t *testing.T) {
	root := widgets.NewColumn[event.NoMsg](widgets.NewLabel("a"), widgets.NewFiller(0))
	tester := testkit.NewTesterWithSize[event.NoMsg](root, geom.Size{Width: 10, Height: 4})

	if got := root.Rect(); got != geom.RectFromXYWH(0, 0, 10, 4) {
		t.Fatalf("root rect = %v, want the whole surface", got)
	}

	tester.Window().Resize(geom.Size{Width: 30, Height: 8})
	if got := root.Rect(); got != geom.RectFromXYWH(0, 0, 30, 8) {
		t.Fatalf("root rect = %v after resize, want 30x8", got)
	}
}
