package testkit

import (
	"github.com/go-loom/loom/pkg/event"
	"github.com/go-loom/loom/pkg/geom"
	"github.com/go-loom/loom/pkg/theme"
	"github.com/go-loom/loom/pkg/window"
)

const (
	// DefaultTestWidth is the default surface width, in cells.
	DefaultTestWidth = 80
	// DefaultTestHeight is the default surface height, in cells.
	DefaultTestHeight = 24
)

// Tester mounts a widget tree on a cell-metric window and lets tests
// inject input and inspect the outcome without a real backend.
type Tester[M any] struct {
	win      *window.Window[M]
	handle   *RecordingHandle
	messages []M
}

// NewTester mounts the root at the default surface size.
func NewTester[M any](root event.Handler[M]) *Tester[M] {
	return NewTesterWithSize(root, geom.Size{Width: DefaultTestWidth, Height: DefaultTestHeight})
}

// NewTesterWithSize mounts the root at the given surface size.
func NewTesterWithSize[M any](root event.Handler[M], size geom.Size) *Tester[M] {
	t := &Tester[M]{handle: &RecordingHandle{}}
	t.win = window.New(root, theme.Cells{}, func(m M) {
		t.messages = append(t.messages, m)
	})
	t.win.Resize(size)
	return t
}

// Window returns the underlying window.
func (t *Tester[M]) Window() *window.Window[M] { return t.win }

// Manager returns the window's event manager.
func (t *Tester[M]) Manager() *event.Manager { return t.win.Manager() }

// Messages returns every message the root has reported so far.
func (t *Tester[M]) Messages() []M { return t.messages }

// TakeMessages returns the collected messages and clears the buffer.
func (t *Tester[M]) TakeMessages() []M {
	out := t.messages
	t.messages = nil
	return out
}

// Press injects a primary mouse button press at the coordinate.
func (t *Tester[M]) Press(x, y int) {
	t.win.Dispatch(event.PressStart{Source: event.MouseButton(0), Coord: geom.Coord{X: x, Y: y}})
}

// MoveTo injects pressed motion to the coordinate. With no active grab
// it degrades to plain hover motion.
func (t *Tester[M]) MoveTo(x, y int) {
	t.win.Dispatch(event.PressMove{Source: event.MouseButton(0), Coord: geom.Coord{X: x, Y: y}})
}

// Release injects a primary mouse button release at the coordinate.
func (t *Tester[M]) Release(x, y int) {
	t.win.Dispatch(event.PressEnd{Source: event.MouseButton(0), Coord: geom.Coord{X: x, Y: y}})
}

// Tap presses and releases at the coordinate.
func (t *Tester[M]) Tap(x, y int) {
	t.Press(x, y)
	t.Release(x, y)
}

// Hover injects unpressed pointer motion.
func (t *Tester[M]) Hover(x, y int) {
	t.win.Motion(geom.Coord{X: x, Y: y})
}

// TypeRune injects a character key to the focus widget.
func (t *Tester[M]) TypeRune(r rune) {
	t.win.Dispatch(event.Key{Rune: r})
}

// Activate injects the primary-action event to the focus widget.
func (t *Tester[M]) Activate() {
	t.win.Dispatch(event.Activate{})
}

// DrawFrame draws the tree into a fresh recording and returns it.
func (t *Tester[M]) DrawFrame() *RecordingHandle {
	t.handle.Reset()
	t.win.DrawFrame(t.handle)
	return t.handle
}
