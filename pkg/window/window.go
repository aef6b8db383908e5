// Package window ties a widget tree, an event manager and a theme
// together into one displayable surface and drives the two-phase layout
// and dispatch cycle on behalf of a backend.
//
// Backends are not generic over the root's message type: they talk to
// the window through the Loop interface and the window converts typed
// messages into the callback given at construction.
package window

import (
	"github.com/go-loom/loom/pkg/draw"
	"github.com/go-loom/loom/pkg/event"
	"github.com/go-loom/loom/pkg/geom"
	"github.com/go-loom/loom/pkg/layout"
	"github.com/go-loom/loom/pkg/theme"
	"github.com/go-loom/loom/pkg/widget"
)

// Loop is the surface a backend drives: raw input in, frames out.
type Loop interface {
	// Resize reassigns widget ids and runs the full two-phase layout
	// for the new surface size.
	Resize(size geom.Size)
	// Dispatch routes one event into the tree: press events toward the
	// grab holder or the pressed coordinate, everything else toward
	// the focus widget.
	Dispatch(ev event.Event)
	// Motion updates the hover widget for pointer motion without any
	// pressed button.
	Motion(coord geom.Coord)
	// CancelGrabs force-releases all press grabs, e.g. when the
	// surface loses focus.
	CancelGrabs()
	// NeedsFrame reports whether any state change requires drawing.
	NeedsFrame() bool
	// DrawFrame runs any pending relayout and draws the whole tree.
	DrawFrame(dh draw.Handle)
}

// Window owns one widget tree and its interaction state. Messages the
// root reports bubble out through the onMessage callback.
type Window[M any] struct {
	root      event.Handler[M]
	mgr       *event.Manager
	sh        theme.SizeHandle
	onMessage func(M)
	size      geom.Size
}

// New creates a window over the given root. onMessage may be nil when
// the root's messages carry no information (event.NoMsg roots).
func New[M any](root event.Handler[M], sh theme.SizeHandle, onMessage func(M)) *Window[M] {
	return &Window[M]{
		root:      root,
		mgr:       event.NewManager(),
		sh:        sh,
		onMessage: onMessage,
	}
}

// Manager returns the window's interaction state machine.
func (w *Window[M]) Manager() *event.Manager { return w.mgr }

// Root returns the root widget.
func (w *Window[M]) Root() event.Handler[M] { return w.root }

// Resize runs the layout protocol for the new surface size: ids are
// reassigned over the current tree shape, the horizontal axis is
// measured first, then the vertical axis against the decided width,
// and finally rectangles are assigned top down.
func (w *Window[M]) Resize(size geom.Size) {
	w.size = size
	widget.AssignIDs(w.root, 1)
	w.root.SizeRules(w.sh, layout.AxisInfo{Axis: geom.Horizontal})
	w.root.SizeRules(w.sh, layout.AxisInfo{
		Axis:       geom.Vertical,
		FixedOther: true,
		OtherLen:   size.Width,
	})
	w.root.SetRect(w.sh, geom.Rect{Size: size})
	w.mgr.Redraw(w.root.WidgetCore().ID())
}

// Dispatch routes one event into the tree and surfaces any resulting
// message. An event that leaves the tree Unhandled is dropped here;
// the window is the outermost ancestor.
func (w *Window[M]) Dispatch(ev event.Event) {
	var addr event.Address
	switch e := ev.(type) {
	case event.PressStart:
		if id, ok := w.mgr.PressGrab(e.Source); ok {
			addr = event.AddrID(id)
		} else {
			addr = event.AddrCoord(e.Coord)
		}
	case event.PressMove:
		id, ok := w.mgr.PressGrab(e.Source)
		if !ok {
			w.Motion(e.Coord)
			return
		}
		addr = event.AddrID(id)
	case event.PressEnd:
		id, ok := w.mgr.PressGrab(e.Source)
		if !ok {
			return
		}
		addr = event.AddrID(id)
	default:
		if focus, ok := w.mgr.Focus(); ok {
			addr = event.AddrID(focus)
		} else {
			addr = event.AddrID(w.root.WidgetCore().ID())
		}
	}

	r := w.root.Handle(w.mgr, addr, ev)
	if m, ok := r.Message(); ok && w.onMessage != nil {
		w.onMessage(m)
	}

	// The grab ends with the gesture, whether or not the holder
	// consumed the release.
	if e, ok := ev.(event.PressEnd); ok {
		w.mgr.ReleaseGrab(e.Source)
	}
}

// Motion moves the hover highlight to the deepest widget under the
// pointer.
func (w *Window[M]) Motion(coord geom.Coord) {
	if hit := widget.FindAt(w.root, coord); hit != nil {
		w.mgr.SetHover(hit.WidgetCore().ID())
	} else {
		w.mgr.SetHover(0)
	}
}

// CancelGrabs force-releases every press grab.
func (w *Window[M]) CancelGrabs() {
	w.mgr.CancelGrabs()
}

// NeedsFrame reports whether a relayout or redraw is pending.
func (w *Window[M]) NeedsFrame() bool {
	return w.mgr.NeedsRedraw() || w.mgr.NeedsResize()
}

// DrawFrame runs a pending relayout, drains the redraw queue and draws
// the whole tree. Backends present the result when it returns.
func (w *Window[M]) DrawFrame(dh draw.Handle) {
	if w.mgr.TakeResize() {
		w.Resize(w.size)
	}
	w.mgr.TakeRedraws()
	w.root.Draw(dh, w.mgr)
}
