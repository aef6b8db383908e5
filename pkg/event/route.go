package event

import (
	"github.com/go-loom/loom/pkg/widget"
)

// HandleGeneric is the fallback handling every widget shares for events
// it does not consume itself: focus follows presses, focus
// notifications update the manager, and stray press events for dead
// gestures are dropped. Anything else is pushed back up as Unhandled.
//
// Containers also re-offer a child's Unhandled event here before
// letting it rise further, so default behavior applies at the nearest
// ancestor first.
func HandleGeneric[M any](mgr *Manager, w widget.Widget, ev Event) Response[M] {
	id := w.WidgetCore().ID()
	switch ev.(type) {
	case PressStart:
		mgr.SetFocus(id)
		return None[M]()
	case PressMove, PressEnd:
		// A move or end without a grab holder willing to take it.
		return None[M]()
	case FocusGained:
		mgr.SetFocus(id)
		return None[M]()
	case FocusLost:
		mgr.ClearFocus(id)
		return None[M]()
	default:
		return Unhandled[M](ev)
	}
}

// RouteToChild finds the direct child of w that should receive an event
// with the given address: by id containment for id addresses, by
// rectangle hit test for geometric addresses (later children win, they
// draw on top). It returns the child index or -1 when the address
// resolves to w itself or to no child (a routing miss for stale ids).
func RouteToChild(w widget.Widget, addr Address) int {
	if id, ok := addr.TargetID(); ok {
		if id == w.WidgetCore().ID() {
			return -1
		}
		for i := 0; i < w.Len(); i++ {
			child := w.Child(i)
			if child != nil && child.WidgetCore().Contains(id) {
				return i
			}
		}
		return -1
	}
	coord, _ := addr.TargetCoord()
	for i := w.Len() - 1; i >= 0; i-- {
		child := w.Child(i)
		if child != nil && child.WidgetCore().Rect().Contains(coord) {
			return i
		}
	}
	return -1
}

// AdoptChild post-processes a child's already-adapted response inside a
// container: an Unhandled event is re-offered to the container's
// generic handling before rising further; messages and None pass
// through.
func AdoptChild[M any](mgr *Manager, parent widget.Widget, r Response[M]) Response[M] {
	if ev, ok := r.UnhandledEvent(); ok {
		return HandleGeneric[M](mgr, parent, ev)
	}
	return r
}
