// Package event provides the typed event and response model and the
// per-window interaction state machine (the Manager).
//
// Events are routed by widget id: an event captured at the window level
// carries an Address, and containers descend toward the target using
// the id-containment test from the widget package instead of searching
// the whole tree. A handler returns a Response: consumed, a typed
// message for its parent, or unhandled (re-offered to each ancestor's
// generic fallback on the way up).
package event

import (
	"fmt"

	"github.com/go-loom/loom/pkg/geom"
)

// PressSourceKind distinguishes classes of contact points.
type PressSourceKind uint8

const (
	// SourceMouse identifies a mouse button by index.
	SourceMouse PressSourceKind = iota
	// SourceTouch identifies a touch contact by its system id.
	SourceTouch
)

// PressSource identifies one distinct contact point: a specific mouse
// button or a specific touch. Grabs bind to a PressSource, so concurrent
// gestures from different sources never interfere.
type PressSource struct {
	Kind  PressSourceKind
	Index int64
}

// MouseButton returns the press source for a mouse button (0 = primary).
func MouseButton(button int) PressSource {
	return PressSource{Kind: SourceMouse, Index: int64(button)}
}

// Touch returns the press source for a touch contact.
func Touch(id int64) PressSource {
	return PressSource{Kind: SourceTouch, Index: id}
}

// String returns a human-readable representation of the press source.
func (s PressSource) String() string {
	if s.Kind == SourceTouch {
		return fmt.Sprintf("touch(%d)", s.Index)
	}
	return fmt.Sprintf("mouse(%d)", s.Index)
}

// Event is the typed payload delivered to a widget handler. It is a
// closed set: the variants below are the only implementations.
type Event interface {
	isEvent()
}

// PressStart reports a new contact: a mouse button pressed or a touch
// beginning. Handlers may request a grab for the source to receive the
// rest of the gesture regardless of pointer position.
type PressStart struct {
	Source PressSource
	Coord  geom.Coord
}

// PressMove reports contact motion. Delta is the motion since the
// previous event from the same source.
type PressMove struct {
	Source PressSource
	Coord  geom.Coord
	Delta  geom.Coord
}

// PressEnd reports the contact lifting. Any grab for the source is
// released unconditionally after delivery.
type PressEnd struct {
	Source PressSource
	Coord  geom.Coord
}

// Key reports a character or named key delivered to the focus widget.
type Key struct {
	Rune rune
	Name string
}

// Activate is the control event asking the focus widget to trigger its
// primary action (Enter or Space on a button, for example).
type Activate struct{}

// FocusGained informs a widget it has become the keyboard focus.
type FocusGained struct{}

// FocusLost informs a widget it is no longer the keyboard focus.
type FocusLost struct{}

func (PressStart) isEvent()  {}
func (PressMove) isEvent()   {}
func (PressEnd) isEvent()    {}
func (Key) isEvent()         {}
func (Activate) isEvent()    {}
func (FocusGained) isEvent() {}
func (FocusLost) isEvent()   {}
