package event

import (
	"github.com/go-loom/loom/pkg/geom"
	"github.com/go-loom/loom/pkg/widget"
)

// Handler is a widget that participates in event routing. Msg is the
// widget's report type; parents holding children with different message
// types adapt them with Adapt or IgnoreMsg.
type Handler[M any] interface {
	widget.Widget
	// Handle processes an event addressed to this widget or one of its
	// descendants. Containers descend toward the target using id
	// containment and adapt the child's response into their own message
	// type.
	Handle(mgr *Manager, addr Address, ev Event) Response[M]
}

// Address is the routing target of a dispatched event: either a
// concrete widget id (grab holders, focus targets) or a coordinate to
// be resolved by hit testing on the way down.
type Address struct {
	id    widget.ID
	coord geom.Coord
	byID  bool
}

// AddrID addresses a specific widget id.
func AddrID(id widget.ID) Address {
	return Address{id: id, byID: true}
}

// AddrCoord addresses whichever widget's rectangle contains the
// coordinate.
func AddrCoord(coord geom.Coord) Address {
	return Address{coord: coord}
}

// TargetID returns the addressed widget id, if the address is by id.
func (a Address) TargetID() (widget.ID, bool) {
	return a.id, a.byID
}

// TargetCoord returns the addressed coordinate, if the address is
// geometric.
func (a Address) TargetCoord() (geom.Coord, bool) {
	if a.byID {
		return geom.Coord{}, false
	}
	return a.coord, true
}

// IsSelf reports whether the address resolves to the given widget
// itself rather than one of its descendants: an id address equal to its
// own id, or any geometric address (the deepest container claiming the
// coordinate handles it).
func (a Address) IsSelf(w widget.Widget) bool {
	if !a.byID {
		return false
	}
	return a.id == w.WidgetCore().ID()
}

type adapted[C, M any] struct {
	Handler[C]
	convert func(C) M
}

func (a adapted[C, M]) Handle(mgr *Manager, addr Address, ev Event) Response[M] {
	return Map(a.Handler.Handle(mgr, addr, ev), a.convert)
}

// Adapt wraps a child handler with an explicit conversion from the
// child's message type to the parent's. This is how heterogeneous
// children live in one container: each child carries its own adaptor.
func Adapt[C, M any](child Handler[C], convert func(C) M) Handler[M] {
	return adapted[C, M]{Handler: child, convert: convert}
}

type ignored[C, M any] struct {
	Handler[C]
}

func (a ignored[C, M]) Handle(mgr *Manager, addr Address, ev Event) Response[M] {
	return DiscardMsg[C, M](a.Handler.Handle(mgr, addr, ev))
}

// IgnoreMsg wraps a child handler whose messages the parent discards.
// Unhandled events still rise.
func IgnoreMsg[C, M any](child Handler[C]) Handler[M] {
	return ignored[C, M]{Handler: child}
}
