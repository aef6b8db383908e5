package widgets

import (
	"github.com/go-loom/loom/pkg/draw"
	"github.com/go-loom/loom/pkg/event"
	"github.com/go-loom/loom/pkg/geom"
	"github.com/go-loom/loom/pkg/layout"
	"github.com/go-loom/loom/pkg/theme"
	"github.com/go-loom/loom/pkg/widget"
)

// List lays its children out in a row or column. Children with
// different message types are adapted with event.Adapt or
// event.IgnoreMsg before insertion.
//
// The size-rules pass caches each child's demand along the list
// direction; SetRect later splits the allocation with layout.Solve.
// The cache belongs to the most recent SizeRules call, so the two-phase
// contract (rules for both axes, then SetRect) must be respected.
type List[M any] struct {
	widget.Core
	dir      geom.Axis
	children []event.Handler[M]
	rules    []layout.SizeRules
}

// NewList creates a list laying children out along dir.
func NewList[M any](dir geom.Axis, children ...event.Handler[M]) *List[M] {
	return &List[M]{dir: dir, children: children}
}

// NewRow creates a horizontal list.
func NewRow[M any](children ...event.Handler[M]) *List[M] {
	return NewList(geom.Horizontal, children...)
}

// NewColumn creates a vertical list.
func NewColumn[M any](children ...event.Handler[M]) *List[M] {
	return NewList(geom.Vertical, children...)
}

// Direction returns the layout axis.
func (l *List[M]) Direction() geom.Axis { return l.dir }

// Push appends a child. The caller must rerun layout (and id
// assignment) before the child can receive events.
func (l *List[M]) Push(child event.Handler[M]) {
	l.children = append(l.children, child)
}

// Remove detaches and returns the i-th child. Ids assigned before the
// removal become stale.
func (l *List[M]) Remove(i int) event.Handler[M] {
	child := l.children[i]
	l.children = append(l.children[:i], l.children[i+1:]...)
	return child
}

func (l *List[M]) Len() int { return len(l.children) }

func (l *List[M]) Child(i int) widget.Widget {
	if i < 0 || i >= len(l.children) {
		return nil
	}
	return l.children[i]
}

func (l *List[M]) Walk(f func(widget.Widget)) {
	widget.WalkChildren(l, f)
}

func (l *List[M]) SizeRules(sh theme.SizeHandle, axis layout.AxisInfo) layout.SizeRules {
	var combined layout.SizeRules
	if axis.Axis == l.dir {
		if cap(l.rules) < len(l.children) {
			l.rules = make([]layout.SizeRules, len(l.children))
		}
		l.rules = l.rules[:len(l.children)]
		for i, child := range l.children {
			l.rules[i] = child.SizeRules(sh, axis)
			combined = combined.AppendedWith(l.rules[i])
		}
		return combined
	}
	for _, child := range l.children {
		combined = layout.Max(combined, child.SizeRules(sh, axis))
	}
	return combined
}

func (l *List[M]) SetRect(sh theme.SizeHandle, rect geom.Rect) {
	l.SetCoreRect(rect)
	if len(l.children) == 0 {
		return
	}
	lengths := layout.Solve(l.rules, rect.Size.Extract(l.dir))
	pos := rect.Pos
	for i, child := range l.children {
		size := rect.Size.WithExtract(l.dir, lengths[i])
		child.SetRect(sh, geom.Rect{Pos: pos, Size: size})
		if l.dir == geom.Horizontal {
			pos.X = geom.AddSat(pos.X, lengths[i])
		} else {
			pos.Y = geom.AddSat(pos.Y, lengths[i])
		}
	}
}

func (l *List[M]) Draw(dh draw.Handle, states widget.StateQuery) {
	for _, child := range l.children {
		child.Draw(dh, states)
	}
}

func (l *List[M]) Handle(mgr *event.Manager, addr event.Address, ev event.Event) event.Response[M] {
	if i := event.RouteToChild(l, addr); i >= 0 {
		return event.AdoptChild(mgr, l, l.children[i].Handle(mgr, addr, ev))
	}
	if id, ok := addr.TargetID(); ok && id != l.ID() {
		// An id inside our range that no child claims: the target was
		// assigned before a tree mutation. Handle here as the nearest
		// surviving ancestor.
		mgr.ReportRoutingMiss(id, l.ID())
	}
	return event.HandleGeneric[M](mgr, l, ev)
}
