package widgets

import (
	"github.com/go-loom/loom/pkg/draw"
	"github.com/go-loom/loom/pkg/event"
	"github.com/go-loom/loom/pkg/geom"
	"github.com/go-loom/loom/pkg/layout"
	"github.com/go-loom/loom/pkg/theme"
	"github.com/go-loom/loom/pkg/widget"
)

// Frame wraps a single child in a decorative border. The child's
// messages pass through unchanged.
type Frame[M any] struct {
	widget.Core
	child event.Handler[M]
}

// NewFrame creates a frame around the given child.
func NewFrame[M any](child event.Handler[M]) *Frame[M] {
	return &Frame[M]{child: child}
}

func (f *Frame[M]) Len() int { return 1 }

func (f *Frame[M]) Child(i int) widget.Widget {
	if i != 0 {
		return nil
	}
	return f.child
}

func (f *Frame[M]) Walk(fn func(widget.Widget)) {
	widget.WalkChildren(f, fn)
}

func (f *Frame[M]) SizeRules(sh theme.SizeHandle, axis layout.AxisInfo) layout.SizeRules {
	border := 2 * sh.Frame()
	if axis.FixedOther {
		axis.OtherLen = geom.SubClamp(axis.OtherLen, border)
	}
	inner := f.child.SizeRules(sh, axis)
	return layout.Flexible(inner.Min()+border, inner.Ideal()+border, inner.StretchPriority())
}

func (f *Frame[M]) SetRect(sh theme.SizeHandle, rect geom.Rect) {
	f.SetCoreRect(rect)
	f.child.SetRect(sh, rect.Shrink(sh.Frame()))
}

func (f *Frame[M]) Draw(dh draw.Handle, states widget.StateQuery) {
	dh.Frame(f.Rect())
	f.child.Draw(dh, states)
}

func (f *Frame[M]) Handle(mgr *event.Manager, addr event.Address, ev event.Event) event.Response[M] {
	if event.RouteToChild(f, addr) == 0 {
		return event.AdoptChild(mgr, f, f.child.Handle(mgr, addr, ev))
	}
	return event.HandleGeneric[M](mgr, f, ev)
}
