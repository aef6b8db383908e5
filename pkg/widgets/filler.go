package widgets

import (
	"github.com/go-loom/loom/pkg/draw"
	"github.com/go-loom/loom/pkg/event"
	"github.com/go-loom/loom/pkg/geom"
	"github.com/go-loom/loom/pkg/layout"
	"github.com/go-loom/loom/pkg/theme"
	"github.com/go-loom/loom/pkg/widget"
)

// Filler is an invisible widget that absorbs surplus space in a row or
// column according to its stretch priority.
type Filler struct {
	widget.Core
	stretch layout.Stretch
}

// NewFiller creates a filler with the given stretch priority.
func NewFiller(stretch layout.Stretch) *Filler {
	return &Filler{stretch: stretch}
}

func (f *Filler) Len() int { return 0 }

func (f *Filler) Child(i int) widget.Widget { return nil }

func (f *Filler) Walk(fn func(widget.Widget)) { fn(f) }

func (f *Filler) SizeRules(sh theme.SizeHandle, axis layout.AxisInfo) layout.SizeRules {
	return layout.Flexible(0, 0, f.stretch)
}

func (f *Filler) SetRect(sh theme.SizeHandle, rect geom.Rect) {
	f.SetCoreRect(rect)
}

func (f *Filler) Draw(dh draw.Handle, states widget.StateQuery) {}

func (f *Filler) Handle(mgr *event.Manager, addr event.Address, ev event.Event) event.Response[event.NoMsg] {
	return event.Unhandled[event.NoMsg](ev)
}
