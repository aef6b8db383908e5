package widgets

import (
	"github.com/go-loom/loom/pkg/draw"
	"github.com/go-loom/loom/pkg/event"
	"github.com/go-loom/loom/pkg/geom"
	"github.com/go-loom/loom/pkg/layout"
	"github.com/go-loom/loom/pkg/theme"
	"github.com/go-loom/loom/pkg/widget"
)

// CheckBox is a two-state toggle. Every toggle reports the new state to
// the parent.
type CheckBox struct {
	widget.Core
	checked bool
}

// NewCheckBox creates a check box with the given initial state.
func NewCheckBox(checked bool) *CheckBox {
	return &CheckBox{checked: checked}
}

// Checked returns the current state.
func (c *CheckBox) Checked() bool { return c.checked }

// SetChecked sets the state without reporting a message.
func (c *CheckBox) SetChecked(checked bool) { c.checked = checked }

func (c *CheckBox) Len() int { return 0 }

func (c *CheckBox) Child(i int) widget.Widget { return nil }

func (c *CheckBox) Walk(f func(widget.Widget)) { f(c) }

func (c *CheckBox) SizeRules(sh theme.SizeHandle, axis layout.AxisInfo) layout.SizeRules {
	return layout.Fixed(sh.LineHeight() + 2*sh.Margin())
}

func (c *CheckBox) SetRect(sh theme.SizeHandle, rect geom.Rect) {
	c.SetCoreRect(rect)
}

func (c *CheckBox) Draw(dh draw.Handle, states widget.StateQuery) {
	dh.CheckBox(c.Rect(), c.checked, states.HighlightState(c.ID()))
}

func (c *CheckBox) toggle(mgr *event.Manager) event.Response[bool] {
	c.checked = !c.checked
	mgr.Redraw(c.ID())
	return event.Msg(c.checked)
}

func (c *CheckBox) Handle(mgr *event.Manager, addr event.Address, ev event.Event) event.Response[bool] {
	switch e := ev.(type) {
	case event.PressStart:
		mgr.RequestPressGrab(e.Source, c, e.Coord)
		mgr.SetFocus(c.ID())
		return event.None[bool]()
	case event.PressMove:
		return event.None[bool]()
	case event.PressEnd:
		mgr.Redraw(c.ID())
		if c.Rect().Contains(e.Coord) {
			return c.toggle(mgr)
		}
		return event.None[bool]()
	case event.Activate:
		return c.toggle(mgr)
	default:
		return event.HandleGeneric[bool](mgr, c, ev)
	}
}
