package widgets

import (
	"github.com/go-loom/loom/pkg/draw"
	"github.com/go-loom/loom/pkg/event"
	"github.com/go-loom/loom/pkg/geom"
	"github.com/go-loom/loom/pkg/layout"
	"github.com/go-loom/loom/pkg/theme"
	"github.com/go-loom/loom/pkg/widget"
)

// TextButton is a push button with a text face. It reports its message
// when activated: a press started on the button and released inside its
// rectangle, or an Activate event while focused.
//
// A press grab keeps the gesture bound to the button even when the
// pointer leaves it mid-drag; releasing outside cancels without a
// message.
type TextButton[M any] struct {
	widget.Core
	text    string
	msg     M
	textPos geom.Coord
}

// NewTextButton creates a button reporting msg on activation.
func NewTextButton[M any](text string, msg M) *TextButton[M] {
	return &TextButton[M]{text: text, msg: msg}
}

// Text returns the button face text.
func (b *TextButton[M]) Text() string { return b.text }

func (b *TextButton[M]) Len() int { return 0 }

func (b *TextButton[M]) Child(i int) widget.Widget { return nil }

func (b *TextButton[M]) Walk(f func(widget.Widget)) { f(b) }

func (b *TextButton[M]) SizeRules(sh theme.SizeHandle, axis layout.AxisInfo) layout.SizeRules {
	margin := 2 * sh.Margin()
	var inner layout.SizeRules
	if axis.Horizontal() {
		inner = sh.TextBound(b.text, axis)
	} else {
		inner = layout.Fixed(sh.LineHeight())
	}
	return layout.Flexible(inner.Min()+margin, inner.Ideal()+margin, inner.StretchPriority())
}

func (b *TextButton[M]) SetRect(sh theme.SizeHandle, rect geom.Rect) {
	b.SetCoreRect(rect)
	m := sh.Margin()
	b.textPos = rect.Pos.Add(geom.Coord{X: m, Y: m})
}

func (b *TextButton[M]) Draw(dh draw.Handle, states widget.StateQuery) {
	dh.Button(b.Rect(), states.HighlightState(b.ID()))
	dh.Text(b.textPos, b.text)
}

func (b *TextButton[M]) Handle(mgr *event.Manager, addr event.Address, ev event.Event) event.Response[M] {
	switch e := ev.(type) {
	case event.PressStart:
		mgr.RequestPressGrab(e.Source, b, e.Coord)
		mgr.SetFocus(b.ID())
		return event.None[M]()
	case event.PressMove:
		return event.None[M]()
	case event.PressEnd:
		mgr.Redraw(b.ID())
		if b.Rect().Contains(e.Coord) {
			return event.Msg(b.msg)
		}
		return event.None[M]()
	case event.Activate:
		return event.Msg(b.msg)
	default:
		return event.HandleGeneric[M](mgr, b, ev)
	}
}
