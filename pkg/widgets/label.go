// Package widgets provides the built-in widget set: static text and
// filler, buttons and check boxes, frames, rows and columns, and scroll
// bars. Every widget embeds widget.Core and implements event.Handler
// for its message type; inert widgets use event.NoMsg.
package widgets

import (
	"github.com/go-loom/loom/pkg/draw"
	"github.com/go-loom/loom/pkg/event"
	"github.com/go-loom/loom/pkg/geom"
	"github.com/go-loom/loom/pkg/layout"
	"github.com/go-loom/loom/pkg/theme"
	"github.com/go-loom/loom/pkg/widget"
)

// Label is a static, single-run text widget. It consumes no events;
// everything it receives rises to its parent.
type Label struct {
	widget.Core
	text string
}

// NewLabel creates a label showing the given text.
func NewLabel(text string) *Label {
	return &Label{text: text}
}

// Text returns the displayed text.
func (l *Label) Text() string { return l.text }

// SetText replaces the displayed text. The caller must request a
// resize for the new bound to take effect.
func (l *Label) SetText(text string) { l.text = text }

func (l *Label) Len() int { return 0 }

func (l *Label) Child(i int) widget.Widget { return nil }

func (l *Label) Walk(f func(widget.Widget)) { f(l) }

func (l *Label) SizeRules(sh theme.SizeHandle, axis layout.AxisInfo) layout.SizeRules {
	return sh.TextBound(l.text, axis)
}

func (l *Label) SetRect(sh theme.SizeHandle, rect geom.Rect) {
	l.SetCoreRect(rect)
}

func (l *Label) Draw(dh draw.Handle, states widget.StateQuery) {
	dh.Text(l.Rect().Pos, l.text)
}

// Handle pushes every event back up; the nearest ancestor's generic
// handling decides what to do with it.
func (l *Label) Handle(mgr *event.Manager, addr event.Address, ev event.Event) event.Response[event.NoMsg] {
	return event.Unhandled[event.NoMsg](ev)
}
