// Package testkit provides an isolated widget-testing harness: a
// recording draw handle instead of a real backend, and a Tester that
// drives the same layout and dispatch cycle a backend would.
package testkit

import (
	"github.com/go-loom/loom/pkg/draw"
	"github.com/go-loom/loom/pkg/geom"
)

// Op is one recorded draw call.
type Op struct {
	// Kind is the Handle method name: "rect", "frame", "button",
	// "checkbox", "text" or "scrollbar".
	Kind      string
	Rect      geom.Rect
	Pos       geom.Coord
	Color     draw.Color
	Highlight draw.Highlight
	Checked   bool
	Text      string
	Dir       geom.Axis
	HandleLen int
	HandlePos int
}

// RecordingHandle is a draw.Handle that records every call in order.
type RecordingHandle struct {
	Ops []Op
}

// Reset drops all recorded operations.
func (r *RecordingHandle) Reset() {
	r.Ops = r.Ops[:0]
}

// OpsOfKind returns the recorded operations with the given kind.
func (r *RecordingHandle) OpsOfKind(kind string) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

func (r *RecordingHandle) Rect(rect geom.Rect, color draw.Color) {
	r.Ops = append(r.Ops, Op{Kind: "rect", Rect: rect, Color: color})
}

func (r *RecordingHandle) Frame(rect geom.Rect) {
	r.Ops = append(r.Ops, Op{Kind: "frame", Rect: rect})
}

func (r *RecordingHandle) Button(rect geom.Rect, highlight draw.Highlight) {
	r.Ops = append(r.Ops, Op{Kind: "button", Rect: rect, Highlight: highlight})
}

func (r *RecordingHandle) CheckBox(rect geom.Rect, checked bool, highlight draw.Highlight) {
	r.Ops = append(r.Ops, Op{Kind: "checkbox", Rect: rect, Checked: checked, Highlight: highlight})
}

func (r *RecordingHandle) Text(pos geom.Coord, text string) {
	r.Ops = append(r.Ops, Op{Kind: "text", Pos: pos, Text: text})
}

func (r *RecordingHandle) ScrollBar(rect geom.Rect, dir geom.Axis, handleLen, handlePos int, highlight draw.Highlight) {
	r.Ops = append(r.Ops, Op{
		Kind:      "scrollbar",
		Rect:      rect,
		Dir:       dir,
		HandleLen: handleLen,
		HandlePos: handlePos,
		Highlight: highlight,
	})
}
