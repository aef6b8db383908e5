// Package theme provides the metrics and color data consumed by the
// layout and draw passes.
//
// A SizeHandle answers "how big should this widget class be" in concrete
// pixels (or cells); it is the only place widget code learns about DPI,
// fonts, or terminal geometry. Colors describes the palette a backend
// uses to realize the semantic draw operations.
package theme

import (
	"github.com/go-loom/loom/pkg/draw"
	"github.com/go-loom/loom/pkg/layout"
)

// SizeHandle supplies concrete metrics to the size-rules pass.
type SizeHandle interface {
	// ScrollBar returns the bar thickness, the minimum handle length,
	// and the minimum bar length.
	ScrollBar() (thickness, minHandleLen, minLen int)
	// Frame returns the thickness of a decorative frame border.
	Frame() int
	// Margin returns the padding inserted around button-like content.
	Margin() int
	// LineHeight returns the height of one line of text.
	LineHeight() int
	// TextBound returns the layout demand of a text run along the given
	// axis.
	TextBound(text string, axis layout.AxisInfo) layout.SizeRules
}

// Colors is the palette used by backends to realize semantic draw calls.
type Colors struct {
	Background  draw.Color
	Text        draw.Color
	Frame       draw.Color
	ButtonIdle  draw.Color
	ButtonHover draw.Color
	ButtonPress draw.Color
	Track       draw.Color
	Handle      draw.Color
}

// DefaultColors returns the built-in dark palette.
func DefaultColors() Colors {
	return Colors{
		Background:  draw.RGB(0x101828),
		Text:        draw.RGB(0xeceff4),
		Frame:       draw.RGB(0x5e81ac),
		ButtonIdle:  draw.RGB(0x3b4252),
		ButtonHover: draw.RGB(0x434c5e),
		ButtonPress: draw.RGB(0x4c566a),
		Track:       draw.RGB(0x2e3440),
		Handle:      draw.RGB(0x81a1c1),
	}
}

// ButtonColor selects the button face color for a highlight state.
func (c Colors) ButtonColor(hl draw.Highlight) draw.Color {
	switch hl {
	case draw.HighlightPressed:
		return c.ButtonPress
	case draw.HighlightHover, draw.HighlightFocused:
		return c.ButtonHover
	default:
		return c.ButtonIdle
	}
}
