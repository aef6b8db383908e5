// Package draw defines the renderer capability consumed by widgets.
//
// Widgets describe what to draw in semantic terms (a button face, a
// frame, a scroll bar) and pass the interaction highlight for the
// element being drawn; the backend decides concrete colors and pixels
// and may batch operations internally. The core only calls a Handle
// during the draw phase, never from event handlers.
package draw

import (
	"fmt"

	"github.com/go-loom/loom/pkg/geom"
)

// Highlight is a widget's current interaction visual state.
// HighlightNone is the zero value.
type Highlight int

const (
	HighlightNone Highlight = iota
	HighlightHover
	HighlightFocused
	HighlightPressed
)

// String returns a human-readable representation of the highlight state.
func (h Highlight) String() string {
	switch h {
	case HighlightNone:
		return "none"
	case HighlightHover:
		return "hover"
	case HighlightFocused:
		return "focused"
	case HighlightPressed:
		return "pressed"
	default:
		return fmt.Sprintf("Highlight(%d)", int(h))
	}
}

// Color is a 32-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// RGB constructs an opaque color from a packed 0xRRGGBB value.
func RGB(hex uint32) Color {
	return Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 0xff,
	}
}

// Handle is the drawing surface handed to widgets during the draw phase.
//
// Implementations batch internally; nothing is visible until the owning
// backend flushes the frame.
type Handle interface {
	// Rect fills the rectangle with a solid color.
	Rect(rect geom.Rect, color Color)
	// Frame draws a decorative border just inside the rectangle, in the
	// theme's frame color.
	Frame(rect geom.Rect)
	// Button draws a button face reflecting the highlight state.
	Button(rect geom.Rect, highlight Highlight)
	// CheckBox draws a check box with its current value.
	CheckBox(rect geom.Rect, checked bool, highlight Highlight)
	// Text draws a single run of text at the given position.
	Text(pos geom.Coord, text string)
	// ScrollBar draws a scroll bar track and handle. The handle starts
	// handlePos pixels from the track start and is handleLen long,
	// measured along dir.
	ScrollBar(rect geom.Rect, dir geom.Axis, handleLen, handlePos int, highlight Highlight)
}
