package theme

import (
	"github.com/mattn/go-runewidth"

	"github.com/go-loom/loom/pkg/layout"
)

// Cells is a SizeHandle for terminal backends where every metric is
// measured in character cells. Text width accounts for wide runes.
type Cells struct{}

// ScrollBar returns cell-sized scroll bar metrics: a one-cell track
// with a one-cell minimum handle.
func (Cells) ScrollBar() (thickness, minHandleLen, minLen int) {
	return 1, 1, 3
}

// Frame returns the one-cell frame thickness.
func (Cells) Frame() int { return 1 }

// Margin returns the one-cell button content margin.
func (Cells) Margin() int { return 1 }

// LineHeight returns one cell.
func (Cells) LineHeight() int { return 1 }

// TextBound measures a text run in cells, respecting double-width runes.
func (Cells) TextBound(text string, axis layout.AxisInfo) layout.SizeRules {
	if axis.Horizontal() {
		return layout.Fixed(runewidth.StringWidth(text))
	}
	return layout.Fixed(1)
}
