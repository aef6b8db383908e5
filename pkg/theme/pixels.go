package theme

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/go-loom/loom/pkg/layout"
)

// Pixels is a SizeHandle for pixel-addressed backends. Text metrics come
// from a font.Face in 26.6 fixed point and are rounded up to whole
// pixels; widget metrics scale with the device pixel ratio.
type Pixels struct {
	face    font.Face
	scale   float64
	metrics Metrics
}

// Metrics holds the unscaled widget metrics of a pixel theme.
type Metrics struct {
	ScrollBarThickness int `yaml:"scrollbar_thickness"`
	ScrollBarMinHandle int `yaml:"scrollbar_min_handle"`
	ScrollBarMinLength int `yaml:"scrollbar_min_length"`
	FrameThickness     int `yaml:"frame_thickness"`
	ButtonMargin       int `yaml:"button_margin"`
}

// DefaultMetrics returns the built-in widget metrics at scale 1.
func DefaultMetrics() Metrics {
	return Metrics{
		ScrollBarThickness: 8,
		ScrollBarMinHandle: 12,
		ScrollBarMinLength: 33,
		FrameThickness:     2,
		ButtonMargin:       4,
	}
}

// NewPixels creates a pixel theme with the given font face and device
// pixel ratio. A nil face falls back to the builtin 7x13 bitmap face; a
// non-positive scale falls back to 1.
func NewPixels(face font.Face, scale float64) *Pixels {
	if face == nil {
		face = basicfont.Face7x13
	}
	if scale <= 0 {
		scale = 1
	}
	return &Pixels{face: face, scale: scale, metrics: DefaultMetrics()}
}

// SetMetrics replaces the unscaled widget metrics, e.g. from a loaded
// configuration.
func (p *Pixels) SetMetrics(m Metrics) {
	p.metrics = m
}

func (p *Pixels) px(n int) int {
	return int(float64(n)*p.scale + 0.5)
}

// ScrollBar returns scaled scroll bar metrics.
func (p *Pixels) ScrollBar() (thickness, minHandleLen, minLen int) {
	return p.px(p.metrics.ScrollBarThickness), p.px(p.metrics.ScrollBarMinHandle), p.px(p.metrics.ScrollBarMinLength)
}

// Frame returns the scaled frame thickness.
func (p *Pixels) Frame() int {
	return p.px(p.metrics.FrameThickness)
}

// Margin returns the scaled button content margin.
func (p *Pixels) Margin() int {
	return p.px(p.metrics.ButtonMargin)
}

// LineHeight returns the face's line height in whole pixels.
func (p *Pixels) LineHeight() int {
	return p.face.Metrics().Height.Ceil()
}

// TextBound measures a text run with the theme's face. Width is the
// advance of the run rounded up; height is one line. Text does not
// stretch horizontally by default but reports its ideal as both min and
// ideal, matching single-line label behavior.
func (p *Pixels) TextBound(text string, axis layout.AxisInfo) layout.SizeRules {
	if axis.Horizontal() {
		return layout.Fixed(font.MeasureString(p.face, text).Ceil())
	}
	return layout.Fixed(p.LineHeight())
}
