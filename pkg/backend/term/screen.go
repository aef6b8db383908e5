package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/go-loom/loom/pkg/draw"
	"github.com/go-loom/loom/pkg/geom"
	"github.com/go-loom/loom/pkg/theme"
)

// surface realizes the semantic draw operations on a tcell screen,
// using the theme palette for colors. All metrics are character cells.
type surface struct {
	screen tcell.Screen
	colors theme.Colors
}

func toTcell(c draw.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (s *surface) fill(rect geom.Rect, bg draw.Color) {
	style := tcell.StyleDefault.Background(toTcell(bg))
	for y := rect.Pos.Y; y < rect.Bottom(); y++ {
		for x := rect.Pos.X; x < rect.Right(); x++ {
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (s *surface) Rect(rect geom.Rect, color draw.Color) {
	s.fill(rect, color)
}

func (s *surface) Frame(rect geom.Rect) {
	if rect.Size.Width < 2 || rect.Size.Height < 2 {
		return
	}
	style := tcell.StyleDefault.
		Foreground(toTcell(s.colors.Frame)).
		Background(toTcell(s.colors.Background))
	left, right := rect.Pos.X, rect.Right()-1
	top, bottom := rect.Pos.Y, rect.Bottom()-1
	for x := left + 1; x < right; x++ {
		s.screen.SetContent(x, top, tcell.RuneHLine, nil, style)
		s.screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		s.screen.SetContent(left, y, tcell.RuneVLine, nil, style)
		s.screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	s.screen.SetContent(left, top, tcell.RuneULCorner, nil, style)
	s.screen.SetContent(right, top, tcell.RuneURCorner, nil, style)
	s.screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, style)
	s.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

func (s *surface) Button(rect geom.Rect, highlight draw.Highlight) {
	s.fill(rect, s.colors.ButtonColor(highlight))
}

func (s *surface) CheckBox(rect geom.Rect, checked bool, highlight draw.Highlight) {
	s.fill(rect, s.colors.ButtonColor(highlight))
	mark := "[ ]"
	if checked {
		mark = "[x]"
	}
	pos := rect.Pos
	if rect.Size.Height > 1 {
		pos.Y += rect.Size.Height / 2
	}
	s.Text(pos, mark)
}

// Text preserves whatever background is already on screen, so runs
// drawn over a button face inherit its color.
func (s *surface) Text(pos geom.Coord, text string) {
	fg := toTcell(s.colors.Text)
	x := pos.X
	for _, r := range text {
		_, _, prev, _ := s.screen.GetContent(x, pos.Y)
		_, bg, _ := prev.Decompose()
		s.screen.SetContent(x, pos.Y, r, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		x += runewidth.RuneWidth(r)
	}
}

func (s *surface) ScrollBar(rect geom.Rect, dir geom.Axis, handleLen, handlePos int, highlight draw.Highlight) {
	s.fill(rect, s.colors.Track)
	handle := rect
	if dir == geom.Horizontal {
		handle.Pos.X += handlePos
		handle.Size.Width = handleLen
	} else {
		handle.Pos.Y += handlePos
		handle.Size.Height = handleLen
	}
	color := s.colors.Handle
	if highlight != draw.HighlightNone {
		color = s.colors.ButtonHover
	}
	s.fill(handle.Intersect(rect), color)
}
