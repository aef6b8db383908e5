package widgets

import (
	"github.com/go-loom/loom/pkg/draw"
	"github.com/go-loom/loom/pkg/event"
	"github.com/go-loom/loom/pkg/geom"
	"github.com/go-loom/loom/pkg/layout"
	"github.com/go-loom/loom/pkg/theme"
	"github.com/go-loom/loom/pkg/widget"
)

// ScrollBar is a draggable scroll bar along one axis. Its value runs
// from 0 to SubClamp(content, visible); every change reports the new
// value to the parent.
//
// Dragging the handle keeps the grab point fixed under the pointer.
// Pressing the track outside the handle jumps the handle so the press
// lands at its centre, then drags from there.
type ScrollBar struct {
	widget.Core
	dir geom.Axis

	thickness    int
	minHandleLen int
	minLen       int

	content   int
	visible   int
	maxValue  int
	value     int
	handleLen int

	pressOffset int
}

// NewScrollBar creates a scroll bar along the given axis.
func NewScrollBar(dir geom.Axis) *ScrollBar {
	return &ScrollBar{dir: dir}
}

// Direction returns the scroll axis.
func (s *ScrollBar) Direction() geom.Axis { return s.dir }

// Value returns the current scroll offset.
func (s *ScrollBar) Value() int { return s.value }

// MaxValue returns the largest reachable value.
func (s *ScrollBar) MaxValue() int { return s.maxValue }

// SetLengths sets the scrolled content length and the visible page
// length, both measured along the scroll axis. The value is clamped to
// the new range and the handle resized proportionally.
func (s *ScrollBar) SetLengths(content, visible int) {
	if content < 0 {
		content = 0
	}
	if visible < 0 {
		visible = 0
	}
	s.content = content
	s.visible = visible
	s.maxValue = geom.SubClamp(content, visible)
	s.updateHandle()
}

// SetValue sets the scroll offset without reporting a message,
// clamping to the valid range. It returns true when the value changed.
func (s *ScrollBar) SetValue(value int) bool {
	value = min(max(value, 0), s.maxValue)
	if value == s.value {
		return false
	}
	s.value = value
	return true
}

func (s *ScrollBar) trackLen() int {
	return s.Rect().Size.Extract(s.dir)
}

// updateHandle recomputes the handle length from the track, content
// and visible lengths, and re-clamps the value.
func (s *ScrollBar) updateHandle() {
	track := s.trackLen()
	if s.content <= 0 || s.visible >= s.content {
		s.handleLen = track
	} else {
		length := int(int64(s.visible) * int64(track) / int64(s.content))
		s.handleLen = min(max(length, s.minHandleLen), track)
	}
	s.value = min(s.value, s.maxValue)
}

// position returns the handle offset from the track start.
func (s *ScrollBar) position() int {
	free := s.trackLen() - s.handleLen
	if free <= 0 || s.maxValue <= 0 {
		return 0
	}
	return int(int64(s.value) * int64(free) / int64(s.maxValue))
}

// setPosition moves the handle to the given track offset, rounding the
// value half up. It returns true when the value changed.
func (s *ScrollBar) setPosition(pos int) bool {
	free := s.trackLen() - s.handleLen
	if free <= 0 || s.maxValue <= 0 {
		return false
	}
	pos = min(max(pos, 0), free)
	value := int((int64(pos)*int64(s.maxValue) + int64(free)/2) / int64(free))
	return s.SetValue(value)
}

func (s *ScrollBar) Len() int { return 0 }

func (s *ScrollBar) Child(i int) widget.Widget { return nil }

func (s *ScrollBar) Walk(f func(widget.Widget)) { f(s) }

func (s *ScrollBar) SizeRules(sh theme.SizeHandle, axis layout.AxisInfo) layout.SizeRules {
	s.thickness, s.minHandleLen, s.minLen = sh.ScrollBar()
	if axis.Axis == s.dir {
		return layout.Flexible(s.minLen, s.minLen, layout.StretchHigh)
	}
	return layout.Fixed(s.thickness)
}

func (s *ScrollBar) SetRect(sh theme.SizeHandle, rect geom.Rect) {
	s.thickness, s.minHandleLen, s.minLen = sh.ScrollBar()
	s.SetCoreRect(rect)
	s.updateHandle()
}

func (s *ScrollBar) Draw(dh draw.Handle, states widget.StateQuery) {
	dh.ScrollBar(s.Rect(), s.dir, s.handleLen, s.position(), states.HighlightState(s.ID()))
}

func (s *ScrollBar) Handle(mgr *event.Manager, addr event.Address, ev event.Event) event.Response[int] {
	switch e := ev.(type) {
	case event.PressStart:
		mgr.RequestPressGrab(e.Source, s, e.Coord)
		offset := e.Coord.Extract(s.dir) - s.Rect().Pos.Extract(s.dir)
		hp := s.position()
		if offset >= hp && offset < hp+s.handleLen {
			// Drag from the grab point inside the handle.
			s.pressOffset = hp - offset
			return event.None[int]()
		}
		// Track press: centre the handle under the pointer.
		s.pressOffset = -s.handleLen / 2
		if s.setPosition(offset + s.pressOffset) {
			mgr.Redraw(s.ID())
			return event.Msg(s.value)
		}
		return event.None[int]()
	case event.PressMove:
		offset := e.Coord.Extract(s.dir) - s.Rect().Pos.Extract(s.dir)
		if s.setPosition(offset + s.pressOffset) {
			mgr.Redraw(s.ID())
			return event.Msg(s.value)
		}
		return event.None[int]()
	case event.PressEnd:
		mgr.Redraw(s.ID())
		return event.None[int]()
	default:
		return event.HandleGeneric[int](mgr, s, ev)
	}
}
