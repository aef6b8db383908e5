package event

import (
	"time"

	"github.com/go-loom/loom/pkg/draw"
	"github.com/go-loom/loom/pkg/errors"
	"github.com/go-loom/loom/pkg/geom"
	"github.com/go-loom/loom/pkg/widget"
)

// Manager is the per-window interaction state machine. It tracks the
// active press grabs (at most one per press source), the keyboard focus
// and the hover widget, and queues the redraws those changes require.
//
// The Manager never draws and never re-enters layout: mutations only
// mark widget ids dirty, and the window flushes the queue once per
// outer loop iteration. One Manager exists per window and is only
// touched from the window's dispatch loop, so no locking is needed.
type Manager struct {
	grabs   []grab
	focus   widget.ID
	hover   widget.ID
	redraws []widget.ID
	resize  bool
	errs    errors.ErrorHandler
}

// grab binds a press source to the widget receiving the rest of its
// gesture. The slice in Manager stays ordered by acquisition, keeping
// iteration deterministic; it is bounded by concurrent contact points.
type grab struct {
	source PressSource
	id     widget.ID
	start  geom.Coord
}

// NewManager creates a Manager reporting anomalies to stderr.
func NewManager() *Manager {
	return &Manager{errs: &errors.LogHandler{}}
}

// SetErrorHandler replaces the anomaly reporter.
func (m *Manager) SetErrorHandler(h errors.ErrorHandler) {
	if h != nil {
		m.errs = h
	}
}

// RequestPressGrab binds the press source to the widget: all further
// PressMove and PressEnd events for the source are routed to it,
// regardless of pointer position. A grab already active for the source
// is replaced; the prior holder receives no further events for it.
func (m *Manager) RequestPressGrab(source PressSource, w widget.Widget, coord geom.Coord) {
	id := w.WidgetCore().ID()
	for i := range m.grabs {
		if m.grabs[i].source == source {
			if m.grabs[i].id != id {
				m.Redraw(m.grabs[i].id)
				m.grabs[i].id = id
				m.grabs[i].start = coord
				m.Redraw(id)
			}
			return
		}
	}
	m.grabs = append(m.grabs, grab{source: source, id: id, start: coord})
	m.Redraw(id)
}

// ReleaseGrab clears the grab for the source, if any. The windowing
// layer also calls this without a matching PressEnd to cancel an
// in-progress gesture.
func (m *Manager) ReleaseGrab(source PressSource) {
	for i := range m.grabs {
		if m.grabs[i].source == source {
			m.Redraw(m.grabs[i].id)
			m.grabs = append(m.grabs[:i], m.grabs[i+1:]...)
			return
		}
	}
}

// CancelGrabs force-releases every active grab, e.g. on window focus
// loss.
func (m *Manager) CancelGrabs() {
	for _, g := range m.grabs {
		m.Redraw(g.id)
	}
	m.grabs = m.grabs[:0]
}

// PressGrab returns the widget holding the grab for the source.
func (m *Manager) PressGrab(source PressSource) (widget.ID, bool) {
	for _, g := range m.grabs {
		if g.source == source {
			return g.id, true
		}
	}
	return 0, false
}

// SetFocus moves the keyboard focus to the widget id, scheduling
// redraws of the old and new focus.
func (m *Manager) SetFocus(id widget.ID) {
	if m.focus == id {
		return
	}
	if m.focus != 0 {
		m.Redraw(m.focus)
	}
	m.focus = id
	if id != 0 {
		m.Redraw(id)
	}
}

// ClearFocus drops the focus if the given widget holds it.
func (m *Manager) ClearFocus(id widget.ID) {
	if m.focus == id {
		m.SetFocus(0)
	}
}

// Focus returns the keyboard focus widget, if any.
func (m *Manager) Focus() (widget.ID, bool) {
	return m.focus, m.focus != 0
}

// SetHover moves the hover highlight to the widget id (0 for none),
// scheduling redraws of both affected widgets.
func (m *Manager) SetHover(id widget.ID) {
	if m.hover == id {
		return
	}
	if m.hover != 0 {
		m.Redraw(m.hover)
	}
	m.hover = id
	if id != 0 {
		m.Redraw(id)
	}
}

// HighlightState answers the widget's interaction visual state. Pure
// query: pressed (grab held) wins over focused, focused over hover.
func (m *Manager) HighlightState(id widget.ID) draw.Highlight {
	for _, g := range m.grabs {
		if g.id == id {
			return draw.HighlightPressed
		}
	}
	if m.focus == id {
		return draw.HighlightFocused
	}
	if m.hover == id {
		return draw.HighlightHover
	}
	return draw.HighlightNone
}

// Redraw marks the widget id dirty. Duplicates are dropped; the window
// flushes the queue once per loop iteration.
func (m *Manager) Redraw(id widget.ID) {
	for _, d := range m.redraws {
		if d == id {
			return
		}
	}
	m.redraws = append(m.redraws, id)
}

// NeedsRedraw reports whether any widget is marked dirty.
func (m *Manager) NeedsRedraw() bool {
	return len(m.redraws) > 0
}

// TakeRedraws returns the dirty ids and clears the queue.
func (m *Manager) TakeRedraws() []widget.ID {
	out := m.redraws
	m.redraws = nil
	return out
}

// RequestResize flags that the widget tree's size rules changed and a
// full two-phase layout pass is needed.
func (m *Manager) RequestResize() {
	m.resize = true
}

// NeedsResize reports whether a layout pass was requested.
func (m *Manager) NeedsResize() bool {
	return m.resize
}

// TakeResize returns and clears the resize flag.
func (m *Manager) TakeResize() bool {
	out := m.resize
	m.resize = false
	return out
}

// ReportRoutingMiss records delivery of an event addressed to a stale
// widget id to its nearest surviving ancestor. Recoverable; the event
// is not lost, just degraded.
func (m *Manager) ReportRoutingMiss(target, ancestor widget.ID) {
	m.errs.HandleRoutingMiss(&errors.RoutingError{
		Target:    uint64(target),
		Ancestor:  uint64(ancestor),
		Timestamp: time.Now(),
	})
}
