// Package widget defines the tree capability every Loom widget
// implements, and the walk-order identifier scheme used to route events
// without searching the whole tree.
//
// Identifiers are assigned by a post-order walk: a widget's children
// receive ids first, left to right, and the widget itself takes the next
// id after all of its descendants. A widget's id is therefore the
// maximum id in its subtree, and "does id x belong to the subtree rooted
// at w" reduces to two integer comparisons against w's first-descendant
// id and own id.
//
// Ids are recomputed whenever the tree is walked for layout; they are
// not stable across layout passes if the tree changes shape. Code that
// caches an ID across a resize must treat routing misses as expected.
package widget

import (
	"fmt"

	"github.com/go-loom/loom/pkg/draw"
	"github.com/go-loom/loom/pkg/geom"
	"github.com/go-loom/loom/pkg/layout"
	"github.com/go-loom/loom/pkg/theme"
)

// ID identifies a widget within one window's tree. The zero value never
// identifies a widget.
type ID uint64

// Core is the per-widget state shared by every node: its assigned id,
// the first id in its subtree, and its allocated screen rectangle.
// Widgets embed Core and the toolkit mutates it only during the
// id-assignment walk and the layout pass.
type Core struct {
	id    ID
	first ID
	rect  geom.Rect
}

// ID returns the widget's assigned id, the maximum id in its subtree.
func (c *Core) ID() ID { return c.id }

// Rect returns the widget's allocated screen rectangle.
func (c *Core) Rect() geom.Rect { return c.rect }

// SetCoreRect stores the allocated rectangle. Widgets call this from
// their SetRect implementation before laying out children.
func (c *Core) SetCoreRect(rect geom.Rect) { c.rect = rect }

// Contains reports whether an id belongs to this widget's subtree
// (including the widget itself).
func (c *Core) Contains(id ID) bool {
	return id >= c.first && id <= c.id
}

// WidgetCore returns the embedded core; it makes any struct embedding
// Core satisfy the core accessor of the Widget interface.
func (c *Core) WidgetCore() *Core { return c }

// String returns a human-readable representation of the core.
func (c *Core) String() string {
	return fmt.Sprintf("Core{id: %d, first: %d, rect: %v}", c.id, c.first, c.rect)
}

// Widget is the capability set every node in the tree implements.
//
// The draw phase receives the interaction states through a StateQuery so
// that widgets can render hover, focus and press feedback without
// depending on the event machinery.
type Widget interface {
	// WidgetCore returns the widget's shared per-node state.
	WidgetCore() *Core
	// Len returns the number of direct children.
	Len() int
	// Child returns the i-th direct child, or nil when out of range.
	Child(i int) Widget
	// Walk visits every descendant and then the widget itself
	// (post-order), mirroring the id-assignment order.
	Walk(f func(Widget))
	// SizeRules reports the widget's layout demand along one axis,
	// consulting the theme for content-derived metrics. Container
	// widgets must cache whatever they need to later split an
	// allocation among children.
	SizeRules(sh theme.SizeHandle, axis layout.AxisInfo) layout.SizeRules
	// SetRect assigns the allocated rectangle and recursively positions
	// children.
	SetRect(sh theme.SizeHandle, rect geom.Rect)
	// Draw renders the widget onto the handle using the current
	// interaction states.
	Draw(dh draw.Handle, states StateQuery)
}

// StateQuery answers highlight-state queries during the draw phase. It
// is implemented by the event manager.
type StateQuery interface {
	HighlightState(id ID) draw.Highlight
}
