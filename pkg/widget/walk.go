package widget

import "github.com/go-loom/loom/pkg/geom"

// AssignIDs walks the tree rooted at w, assigning ids in post order:
// each child's subtree receives ids first, left to right, and w itself
// takes the next id after all descendants. It returns the next unused
// id. Call with the root and a positive starting id before every layout
// pass that may have changed the tree shape.
func AssignIDs(w Widget, next ID) ID {
	first := next
	for i := 0; i < w.Len(); i++ {
		if child := w.Child(i); child != nil {
			next = AssignIDs(child, next)
		}
	}
	core := w.WidgetCore()
	core.id = next
	core.first = first
	return next + 1
}

// Find returns the widget with the given id within the subtree rooted
// at w, or nil when the id is stale (assigned before a tree mutation)
// or outside the subtree.
func Find(w Widget, id ID) Widget {
	if !w.WidgetCore().Contains(id) {
		return nil
	}
	if w.WidgetCore().ID() == id {
		return w
	}
	for i := 0; i < w.Len(); i++ {
		child := w.Child(i)
		if child == nil {
			continue
		}
		if child.WidgetCore().Contains(id) {
			return Find(child, id)
		}
	}
	return nil
}

// FindAt returns the deepest widget whose rectangle contains the
// coordinate, preferring later siblings (drawn on top), or nil when the
// coordinate falls outside w. It is used to resolve hover targets.
func FindAt(w Widget, coord geom.Coord) Widget {
	if !w.WidgetCore().Rect().Contains(coord) {
		return nil
	}
	for i := w.Len() - 1; i >= 0; i-- {
		child := w.Child(i)
		if child == nil {
			continue
		}
		if hit := FindAt(child, coord); hit != nil {
			return hit
		}
	}
	return w
}

// WalkChildren runs f over every direct and indirect descendant and then
// w itself, in id-assignment order. It is a convenience for widgets
// whose Walk implementation is the default recursion.
func WalkChildren(w Widget, f func(Widget)) {
	for i := 0; i < w.Len(); i++ {
		if child := w.Child(i); child != nil {
			child.Walk(f)
		}
	}
	f(w)
}
