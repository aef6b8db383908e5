package widget

import (
	"testing"

	"github.com/go-loom/loom/pkg/draw"
	"github.com/go-loom/loom/pkg/geom"
	"github.com/go-loom/loom/pkg/layout"
	"github.com/go-loom/loom/pkg/theme"
)

// Mock widgets for tree-walk scenarios.

type mockLeaf struct {
	Core
}

func (m *mockLeaf) Len() int { return 0 }
func (m *mockLeaf) Child(i int) Widget { return nil }
func (m *mockLeaf) Walk(f func(Widget)) { f(m) }
func (m *mockLeaf) Draw(draw.Handle, StateQuery) {}

func (m *mockLeaf) SizeRules(theme.SizeHandle, layout.AxisInfo) layout.SizeRules {
	return layout.Fixed(1)
}

func (m *mockLeaf) SetRect(sh theme.SizeHandle, rect geom.Rect) {
	m.SetCoreRect(rect)
}

type mockBranch struct {
	Core
	children []Widget
}

func (m *mockBranch) Len() int { return len(m.children) }

func (m *mockBranch) Child(i int) Widget {
	if i < 0 || i >= len(m.children) {
		return nil
	}
	return m.children[i]
}

func (m *mockBranch) Walk(f func(Widget)) { WalkChildren(m, f) }
func (m *mockBranch) Draw(draw.Handle, StateQuery) {}

func (m *mockBranch) SizeRules(theme.SizeHandle, layout.AxisInfo) layout.SizeRules {
	return layout.Fixed(1)
}

func (m *mockBranch) SetRect(sh theme.SizeHandle, rect geom.Rect) {
	m.SetCoreRect(rect)
}

// buildTree returns root -> [branch -> [leaf, leaf], leaf].
func buildTree() (*mockBranch, *mockBranch, []*mockLeaf) {
	leaves := []*mockLeaf{{}, {}, {}}
	inner := &mockBranch{children: []Widget{leaves[0], leaves[1]}}
	root := &mockBranch{children: []Widget{inner, leaves[2]}}
	return root, inner, leaves
}

func TestAssignIDs_PostOrder(t *testing.T) {
	root, inner, leaves := buildTree()
	next := AssignIDs(root, 1)

	// Post-order: leaf0=1, leaf1=2, inner=3, leaf2=4, root=5.
	wantIDs := []ID{1, 2, 4}
	for i, leaf := range leaves {
		if leaf.ID() != wantIDs[i] {
			t.Errorf("leaf %d id = %d, want %d", i, leaf.ID(), wantIDs[i])
		}
	}
	if inner.ID() != 3 {
		t.Errorf("inner id = %d, want 3", inner.ID())
	}
	if root.ID() != 5 {
		t.Errorf("root id = %d, want 5", root.ID())
	}
	if next != 6 {
		t.Errorf("next id = %d, want 6", next)
	}
}

// Every widget's id must be the maximum of its subtree, and a subtree
// membership test must hold for every descendant.
func TestAssignIDs_ContainmentInvariant(t *testing.T) {
	root, _, _ := buildTree()
	AssignIDs(root, 1)

	var check func(w Widget)
	check = func(w Widget) {
		w.Walk(func(d Widget) {
			if !w.WidgetCore().Contains(d.WidgetCore().ID()) {
				t.Errorf("widget %d should contain descendant %d", w.WidgetCore().ID(), d.WidgetCore().ID())
			}
			if d.WidgetCore().ID() > w.WidgetCore().ID() {
				t.Errorf("descendant id %d exceeds subtree root id %d", d.WidgetCore().ID(), w.WidgetCore().ID())
			}
		})
		for i := 0; i < w.Len(); i++ {
			check(w.Child(i))
		}
	}
	check(root)
}

func TestAssignIDs_SiblingOrdering(t *testing.T) {
	root, inner, leaves := buildTree()
	AssignIDs(root, 1)

	// Later sibling subtrees start above earlier siblings' ids.
	if leaves[2].Core.first <= inner.ID() {
		t.Errorf("later sibling first id %d should exceed earlier sibling id %d", leaves[2].Core.first, inner.ID())
	}
	// Siblings never contain each other.
	if inner.Contains(leaves[2].ID()) || leaves[2].Contains(inner.ID()) {
		t.Error("sibling subtrees must be disjoint")
	}
}

func TestAssignIDs_ReassignmentMovesIDs(t *testing.T) {
	root, _, leaves := buildTree()
	AssignIDs(root, 1)
	before := leaves[2].ID()

	// Remove the inner branch; a fresh walk reassigns everything.
	root.children = root.children[1:]
	AssignIDs(root, 1)
	if leaves[2].ID() == before {
		t.Errorf("id %d unchanged after tree mutation and rewalk", before)
	}
	if root.ID() != 2 {
		t.Errorf("root id = %d, want 2 after shrink", root.ID())
	}
}

func TestFind(t *testing.T) {
	root, inner, leaves := buildTree()
	AssignIDs(root, 1)

	if got := Find(root, leaves[1].ID()); got != Widget(leaves[1]) {
		t.Errorf("Find(leaf1) = %v", got)
	}
	if got := Find(root, root.ID()); got != Widget(root) {
		t.Errorf("Find(root) = %v", got)
	}
	if got := Find(inner, leaves[2].ID()); got != nil {
		t.Errorf("Find outside subtree = %v, want nil", got)
	}
	if got := Find(root, 999); got != nil {
		t.Errorf("Find(stale) = %v, want nil", got)
	}
}

func TestWalk_VisitsDescendantsThenSelf(t *testing.T) {
	root, _, _ := buildTree()
	AssignIDs(root, 1)

	var order []ID
	root.Walk(func(w Widget) {
		order = append(order, w.WidgetCore().ID())
	})
	// Walk order equals id order by construction.
	for i, id := range order {
		if id != ID(i+1) {
			t.Fatalf("walk order %v, want ids in ascending order", order)
		}
	}
	if len(order) != 5 {
		t.Errorf("visited %d widgets, want 5", len(order))
	}
}
