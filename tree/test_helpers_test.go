// Package tree_test holds shared fixtures for the tree package tests.
package tree_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// trackedNode is a test Node that counts every call the builder makes on it.
type trackedNode struct {
	id       int
	parent   *trackedNode
	children []*trackedNode

	parentCalls   int
	childrenCalls int
}

func (n *trackedNode) SetParent(parent *trackedNode) {
	n.parent = parent
	n.parentCalls++
}

func (n *trackedNode) SetChildren(children []*trackedNode) {
	n.children = children
	n.childrenCalls++
}

// nodeSource hands out trackedNodes with sequential ids.
type nodeSource struct {
	made int
}

func (s *nodeSource) newNode() *trackedNode {
	s.made++
	return &trackedNode{id: s.made}
}

// collectLevels walks the finished tree breadth-first and returns its nodes
// grouped by level, in child-list order.
func collectLevels(root *trackedNode) [][]*trackedNode {
	var out [][]*trackedNode
	cur := []*trackedNode{root}
	for len(cur) > 0 {
		out = append(out, cur)
		var next []*trackedNode
		for _, n := range cur {
			next = append(next, n.children...)
		}
		cur = next
	}

	return out
}

// levelSizes returns the node count of every level below the root.
func levelSizes(levels [][]*trackedNode) []int {
	sizes := make([]int, 0, len(levels))
	for _, lv := range levels[1:] {
		sizes = append(sizes, len(lv))
	}

	return sizes
}

// childCounts returns the child count of every node in lv, in order.
func childCounts(lv []*trackedNode) []int {
	counts := make([]int, len(lv))
	for i, n := range lv {
		counts[i] = len(n.children)
	}

	return counts
}

// requireWired checks the link invariants on every node of the tree:
// root has no parent and no SetParent call, every node got SetChildren once
// with a non-nil slice, and every child points back to its parent exactly once.
func requireWired(t *testing.T, root *trackedNode) {
	t.Helper()

	require.Nil(t, root.parent, "root must have no parent")
	require.Zero(t, root.parentCalls, "SetParent must not be called on the root")

	for _, lv := range collectLevels(root) {
		for _, n := range lv {
			require.Equal(t, 1, n.childrenCalls, "node %d: SetChildren calls", n.id)
			require.NotNil(t, n.children, "node %d: children must be set, not nil", n.id)
			for _, c := range n.children {
				require.Equal(t, 1, c.parentCalls, "node %d: SetParent calls", c.id)
				require.Same(t, n, c.parent, "node %d: parent link", c.id)
				seen := 0
				for _, sib := range c.parent.children {
					if sib == c {
						seen++
					}
				}
				require.Equal(t, 1, seen, "node %d must appear once in its parent's children", c.id)
			}
		}
	}
}

// requireEven checks the floor/ceil share and parent-0-first properties for
// every level of the tree.
func requireEven(t *testing.T, levels [][]*trackedNode) {
	t.Helper()

	for l := 1; l < len(levels); l++ {
		n, p := len(levels[l]), len(levels[l-1])
		lo, hi := n/p, (n+p-1)/p
		counts := childCounts(levels[l-1])
		for j, got := range counts {
			require.True(t, got == lo || got == hi,
				"level %d parent %d: got %d children, want %d or %d", l, j, got, lo, hi)
		}
		require.Equal(t, hi, counts[0], "level %d: parent 0 must be served first", l)
	}
}
