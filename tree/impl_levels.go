// SPDX-License-Identifier: MIT
// Package: lvltree/tree
//
// impl_levels.go — breadth-first, level-by-level construction.
//
// Contract:
//   • Root first: createNode(RootLevel, none); no SetParent for the root.
//   • Level L is fully created and linked before level L+1 begins.
//   • Each child is created, then SetParent(parent), then queued on its
//     parent's pending list (parent chosen by parentIndex).
//   • After a level, every parent of that level gets SetChildren exactly once,
//     including parents that received no child (empty, non-nil slice).
//   • The deepest level (or the lone root) gets SetChildren(empty) at the end.
//   • The next level's parents are the pending lists concatenated in parent
//     order.
//
// Complexity:
//   • Time:  O(Total) factory calls and link operations.
//   • Space: O(widest level) for the current parent slice and pending lists.

package tree

import (
	"fmt"
	"log/slog"
)

// buildLevels runs the construction for already validated level counts.
func buildLevels[N Node[N]](createNode NodeFactory[N], counts []int, total int, logger *slog.Logger) (N, error) {
	var none N

	log := logger.With("method", MethodCreateTree)
	log.Debug("building tree", "levels", len(counts), "total", total)

	root, err := spawn(createNode, RootLevel, none)
	if err != nil {
		return none, err
	}

	parents := []N{root}
	for level := 1; level <= len(counts); level++ {
		if parents, err = growLevel(createNode, level, counts[level-1], parents); err != nil {
			return none, err
		}
		log.Debug("level built", "level", level, "nodes", len(parents))
	}

	// Nodes of the deepest level were never parents inside the loop.
	for _, leaf := range parents {
		leaf.SetChildren([]N{})
	}

	return root, nil
}

// growLevel creates the n nodes of one level below parents and finalizes the
// parents' child lists. It returns the new level in parent order.
func growLevel[N Node[N]](createNode NodeFactory[N], level, n int, parents []N) ([]N, error) {
	p := len(parents)

	pending := make([][]N, p)
	for c := 0; c < n; c++ {
		j := parentIndex(c, n, p)
		child, err := spawn(createNode, level, parents[j])
		if err != nil {
			return nil, err
		}
		child.SetParent(parents[j])
		pending[j] = append(pending[j], child)
	}

	next := make([]N, 0, n)
	for j, parent := range parents {
		if pending[j] == nil {
			pending[j] = []N{}
		}
		parent.SetChildren(pending[j])
		next = append(next, pending[j]...)
	}

	return next, nil
}

// spawn invokes the factory once and checks its result.
func spawn[N Node[N]](createNode NodeFactory[N], level int, parent N) (N, error) {
	var none N

	node, err := createNode(level, parent)
	if err != nil {
		return none, fmt.Errorf("%s: level %d: %w: %w", MethodCreateTree, level, ErrNodeFactory, err)
	}
	if isNilNode(node) {
		return none, fmt.Errorf("%s: level %d: %w", MethodCreateTree, level, ErrNilNode)
	}

	return node, nil
}
