// SPDX-License-Identifier: MIT
// Package: lvltree/tree
//
// api.go - thin public entry-points for the tree package.
//
// Design contract (strict):
//   - One orchestrator: CreateTree(newNode, createNode, opts...). Validates the
//     whole configuration, then builds level by level (impl_levels.go).
//   - Functional options (Option) resolve into an immutable config (no global state).
//   - Determinism: same options and a deterministic factory ⇒ isomorphic trees.
//   - Safety: never panic at runtime; return sentinel errors.

package tree

import (
	"fmt"
	"reflect"
)

// Node is the capability a tree node must provide to the builder. The builder
// only ever writes these two relations; reading them back is up to the node
// implementation (see BasicNode).
//
// SetChildren is called exactly once per node with its finalized child list
// (an empty, non-nil slice for leaves). SetParent is called exactly once per
// non-root node and never for the root.
type Node[N any] interface {
	SetParent(parent N)
	SetChildren(children []N)
}

// NodeFactory creates the node for the given level. For the root, level is
// RootLevel and parent is the zero value of N. A factory MUST NOT wire the
// parent relation itself; the builder does that after the call.
//
// Factories are invoked sequentially in level order, root first, and each
// call completes before the next one starts.
type NodeFactory[N any] func(level int, parent N) (N, error)

// DefaultFactory returns the factory used when CreateTree receives a nil
// factory: every node comes from the zero-argument constructor newNode.
// Complexity: O(1) per node plus the cost of newNode.
func DefaultFactory[N any](newNode func() N) NodeFactory[N] {
	return func(int, N) (N, error) {
		return newNode(), nil
	}
}

// CreateTree builds a tree of the configured shape and returns its root.
//
// Inputs:
//   - newNode:    zero-argument constructor identifying the node type. Required.
//   - createNode: optional factory; nil means DefaultFactory(newNode).
//   - opts:       exactly one of WithUniform / WithLevelCounts, plus optional
//     WithMaxNodes / WithLogger.
//
// Behavior highlights:
//   - All configuration is validated before the root is created, so a
//     configuration error never invokes the factory.
//   - Level L holds exactly levelCounts[L-1] nodes, distributed over the
//     nodes of level L-1 as described in distribute.go.
//   - A root-only tree still gets SetChildren with an empty slice.
//
// Errors:
//   - ErrNoNodeType, ErrNoShape, ErrConflictingShape, ErrInvalidShape,
//     ErrTooManyNodes: configuration errors (IsConfigError reports true).
//   - ErrNodeFactory wrapping the factory's error, or ErrNilNode. The
//     partially built tree is abandoned; the zero N is returned.
//
// Complexity: O(Total) time, O(widest level) extra space.
func CreateTree[N Node[N]](newNode func() N, createNode NodeFactory[N], opts ...Option) (N, error) {
	var none N

	if newNode == nil {
		return none, fmt.Errorf("%s: nil node constructor: %w", MethodCreateTree, ErrNoNodeType)
	}

	cfg := newConfig(opts...)
	counts, total, err := resolveShape(MethodCreateTree, cfg)
	if err != nil {
		return none, err
	}

	if createNode == nil {
		createNode = DefaultFactory(newNode)
	}

	return buildLevels(createNode, counts, total, cfg.logger)
}

// Uniform is a thin helper: CreateTree with the default factory and
// WithUniform(height, branchingFactor) prepended to opts.
func Uniform[N Node[N]](newNode func() N, height, branchingFactor int, opts ...Option) (N, error) {
	all := make([]Option, 0, len(opts)+1)
	all = append(all, WithUniform(height, branchingFactor))
	all = append(all, opts...)

	return CreateTree(newNode, nil, all...)
}

// Irregular is a thin helper: CreateTree with the default factory and
// WithLevelCounts(counts...) prepended to opts.
func Irregular[N Node[N]](newNode func() N, counts []int, opts ...Option) (N, error) {
	all := make([]Option, 0, len(opts)+1)
	all = append(all, WithLevelCounts(counts...))
	all = append(all, opts...)

	return CreateTree(newNode, nil, all...)
}

// isNilNode reports whether a factory result is a nil pointer, interface,
// or other nil-able value that cannot carry the Node methods safely.
func isNilNode(n any) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}
