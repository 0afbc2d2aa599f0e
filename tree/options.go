// SPDX-License-Identifier: MIT
// Package: lvltree/tree
//
// options.go — functional options for CreateTree and Plan.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Shape options only RECORD values; range checks happen in CreateTree/Plan
//     so that bad shapes surface as configuration errors, not panics.
//   • Options taking programmer-supplied collaborators (loggers) or pure
//     bounds (max nodes) PANIC on meaningless inputs.
//   • No hidden globals; everything flows through config.

package tree

import "log/slog"

// Option customizes tree construction by mutating a config before any node
// is created.
// Complexity: applying N options costs O(N) time.
type Option func(*config)

// WithUniform selects the uniform shape: every node above the deepest level
// has exactly branchingFactor children, and the tree has height levels below
// the root. Requires height ≥ MinHeight and branchingFactor ≥ MinBranchingFactor
// (checked at build time). Mutually exclusive with WithLevelCounts.
// Complexity: O(1).
func WithUniform(height, branchingFactor int) Option {
	return func(c *config) {
		c.uniformSet = true
		c.height, c.branching = height, branchingFactor
	}
}

// WithLevelCounts selects the irregular shape: counts[i] is the total node
// count at level i+1. An empty list means a root-only tree. Each count must be
// ≥ MinLevelCount (checked at build time). The slice is copied, so later
// mutation by the caller has no effect. Mutually exclusive with WithUniform.
// Complexity: O(len(counts)).
func WithLevelCounts(counts ...int) Option {
	own := make([]int, len(counts))
	copy(own, counts)
	return func(c *config) {
		c.countsSet = true
		c.levelCounts = own
	}
}

// WithMaxNodes bounds the total number of nodes (root included) a shape may
// describe. Unbounded (0) disables the check. Panics on negative n.
// Complexity: O(1).
func WithMaxNodes(n int) Option {
	if n < 0 {
		panic("tree: WithMaxNodes(n<0)")
	}
	return func(c *config) {
		c.maxNodes = n
	}
}

// WithLogger routes debug-level construction progress to l.
// Panics on nil; omit the option to keep the default discard logger.
// Complexity: O(1).
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("tree: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}
