// SPDX-License-Identifier: MIT
// Package: lvltree/tree
//
// distribute.go — even distribution of a level's nodes over its parents.
//
// Contract:
//   • Child c (0-based) of a level with n nodes over p parents is assigned to
//     parent floor(c*p/n). This is the exact integer form of
//     floor((i-1)/n * p) for the 1-based child index i.
//   • The assigned parent index is non-decreasing in c, so concatenating the
//     per-parent child lists in parent order reproduces creation order.
//   • Every parent receives floor(n/p) or ceil(n/p) children; parent 0 always
//     receives ceil(n/p).
//
// Complexity:
//   • parentIndex: O(1) using 128-bit intermediate math (no overflow).
//   • Distribute:  O(n + p) time, O(p) space.

package tree

import "math/bits"

// parentIndex returns the index of the parent that receives child c of a
// level holding n nodes distributed over p parents. Requires 0 ≤ c < n, p ≥ 1.
func parentIndex(c, n, p int) int {
	// c*p may exceed int for very wide levels; the quotient is < p, so the
	// 128-bit division never overflows.
	hi, lo := bits.Mul64(uint64(c), uint64(p))
	q, _ := bits.Div64(hi, lo, uint64(n))

	return int(q)
}

// Distribute returns how many of n children each of p parents receives, in
// parent order. It returns nil when p ≤ 0 and p zeros when n ≤ 0.
func Distribute(n, p int) []int {
	if p <= 0 {
		return nil
	}
	shares := make([]int, p)
	for c := 0; c < n; c++ {
		shares[parentIndex(c, n, p)]++
	}

	return shares
}

// Layout is the dry-run description of a tree shape.
type Layout struct {
	// LevelCounts[L-1] is the node count at level L.
	LevelCounts []int
	// Distribution[L-1][j] is the number of level-L children of parent j at
	// level L-1.
	Distribution [][]int
	// Total is the node count including the root.
	Total int
}

// Plan validates the shape options and reports the layout CreateTree would
// produce, without creating any node. It returns the same configuration
// errors as CreateTree apart from ErrNoNodeType.
//
// Complexity: O(Total) time, O(Total) space for the distribution table.
func Plan(opts ...Option) (Layout, error) {
	cfg := newConfig(opts...)
	counts, total, err := resolveShape(MethodPlan, cfg)
	if err != nil {
		return Layout{}, err
	}

	layout := Layout{
		LevelCounts:  append([]int{}, counts...),
		Distribution: make([][]int, len(counts)),
		Total:        total,
	}
	parents := 1 // the root
	for i, n := range counts {
		layout.Distribution[i] = Distribute(n, parents)
		parents = n
	}

	return layout, nil
}
