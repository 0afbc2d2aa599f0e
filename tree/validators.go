// Package tree provides validation helpers that resolve a config into a
// concrete per-level node count sequence, or a configuration error.
//
// Every check here runs before any node is created, so a failed
// CreateTree never leaves a partially built tree behind.
package tree

import (
	"fmt"
	"math"
)

// resolveShape turns the recorded shape options into level counts and the
// total node count (root included), enforcing the shape contract:
//   - exactly one shape source (ErrNoShape / ErrConflictingShape);
//   - parameter ranges (ErrInvalidShape);
//   - int overflow and the WithMaxNodes bound (ErrTooManyNodes).
//
// Complexity: O(len(levels)) time and space.
func resolveShape(method string, cfg config) ([]int, int, error) {
	var (
		counts []int
		err    error
	)
	switch {
	case cfg.uniformSet && cfg.countsSet:
		return nil, 0, fmt.Errorf("%s: height/branching and level counts are mutually exclusive: %w", method, ErrConflictingShape)
	case !cfg.uniformSet && !cfg.countsSet:
		return nil, 0, fmt.Errorf("%s: need height/branching or level counts: %w", method, ErrNoShape)
	case cfg.uniformSet:
		if counts, err = uniformLevelCounts(cfg.height, cfg.branching, cfg.maxNodes); err != nil {
			return nil, 0, fmt.Errorf("%s: %w", method, err)
		}
	default:
		for i, n := range cfg.levelCounts {
			if n < MinLevelCount {
				return nil, 0, fmt.Errorf("%s: levelCounts[%d]=%d < min=%d: %w", method, i, n, MinLevelCount, ErrInvalidShape)
			}
		}
		counts = cfg.levelCounts
	}

	total, ok := totalNodes(counts)
	if !ok {
		return nil, 0, fmt.Errorf("%s: total node count overflows int: %w", method, ErrTooManyNodes)
	}
	if cfg.maxNodes != Unbounded && total > cfg.maxNodes {
		return nil, 0, fmt.Errorf("%s: total=%d > max=%d: %w", method, total, cfg.maxNodes, ErrTooManyNodes)
	}

	return counts, total, nil
}

// UniformLevelCounts derives the level counts of a uniform tree:
// counts[i] = branchingFactor^(i+1) for i in [0,height). Height 0 yields an
// empty, non-nil slice.
//
// Errors:
//   - ErrInvalidShape if height < MinHeight or branchingFactor < MinBranchingFactor.
//   - ErrTooManyNodes if a level count or the total node count overflows int.
//
// Complexity: O(height) time and space; O(log_b MaxInt) when branchingFactor ≥ 2.
func UniformLevelCounts(height, branchingFactor int) ([]int, error) {
	return uniformLevelCounts(height, branchingFactor, Unbounded)
}

// uniformLevelCounts is UniformLevelCounts with the WithMaxNodes bound applied
// while deriving, so a huge height is rejected before its counts are stored.
func uniformLevelCounts(height, branchingFactor, maxNodes int) ([]int, error) {
	if height < MinHeight {
		return nil, fmt.Errorf("%s: height=%d < min=%d: %w", MethodUniformLevelCounts, height, MinHeight, ErrInvalidShape)
	}
	if branchingFactor < MinBranchingFactor {
		return nil, fmt.Errorf("%s: branchingFactor=%d < min=%d: %w", MethodUniformLevelCounts, branchingFactor, MinBranchingFactor, ErrInvalidShape)
	}

	// Every level holds at least one node, so total ≥ height+1.
	if height > math.MaxInt-1 {
		return nil, fmt.Errorf("%s: height=%d: total node count overflows int: %w", MethodUniformLevelCounts, height, ErrTooManyNodes)
	}
	if maxNodes != Unbounded && height+1 > maxNodes {
		return nil, fmt.Errorf("%s: height=%d needs more than max=%d nodes: %w", MethodUniformLevelCounts, height, maxNodes, ErrTooManyNodes)
	}

	counts := []int{}
	width, total := 1, 1 // level 0 is the single root
	for i := 0; i < height; i++ {
		next, ok := mulChecked(width, branchingFactor)
		if !ok || next > math.MaxInt-total {
			return nil, fmt.Errorf("%s: level %d overflows int: %w", MethodUniformLevelCounts, i+1, ErrTooManyNodes)
		}
		width, total = next, total+next
		if maxNodes != Unbounded && total > maxNodes {
			return nil, fmt.Errorf("%s: total through level %d > max=%d: %w", MethodUniformLevelCounts, i+1, maxNodes, ErrTooManyNodes)
		}
		counts = append(counts, width)
	}

	return counts, nil
}

// totalNodes returns 1 + Σcounts, reporting false on int overflow.
func totalNodes(counts []int) (int, bool) {
	total := 1
	for _, n := range counts {
		if n > math.MaxInt-total {
			return 0, false
		}
		total += n
	}

	return total, true
}

// mulChecked returns a*b for non-negative operands, reporting false on overflow.
func mulChecked(a, b int) (int, bool) {
	if a != 0 && b > math.MaxInt/a {
		return 0, false
	}

	return a * b, true
}
