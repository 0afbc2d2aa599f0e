// SPDX-License-Identifier: MIT
// Package: lvltree/tree
//
// errors.go — sentinel errors for the tree package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with a method tag and `%w`:
//       fmt.Errorf("%s: height=%d < min=%d: %w", MethodCreateTree, h, MinHeight, ErrInvalidShape)
//   • Construction never panics at runtime; panics are confined to option
//     constructors (WithX...) receiving programmer errors.
//
// Taxonomy:
//   • Configuration errors (IsConfigError == true): ErrNoShape,
//     ErrConflictingShape, ErrInvalidShape, ErrTooManyNodes, ErrNoNodeType,
//     ErrUnknownLabelScheme. Always reported before any node is created.
//   • Factory errors: ErrNodeFactory (wraps the factory's own error, so
//     errors.Is also matches the proximate cause) and ErrNilNode.

package tree

import "errors"

// ErrNoShape indicates that neither WithUniform nor WithLevelCounts was supplied.
var ErrNoShape = errors.New("tree: no shape given")

// ErrConflictingShape indicates that both WithUniform and WithLevelCounts were
// supplied; the two shape sources are mutually exclusive.
var ErrConflictingShape = errors.New("tree: conflicting shape sources")

// ErrInvalidShape indicates an out-of-range shape parameter: negative height,
// branching factor below 1, or a level count below 1.
var ErrInvalidShape = errors.New("tree: invalid shape parameter")

// ErrTooManyNodes indicates that the requested shape exceeds the configured
// node bound (WithMaxNodes) or overflows int while deriving counts.
var ErrTooManyNodes = errors.New("tree: too many nodes")

// ErrNoNodeType indicates that no node constructor (type descriptor) was given.
var ErrNoNodeType = errors.New("tree: node type is required")

// ErrUnknownLabelScheme indicates that LabelScheme was asked for a name it
// does not know.
var ErrUnknownLabelScheme = errors.New("tree: unknown label scheme")

// ErrNodeFactory marks a failure returned by the node factory. The factory's
// own error is wrapped alongside it.
var ErrNodeFactory = errors.New("tree: node factory failed")

// ErrNilNode indicates that the node factory returned a nil node.
var ErrNilNode = errors.New("tree: node factory returned nil node")

// configErrors lists the sentinels that make up the configuration class.
var configErrors = []error{
	ErrNoShape,
	ErrConflictingShape,
	ErrInvalidShape,
	ErrTooManyNodes,
	ErrNoNodeType,
	ErrUnknownLabelScheme,
}

// IsConfigError reports whether err belongs to the configuration error class,
// i.e. construction was rejected before any node was created.
// Complexity: O(len(configErrors)) errors.Is checks.
func IsConfigError(err error) bool {
	if err == nil {
		return false
	}
	for _, target := range configErrors {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
