// Package tree defines shared constants used by the tree builder, keeping
// method tags and shape bounds in one place.
package tree

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the operation name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCreateTree is the canonical name for the CreateTree operation.
	MethodCreateTree = "CreateTree"
	// MethodPlan is the canonical name for the Plan operation.
	MethodPlan = "Plan"
	// MethodUniformLevelCounts is the canonical name for UniformLevelCounts.
	MethodUniformLevelCounts = "UniformLevelCounts"
	// MethodLabelScheme is the canonical name for LabelScheme.
	MethodLabelScheme = "LabelScheme"
)

//-----------------------------------------------------------------------------
// Levels
//-----------------------------------------------------------------------------

// RootLevel is the level index passed to the factory for the root node.
const RootLevel = 0

//-----------------------------------------------------------------------------
// Shape Bounds
//-----------------------------------------------------------------------------

// MinHeight is the smallest allowed height of a uniform tree.
// A height of 0 yields a root-only tree.
const MinHeight = 0

// MinBranchingFactor is the smallest allowed branching factor of a uniform tree.
const MinBranchingFactor = 1

// MinLevelCount is the smallest allowed node count of a level below the root.
const MinLevelCount = 1

// Unbounded disables the WithMaxNodes limit. It is the default.
const Unbounded = 0
