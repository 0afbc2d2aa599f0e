// Package tree builds rooted trees of a requested shape and wires their
// parent/child links through a minimal node capability.
//
// The package offers the following key components:
//
//   - Shape options:
//     – WithUniform:      fixed height and branching factor (b^L nodes at level L).
//     – WithLevelCounts:  explicit node count per level below the root.
//     – WithMaxNodes:     upper bound on the total node count.
//     – WithLogger:       debug-level progress via log/slog.
//   - Construction:
//     – CreateTree:       the orchestrator; Uniform / Irregular are thin helpers.
//     – NodeFactory:      (level, parent) → node hook; DefaultFactory wraps a
//     zero-argument constructor.
//   - Distribution:
//     – Distribute:       children per parent for n children over p parents.
//     – Plan:             dry-run layout of a shape without creating nodes.
//   - Reference node:
//     – BasicNode, NewBasicNode, LabeledFactory and LabelFn schemes
//     (DecimalLabels, SymbolLabels, ExcelLabels, AlphanumericLabels,
//     HexLabels, PrefixLabels).
//
// Guarantees:
//
//   - Level L has exactly levelCounts[L-1] nodes.
//   - Each parent at level L-1 receives floor(n/p) or ceil(n/p) of the n
//     level-L nodes; child c goes to parent floor(c*p/n), so parent 0 is
//     served first and per-parent lists concatenate in creation order.
//   - SetChildren is called exactly once on every node; SetParent exactly once
//     on every non-root node.
//   - Configuration errors are returned before any node is created.
//   - Construction is synchronous and single-threaded; no state survives a call.
//
// Quick ASCII example, WithLevelCounts(3, 7) with LabeledFactory(DecimalLabels):
//
//	0.0
//	├── 1.0
//	│   ├── 2.0
//	│   ├── 2.1
//	│   └── 2.2
//	├── 1.1
//	│   ├── 2.3
//	│   └── 2.4
//	└── 1.2
//	    ├── 2.5
//	    └── 2.6
package tree
