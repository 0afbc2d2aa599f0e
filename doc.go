// Package lvltree builds rooted trees of a requested shape, level by level,
// with every level spread evenly over the level above it.
//
// 🚀 What is lvltree?
//
//	A small, deterministic library plus a CLI:
//		• Shapes: uniform (height + branching factor) or irregular (per-level counts)
//		• Even distribution: each parent gets floor(n/p) or ceil(n/p) children
//		• Bring-your-own nodes: any type with SetParent / SetChildren
//		• Factory hook: customize node creation per (level, parent)
//		• Dry runs: inspect the layout of a shape without building it
//
// Under the hood, everything is organized under two directories:
//
//	tree/         — shape options, validation, distribution, construction, BasicNode & labels
//	cmd/lvltree/  — CLI: `lvltree build` renders a tree, `lvltree plan` prints its layout
//
// Quick ASCII example, levels 3,7:
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
//
//	go get github.com/katalvlaran/lvltree/tree
package lvltree
