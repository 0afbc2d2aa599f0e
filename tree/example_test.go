package tree_test

import (
	"fmt"

	"github.com/katalvlaran/lvltree/tree"
)

// ExampleCreateTree builds an irregular tree with 3 nodes on level 1 and 7 on
// level 2. The 7 grandchildren are split 3/2/2 across the level-1 parents.
func ExampleCreateTree() {
	root, err := tree.CreateTree(tree.NewBasicNode, tree.LabeledFactory(tree.DecimalLabels), tree.WithLevelCounts(3, 7))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(root, "->", root.Children())
	for _, child := range root.Children() {
		fmt.Println(child, "->", child.Children())
	}

	// Output:
	// 0.0 -> [1.0 1.1 1.2]
	// 1.0 -> [2.0 2.1 2.2]
	// 1.1 -> [2.3 2.4]
	// 1.2 -> [2.5 2.6]
}

// ExamplePlan reports the layout of a uniform tree without building it.
func ExamplePlan() {
	layout, err := tree.Plan(tree.WithUniform(2, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(layout.LevelCounts, layout.Total)
	for i, shares := range layout.Distribution {
		fmt.Printf("level %d: %v\n", i+1, shares)
	}

	// Output:
	// [3 9] 13
	// level 1: [3]
	// level 2: [3 3 3]
}

// ExampleDistribute shows the share of each parent, including the case of
// fewer children than parents.
func ExampleDistribute() {
	fmt.Println(tree.Distribute(7, 3))
	fmt.Println(tree.Distribute(3, 7))

	// Output:
	// [3 2 2]
	// [1 0 1 0 1 0 0]
}
