package main

import (
	"fmt"

	"github.com/katalvlaran/lvltree/tree"

	"github.com/urfave/cli/v2"
	"github.com/xlab/treeprint"
)

func newBuildCmd() *cli.Command {
	return &cli.Command{
		Name:      "build",
		Usage:     "build a tree and print it",
		ArgsUsage: " ",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "labels",
				Usage:   "node label scheme (decimal, symbol, excel, alphanumeric, hex)",
				Value:   "decimal",
				EnvVars: []string{"LVLTREE_LABELS"},
			},
		}, shapeFlags()...),
		Action: runBuild,
	}
}

func runBuild(cctx *cli.Context) error {
	logger := configLogger(cctx, cctx.App.ErrWriter)

	opts, err := shapeOptions(cctx)
	if err != nil {
		return err
	}
	labels, err := tree.LabelScheme(cctx.String("labels"))
	if err != nil {
		return err
	}
	opts = append(opts, tree.WithLogger(logger))

	root, err := tree.CreateTree(tree.NewBasicNode, tree.LabeledFactory(labels), opts...)
	if err != nil {
		return err
	}
	logger.Info("tree built", "root", root.Label, "children", len(root.Children()))

	fmt.Fprint(cctx.App.Writer, renderTree(root))
	return nil
}

// renderTree draws the tree below root with box-drawing connectors.
func renderTree(root *tree.BasicNode) string {
	out := treeprint.NewWithRoot(root.String())
	addBranches(out, root)
	return out.String()
}

func addBranches(branch treeprint.Tree, n *tree.BasicNode) {
	for _, c := range n.Children() {
		if len(c.Children()) == 0 {
			branch.AddNode(c.String())
			continue
		}
		addBranches(branch.AddBranch(c.String()), c)
	}
}
