package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/lvltree/tree"

	"github.com/urfave/cli/v2"
)

func newPlanCmd() *cli.Command {
	return &cli.Command{
		Name:      "plan",
		Usage:     "print per-level node counts and how they split across parents, without building",
		ArgsUsage: " ",
		Flags:     shapeFlags(),
		Action:    runPlan,
	}
}

func runPlan(cctx *cli.Context) error {
	logger := configLogger(cctx, cctx.App.ErrWriter)

	opts, err := shapeOptions(cctx)
	if err != nil {
		return err
	}
	layout, err := tree.Plan(opts...)
	if err != nil {
		return err
	}
	logger.Debug("planned", "levels", len(layout.LevelCounts), "total", layout.Total)

	tw := tabwriter.NewWriter(cctx.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LEVEL\tNODES\tPARENTS\tCHILDREN PER PARENT")
	fmt.Fprintf(tw, "0\t1\t-\t-\n")
	parents := 1
	for i, n := range layout.LevelCounts {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%s\n", i+1, n, parents, runLength(layout.Distribution[i]))
		parents = n
	}
	fmt.Fprintf(tw, "total\t%d\t\t\n", layout.Total)
	return tw.Flush()
}

// runLength compacts shares as "value×repeat" runs, e.g. [3 2 2] → "3 2×2".
func runLength(shares []int) string {
	var parts []string
	for i := 0; i < len(shares); {
		j := i
		for j < len(shares) && shares[j] == shares[i] {
			j++
		}
		if j-i == 1 {
			parts = append(parts, fmt.Sprint(shares[i]))
		} else {
			parts = append(parts, fmt.Sprintf("%d×%d", shares[i], j-i))
		}
		i = j
	}
	return strings.Join(parts, " ")
}
