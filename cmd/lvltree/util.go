package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvltree/tree"

	"github.com/urfave/cli/v2"
)

// shapeFlags returns fresh flags for every command that takes a tree shape.
// Flags remember env lookups, so each app gets its own set.
func shapeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "height",
			Usage:   "number of levels below the root (uniform shape, needs --branching)",
			EnvVars: []string{"LVLTREE_HEIGHT"},
		},
		&cli.IntFlag{
			Name:    "branching",
			Aliases: []string{"b"},
			Usage:   "children per node (uniform shape, needs --height)",
			EnvVars: []string{"LVLTREE_BRANCHING"},
		},
		&cli.StringFlag{
			Name:    "levels",
			Usage:   "comma-separated node count per level below the root, e.g. 3,7 (irregular shape)",
			EnvVars: []string{"LVLTREE_LEVELS"},
		},
		&cli.IntFlag{
			Name:    "max-nodes",
			Usage:   "refuse shapes with more nodes than this, root included (0 = unbounded)",
			Value:   100000,
			EnvVars: []string{"LVLTREE_MAX_NODES"},
		},
	}
}

// shapeOptions maps the shape flags onto tree options. Conflicts between
// --height/--branching and --levels are left to the tree package so the CLI
// reports the same errors as the library.
func shapeOptions(cctx *cli.Context) ([]tree.Option, error) {
	var opts []tree.Option

	if cctx.IsSet("height") != cctx.IsSet("branching") {
		return nil, fmt.Errorf("--height and --branching must be given together: %w", tree.ErrInvalidShape)
	}
	if cctx.IsSet("height") {
		opts = append(opts, tree.WithUniform(cctx.Int("height"), cctx.Int("branching")))
	}
	if cctx.IsSet("levels") {
		counts, err := parseLevels(cctx.String("levels"))
		if err != nil {
			return nil, err
		}
		opts = append(opts, tree.WithLevelCounts(counts...))
	}

	maxNodes := cctx.Int("max-nodes")
	if maxNodes < 0 {
		return nil, fmt.Errorf("--max-nodes must be ≥ 0, got %d: %w", maxNodes, tree.ErrInvalidShape)
	}
	opts = append(opts, tree.WithMaxNodes(maxNodes))

	return opts, nil
}

// parseLevels parses "3, 7,12" into []int{3, 7, 12}. A blank string is a
// root-only shape.
func parseLevels(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []int{}, nil
	}
	fields := strings.Split(s, ",")
	counts := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("invalid --levels entry %q: %w", f, err)
		}
		counts = append(counts, n)
	}
	return counts, nil
}

func configLogger(cctx *cli.Context, writer io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "info":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}
