// SPDX-License-Identifier: MIT
// Package: lvltree/tree
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • config is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • shape      = unset (CreateTree/Plan reject with ErrNoShape)
//   • maxNodes   = Unbounded
//   • logger     = discard

package tree

import (
	"io"
	"log/slog"
)

// config aggregates all knobs used by CreateTree and Plan.
// It is passed by VALUE after resolution (immutable to callers).
type config struct {
	// Uniform shape source; uniformSet records presence since height=0 is valid.
	uniformSet bool
	height     int
	branching  int

	// Irregular shape source; countsSet records presence since an empty
	// sequence is a valid root-only shape.
	countsSet   bool
	levelCounts []int

	// Upper bound on total nodes including the root; Unbounded disables it.
	maxNodes int

	// Progress logger; never nil after newConfig.
	logger *slog.Logger
}

// newConfig constructs a config with deterministic defaults and applies all
// options in order. Nil options are skipped.
// Complexity: O(len(opts)) time, O(1) space beyond copied level counts.
func newConfig(opts ...Option) config {
	cfg := config{
		maxNodes: Unbounded,
		logger:   discardLogger(),
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	return cfg
}

// discardLogger returns a logger that drops every record.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
