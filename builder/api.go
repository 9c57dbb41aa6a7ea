// SPDX-License-Identifier: MIT
// Package: betweenness/builder
//
// api.go - public entry point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons in
//     order and lays their outputs side by side as a disjoint union.
//   - Determinism: same options/seed and constructor order ⇒ identical graphs.
//   - Safety: constructors return sentinel errors, never panic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/betweenness/core"
)

// Constructor produces one component: a vertex count and an undirected edge
// list over local indices 0..n-1. Constructors MUST validate parameters early,
// return sentinel errors and emit edges in a stable, documented order.
type Constructor func(cfg builderConfig) (n int, edges [][2]int, err error)

// BuildGraph resolves the builder configuration from bopts and applies all
// constructors in order. The i-th constructor's vertices are shifted past
// those of constructors 0..i-1, so BuildGraph(nil, Complete(3), Complete(3))
// is two disjoint triangles on vertices {0,1,2} and {3,4,5}.
//
// Any constructor error is wrapped with "BuildGraph: %w".
//
// Complexity: O(Σ n_i + Σ |edges_i|).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)

	var (
		total int
		all   [][2]int
	)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		n, edges, err := fn(cfg)
		if err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
		for _, e := range edges {
			all = append(all, [2]int{e[0] + total, e[1] + total})
		}
		total += n
	}

	g, err := core.FromEdges(total, all)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w: %w", ErrConstructFailed, err)
	}

	return g, nil
}

// MustBuild is BuildGraph without options that panics on error.
// Intended for fixtures and examples.
func MustBuild(cons ...Constructor) *core.Graph {
	g, err := BuildGraph(nil, cons...)
	if err != nil {
		panic(err)
	}

	return g
}
