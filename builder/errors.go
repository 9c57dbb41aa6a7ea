// SPDX-License-Identifier: MIT
// Package: betweenness/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Constructors attach context with %w; sentinels are never reformatted.
//   • Constructors never panic; option constructors (WithX) may panic on nil.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, m) is
// smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (supply WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a constructor could not produce a valid
// topology (nil constructor, or an assembled edge list rejected by core).
var ErrConstructFailed = errors.New("builder: construction failed")
