// SPDX-License-Identifier: MIT
// Package: lvtrace/builder
//
// errors.go: sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors add context with %w.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates a size parameter (n, rows, cols) below the
// minimum for the requested shape.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrTooManyVertices indicates a shape whose vertex count exceeds
// MaxVertices.
var ErrTooManyVertices = errors.New("builder: too many vertices")

// ErrInvalidProbability indicates an edge probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic shape was requested without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnknownShape indicates Parse could not recognize a shape spec.
var ErrUnknownShape = errors.New("builder: unknown shape")

// builderErrorf prefixes err context with the shape name.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}
