// SPDX-License-Identifier: MIT
// Package: lvtrace/builder
//
// options.go: functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs; shape
// constructors themselves only return errors.

package builder

import (
	"math/rand"
)

// BuilderOption customizes a build by mutating builderConfig before any
// constructor runs.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic shapes. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a seeded RNG, locking RandomSparse and UniformWeightFn
// outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithDirected emits one-way edges in the listed order.
func WithDirected() BuilderOption {
	return func(c *builderConfig) {
		c.directed = true
	}
}

// WithPartitionPrefix sets the CompleteBipartite side labels. Empty values
// keep the defaults "L" and "R".
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) {
		c.leftPrefix, c.rightPrefix = left, right
	}
}
