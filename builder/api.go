// SPDX-License-Identifier: MIT
// Package: lvtrace/builder
//
// api.go: Constructor contract and the BuildGraph orchestrator.
//
// Contract:
//   • A Constructor only adds nodes and edges to the builder it is given.
//   • Constructors validate their own parameters and return sentinel
//     errors wrapped with the shape name; they never panic.
//   • BuildGraph applies constructors in order and stops at the first error.

package builder

import (
	"github.com/katalvlaran/lvtrace/core"
)

// Constructor adds one shape to b using the resolved configuration.
type Constructor func(b *core.Builder, cfg builderConfig) error

// BuildGraph creates a weighted GraphData (directed when WithDirected is
// set) and applies every constructor to it. Applying several constructors
// with overlapping IDs merges them into one graph.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.GraphData, error) {
	cfg := newBuilderConfig(bopts...)
	gopts := []core.BuilderOption{core.WithWeighted()}
	if cfg.directed {
		gopts = append(gopts, core.WithDirected())
	}
	b := core.NewBuilder(gopts...)
	for _, con := range cons {
		if err := con(b, cfg); err != nil {
			return nil, err
		}
	}

	return b.Build(), nil
}
