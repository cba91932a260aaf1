package flow

import (
	"errors"
	"fmt"
)

// ErrSourceNotFound is returned when the specified source vertex is missing.
var ErrSourceNotFound = fmt.Errorf("flow: %w", errSourceNotFound)
var errSourceNotFound = errors.New("source vertex not found")

// ErrSinkNotFound is returned when the specified sink vertex is missing.
var ErrSinkNotFound = fmt.Errorf("flow: %w", errSinkNotFound)
var errSinkNotFound = errors.New("sink vertex not found")

// ErrSameEndpoints is returned when source and sink coincide.
var ErrSameEndpoints = errors.New("flow: source and sink must differ")

// ErrNotBipartite is returned by BipartiteMatching when the graph has an
// odd cycle.
var ErrNotBipartite = errors.New("flow: graph is not bipartite")

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	From, To string
	Cap      int64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %q→%q: %d", e.From, e.To, e.Cap)
}
