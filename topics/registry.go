// Package topics binds every generator to a sample graph and default
// parameters under a stable topic id, and pairs topics for side-by-side
// comparison.
package topics

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/samples"
	"github.com/katalvlaran/lvtrace/trace"
)

var (
	// ErrUnknownTopic is returned for an id with no topic behind it.
	ErrUnknownTopic = errors.New("topics: unknown topic")

	// ErrUnknownComparison is returned for an id with no comparison behind it.
	ErrUnknownComparison = errors.New("topics: unknown comparison")

	// ErrDuplicate is returned when an id is registered twice.
	ErrDuplicate = errors.New("topics: duplicate id")
)

// Topic is one animatable algorithm over its default input.
type Topic struct {
	ID     string       `json:"id"`
	Title  string       `json:"title"`
	Family string       `json:"family"`
	Sample string       `json:"sample"`
	Params trace.Params `json:"params"`

	// Gen produces the trace.
	Gen trace.Generator `json:"-"`
	// Base builds the default graph when it is not a plain sample.
	Base func() (*core.GraphData, error) `json:"-"`
}

// Comparison runs two topics on one shared clock.
type Comparison struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Left  string `json:"left"`
	Right string `json:"right"`
}

// Registry is an ordered set of topics and comparisons. It is built once
// and then only read.
type Registry struct {
	order []string
	byID  map[string]Topic
	cmps  []Comparison
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]Topic)}
}

// Add registers t.
func (r *Registry) Add(t Topic) error {
	if _, ok := r.byID[t.ID]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicate, t.ID)
	}
	r.order = append(r.order, t.ID)
	r.byID[t.ID] = t

	return nil
}

// AddComparison registers c; both sides must already be topics.
func (r *Registry) AddComparison(c Comparison) error {
	for _, id := range []string{c.Left, c.Right} {
		if _, ok := r.byID[id]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownTopic, id)
		}
	}
	for _, old := range r.cmps {
		if old.ID == c.ID {
			return fmt.Errorf("%w: %q", ErrDuplicate, c.ID)
		}
	}
	r.cmps = append(r.cmps, c)

	return nil
}

// Topics lists the topics in registration order.
func (r *Registry) Topics() []Topic {
	out := make([]Topic, len(r.order))
	for i, id := range r.order {
		out[i] = r.byID[id]
	}

	return out
}

// Topic looks up one topic.
func (r *Registry) Topic(id string) (Topic, error) {
	t, ok := r.byID[id]
	if !ok {
		return Topic{}, fmt.Errorf("%w: %q", ErrUnknownTopic, id)
	}

	return t, nil
}

// Comparisons lists the comparisons in registration order.
func (r *Registry) Comparisons() []Comparison {
	return append([]Comparison(nil), r.cmps...)
}

// Comparison looks up one comparison.
func (r *Registry) Comparison(id string) (Comparison, error) {
	for _, c := range r.cmps {
		if c.ID == id {
			return c, nil
		}
	}

	return Comparison{}, fmt.Errorf("%w: %q", ErrUnknownComparison, id)
}

// BaseGraph returns a fresh copy of the topic's default graph.
func (t Topic) BaseGraph() (*core.GraphData, error) {
	if t.Base != nil {
		return t.Base()
	}

	return samples.Graph(t.Sample)
}

// Generate runs topic id. A non-nil override replaces the default graph;
// non-zero fields of p replace the topic's default params. It returns the
// graph the trace was computed on alongside the trace.
func (r *Registry) Generate(id string, override *core.GraphData, p trace.Params) (*core.GraphData, trace.Trace, error) {
	t, err := r.Topic(id)
	if err != nil {
		return nil, nil, err
	}
	g := override
	if g == nil {
		if g, err = t.BaseGraph(); err != nil {
			return nil, nil, err
		}
	} else {
		g = g.Clone()
	}
	tr, err := t.Gen(g, merge(t.Params, p))
	if err != nil {
		return nil, nil, fmt.Errorf("topics: %s: %w", id, err)
	}

	return g, tr, nil
}

// Compare generates both sides of comparison id on their default inputs.
func (r *Registry) Compare(id string, p trace.Params) (left, right trace.Trace, err error) {
	c, err := r.Comparison(id)
	if err != nil {
		return nil, nil, err
	}
	if _, left, err = r.Generate(c.Left, nil, p); err != nil {
		return nil, nil, err
	}
	if _, right, err = r.Generate(c.Right, nil, p); err != nil {
		return nil, nil, err
	}

	return left, right, nil
}

func merge(def, p trace.Params) trace.Params {
	out := def
	if p.Start != "" {
		out.Start = p.Start
	}
	if p.End != "" {
		out.End = p.End
	}
	if len(p.Sources) > 0 {
		out.Sources = append([]string(nil), p.Sources...)
	}
	if p.Seed != 0 {
		out.Seed = p.Seed
	}
	if p.K != 0 {
		out.K = p.K
	}

	return out
}
