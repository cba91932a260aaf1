// Package samples holds the built-in sample graphs. They are embedded
// YAML documents decoded once on first use; every accessor hands out a
// deep copy so callers can never alter a sample.
package samples

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/gridgraph"
)

// ErrUnknownSample is returned for a name with no sample behind it.
var ErrUnknownSample = errors.New("samples: unknown sample")

//go:embed data/*.yaml
var data embed.FS

const extrasFile = "extras.yaml"

// extras holds the inputs that are not graphs themselves.
type extras struct {
	Grids map[string][][]int `yaml:"grids"`
	Board struct {
		Size  int         `yaml:"size"`
		Width int         `yaml:"width"`
		Jumps map[int]int `yaml:"jumps"`
	} `yaml:"board"`
	Words []string `yaml:"words"`
}

type library struct {
	graphs map[string]*core.GraphData
	words  []string
}

var (
	loadOnce sync.Once
	lib      *library
	loadErr  error
)

func load() (*library, error) {
	loadOnce.Do(func() {
		lib, loadErr = decodeAll()
	})

	return lib, loadErr
}

func decodeAll() (*library, error) {
	entries, err := data.ReadDir("data")
	if err != nil {
		return nil, fmt.Errorf("samples: %w", err)
	}
	l := &library{graphs: make(map[string]*core.GraphData)}
	for _, e := range entries {
		raw, err := data.ReadFile(path.Join("data", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("samples: %w", err)
		}
		if e.Name() == extrasFile {
			if err := l.addExtras(raw); err != nil {
				return nil, err
			}
			continue
		}
		g, err := core.Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("samples: %s: %w", e.Name(), err)
		}
		l.graphs[strings.TrimSuffix(e.Name(), path.Ext(e.Name()))] = g
	}

	return l, nil
}

func (l *library) addExtras(raw []byte) error {
	var x extras
	if err := yaml.Unmarshal(raw, &x); err != nil {
		return fmt.Errorf("samples: %s: %w", extrasFile, err)
	}
	for name, cells := range x.Grids {
		var opts []gridgraph.Option
		if name == "maze" {
			opts = append(opts, gridgraph.WithWall(1))
		}
		g, err := gridgraph.FromGrid(cells, opts...)
		if err != nil {
			return fmt.Errorf("samples: grid %s: %w", name, err)
		}
		l.graphs[name] = g
	}
	board, err := gridgraph.SnakesBoard(x.Board.Size, x.Board.Width, x.Board.Jumps)
	if err != nil {
		return fmt.Errorf("samples: board: %w", err)
	}
	l.graphs["board"] = board
	l.words = x.Words

	return nil
}

// Graph returns a copy of the named sample.
func Graph(name string) (*core.GraphData, error) {
	l, err := load()
	if err != nil {
		return nil, err
	}
	g, ok := l.graphs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSample, name)
	}

	return g.Clone(), nil
}

// MustGraph is Graph for names known at compile time. It panics on error.
func MustGraph(name string) *core.GraphData {
	g, err := Graph(name)
	if err != nil {
		panic(err)
	}

	return g
}

// Names lists the sample names in sorted order.
func Names() []string {
	l, err := load()
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(l.graphs))
	for name := range l.graphs {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Words returns a copy of the word-ladder vocabulary.
func Words() []string {
	l, err := load()
	if err != nil {
		return nil
	}

	return append([]string(nil), l.words...)
}
