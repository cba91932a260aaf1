package builder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvtrace/core"
)

// Shapes lists the names Parse accepts, with their argument form.
var Shapes = []string{
	"cycle:N", "path:N", "star:N", "wheel:N", "complete:N",
	"bipartite:AxB", "grid:RxC", "random:N:P",
}

// Parse builds the graph described by spec, e.g. "cycle:6", "grid:3x4",
// "bipartite:2x3" or "random:8:0.3". Names are case-insensitive.
func Parse(spec string, opts ...BuilderOption) (*core.GraphData, error) {
	con, err := constructorFor(strings.TrimSpace(spec))
	if err != nil {
		return nil, err
	}

	return BuildGraph(opts, con)
}

func constructorFor(spec string) (Constructor, error) {
	name, args, _ := strings.Cut(strings.ToLower(spec), ":")
	bad := func() (Constructor, error) {
		return nil, fmt.Errorf("%q (want one of %s): %w", spec, strings.Join(Shapes, ", "), ErrUnknownShape)
	}

	switch name {
	case "cycle", "path", "star", "wheel", "complete":
		n, err := strconv.Atoi(args)
		if err != nil {
			return bad()
		}
		return map[string]func(int) Constructor{
			"cycle": Cycle, "path": Path, "star": Star, "wheel": Wheel, "complete": Complete,
		}[name](n), nil
	case "bipartite", "grid":
		a, b, ok := strings.Cut(args, "x")
		if !ok {
			return bad()
		}
		x, err1 := strconv.Atoi(a)
		y, err2 := strconv.Atoi(b)
		if err1 != nil || err2 != nil {
			return bad()
		}
		if name == "grid" {
			return Grid(x, y), nil
		}
		return CompleteBipartite(x, y), nil
	case "random":
		a, b, ok := strings.Cut(args, ":")
		if !ok {
			return bad()
		}
		n, err1 := strconv.Atoi(a)
		p, err2 := strconv.ParseFloat(b, 64)
		if err1 != nil || err2 != nil {
			return bad()
		}
		return RandomSparse(n, p), nil
	}

	return bad()
}
