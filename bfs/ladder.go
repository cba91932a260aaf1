package bfs

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/trace"
)

// WordGraph builds the word-ladder graph: one node per word (laid out on a
// circle), an undirected edge between words of equal length that differ in
// exactly one letter. Duplicate words are ignored; neighbor order follows
// word order.
func WordGraph(words []string) *core.GraphData {
	var uniq []string
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		uniq = append(uniq, w)
	}
	b := core.NewBuilder()
	for i, w := range uniq {
		a := 2 * math.Pi * float64(i) / float64(max(len(uniq), 1))
		b.Node(w, math.Round(100*math.Cos(a))/100, math.Round(100*math.Sin(a))/100)
	}
	for i, u := range uniq {
		for _, v := range uniq[i+1:] {
			if _, ok := oneLetter(u, v); ok {
				b.Edge(u, v, 0)
			}
		}
	}

	return b.Build()
}

// oneLetter returns the index of the single differing letter.
func oneLetter(a, b string) (int, bool) {
	if len(a) != len(b) {
		return 0, false
	}
	at := -1
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			if at >= 0 {
				return 0, false
			}
			at = i
		}
	}

	return at, at >= 0
}

// WordLadder traces BFS over a WordGraph from begin to end; each discovery
// names the letter that changed. The last Step holds the shortest ladder
// or reports that none exists.
func WordLadder(g *core.GraphData, begin, end string) (trace.Trace, error) {
	if err := checkEndpoints(g, begin, end); err != nil {
		return nil, err
	}
	w := newWalker(g)
	w.onDiscover = func(from, to string, d int64) string {
		i, _ := oneLetter(from, to)
		return fmt.Sprintf("%s → %s: change letter %d ('%c' → '%c'); rung %d.", from, to, i+1, from[i], to[i], d)
	}
	w.mark(begin, 0, "")
	w.queue = append(w.queue, begin)
	w.emit(begin, fmt.Sprintf("Start the ladder at %q.", begin))
	w.run(end)

	return w.steps, nil
}

// SnakesLadders traces BFS for the fewest dice rolls across a board built
// by gridgraph.SnakesBoard. Adjacency already folds snakes and ladders into
// the six dice moves; the typed Edges tell the narration which jump fired.
func SnakesLadders(g *core.GraphData, start, end string) (trace.Trace, error) {
	if err := checkEndpoints(g, start, end); err != nil {
		return nil, err
	}
	jumps := make(map[int]core.Edge)
	for _, e := range g.Edges {
		if e.Type == core.EdgeSnake || e.Type == core.EdgeLadder {
			if from, err := strconv.Atoi(e.From); err == nil {
				jumps[from] = e
			}
		}
	}
	w := newWalker(g)
	w.onDiscover = func(from, to string, d int64) string {
		u, _ := strconv.Atoi(from)
		for roll := 1; roll <= 6; roll++ {
			if e, ok := jumps[u+roll]; ok && e.To == to {
				return fmt.Sprintf("From %s roll %d, land on %d and take the %s to %s (%d roll(s)).", from, roll, u+roll, e.Type, to, d)
			}
		}
		v, _ := strconv.Atoi(to)
		return fmt.Sprintf("From %s roll %d to reach %s (%d roll(s)).", from, v-u, to, d)
	}
	w.mark(start, 0, "")
	w.queue = append(w.queue, start)
	w.emit(start, fmt.Sprintf("Token starts on square %s.", start))
	w.run(end)

	return w.steps, nil
}
