// Package render draws one trace.Step as terminal text.
//
// The renderer consumes exactly one Step plus the base graph; when the Step
// carries a Graph override (flood fill canvases, contraction, augmented
// flow networks) that graph is drawn instead. Nothing is read from
// neighboring Steps.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/trace"
)

// Palette.
var (
	ColorAccent  = lipgloss.Color("#2CD7C7")
	ColorPrimary = lipgloss.Color("#20B9B4")
	ColorBorder  = lipgloss.Color("#16858E")
	ColorWarm    = lipgloss.Color("#F4D03F")
	ColorMuted   = lipgloss.Color("#2C4A54")
)

// Styles groups the lipgloss styles used by a Renderer.
type Styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Current lipgloss.Style
	Visited lipgloss.Style
	Front   lipgloss.Style
	Muted   lipgloss.Style
	Panel   lipgloss.Style
}

// DefaultStyles returns the standard palette.
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(ColorAccent),
		Label:   lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary),
		Current: lipgloss.NewStyle().Bold(true).Foreground(ColorWarm),
		Visited: lipgloss.NewStyle().Foreground(ColorPrimary),
		Front:   lipgloss.NewStyle().Foreground(ColorAccent),
		Muted:   lipgloss.NewStyle().Foreground(ColorMuted),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1),
	}
}

// Renderer turns Steps into text.
type Renderer struct {
	styles Styles
	width  int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithStyles replaces the default styles.
func WithStyles(s Styles) Option { return func(r *Renderer) { r.styles = s } }

// WithWidth wraps panels to w columns; 0 disables wrapping.
func WithWidth(w int) Option { return func(r *Renderer) { r.width = max(w, 0) } }

// New returns a Renderer with the default styles.
func New(opts ...Option) *Renderer {
	r := &Renderer{styles: DefaultStyles()}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Text renders step over base with the default Renderer.
func Text(step trace.Step, base *core.GraphData) string { return New().Step(step, base) }

// Step renders the description header followed by every panel the Step has
// facets for.
func (r *Renderer) Step(step trace.Step, base *core.GraphData) string {
	g := base
	if step.Graph != nil {
		g = step.Graph
	}

	blocks := []string{r.header(step)}
	if g != nil {
		if g.Layout == core.LayoutGrid && len(g.Grid) > 0 {
			blocks = append(blocks, r.panel("grid", r.grid(step, g)))
		} else {
			blocks = append(blocks, r.panel("graph", r.graph(step, g)))
		}
	}
	for _, p := range []struct {
		title string
		body  string
	}{
		{"frontier", r.frontier(step)},
		{"distances", r.distances(step, g)},
		{"matrix", r.matrix(step)},
		{"flow", r.flow(step)},
		{"structure", r.structure(step)},
		{"summary", r.summary(step)},
	} {
		if p.body != "" {
			blocks = append(blocks, r.panel(p.title, p.body))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (r *Renderer) header(step trace.Step) string {
	s := r.styles.Title.Render(step.Description)
	if step.CurrentNode != "" {
		s += "\n" + r.styles.Muted.Render("current: ") + r.styles.Current.Render(step.CurrentNode)
	}

	return s
}

func (r *Renderer) panel(title, body string) string {
	st := r.styles.Panel
	if r.width > 0 {
		st = st.Width(r.width)
	}

	return st.Render(r.styles.Label.Render(title) + "\n" + strings.TrimRight(body, "\n"))
}

// mark styles id by its role in step: current, frontier, visited or idle.
func (r *Renderer) mark(step trace.Step, id string, visited, frontier map[string]bool) string {
	switch {
	case id == step.CurrentNode:
		return r.styles.Current.Render("*" + id)
	case frontier[id]:
		return r.styles.Front.Render("+" + id)
	case visited[id]:
		return r.styles.Visited.Render("=" + id)
	default:
		return r.styles.Muted.Render(" " + id)
	}
}

func (r *Renderer) graph(step trace.Step, g *core.GraphData) string {
	visited, frontier := setOf(step.Visited), setOf(step.Frontier)
	hl := make(map[core.Pair]bool, len(step.HighlightEdges))
	for _, p := range step.HighlightEdges {
		hl[p] = true
		if !g.Directed {
			hl[p.Reverse()] = true
		}
	}

	var b strings.Builder
	arrow := " -- "
	if g.Directed {
		arrow = " -> "
	}
	for _, id := range g.IDs() {
		b.WriteString(r.mark(step, id, visited, frontier))
		nbrs := g.Neighbors(id)
		if len(nbrs) > 0 {
			b.WriteString(arrow)
			parts := make([]string, len(nbrs))
			for i, v := range nbrs {
				label := v
				if w, ok := g.Weight(id, v); ok && len(g.Edges) > 0 {
					label = fmt.Sprintf("%s(%d)", v, w)
				}
				if hl[core.Pair{From: id, To: v}] {
					label = r.styles.Current.Render(label)
				}
				parts[i] = label
			}
			b.WriteString(strings.Join(parts, ", "))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func (r *Renderer) grid(step trace.Step, g *core.GraphData) string {
	visited, frontier := setOf(step.Visited), setOf(step.Frontier)
	width := 1
	for _, row := range g.Grid {
		for _, v := range row {
			width = max(width, len(fmt.Sprint(v)))
		}
	}

	var b strings.Builder
	for i, row := range g.Grid {
		cells := make([]string, len(row))
		for j, v := range row {
			id := fmt.Sprintf("r%dc%d", i, j)
			text := fmt.Sprintf("%*d", width, v)
			switch {
			case id == step.CurrentNode:
				text = r.styles.Current.Render("[" + text + "]")
			case frontier[id]:
				text = r.styles.Front.Render("+" + text + " ")
			case visited[id]:
				text = r.styles.Visited.Render("=" + text + " ")
			default:
				text = " " + text + " "
			}
			cells[j] = text
		}
		b.WriteString(strings.Join(cells, ""))
		b.WriteByte('\n')
	}

	return b.String()
}

func (r *Renderer) frontier(step trace.Step) string {
	var lines []string
	if len(step.Frontier) > 0 {
		lines = append(lines, "frontier: "+strings.Join(step.Frontier, " "))
	}
	for i, bucket := range step.Buckets {
		if len(bucket) > 0 {
			lines = append(lines, fmt.Sprintf("bucket %d: %s", i, strings.Join(bucket, " ")))
		}
	}
	if len(step.Visited) > 0 {
		lines = append(lines, "visited:  "+strings.Join(step.Visited, " "))
	}

	return strings.Join(lines, "\n")
}

func (r *Renderer) distances(step trace.Step, g *core.GraphData) string {
	if len(step.Distances) == 0 {
		return ""
	}
	var b strings.Builder
	for _, id := range orderedKeys(step.Distances, g) {
		fmt.Fprintf(&b, "%-6s %6s", id, step.Distances[id])
		if p, ok := step.Parents[id]; ok && p != "" {
			fmt.Fprintf(&b, "  via %s", p)
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func (r *Renderer) matrix(step trace.Step) string {
	m := step.Matrix
	if m == nil || len(m.Cells) == 0 {
		return ""
	}
	hot := make(map[trace.Cell]bool, len(step.HighlightCells))
	for _, c := range step.HighlightCells {
		hot[c] = true
	}
	rows := m.RowLabels
	if rows == nil {
		rows = m.Labels
	}

	width := 4
	for _, l := range append(append([]string(nil), m.Labels...), rows...) {
		width = max(width, len(l)+1)
	}
	for _, row := range m.Cells {
		for _, d := range row {
			width = max(width, len([]rune(d.String()))+1)
		}
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", width))
	for _, l := range m.Labels {
		fmt.Fprintf(&b, "%*s", width, l)
	}
	b.WriteByte('\n')
	for i, row := range m.Cells {
		label := ""
		if i < len(rows) {
			label = rows[i]
		}
		fmt.Fprintf(&b, "%*s", width, label)
		for j, d := range row {
			text := fmt.Sprintf("%*s", width, d)
			if hot[trace.Cell{Row: i, Col: j}] {
				text = r.styles.Current.Render(text)
			}
			b.WriteString(text)
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func (r *Renderer) flow(step trace.Step) string {
	var lines []string
	var arcs []core.Pair
	for p, f := range step.Flow {
		if f > 0 {
			arcs = append(arcs, p)
		}
	}
	sortPairs(arcs)
	for _, p := range arcs {
		lines = append(lines, fmt.Sprintf("%s→%s  %d", p.From, p.To, step.Flow[p]))
	}
	for _, id := range sortedKeys(step.Height) {
		line := fmt.Sprintf("h(%s)=%d", id, step.Height[id])
		if e := step.Excess[id]; e != 0 {
			line += fmt.Sprintf("  e=%d", e)
		}
		lines = append(lines, line)
	}
	if len(step.CutSet) > 0 {
		lines = append(lines, "cut: "+joinPairs(step.CutSet))
	}

	return strings.Join(lines, "\n")
}

func (r *Renderer) structure(step trace.Step) string {
	var lines []string
	if len(step.MSTEdges) > 0 {
		parts := make([]string, len(step.MSTEdges))
		for i, e := range step.MSTEdges {
			parts[i] = fmt.Sprintf("%s-%s(%d)", e.From, e.To, e.Weight)
		}
		lines = append(lines, "tree: "+strings.Join(parts, " "))
	}
	if len(step.Roots) > 0 {
		var parts []string
		for _, id := range sortedKeys(step.Roots) {
			parts = append(parts, id+"→"+step.Roots[id])
		}
		lines = append(lines, "roots: "+strings.Join(parts, " "))
	}
	for _, id := range sortedKeys(step.Supernodes) {
		lines = append(lines, fmt.Sprintf("supernode %s: {%s}", id, strings.Join(step.Supernodes[id], ",")))
	}
	if len(step.Disc) > 0 {
		var parts []string
		for _, id := range sortedKeys(step.Disc) {
			parts = append(parts, fmt.Sprintf("%s %d/%d", id, step.Disc[id], step.Low[id]))
		}
		lines = append(lines, "disc/low: "+strings.Join(parts, "  "))
	}
	for i, c := range step.Components {
		lines = append(lines, fmt.Sprintf("component %d: %s", i+1, strings.Join(c, " ")))
	}
	if len(step.Articulation) > 0 {
		lines = append(lines, "articulation: "+strings.Join(step.Articulation, " "))
	}
	if len(step.Bridges) > 0 {
		lines = append(lines, "bridges: "+joinPairs(step.Bridges))
	}

	return strings.Join(lines, "\n")
}

func (r *Renderer) summary(step trace.Step) string {
	var lines []string
	if len(step.Path) > 0 {
		lines = append(lines, "path:  "+strings.Join(step.Path, " → "))
	}
	if len(step.Cycle) > 0 {
		lines = append(lines, "cycle: "+strings.Join(step.Cycle, " → "))
	}
	if len(step.Order) > 0 {
		lines = append(lines, "order: "+strings.Join(step.Order, " "))
	}
	if step.Total != nil {
		lines = append(lines, fmt.Sprintf("total: %d", *step.Total))
	}

	return strings.Join(lines, "\n")
}

func setOf(ids []string) map[string]bool {
	m := make(map[string]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}

	return m
}

// orderedKeys lists the keys of m in graph node order, then any extra keys sorted.
func orderedKeys[V any](m map[string]V, g *core.GraphData) []string {
	var out []string
	seen := make(map[string]bool, len(m))
	if g != nil {
		for _, id := range g.IDs() {
			if _, ok := m[id]; ok {
				out = append(out, id)
				seen[id] = true
			}
		}
	}
	var rest []string
	for id := range m {
		if !seen[id] {
			rest = append(rest, id)
		}
	}
	sort.Strings(rest)

	return append(out, rest...)
}

func sortedKeys[V any](m map[string]V) []string {
	return orderedKeys(m, nil)
}

func sortPairs(p []core.Pair) {
	sort.Slice(p, func(i, j int) bool {
		if p[i].From != p[j].From {
			return p[i].From < p[j].From
		}
		return p[i].To < p[j].To
	})
}

func joinPairs(p []core.Pair) string {
	parts := make([]string, len(p))
	for i, x := range p {
		parts[i] = x.From + "→" + x.To
	}

	return strings.Join(parts, " ")
}
