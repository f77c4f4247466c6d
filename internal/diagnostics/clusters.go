// Package diagnostics reports pre-solve topology of a grid: how many
// connected clusters of colored cells exist per color level, and how big
// they are. It never changes solver behavior — it only gives an operator
// something to log before a long solve starts, the same way a human would
// eyeball a calendar for obviously isolated cells before routing a snake
// through it.
package diagnostics

import (
	"github.com/katalvlaran/lvlath/gridgraph"

	"github.com/ghsnake/routesolver/internal/grid"
)

// Cluster describes one connected run of same-valued colored cells.
type Cluster struct {
	Color int
	Size  int
}

// Report summarizes a grid's colored-cell clusters, one entry per
// connected component, across every color level.
type Report struct {
	Clusters []Cluster
}

// Analyze builds a Report using lvlath's grid-graph connected-component
// finder, treating any cell with color >= 1 as "land" and everything else
// as water.
func Analyze(g *grid.Grid) (*Report, error) {
	opts := gridgraph.DefaultGridOptions()
	opts.LandThreshold = 1

	gg, err := gridgraph.NewGridGraph(g.Colors(), opts)
	if err != nil {
		return nil, err
	}

	components := gg.ConnectedComponents()
	report := &Report{}
	for color, groups := range components {
		for _, cells := range groups {
			report.Clusters = append(report.Clusters, Cluster{Color: color, Size: len(cells)})
		}
	}
	return report, nil
}

// IsolatedColors returns the set of colors that appear only in
// single-cell clusters — the topology that makes a tunnel-free Phase B
// BFS sweep the only way to reach them, as in a colored cell fully ringed
// by a higher color.
func (r *Report) IsolatedColors() []int {
	multi := map[int]bool{}
	for _, c := range r.Clusters {
		if c.Size > 1 {
			multi[c.Color] = true
		}
	}
	seen := map[int]bool{}
	var out []int
	for _, c := range r.Clusters {
		if c.Size == 1 && !multi[c.Color] && !seen[c.Color] {
			seen[c.Color] = true
			out = append(out, c.Color)
		}
	}
	return out
}
