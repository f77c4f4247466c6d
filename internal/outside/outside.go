// Package outside computes the "outside" region used by the pathfinder:
// the set of cells reachable from the grid's margin without crossing a
// colored cell. A snake may always pass through the outside region
// regardless of the phase's current maxColor, since it carries no
// contribution content.
package outside

import (
	"github.com/ghsnake/routesolver/internal/geom"
	"github.com/ghsnake/routesolver/internal/grid"
)

// margin is how far past each edge of the grid the outside region extends,
// giving the snake room to loop around the calendar's border.
const margin = 2

// Region is a flood-fill snapshot over the box [-margin, W+margin-1] x
// [-margin, H+margin-1]. It must be rebuilt (via Build) whenever the
// underlying grid's colors change; it does not track the grid live.
type Region struct {
	minX, minY int
	w, h       int
	open       []bool // row-major over the extended box
}

// Build flood-fills from every cell on the extended box's own border
// through cells that are either off the real grid or colored 0, stopping at
// colored (>0) cells. The result classifies every cell in the box as
// outside (reachable from the border this way) or not.
func Build(g *grid.Grid) *Region {
	minX, minY := -margin, -margin
	w := g.Width + 2*margin
	h := g.Height + 2*margin

	r := &Region{minX: minX, minY: minY, w: w, h: h, open: make([]bool, w*h)}

	// A corrupted on-grid cell can't be assumed safe to flood through; it is
	// treated as blocked rather than failing Build outright, since spec §4.3
	// gives Build no error return.
	passable := func(p geom.Point) bool {
		c, err := g.AtOrEmpty(p)
		return err == nil && c == 0
	}

	idx := func(p geom.Point) int {
		return (p.Y-minY)*w + (p.X - minX)
	}

	visited := make([]bool, w*h)
	var queue []geom.Point
	push := func(p geom.Point) {
		i := idx(p)
		if visited[i] {
			return
		}
		visited[i] = true
		if !passable(p) {
			return
		}
		r.open[i] = true
		queue = append(queue, p)
	}

	for x := minX; x < minX+w; x++ {
		push(geom.Point{X: x, Y: minY})
		push(geom.Point{X: x, Y: minY + h - 1})
	}
	for y := minY; y < minY+h; y++ {
		push(geom.Point{X: minX, Y: y})
		push(geom.Point{X: minX + w - 1, Y: y})
	}

	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		for _, d := range geom.Directions {
			n := geom.Neighbor(cur, d)
			if n.X < minX || n.X >= minX+w || n.Y < minY || n.Y >= minY+h {
				continue
			}
			push(n)
		}
	}

	return r
}

// Contains reports whether p is part of the outside region. Points outside
// the extended box are reported as outside too. The pathfinders treat every
// off-grid cell as enterable, so their searches are not confined to the box.
func (r *Region) Contains(p geom.Point) bool {
	if p.X < r.minX || p.X >= r.minX+r.w || p.Y < r.minY || p.Y >= r.minY+r.h {
		return true
	}
	return r.open[(p.Y-r.minY)*r.w+(p.X-r.minX)]
}
