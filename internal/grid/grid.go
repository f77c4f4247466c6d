// Package grid holds the contribution-calendar grid: a rectangular array of
// per-cell color levels that the solver consumes one cell at a time.
package grid

import (
	"github.com/ghsnake/routesolver/internal/errs"
	"github.com/ghsnake/routesolver/internal/geom"
)

// Grid is a rectangular color field. Colors are GitHub's 0-4 contribution
// intensity levels in the common case, but the solver treats color as an
// arbitrary int in [minColor, maxColor] so a caller can plug in any
// palette of up to ten levels.
type Grid struct {
	Width, Height int
	colors        [][]int // colors[y][x]
}

// minColor and maxColor bound every color this Grid will ever hold; a
// stored value outside this range means something upstream corrupted the
// grid rather than a caller supplying an unusual palette.
const (
	minColor = 0
	maxColor = 9
)

func validColor(c int) bool { return c >= minColor && c <= maxColor }

// New builds a Grid from a row-major, Y-outer slice of colors. Every row
// must have the same length and every color must lie in [0, 9].
func New(colors [][]int) (*Grid, error) {
	if len(colors) == 0 || len(colors[0]) == 0 {
		return nil, errs.New("grid.New", errs.KindInvariant, map[string]any{"reason": "empty grid"})
	}
	width := len(colors[0])
	cp := make([][]int, len(colors))
	for y, row := range colors {
		if len(row) != width {
			return nil, errs.New("grid.New", errs.KindInvariant, map[string]any{
				"reason": "ragged row", "row": y,
			})
		}
		for x, c := range row {
			if !validColor(c) {
				return nil, errs.New("grid.New", errs.KindCorruption, map[string]any{
					"point": geom.Point{X: x, Y: y}, "color": c,
				})
			}
		}
		cp[y] = append([]int(nil), row...)
	}
	return &Grid{Width: width, Height: len(colors), colors: cp}, nil
}

// InBounds reports whether p lies within the grid.
func (g *Grid) InBounds(p geom.Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the color at p, or an error: BoundsError if p lies outside
// the grid, CorruptionError if the stored value is outside [0, 9]. Callers
// that routinely probe the extended range around the grid (the
// pathfinder, the outside-region flood fill, tunnel scoring) use
// AtOrEmpty instead, since stepping off-grid there is routine, not a bug.
func (g *Grid) At(p geom.Point) (int, error) {
	if !g.InBounds(p) {
		return 0, errs.New("grid.At", errs.KindBounds, map[string]any{"point": p})
	}
	c := g.colors[p.Y][p.X]
	if !validColor(c) {
		return 0, errs.New("grid.At", errs.KindCorruption, map[string]any{"point": p, "color": c})
	}
	return c, nil
}

// AtOrEmpty returns the color at p, or 0 if p lies outside the grid. It
// still surfaces CorruptionError for an in-bounds cell holding an invalid
// value.
func (g *Grid) AtOrEmpty(p geom.Point) (int, error) {
	if !g.InBounds(p) {
		return 0, nil
	}
	return g.At(p)
}

// Set assigns a color to p. p must be in bounds and color must lie in
// [0, 9].
func (g *Grid) Set(p geom.Point, color int) error {
	if !g.InBounds(p) {
		return errs.New("grid.Set", errs.KindBounds, map[string]any{"point": p})
	}
	if !validColor(color) {
		return errs.New("grid.Set", errs.KindCorruption, map[string]any{"point": p, "color": color})
	}
	g.colors[p.Y][p.X] = color
	return nil
}

// Clear sets p's color to 0, marking the cell eaten. p must be in bounds.
func (g *Grid) Clear(p geom.Point) error {
	return g.Set(p, 0)
}

// MaxColor returns the highest color present anywhere on the grid.
func (g *Grid) MaxColor() int {
	max := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if c := g.colors[y][x]; c > max {
				max = c
			}
		}
	}
	return max
}

// CountColor returns the number of cells whose color equals c exactly.
func (g *Grid) CountColor(c int) int {
	n := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.colors[y][x] == c {
				n++
			}
		}
	}
	return n
}

// Clone returns an independent deep copy of g.
func (g *Grid) Clone() *Grid {
	cp := make([][]int, g.Height)
	for y, row := range g.colors {
		cp[y] = append([]int(nil), row...)
	}
	return &Grid{Width: g.Width, Height: g.Height, colors: cp}
}

// Colors returns a read-only row-major view of the grid's colors, for
// rendering and diagnostics. Callers must not mutate the returned slices.
func (g *Grid) Colors() [][]int {
	return g.colors
}

// ReadingOrder calls fn for every point with X outer, Y inner: column 0
// top-to-bottom, then column 1, and so on. Tunnel candidate enumeration
// depends on this exact order for determinism.
func (g *Grid) ReadingOrder(fn func(p geom.Point)) {
	for x := 0; x < g.Width; x++ {
		for y := 0; y < g.Height; y++ {
			fn(geom.Point{X: x, Y: y})
		}
	}
}
