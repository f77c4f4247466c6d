// Package snake implements the fixed-length snake pose: an ordered chain of
// grid cells, head first, that never grows or shrinks while moving. A pose
// is the unit of state the search and solver packages reason about, closed
// sets included — two poses with the same head but different bodies are
// different nodes.
package snake

import (
	"github.com/ghsnake/routesolver/internal/errs"
	"github.com/ghsnake/routesolver/internal/geom"
)

// packedOffset shifts a coordinate into the representable byte range before
// storing it, so that the packed key is stable across the slightly negative
// coordinates a snake can occupy just outside the grid (the outside region
// extends two cells past every edge).
const packedOffset = 2

// minCoord and maxCoord bound what Key can represent; callers constructing a
// Snake from board coordinates larger than this have a grid far bigger than
// any contribution calendar and should fail fast instead of silently
// wrapping.
const (
	minCoord = -2
	maxCoord = 253
)

// Snake is an immutable fixed-length pose. Every method that would change
// the pose returns a new Snake, leaving the receiver untouched.
type Snake struct {
	pts []geom.Point // head-first
}

// New builds a Snake from a head-first chain of points. It validates that
// consecutive points are unit-distance apart and that no point repeats.
func New(pts []geom.Point) (Snake, error) {
	if len(pts) == 0 {
		return Snake{}, errs.New("snake.New", errs.KindInvariant, map[string]any{"reason": "empty pose"})
	}
	for i, p := range pts {
		if p.X < minCoord || p.X > maxCoord || p.Y < minCoord || p.Y > maxCoord {
			return Snake{}, errs.New("snake.New", errs.KindBounds, map[string]any{"index": i, "point": p})
		}
		if i > 0 {
			d := geom.Point{X: pts[i].X - pts[i-1].X, Y: pts[i].Y - pts[i-1].Y}
			if !isUnit(d) {
				return Snake{}, errs.New("snake.New", errs.KindInvariant, map[string]any{
					"reason": "non-adjacent segments", "index": i,
				})
			}
		}
	}
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			if pts[i] == pts[j] {
				return Snake{}, errs.New("snake.New", errs.KindInvariant, map[string]any{
					"reason": "self-collision", "point": pts[i],
				})
			}
		}
	}
	cp := append([]geom.Point(nil), pts...)
	return Snake{pts: cp}, nil
}

func isUnit(d geom.Point) bool {
	return (d.X == 0 && (d.Y == 1 || d.Y == -1)) || (d.Y == 0 && (d.X == 1 || d.X == -1))
}

// Horizontal seeds an n-segment snake resting just above the grid, head at
// (n-1, -1) trailing left to tail at (0, -1) — the default starting pose.
func Horizontal(n int) (Snake, error) {
	if n <= 0 {
		return Snake{}, errs.New("snake.Horizontal", errs.KindInvariant, map[string]any{"reason": "non-positive length"})
	}
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.Point{X: n - 1 - i, Y: -1}
	}
	return New(pts)
}

// FromSinglePoint builds a degenerate n-segment pose with every segment
// collapsed onto p. It bypasses New's self-collision check, since a
// collapsed pose isn't meant to represent real occupied cells — it only
// ever serves as a starting value, pulled apart the first time Advance is
// called.
func FromSinglePoint(p geom.Point, n int) (Snake, error) {
	if n <= 0 {
		return Snake{}, errs.New("snake.FromSinglePoint", errs.KindInvariant, map[string]any{"reason": "non-positive length"})
	}
	if p.X < minCoord || p.X > maxCoord || p.Y < minCoord || p.Y > maxCoord {
		return Snake{}, errs.New("snake.FromSinglePoint", errs.KindBounds, map[string]any{"point": p})
	}
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = p
	}
	return Snake{pts: pts}, nil
}

// Len returns the number of segments, fixed for the lifetime of the pose.
func (s Snake) Len() int { return len(s.pts) }

// Head returns the lead segment.
func (s Snake) Head() geom.Point { return s.pts[0] }

// Tail returns the trailing segment.
func (s Snake) Tail() geom.Point { return s.pts[len(s.pts)-1] }

// Points returns a copy of the head-first chain.
func (s Snake) Points() []geom.Point {
	return append([]geom.Point(nil), s.pts...)
}

// Occupies reports whether any segment of s sits at p.
func (s Snake) Occupies(p geom.Point) bool {
	for _, q := range s.pts {
		if q == p {
			return true
		}
	}
	return false
}

// Advance moves the snake one step in dir: a new head is prepended and the
// old tail is dropped, keeping the length constant. It fails if the new
// head would land on any segment other than the vacated tail.
func (s Snake) Advance(dir geom.Direction) (Snake, error) {
	newHead := geom.Neighbor(s.Head(), dir)
	bodyWithoutTail := s.pts[:len(s.pts)-1]
	for _, q := range bodyWithoutTail {
		if q == newHead {
			return Snake{}, errs.New("snake.Advance", errs.KindInvariant, map[string]any{
				"reason": "self-collision", "point": newHead,
			})
		}
	}
	next := make([]geom.Point, len(s.pts))
	next[0] = newHead
	copy(next[1:], bodyWithoutTail)
	return Snake{pts: next}, nil
}

// Key returns a packed, comparable representation of the pose suitable as a
// map key for closed sets and cameFrom tables. Each coordinate is offset by
// +2 and stored as one byte, giving a representable range of [-2, 253] per
// axis; grid dimensions this routine will ever see are far smaller.
func (s Snake) Key() string {
	buf := make([]byte, 2*len(s.pts))
	for i, p := range s.pts {
		buf[2*i] = byte(p.X + packedOffset)
		buf[2*i+1] = byte(p.Y + packedOffset)
	}
	return string(buf)
}
