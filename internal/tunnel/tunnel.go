// Package tunnel implements Phase A of the solver: finding a path that
// enters a cluster of cells at the current color level, eats a run of them,
// and escapes back out to the open region, scored so the solver can prefer
// the tunnel that clears the most "debt" (lower-colored cells passed over
// on the way) per cell of current-level color consumed.
package tunnel

import (
	"context"

	"github.com/ghsnake/routesolver/internal/errs"
	"github.com/ghsnake/routesolver/internal/geom"
	"github.com/ghsnake/routesolver/internal/grid"
	"github.com/ghsnake/routesolver/internal/outside"
	"github.com/ghsnake/routesolver/internal/search"
	"github.com/ghsnake/routesolver/internal/snake"
)

// Candidate is one scored tunnel: an entry path from the solver's current
// pose to the tunnel's starting cell, a consumed run of colored cells, and
// an exit run back to the outside region. Consumed and Exit share their
// boundary pose (the last consumed cell is also the first exit cell) so a
// caller can walk Entry, then Consumed[1:], then Exit[1:] without repeating
// a pose.
type Candidate struct {
	Start       geom.Point
	Entry       []snake.Snake
	Consumed    []snake.Snake
	Exit        []snake.Snake
	Priority    float64
	Length      int
	HasResidual bool // true iff Consumed contains a cell colored below level
}

// Discover scans every cell with color in [1, level], in reading order (X
// outer, Y inner), and returns the highest-priority tunnel starting from
// one of them that consumes at least one residual cell (color < level) on
// its way out, reachable from current. A tunnel that only ever touches
// cells of exactly level — no residual — is left for Phase B's BFS instead
// (§4.6): mixing in lower-colored cells along the way is the entire reason
// Phase A exists, so a pure same-color run isn't a Phase A candidate at
// all. Ties in priority are broken by preferring the longer tunnel
// (Consumed+Exit length); remaining ties keep whichever candidate was
// found first, i.e. earliest in reading order. It returns a NotFound error
// if no cell at this level has a viable residual-bearing tunnel.
func Discover(ctx context.Context, g *grid.Grid, region *outside.Region, current snake.Snake, level int) (*Candidate, error) {
	var best *Candidate

	var scanErr error
	g.ReadingOrder(func(p geom.Point) {
		if scanErr != nil {
			return
		}
		c, err := g.At(p)
		if err != nil {
			scanErr = err
			return
		}
		if c < 1 || c > level {
			return
		}
		select {
		case <-ctx.Done():
			scanErr = errs.Wrap("tunnel.Discover", errs.KindCancelled, ctx.Err(), nil)
			return
		default:
		}

		cand, err := evaluate(ctx, g, region, current, p, level)
		if err != nil {
			if errs.Is(err, errs.KindCancelled) {
				scanErr = err
			}
			return // otherwise this starting cell has no viable tunnel; try the next
		}
		if !cand.HasResidual {
			return // a pure same-color run belongs to Phase B, not Phase A
		}
		if best == nil || better(cand, best) {
			best = cand
		}
	})
	if scanErr != nil {
		return nil, scanErr
	}
	if best == nil {
		return nil, errs.New("tunnel.Discover", errs.KindNotFound, map[string]any{"level": level})
	}
	return best, nil
}

func better(a, b *Candidate) bool {
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	return a.Length > b.Length
}

func evaluate(ctx context.Context, g *grid.Grid, region *outside.Region, current snake.Snake, start geom.Point, level int) (*Candidate, error) {
	entry, err := search.AStar(ctx, g, region, current, start, level)
	if err != nil {
		return nil, err
	}
	poseAtStart := entry[len(entry)-1]

	escape, err := escapePath(ctx, g, region, poseAtStart, level, start)
	if err != nil {
		return nil, err
	}

	lastColored := -1
	for i, pose := range escape {
		c, err := g.AtOrEmpty(pose.Head())
		if err != nil {
			return nil, errs.Wrap("tunnel.evaluate", errs.KindCorruption, err, map[string]any{"start": start})
		}
		if c > 0 {
			lastColored = i
		}
	}
	if lastColored < 0 {
		// start itself is colored (level > 0 by construction), so this
		// should be unreachable; treat as no viable tunnel defensively.
		return nil, errs.New("tunnel.evaluate", errs.KindCorruption, map[string]any{"start": start})
	}

	consumed := escape[:lastColored+1]
	exit := escape[lastColored:]

	delta := 0
	nColor := 0
	for _, pose := range consumed {
		c, err := g.AtOrEmpty(pose.Head())
		if err != nil {
			return nil, errs.Wrap("tunnel.evaluate", errs.KindCorruption, err, map[string]any{"start": start})
		}
		if c == level {
			nColor++
		} else if c > 0 && c < level {
			delta += level - c
		}
	}

	return &Candidate{
		Start:       start,
		Entry:       entry,
		Consumed:    consumed,
		Exit:        exit,
		Priority:    float64(delta+1) / float64(nColor+1),
		Length:      len(consumed) + len(exit) - 1,
		HasResidual: delta > 0,
	}, nil
}
