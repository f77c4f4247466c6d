package search

import (
	"context"

	"github.com/ghsnake/routesolver/internal/errs"
	"github.com/ghsnake/routesolver/internal/geom"
	"github.com/ghsnake/routesolver/internal/grid"
	"github.com/ghsnake/routesolver/internal/outside"
	"github.com/ghsnake/routesolver/internal/snake"
)

// readingBefore reports whether a comes before b in reading order (X outer,
// Y inner), matching grid.ReadingOrder, used to break BFS depth ties
// deterministically.
func readingBefore(a, b geom.Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

// NearestColor performs a breadth-first search over poses reachable while
// obeying maxColor, stopping at the shallowest depth where some pose's head
// sits on a cell of exactly targetColor. Among equally-shallow candidates,
// the one whose head comes first in reading order (X outer, Y inner) wins,
// keeping the result deterministic regardless of map iteration order.
func NearestColor(ctx context.Context, g *grid.Grid, region *outside.Region, start snake.Snake, maxColor, targetColor int) ([]snake.Snake, error) {
	startColor, err := g.AtOrEmpty(start.Head())
	if err != nil {
		return nil, errs.Wrap("search.NearestColor", errs.KindCorruption, err, nil)
	}
	if startColor == targetColor {
		return []snake.Snake{start}, nil
	}

	type frontierEntry struct {
		pose snake.Snake
	}

	visited := map[string]bool{start.Key(): true}
	cameFrom := map[string]snake.Snake{}
	frontier := []frontierEntry{{pose: start}}

	for len(frontier) > 0 {
		select {
		case <-ctx.Done():
			return nil, errs.Wrap("search.NearestColor", errs.KindCancelled, ctx.Err(), nil)
		default:
		}

		var next []frontierEntry
		var goalCandidates []snake.Snake

		for _, entry := range frontier {
			for _, d := range geom.Directions {
				succ, err := entry.pose.Advance(d)
				if err != nil {
					continue
				}
				head := succ.Head()
				headColor, err := g.AtOrEmpty(head)
				if err != nil {
					continue // corrupted cell; treat as impassable
				}
				validMove := headColor <= maxColor || region.Contains(head) || headColor == targetColor
				if !validMove {
					continue
				}
				key := succ.Key()
				if visited[key] {
					continue
				}
				visited[key] = true
				cameFrom[key] = entry.pose

				if headColor == targetColor {
					goalCandidates = append(goalCandidates, succ)
					continue // don't expand further past a goal pose
				}
				next = append(next, frontierEntry{pose: succ})
			}
		}

		if len(goalCandidates) > 0 {
			best := goalCandidates[0]
			for _, c := range goalCandidates[1:] {
				if readingBefore(c.Head(), best.Head()) {
					best = c
				}
			}
			return reconstruct(cameFrom, best), nil
		}

		frontier = next
	}

	return nil, errs.New("search.NearestColor", errs.KindUnreachable, map[string]any{
		"from": start.Head(), "targetColor": targetColor,
	})
}
