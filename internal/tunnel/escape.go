package tunnel

import (
	"context"

	"github.com/ghsnake/routesolver/internal/errs"
	"github.com/ghsnake/routesolver/internal/geom"
	"github.com/ghsnake/routesolver/internal/grid"
	"github.com/ghsnake/routesolver/internal/outside"
	"github.com/ghsnake/routesolver/internal/snake"
)

// escapePath breadth-first searches from start to the nearest pose whose
// head lies in the outside region, while permanently forbidding the head
// from ever landing back on blocked (the tunnel's own starting cell) — a
// tunnel that doubled back through its own entry point would not actually
// escape anywhere.
func escapePath(ctx context.Context, g *grid.Grid, region *outside.Region, start snake.Snake, maxColor int, blocked geom.Point) ([]snake.Snake, error) {
	if region.Contains(start.Head()) {
		return []snake.Snake{start}, nil
	}

	visited := map[string]bool{start.Key(): true}
	cameFrom := map[string]snake.Snake{}
	frontier := []snake.Snake{start}

	for len(frontier) > 0 {
		select {
		case <-ctx.Done():
			return nil, errs.Wrap("tunnel.escapePath", errs.KindCancelled, ctx.Err(), nil)
		default:
		}

		var next []snake.Snake
		for _, pose := range frontier {
			for _, d := range geom.Directions {
				succ, err := pose.Advance(d)
				if err != nil {
					continue
				}
				head := succ.Head()
				if head == blocked {
					continue
				}
				c, err := g.AtOrEmpty(head)
				if err != nil {
					continue // corrupted cell; treat as impassable
				}
				if c > maxColor && !region.Contains(head) {
					continue
				}
				key := succ.Key()
				if visited[key] {
					continue
				}
				visited[key] = true
				cameFrom[key] = pose

				if region.Contains(head) {
					return reconstructFrom(cameFrom, start, succ), nil
				}
				next = append(next, succ)
			}
		}
		frontier = next
	}

	return nil, errs.New("tunnel.escapePath", errs.KindUnreachable, map[string]any{
		"from": start.Head(),
	})
}

func reconstructFrom(cameFrom map[string]snake.Snake, start, goal snake.Snake) []snake.Snake {
	path := []snake.Snake{goal}
	cur := goal
	for cur.Key() != start.Key() {
		prev, ok := cameFrom[cur.Key()]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
