package solver

import (
	"context"

	"github.com/ghsnake/routesolver/internal/errs"
	"github.com/ghsnake/routesolver/internal/grid"
	"github.com/ghsnake/routesolver/internal/outside"
	"github.com/ghsnake/routesolver/internal/search"
	"github.com/ghsnake/routesolver/internal/snake"
	"github.com/ghsnake/routesolver/internal/tunnel"
)

// Solve mutates g in place, clearing every cell the route passes over, and
// returns the full closed route: start, every consumed cell in between,
// and a final leg back to start's exact pose. Callers that need the original
// colors for rendering should clone g before calling Solve.
//
// Cancelling ctx returns the partial route built so far wrapped in a
// Cancelled error; any other failure (no tunnel/BFS path, no way back to
// start) returns the partial route too.
func Solve(ctx context.Context, g *grid.Grid, start snake.Snake) (*Route, error) {
	route := &Route{Poses: []snake.Snake{start}}
	current := start

	maxColor := g.MaxColor()
	for level := maxColor; level >= 1; level-- {
		for {
			if err := ctx.Err(); err != nil {
				return route, newError("solver.Solve", errs.KindCancelled, err, route, map[string]any{"phase": "A", "level": level})
			}

			region := outside.Build(g)
			cand, err := tunnel.Discover(ctx, g, region, current, level)
			if err != nil {
				if errs.Is(err, errs.KindNotFound) {
					break // no more tunnels at this level; fall through to Phase B
				}
				kind := errs.KindUnreachable
				if errs.Is(err, errs.KindCancelled) {
					kind = errs.KindCancelled
				}
				return route, newError("solver.Solve", kind, err, route, map[string]any{"phase": "A", "level": level})
			}

			full := appendPath(appendPath(cand.Entry, cand.Consumed), cand.Exit)
			current = consume(g, route, full)
		}

		for g.CountColor(level) > 0 {
			if err := ctx.Err(); err != nil {
				return route, newError("solver.Solve", errs.KindCancelled, err, route, map[string]any{"phase": "B", "level": level})
			}

			region := outside.Build(g)
			path, err := search.NearestColor(ctx, g, region, current, 0, level)
			if err != nil {
				kind := errs.KindUnreachable
				if errs.Is(err, errs.KindCancelled) {
					kind = errs.KindCancelled
				}
				return route, newError("solver.Solve", kind, err, route, map[string]any{"phase": "B", "level": level})
			}
			current = consume(g, route, path)
		}
	}

	region := outside.Build(g)
	home, err := search.AStarToPose(ctx, g, region, current, start, 0)
	if err != nil {
		return route, newError("solver.Solve", errs.KindNoReturn, err, route, nil)
	}
	consume(g, route, home)

	return route, nil
}

// appendPath joins two pose sequences that share a boundary pose (a's last
// pose equals b's first), dropping the duplicate.
func appendPath(a, b []snake.Snake) []snake.Snake {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make([]snake.Snake, 0, len(a)+len(b)-1)
	out = append(out, a...)
	out = append(out, b[1:]...)
	return out
}

// consume appends path (minus its shared first pose, already the route's
// last entry) to route, clearing every non-empty cell the head passes
// over, the first pose's head included, and returns the new current pose.
func consume(g *grid.Grid, route *Route, path []snake.Snake) snake.Snake {
	for i, pose := range path {
		if c, err := g.AtOrEmpty(pose.Head()); err == nil && c > 0 {
			_ = g.Clear(pose.Head())
		}
		if i > 0 {
			route.Poses = append(route.Poses, pose)
		}
	}
	return path[len(path)-1]
}
