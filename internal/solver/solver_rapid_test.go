package solver_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/ghsnake/routesolver/internal/geom"
	"github.com/ghsnake/routesolver/internal/grid"
	"github.com/ghsnake/routesolver/internal/snake"
	"github.com/ghsnake/routesolver/internal/solver"
)

// routeDump renders a route as one "x,y" pair per line, for a readable
// diff when a determinism check fails.
func routeDump(r *solver.Route) string {
	s := ""
	for _, pose := range r.Poses {
		h := pose.Head()
		s += fmt.Sprintf("%d,%d\n", h.X, h.Y)
	}
	return s
}

func TestSolveDeterministicAcrossRandomGrids(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := rapid.IntRange(1, 6).Draw(t, "w")
		h := rapid.IntRange(1, 6).Draw(t, "h")
		rows := make([][]int, h)
		for y := range rows {
			rows[y] = make([]int, w)
			for x := range rows[y] {
				rows[y][x] = rapid.IntRange(0, 4).Draw(t, "color")
			}
		}
		startX := rapid.IntRange(0, w-1).Draw(t, "startX")
		startY := rapid.IntRange(0, h-1).Draw(t, "startY")

		g1, err := grid.New(rows)
		require.NoError(t, err)
		g2, err := grid.New(rows)
		require.NoError(t, err)

		s1, err := snake.New([]geom.Point{{X: startX, Y: startY}})
		require.NoError(t, err)
		s2, err := snake.New([]geom.Point{{X: startX, Y: startY}})
		require.NoError(t, err)

		route1, err1 := solver.Solve(context.Background(), g1, s1)
		route2, err2 := solver.Solve(context.Background(), g2, s2)

		if err1 != nil || err2 != nil {
			// An isolated pocket with no tunnel out is a legitimate
			// Unreachable/NoReturn outcome for some random grids; what
			// matters here is that both runs agree on the outcome.
			require.Equal(t, err1 == nil, err2 == nil)
			return
		}

		if len(route1.Poses) != len(route2.Poses) {
			dmp := diffmatchpatch.New()
			diffs := dmp.DiffMain(routeDump(route1), routeDump(route2), false)
			t.Fatalf("routes diverged:\n%s", dmp.DiffPrettyText(diffs))
		}
		for i := range route1.Poses {
			if route1.Poses[i].Key() != route2.Poses[i].Key() {
				dmp := diffmatchpatch.New()
				diffs := dmp.DiffMain(routeDump(route1), routeDump(route2), false)
				t.Fatalf("pose %d diverged:\n%s", i, dmp.DiffPrettyText(diffs))
			}
		}
	})
}
