package render_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghsnake/routesolver/internal/geom"
	"github.com/ghsnake/routesolver/internal/grid"
	"github.com/ghsnake/routesolver/internal/render"
	"github.com/ghsnake/routesolver/internal/snake"
	"github.com/ghsnake/routesolver/internal/solver"
)

func solvedRoute(t *testing.T) (*grid.Grid, *solver.Route) {
	t.Helper()
	original, err := grid.New([][]int{
		{0, 1, 2},
		{0, 1, 0},
	})
	require.NoError(t, err)
	work := original.Clone()
	start, err := snake.New([]geom.Point{{X: 0, Y: 0}})
	require.NoError(t, err)
	route, err := solver.Solve(context.Background(), work, start)
	require.NoError(t, err)
	return original, route
}

func TestSVGProducesNonEmptyMarkup(t *testing.T) {
	original, route := solvedRoute(t)
	var buf bytes.Buffer
	id := render.SVG(&buf, original, route)

	assert.NotEmpty(t, id)
	assert.Contains(t, buf.String(), "<svg")
	assert.Contains(t, buf.String(), "keyframes appear")
}

func TestPNGEncodesValidImage(t *testing.T) {
	original, route := solvedRoute(t)
	var buf bytes.Buffer
	err := render.PNG(&buf, original, route)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")))
}
