package outside_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghsnake/routesolver/internal/geom"
	"github.com/ghsnake/routesolver/internal/grid"
	"github.com/ghsnake/routesolver/internal/outside"
)

func TestRegionOpenGrid(t *testing.T) {
	g, err := grid.New([][]int{
		{0, 0, 0},
		{0, 0, 0},
	})
	require.NoError(t, err)

	region := outside.Build(g)
	assert.True(t, region.Contains(geom.Point{X: 0, Y: 0}))
	assert.True(t, region.Contains(geom.Point{X: 2, Y: 1}))
	assert.True(t, region.Contains(geom.Point{X: -2, Y: -2}))
}

func TestRegionWallBlocksFlood(t *testing.T) {
	g, err := grid.New([][]int{
		{1, 1, 1},
		{0, 0, 0},
	})
	require.NoError(t, err)

	region := outside.Build(g)
	assert.False(t, region.Contains(geom.Point{X: 1, Y: 0}))
	assert.True(t, region.Contains(geom.Point{X: 1, Y: 1}))
}
