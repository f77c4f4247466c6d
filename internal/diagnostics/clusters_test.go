package diagnostics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghsnake/routesolver/internal/diagnostics"
	"github.com/ghsnake/routesolver/internal/grid"
)

func TestAnalyzeFindsIsolatedCell(t *testing.T) {
	g, err := grid.New([][]int{
		{0, 0, 0, 0, 0},
		{0, 9, 9, 9, 0},
		{0, 9, 3, 9, 0},
		{0, 9, 9, 9, 0},
		{0, 0, 0, 0, 0},
	})
	require.NoError(t, err)

	report, err := diagnostics.Analyze(g)
	require.NoError(t, err)

	assert.Contains(t, report.IsolatedColors(), 3)

	var ringSize int
	for _, c := range report.Clusters {
		if c.Color == 9 {
			ringSize = c.Size
		}
	}
	assert.Equal(t, 8, ringSize)
}

func TestAnalyzeEmptyGridHasNoClusters(t *testing.T) {
	g, err := grid.New([][]int{{0, 0}, {0, 0}})
	require.NoError(t, err)

	report, err := diagnostics.Analyze(g)
	require.NoError(t, err)
	assert.Empty(t, report.Clusters)
}
