package calendar_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghsnake/routesolver/internal/calendar"
)

func TestFileFetcherDecodesDocument(t *testing.T) {
	doc := calendar.Document{
		Width: 2, Height: 2,
		Cells: []calendar.Cell{
			{X: 0, Y: 0, Color: 1},
			{X: 1, Y: 1, Color: 3},
		},
	}
	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "cells.json")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	got, err := calendar.FileFetcher{Path: path}.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestToColorsPlacesCellsByCoordinate(t *testing.T) {
	doc := calendar.Document{
		Width: 3, Height: 2,
		Cells: []calendar.Cell{{X: 2, Y: 1, Color: 4}},
	}
	colors := doc.ToColors()
	assert.Equal(t, 4, colors[1][2])
	assert.Equal(t, 0, colors[0][0])
}

func TestFileFetcherMissingFile(t *testing.T) {
	_, err := calendar.FileFetcher{Path: "/nonexistent/path.json"}.Fetch(context.Background())
	assert.Error(t, err)
}
