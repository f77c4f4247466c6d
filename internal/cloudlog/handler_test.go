package cloudlog_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghsnake/routesolver/internal/cloudlog"
)

func TestHandleEmitsSeverityAndMessage(t *testing.T) {
	var buf bytes.Buffer
	h := cloudlog.New(&buf, slog.LevelInfo)
	logger := slog.New(h)

	logger.Info("route solved", "cells", 42)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["severity"])
	assert.Equal(t, "route solved", entry["message"])
	assert.EqualValues(t, 42, entry["cells"])
}

func TestEnabledRespectsLevel(t *testing.T) {
	h := cloudlog.New(&bytes.Buffer{}, slog.LevelWarn)
	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}

func TestWithAttrsMergesIntoEntry(t *testing.T) {
	var buf bytes.Buffer
	h := cloudlog.New(&buf, slog.LevelInfo).WithAttrs([]slog.Attr{slog.String("run_id", "abc")})
	logger := slog.New(h)

	logger.Info("starting")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "abc", entry["run_id"])
}
