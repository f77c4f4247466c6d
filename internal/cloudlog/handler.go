// Package cloudlog provides a slog.Handler that emits Cloud-Logging-shaped
// JSON, adapted from the project's earlier Battlesnake service so the CLI
// keeps the same log shape in its new home.
package cloudlog

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"time"
)

// Handler writes one JSON object per record, with a "severity" field
// Google Cloud Logging recognizes.
type Handler struct {
	writer     io.Writer
	level      slog.Level
	extraAttrs map[string]any
}

// New creates a Handler writing to w, emitting records at level and above.
func New(w io.Writer, level slog.Level) *Handler {
	return &Handler{writer: w, level: level}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	attrs := map[string]any{}
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})
	for k, v := range h.extraAttrs {
		attrs[k] = v
	}

	entry := map[string]any{
		"severity": severity(r.Level),
		"message":  r.Message,
		"time":     time.Now().Format(time.RFC3339Nano),
	}
	for k, v := range attrs {
		entry[k] = v
	}

	return json.NewEncoder(h.writer).Encode(entry)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.extraAttrs = make(map[string]any, len(h.extraAttrs)+len(attrs))
	for k, v := range h.extraAttrs {
		next.extraAttrs[k] = v
	}
	for _, a := range attrs {
		next.extraAttrs[a.Key] = a.Value.Any()
	}
	return &next
}

func (h *Handler) WithGroup(name string) slog.Handler {
	// Groups aren't nested into the flat Cloud Logging shape; the handler
	// is returned unchanged, matching the original implementation.
	return h
}

func severity(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARNING"
	case slog.LevelError:
		return "ERROR"
	default:
		return "DEFAULT"
	}
}
