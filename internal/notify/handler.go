// Package notify carries every outward-facing side effect a finished game
// triggers: structured logging in Cloud Run's expected shape, a Discord
// recap, a Tidbyt push, and uploading the recap GIF and any game secrets.
package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"
)

// CloudHandler is a slog.Handler that emits one JSON object per line in the
// shape Google Cloud Logging's ingestion expects (a "severity" field
// instead of slog's numeric level).
type CloudHandler struct {
	writer     *os.File
	level      slog.Level
	extraAttrs map[string]any
}

// NewCloudHandler builds a handler writing to w, emitting records at level and above.
func NewCloudHandler(w *os.File, level slog.Level) *CloudHandler {
	return &CloudHandler{writer: w, level: level}
}

func (h *CloudHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *CloudHandler) Handle(_ context.Context, r slog.Record) error {
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

func (h *CloudHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
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

func (h *CloudHandler) WithGroup(string) slog.Handler {
	return h
}

func severity(level slog.Level) string {
	switch level {
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARNING"
	case slog.LevelError:
		return "ERROR"
	case slog.LevelDebug:
		return "DEBUG"
	default:
		return "DEFAULT"
	}
}
