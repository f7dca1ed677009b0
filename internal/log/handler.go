package log

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// maskedKeys contains attribute keys that always have their value masked.
// These keys carry credentials that must never reach log output, even in
// verbose mode, because logs get shared and stored.
var maskedKeys = map[string]bool{
	// Search API credential
	"x-subscription-token": true,
	"subscription_token":   true,

	// Generic credentials
	"api_key":       true,
	"apikey":        true,
	"api-key":       true,
	"authorization": true,
	"cookie":        true,
	"set-cookie":    true,
	"token":         true,
	"secret":        true,
	"password":      true,
}

// MaskValue is the string used to replace masked values.
const MaskValue = "***REDACTED***"

// DefaultMaxValueLen is the maximum length of a logged attribute value
// before truncation. Fetched page bodies run to megabytes; a log line
// needs at most the head of one.
const DefaultMaxValueLen = 512

// Handler wraps an slog.Handler to mask credentials and truncate
// oversized values before records reach the underlying handler.
//
// Design decision: We use a handler wrapper rather than a custom logger
// because:
//  1. It integrates seamlessly with standard slog APIs
//  2. It works with any underlying handler (text, JSON, etc.)
//  3. Components only ever see a plain *slog.Logger
type Handler struct {
	// handler is the underlying slog handler that receives cleaned records.
	handler slog.Handler

	// maxValueLen is the truncation threshold for string values.
	maxValueLen int
}

// NewHandler creates a Handler wrapping the given handler.
// If handler is nil, slog.Default().Handler() is used.
func NewHandler(handler slog.Handler) *Handler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &Handler{handler: handler, maxValueLen: DefaultMaxValueLen}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle cleans the record's attributes and passes it on.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	cleaned := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		cleaned.AddAttrs(h.cleanAttr(a))
		return true
	})

	return h.handler.Handle(ctx, cleaned)
}

// WithAttrs returns a new handler with the given attributes added.
// Attributes are cleaned before being added.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	cleaned := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		cleaned[i] = h.cleanAttr(a)
	}
	return &Handler{handler: h.handler.WithAttrs(cleaned), maxValueLen: h.maxValueLen}
}

// WithGroup returns a new handler with the given group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{handler: h.handler.WithGroup(name), maxValueLen: h.maxValueLen}
}

// cleanAttr masks credential keys and truncates oversized string values,
// recursively handling groups.
func (h *Handler) cleanAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		cleaned := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			cleaned[i] = h.cleanAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(cleaned...)}
	}

	if maskedKeys[strings.ToLower(a.Key)] {
		return slog.String(a.Key, MaskValue)
	}

	if a.Value.Kind() == slog.KindString {
		if v := a.Value.String(); len(v) > h.maxValueLen {
			return slog.String(a.Key, v[:h.maxValueLen]+"...(truncated)")
		}
	}

	return a
}

// NewLogger creates a *slog.Logger with credential masking and value
// truncation, writing text output to w. Verbose selects Debug level,
// otherwise only warnings and errors are logged.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	textHandler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(NewHandler(textHandler))
}
