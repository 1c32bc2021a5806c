package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// RawHandler writes the message followed by space separated key=value pairs, without time or level.
type RawHandler struct {
	writer io.Writer
	mu     *sync.Mutex
	level  slog.Level
	// prefix is prepended to the keys of record attributes.
	prefix string
	// attrs holds the already formatted handler attributes.
	attrs string
}

// NewRawHandler creates a new RawHandler.
func NewRawHandler(w io.Writer, opts *slog.HandlerOptions) *RawHandler {
	level := slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level.Level()
	}
	return &RawHandler{writer: w, mu: &sync.Mutex{}, level: level}
}

// Enabled reports whether the handler handles records at the given level.
func (h *RawHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle writes a single line for r.
func (h *RawHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Message)
	b.WriteString(h.attrs)
	r.Attrs(func(attr slog.Attr) bool {
		appendRawAttr(&b, h.prefix, attr)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.writer, b.String())
	return err
}

// WithAttrs returns a handler that writes attrs under the current group.
func (h *RawHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var b strings.Builder
	b.WriteString(h.attrs)
	for _, attr := range attrs {
		appendRawAttr(&b, h.prefix, attr)
	}
	h2 := *h
	h2.attrs = b.String()
	return &h2
}

// WithGroup returns a handler that prefixes subsequent keys with name.
func (h *RawHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.prefix = h.prefix + name + "."
	return &h2
}

func appendRawAttr(b *strings.Builder, prefix string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}
	if attr.Value.Kind() == slog.KindGroup {
		if attr.Key != "" {
			prefix += attr.Key + "."
		}
		for _, ga := range attr.Value.Group() {
			appendRawAttr(b, prefix, ga)
		}
		return
	}
	fmt.Fprintf(b, " %s%s=%v", prefix, attr.Key, attr.Value)
}
