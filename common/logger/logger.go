package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/trace"

	"replyflow.app/api/core/config"
)

func Setup(cfg config.Config) {
	slog.SetDefault(slog.New(NewHandler(cfg, os.Stdout)))
}

// NewHandler picks the handler for cfg: the OTel bridge in production when an
// exporter is configured, JSON in production otherwise, text everywhere else.
func NewHandler(cfg config.Config, w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: Level(cfg)}

	switch {
	case cfg.IsProduction() && cfg.OTel.Enabled():
		// The bridge reads the span itself; only the context fields are added.
		return &TraceHandler{
			Handler: otelslog.NewHandler(
				cfg.OTel.ServiceName,
				otelslog.WithLoggerProvider(global.GetLoggerProvider()),
			),
			skipTrace: true,
		}
	case cfg.IsProduction():
		return NewTraceHandler(slog.NewJSONHandler(w, opts))
	default:
		return NewTraceHandler(slog.NewTextHandler(w, opts))
	}
}

// Level honours LOG_LEVEL, falling back to debug in development and info
// elsewhere.
func Level(cfg config.Config) slog.Level {
	var level slog.Level
	if cfg.LogLevel != "" && level.UnmarshalText([]byte(strings.TrimSpace(cfg.LogLevel))) == nil {
		return level
	}
	if cfg.IsDevelopment() {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// TraceHandler decorates records with trace ids and the context's LogFields.
type TraceHandler struct {
	slog.Handler
	skipTrace bool
}

func NewTraceHandler(h slog.Handler) *TraceHandler {
	return &TraceHandler{Handler: h}
}

func (h *TraceHandler) Handle(ctx context.Context, r slog.Record) error {
	if !h.skipTrace {
		if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
			r.AddAttrs(
				slog.String("trace_id", sc.TraceID().String()),
				slog.String("span_id", sc.SpanID().String()),
			)
		}
	}
	r.AddAttrs(GetLogFields(ctx).attrs()...)
	return h.Handler.Handle(ctx, r)
}

func (h *TraceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &TraceHandler{Handler: h.Handler.WithAttrs(attrs), skipTrace: h.skipTrace}
}

func (h *TraceHandler) WithGroup(name string) slog.Handler {
	return &TraceHandler{Handler: h.Handler.WithGroup(name), skipTrace: h.skipTrace}
}
