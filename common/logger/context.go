package logger

import (
	"context"
	"log/slog"
)

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields are attached to every log record emitted with a context that carries them.
type LogFields struct {
	UserID    *int64
	KeywordID *int64
	SessionID *int64
	Component string // e.g. "replyflow.service.automation"
}

// WithLogFields enriches ctx with fields. Newer non-nil values win over existing ones.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	merged := mergeFields(GetLogFields(ctx), fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, next LogFields) LogFields {
	result := existing

	if next.UserID != nil {
		result.UserID = next.UserID
	}
	if next.KeywordID != nil {
		result.KeywordID = next.KeywordID
	}
	if next.SessionID != nil {
		result.SessionID = next.SessionID
	}
	if next.Component != "" {
		result.Component = next.Component
	}

	return result
}

func (f LogFields) attrs() []slog.Attr {
	var attrs []slog.Attr
	if f.UserID != nil {
		attrs = append(attrs, slog.Int64("user_id", *f.UserID))
	}
	if f.KeywordID != nil {
		attrs = append(attrs, slog.Int64("keyword_id", *f.KeywordID))
	}
	if f.SessionID != nil {
		attrs = append(attrs, slog.Int64("session_id", *f.SessionID))
	}
	if f.Component != "" {
		attrs = append(attrs, slog.String("component", f.Component))
	}
	return attrs
}

// Ptr returns a pointer to v, for inline LogFields literals.
func Ptr[T any](v T) *T {
	return &v
}

// Mask hides all but the last four characters of a secret.
func Mask(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return "****"
	}
	return "****" + s[len(s)-4:]
}
