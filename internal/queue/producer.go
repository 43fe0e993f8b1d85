package queue

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/redis/go-redis/v9"
)

type Entity string

const (
	EntityKeyword          Entity = "keyword"
	EntityAutomationConfig Entity = "automation_config"
)

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionToggled Action = "toggled"
	ActionDeleted Action = "deleted"
)

// ChangeEvent tells the automation engine that one of a user's rows changed.
// It carries identifiers only; the engine re-reads the row itself.
type ChangeEvent struct {
	UserID   int64
	EntityID int64
	Entity   Entity
	Action   Action
	TraceID  string
}

type Producer interface {
	Publish(ctx context.Context, event ChangeEvent) error
	Close() error
}

// streamWriter is the slice of *redis.Client the producer needs.
type streamWriter interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
	Close() error
}

type redisProducer struct {
	client streamWriter
	stream string
	maxLen int64
	logger *slog.Logger
}

func NewRedisProducer(client streamWriter, stream string, maxLen int64, logger *slog.Logger) Producer {
	if logger == nil {
		logger = slog.Default()
	}
	return &redisProducer{
		client: client,
		stream: stream,
		maxLen: maxLen,
		logger: logger,
	}
}

func (p *redisProducer) Publish(ctx context.Context, event ChangeEvent) error {
	fields := map[string]any{
		"user_id":   strconv.FormatInt(event.UserID, 10),
		"entity":    string(event.Entity),
		"entity_id": strconv.FormatInt(event.EntityID, 10),
		"action":    string(event.Action),
	}
	if event.TraceID != "" {
		fields["trace_id"] = event.TraceID
	}

	args := &redis.XAddArgs{
		Stream: p.stream,
		Values: fields,
	}
	if p.maxLen > 0 {
		args.MaxLen = p.maxLen
		args.Approx = true
	}

	msgID, err := p.client.XAdd(ctx, args).Result()
	if err != nil {
		return fmt.Errorf("publish change event: %w", err)
	}

	p.logger.DebugContext(ctx, "change event published",
		"stream", p.stream,
		"message_id", msgID,
		"entity", event.Entity,
		"entity_id", event.EntityID,
		"action", event.Action,
	)
	return nil
}

func (p *redisProducer) Close() error {
	return p.client.Close()
}

// NopProducer drops every event. Used when no Redis is configured.
type NopProducer struct{}

func (NopProducer) Publish(context.Context, ChangeEvent) error { return nil }
func (NopProducer) Close() error                               { return nil }
