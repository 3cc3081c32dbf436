package redisad

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"hotel_booking/internal/adapters/observability"
	"hotel_booking/internal/domain"
)

// EventLog appends domain events to a Redis list: an append-only record
// written on hotel creation only, never read back by the API and never
// reconciled with updates or deletes.
type EventLog struct {
	c   *redis.Client
	key string
}

func New(addr, pass string, db int, key string) *EventLog {
	return &EventLog{
		c:   redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}),
		key: key,
	}
}

// NewWithClient exists for tests backed by miniredis.
func NewWithClient(c *redis.Client, key string) *EventLog {
	return &EventLog{c: c, key: key}
}

func (l *EventLog) Append(ctx context.Context, e domain.Event) error {
	b, err := json.Marshal(e)
	if err != nil {
		observability.ObserveEvent(err)
		return err
	}
	err = l.c.RPush(ctx, l.key, b).Err()
	observability.ObserveEvent(err)
	return err
}
