package redisad

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"hotel_booking/internal/domain"
)

func TestAppend(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	log := NewWithClient(c, "hotel_events")

	ev := domain.Event{
		Type: domain.EventHotelCreated,
		Hotel: domain.Hotel{
			Name:       "Le Grand Pavois",
			StarRating: 4,
			Active:     true,
		},
		At: time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, log.Append(context.Background(), ev))
	require.NoError(t, log.Append(context.Background(), ev))

	items, err := mr.List("hotel_events")
	require.NoError(t, err)
	require.Len(t, items, 2, "appends accumulate, nothing is overwritten")

	var got domain.Event
	require.NoError(t, json.Unmarshal([]byte(items[0]), &got))
	require.Equal(t, domain.EventHotelCreated, got.Type)
	require.Equal(t, "Le Grand Pavois", got.Hotel.Name)
}

func TestAppend_StoreDown(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	log := NewWithClient(c, "hotel_events")
	mr.Close()

	err := log.Append(context.Background(), domain.Event{Type: domain.EventHotelCreated})
	require.Error(t, err, "callers treat this as best-effort and log it")
}
