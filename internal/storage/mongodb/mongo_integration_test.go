//go:build integration

package mongodb

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"hotel_booking/internal/domain"
)

func startMongo(t *testing.T) *mongo.Database {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "dockertest")

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mongo",
		Tag:        "7.0",
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "run mongo")
	t.Cleanup(func() { _ = pool.Purge(resource) })

	uri := fmt.Sprintf("mongodb://127.0.0.1:%s", resource.GetPort("27017/tcp"))

	var client *mongo.Client
	require.NoError(t, pool.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		var e error
		client, e = Connect(ctx, uri)
		return e
	}), "connect mongo")
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	return client.Database("hotel_booking_test")
}

func seedHotel(name, city string, stars int, active bool) domain.Hotel {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return domain.Hotel{
		Name: name,
		Address: domain.Address{
			Street:     "1 rue Principale",
			City:       city,
			PostalCode: "00000",
			Country:    "France",
		},
		Phone:      "+33 1 00 00 00 00",
		Email:      "contact@example.fr",
		StarRating: stars,
		Active:     active,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestHotelRepo_CRUDAndFilters(t *testing.T) {
	db := startMongo(t)
	repo := NewHotelRepo(db)
	ctx := context.Background()

	names := []string{"A", "B", "C", "D", "E"}
	for _, n := range names {
		_, err := repo.Insert(ctx, seedHotel(n, "Marseille", 3, true))
		require.NoError(t, err)
	}
	_, err := repo.Insert(ctx, seedHotel("Dormant", "Marseille", 3, false))
	require.NoError(t, err)

	active := true

	// substring, case-insensitive
	got, total, err := repo.List(ctx, domain.HotelFilter{
		City:   ptr("marsei"),
		Active: &active,
		Page:   domain.DefaultPage(),
	})
	require.NoError(t, err)
	require.EqualValues(t, 5, total, "inactive hotel is filtered out")
	require.Len(t, got, 5)

	// limit=2&page=2 over 5 matches returns documents 3-4 in store order
	page2, total, err := repo.List(ctx, domain.HotelFilter{
		Active: &active,
		Page:   domain.Page{Number: 2, Limit: 2},
	})
	require.NoError(t, err)
	require.EqualValues(t, 5, total)
	require.Len(t, page2, 2)
	require.Equal(t, "C", page2[0].Name)
	require.Equal(t, "D", page2[1].Name)

	// update merges only the given fields
	updated, err := repo.Update(ctx, page2[0].ID.Hex(), map[string]any{"name": "C2"})
	require.NoError(t, err)
	require.Equal(t, "C2", updated.Name)
	require.Equal(t, "Marseille", updated.Address.City, "untouched fields survive")
	require.True(t, updated.UpdatedAt.After(updated.CreatedAt))

	_, err = repo.Update(ctx, "ffffffffffffffffffffffff", map[string]any{"name": "X"})
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.Update(ctx, "zzz", map[string]any{"name": "X"})
	require.ErrorIs(t, err, domain.ErrInvalidID)

	// delete is idempotence-free: the second call is a 404
	require.NoError(t, repo.Delete(ctx, page2[0].ID.Hex()))
	require.ErrorIs(t, repo.Delete(ctx, page2[0].ID.Hex()), domain.ErrNotFound)
}

func TestHotelRepo_TopByStars(t *testing.T) {
	db := startMongo(t)
	repo := NewHotelRepo(db)
	ctx := context.Background()

	// six distinct ratings force the 5-group cap (ratings beyond the
	// schema range are irrelevant to the pipeline itself)
	for stars := 1; stars <= 6; stars++ {
		_, err := repo.Insert(ctx, seedHotel(fmt.Sprintf("H%d", stars), "Paris", stars, true))
		require.NoError(t, err)
	}
	_, err := repo.Insert(ctx, seedHotel("H5bis", "Paris", 5, true))
	require.NoError(t, err)

	groups, err := repo.TopByStars(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 5, "never more than 5 groups")
	for i := 1; i < len(groups); i++ {
		require.Greater(t, groups[i-1].StarRating, groups[i].StarRating, "descending by rating")
	}
	require.Equal(t, 2, groups[1].Count, "both 5-star hotels grouped together")
	require.ElementsMatch(t, []string{"H5", "H5bis"}, groups[1].Hotels)
}

func TestRoomAndReservationReports(t *testing.T) {
	db := startMongo(t)
	hotels := NewHotelRepo(db)
	rooms := NewRoomRepo(db)
	reservations := NewReservationRepo(db)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	hotel, err := hotels.Insert(ctx, seedHotel("Pavois", "Marseille", 4, true))
	require.NoError(t, err)

	mkRoom := func(number, typ string, price float64) domain.Room {
		r, err := rooms.Insert(ctx, domain.Room{
			HotelID:       hotel.ID,
			RoomNumber:    number,
			RoomType:      typ,
			PricePerNight: price,
			Available:     true,
			Capacity:      2,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
		require.NoError(t, err)
		return r
	}
	r1 := mkRoom("101", domain.RoomDouble, 100)
	r2 := mkRoom("102", domain.RoomDouble, 105)
	r3 := mkRoom("301", domain.RoomSuite, 300)

	mkRes := func(room domain.Room, day int, status string, price float64) domain.Reservation {
		res, err := reservations.Insert(ctx, domain.Reservation{
			HotelID: hotel.ID,
			RoomID:  room.ID,
			Client: domain.Client{
				Name:  "Client",
				Email: "client@example.com",
				Phone: "+33 6 00 00 00 00",
			},
			CheckInDate:  time.Date(2026, 9, day, 0, 0, 0, 0, time.UTC),
			CheckOutDate: time.Date(2026, 9, day+2, 0, 0, 0, 0, time.UTC),
			TotalPrice:   price,
			Status:       status,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		require.NoError(t, err)
		return res
	}
	mkRes(r1, 1, domain.StatusPending, 200)
	mkRes(r1, 5, domain.StatusConfirmed, 210.255)
	mkRes(r2, 3, domain.StatusPending, 105)
	dangling := mkRes(r3, 8, domain.StatusCancelled, 600)

	// report 2: grouped by type, average rounded to 2 decimals
	stats, err := rooms.StatsByType(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	require.Equal(t, domain.RoomDouble, stats[0].RoomType, "larger group first")
	require.Equal(t, 2, stats[0].Count)
	require.InDelta(t, 102.5, stats[0].AvgPrice, 0.001)

	// calling it again with no writes in between yields the same result
	again, err := rooms.StatsByType(ctx)
	require.NoError(t, err)
	require.Equal(t, stats, again)

	// report 3: reservation counts per room, busiest first
	booked, err := rooms.MostBooked(ctx)
	require.NoError(t, err)
	require.Len(t, booked, 3)
	require.Equal(t, "101", booked[0].RoomNumber)
	require.Equal(t, 2, booked[0].ReservationCount)

	// report 4: per-status rollup plus overall count
	byStatus, total, err := reservations.StatsByStatus(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 4, total)
	require.Equal(t, domain.StatusPending, byStatus[0].Status)
	require.Equal(t, 2, byStatus[0].Count)
	for _, s := range byStatus {
		if s.Status == domain.StatusConfirmed {
			require.InDelta(t, 210.26, s.Revenue, 0.001, "revenue rounded to 2 decimals")
		}
	}

	// report 5: inner join, newest check-in first
	complete, err := reservations.ListComplete(ctx)
	require.NoError(t, err)
	require.Len(t, complete, 4)
	require.Equal(t, dangling.ID, complete[0].ID, "sorted by checkInDate descending")
	require.Equal(t, "Pavois", complete[0].Hotel.Name)
	require.Equal(t, "301", complete[0].Room.RoomNumber)

	// deleting the room drops its reservation from the joined listing
	require.NoError(t, rooms.Delete(ctx, r3.ID.Hex()))
	complete, err = reservations.ListComplete(ctx)
	require.NoError(t, err)
	require.Len(t, complete, 3)
	for _, c := range complete {
		require.NotEqual(t, dangling.ID, c.ID)
	}
}

func TestRoomRepo_ListFilters(t *testing.T) {
	db := startMongo(t)
	hotels := NewHotelRepo(db)
	rooms := NewRoomRepo(db)
	ctx := context.Background()
	now := time.Now().UTC()

	h1, err := hotels.Insert(ctx, seedHotel("One", "Lyon", 3, true))
	require.NoError(t, err)
	h2, err := hotels.Insert(ctx, seedHotel("Two", "Lyon", 3, true))
	require.NoError(t, err)

	insert := func(hid primitive.ObjectID, number string, price float64, available bool) {
		_, e := rooms.Insert(ctx, domain.Room{
			HotelID:       hid,
			RoomNumber:    number,
			RoomType:      domain.RoomSimple,
			PricePerNight: price,
			Available:     available,
			Capacity:      1,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
		require.NoError(t, e)
	}
	insert(h1.ID, "1", 60, true)
	insert(h1.ID, "2", 90, false)
	insert(h2.ID, "1", 120, true)

	hexID := h1.ID.Hex()
	avail := true
	got, total, err := rooms.List(ctx, domain.RoomFilter{
		HotelID:   &hexID,
		Available: &avail,
		PriceMin:  ptr(50.0),
		PriceMax:  ptr(100.0),
		Page:      domain.DefaultPage(),
	})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, "1", got[0].RoomNumber)
	require.Equal(t, h1.ID, got[0].HotelID)
}
