package app

import (
	"context"

	"hotel_booking/internal/domain"
)

// Queries covers the read paths: filtered listings and the five derived
// reports. Reports are computed by the store per request; nothing is
// cached.
type Queries struct {
	hotels       domain.HotelRepository
	rooms        domain.RoomRepository
	reservations domain.ReservationRepository
}

func NewQueries(h domain.HotelRepository, r domain.RoomRepository, res domain.ReservationRepository) *Queries {
	return &Queries{hotels: h, rooms: r, reservations: res}
}

func (q *Queries) ListHotels(ctx context.Context, f domain.HotelFilter) ([]domain.Hotel, int64, error) {
	return q.hotels.List(ctx, f)
}

func (q *Queries) SearchHotels(ctx context.Context, f domain.HotelFilter) ([]domain.Hotel, error) {
	return q.hotels.Search(ctx, f)
}

func (q *Queries) TopHotelsByStars(ctx context.Context) ([]domain.StarGroup, error) {
	return q.hotels.TopByStars(ctx)
}

func (q *Queries) ListRooms(ctx context.Context, f domain.RoomFilter) ([]domain.Room, int64, error) {
	return q.rooms.List(ctx, f)
}

func (q *Queries) RoomStatsByType(ctx context.Context) ([]domain.RoomTypeStats, error) {
	return q.rooms.StatsByType(ctx)
}

func (q *Queries) MostBookedRooms(ctx context.Context) ([]domain.RoomBookingCount, error) {
	return q.rooms.MostBooked(ctx)
}

func (q *Queries) ListReservations(ctx context.Context, f domain.ReservationFilter) ([]domain.Reservation, int64, error) {
	return q.reservations.List(ctx, f)
}

func (q *Queries) ReservationStats(ctx context.Context) ([]domain.StatusStats, int64, error) {
	return q.reservations.StatsByStatus(ctx)
}

func (q *Queries) CompleteReservations(ctx context.Context) ([]domain.ReservationDetails, error) {
	return q.reservations.ListComplete(ctx)
}
