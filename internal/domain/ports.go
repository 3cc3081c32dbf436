package domain

import (
	"context"
	"time"
)

// Page is 1-based; Skip is what the store applies before Limit.
type Page struct {
	Number int
	Limit  int
}

func (p Page) Skip() int64 { return int64((p.Number - 1) * p.Limit) }
func (p Page) Size() int64 { return int64(p.Limit) }

func DefaultPage() Page { return Page{Number: 1, Limit: 10} }

type HotelFilter struct {
	City     *string
	Stars    *int
	StarsMin *int
	StarsMax *int
	Active   *bool
	Page     Page
}

type RoomFilter struct {
	HotelID   *string
	RoomType  *string
	PriceMin  *float64
	PriceMax  *float64
	Available *bool
	Page      Page
}

// Date bounds apply to checkInDate only.
type ReservationFilter struct {
	Status *string
	From   *time.Time
	To     *time.Time
	Page   Page
}

type HotelRepository interface {
	Insert(ctx context.Context, h Hotel) (Hotel, error)
	List(ctx context.Context, f HotelFilter) ([]Hotel, int64, error)
	Search(ctx context.Context, f HotelFilter) ([]Hotel, error)
	Update(ctx context.Context, id string, fields map[string]any) (Hotel, error)
	Delete(ctx context.Context, id string) error
	TopByStars(ctx context.Context) ([]StarGroup, error)
}

type RoomRepository interface {
	Insert(ctx context.Context, r Room) (Room, error)
	List(ctx context.Context, f RoomFilter) ([]Room, int64, error)
	Update(ctx context.Context, id string, fields map[string]any) (Room, error)
	Delete(ctx context.Context, id string) error
	StatsByType(ctx context.Context) ([]RoomTypeStats, error)
	MostBooked(ctx context.Context) ([]RoomBookingCount, error)
}

type ReservationRepository interface {
	Insert(ctx context.Context, r Reservation) (Reservation, error)
	List(ctx context.Context, f ReservationFilter) ([]Reservation, int64, error)
	Update(ctx context.Context, id string, fields map[string]any) (Reservation, error)
	Delete(ctx context.Context, id string) error
	StatsByStatus(ctx context.Context) ([]StatusStats, int64, error)
	ListComplete(ctx context.Context) ([]ReservationDetails, error)
}

// EventLog receives best-effort domain events; a failed append must never
// fail the request that produced it.
type EventLog interface {
	Append(ctx context.Context, e Event) error
}

type Event struct {
	Type  string    `json:"type"`
	Hotel Hotel     `json:"hotel"`
	At    time.Time `json:"at"`
}

const EventHotelCreated = "hotel.created"
