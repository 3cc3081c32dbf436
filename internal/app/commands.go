package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"hotel_booking/internal/domain"
)

// Commands covers every write path: one validation pass, defaults, a
// single store mutation, and (for hotel creation) a best-effort event
// append. No retries, no compensation.
type Commands struct {
	hotels       domain.HotelRepository
	rooms        domain.RoomRepository
	reservations domain.ReservationRepository
	events       domain.EventLog
}

func NewCommands(h domain.HotelRepository, r domain.RoomRepository, res domain.ReservationRepository, ev domain.EventLog) *Commands {
	return &Commands{hotels: h, rooms: r, reservations: res, events: ev}
}

func (c *Commands) CreateHotel(ctx context.Context, in CreateHotel) (domain.Hotel, error) {
	if err := validate.Struct(in); err != nil {
		return domain.Hotel{}, firstViolation(err)
	}
	now := time.Now().UTC()
	created, err := c.hotels.Insert(ctx, in.toDomain(now))
	if err != nil {
		return domain.Hotel{}, err
	}
	if c.events != nil {
		ev := domain.Event{Type: domain.EventHotelCreated, Hotel: created, At: now}
		if err := c.events.Append(ctx, ev); err != nil {
			log.Warn().Err(err).Str("hotel", created.ID.Hex()).Msg("event log append failed")
		}
	}
	return created, nil
}

func (c *Commands) UpdateHotel(ctx context.Context, id string, fields map[string]any) (domain.Hotel, error) {
	stripID(fields)
	return c.hotels.Update(ctx, id, fields)
}

func (c *Commands) DeleteHotel(ctx context.Context, id string) error {
	return c.hotels.Delete(ctx, id)
}

func (c *Commands) CreateRoom(ctx context.Context, in CreateRoom) (domain.Room, error) {
	if err := validate.Struct(in); err != nil {
		return domain.Room{}, firstViolation(err)
	}
	// the reference is parsed, not resolved: no check that the hotel exists
	hotelID, err := parseRef("hotelId", in.HotelID)
	if err != nil {
		return domain.Room{}, err
	}
	return c.rooms.Insert(ctx, in.toDomain(hotelID, time.Now().UTC()))
}

func (c *Commands) UpdateRoom(ctx context.Context, id string, fields map[string]any) (domain.Room, error) {
	stripID(fields)
	return c.rooms.Update(ctx, id, fields)
}

func (c *Commands) DeleteRoom(ctx context.Context, id string) error {
	return c.rooms.Delete(ctx, id)
}

func (c *Commands) CreateReservation(ctx context.Context, in CreateReservation) (domain.Reservation, error) {
	if err := validate.Struct(in); err != nil {
		return domain.Reservation{}, firstViolation(err)
	}
	hotelID, err := parseRef("hotelId", in.HotelID)
	if err != nil {
		return domain.Reservation{}, err
	}
	roomID, err := parseRef("roomId", in.RoomID)
	if err != nil {
		return domain.Reservation{}, err
	}
	checkIn, err := domain.ParseDate(in.CheckInDate)
	if err != nil {
		return domain.Reservation{}, domain.Invalid("invalid checkInDate")
	}
	// no ordering check against checkInDate
	checkOut, err := domain.ParseDate(in.CheckOutDate)
	if err != nil {
		return domain.Reservation{}, domain.Invalid("invalid checkOutDate")
	}
	return c.reservations.Insert(ctx, in.toDomain(hotelID, roomID, checkIn, checkOut, time.Now().UTC()))
}

func (c *Commands) UpdateReservation(ctx context.Context, id string, fields map[string]any) (domain.Reservation, error) {
	stripID(fields)
	return c.reservations.Update(ctx, id, fields)
}

func (c *Commands) DeleteReservation(ctx context.Context, id string) error {
	return c.reservations.Delete(ctx, id)
}

// stripID keeps a PUT body from overwriting the primary key; everything
// else is merged verbatim.
func stripID(fields map[string]any) {
	delete(fields, "_id")
	delete(fields, "id")
}
