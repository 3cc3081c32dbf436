package main

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"hotel_booking/internal/adapters/observability"
	"hotel_booking/internal/shared"
)

type createdHotel struct {
	Hotel struct {
		ID string `json:"id"`
	} `json:"hotel"`
}

type createdRoom struct {
	Room struct {
		ID string `json:"id"`
	} `json:"room"`
}

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("api", cfg.SeedAPIURL).
		Int("workers", cfg.SeedWorkers).
		Int("rps", cfg.SeedRPS).
		Msg("seeder starting")

	client := newAPIClient(cfg.SeedAPIURL, cfg.SeedRPS)
	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	for _, h := range sampleHotels {
		h := h

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(h seedHotel) {
			defer wg.Done()
			defer sem.Release(1)

			if err := seedOne(ctx, client, h); err != nil {
				log.Warn().Str("hotel", h.Name).Err(err).Msg("seed failed")
				return
			}
			log.Info().Str("hotel", h.Name).Int("rooms", len(h.rooms)).Msg("seed ok")
		}(h)
	}

	wg.Wait()
	log.Info().Msg("seeding completed")
}

// seedOne creates a hotel, then its rooms, then any reservations, wiring
// the generated ids down the chain.
func seedOne(ctx context.Context, client *apiClient, h seedHotel) error {
	var ch createdHotel
	if err := client.post(ctx, "/api/hotels", h, &ch); err != nil {
		return err
	}

	for _, room := range h.rooms {
		payload := struct {
			seedRoom
			HotelID string `json:"hotelId"`
		}{seedRoom: room, HotelID: ch.Hotel.ID}

		var cr createdRoom
		if err := client.post(ctx, "/api/rooms", payload, &cr); err != nil {
			return err
		}

		for _, res := range room.reservations {
			body := struct {
				seedReservation
				HotelID string `json:"hotelId"`
				RoomID  string `json:"roomId"`
			}{seedReservation: res, HotelID: ch.Hotel.ID, RoomID: cr.Room.ID}

			if err := client.post(ctx, "/api/reservations", body, nil); err != nil {
				return err
			}
		}
	}
	return nil
}
