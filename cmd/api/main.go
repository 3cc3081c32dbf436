package main

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	server "hotel_booking/internal/adapters/http_server"
	"hotel_booking/internal/adapters/observability"
	redisad "hotel_booking/internal/adapters/redis"
	"hotel_booking/internal/app"
	"hotel_booking/internal/shared"
	"hotel_booking/internal/storage/mongodb"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// store; a failed initial connection is fatal
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongodb.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	log.Info().Msg("store connection ok")

	// deps
	db := client.Database(cfg.MongoDB)
	hotels := mongodb.NewHotelRepo(db)
	rooms := mongodb.NewRoomRepo(db)
	reservations := mongodb.NewReservationRepo(db)
	events := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.EventLogKey)

	cmds := app.NewCommands(hotels, rooms, reservations, events)
	queries := app.NewQueries(hotels, rooms, reservations)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Cmd: cmds, Q: queries})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
