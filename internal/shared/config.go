package shared

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	MongoURI    string
	MongoDB     string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	EventLogKey string
	SeedAPIURL  string
	SeedWorkers int
	SeedRPS     int
}

func Load() Config {
	// .env is an overlay for local runs; the real environment always wins.
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	return Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":3000"),
		MetricsAddr: env("METRICS_ADDR", ""),
		MongoURI:    env("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     env("MONGO_DB", "hotel_booking"),
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisPass:   env("REDIS_PASSWORD", ""),
		RedisDB:     atoi("REDIS_DB", 0),
		EventLogKey: env("EVENT_LOG_KEY", "hotel_events"),
		SeedAPIURL:  env("SEED_API_URL", "http://localhost:3000"),
		SeedWorkers: atoi("SEED_WORKERS", 4),
		SeedRPS:     atoi("SEED_RPS", 10),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
