package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	redis "github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"trip-fuel-service/internal/adapters/cache"
	"trip-fuel-service/internal/adapters/geocode"
	"trip-fuel-service/internal/api"
	"trip-fuel-service/internal/config"
	"trip-fuel-service/internal/platform/db"
	"trip-fuel-service/internal/ports"
	"trip-fuel-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (geocode cache, Nominatim) behind ports and
// starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	userAgent := config.Get("GEOCODER_USER_AGENT", "trip-fuel-service/1.0")
	nominatimURL := config.Get("NOMINATIM_BASE_URL", "")
	pricingPath := config.Get("PRICING_PATH", "config/pricing.yaml")
	strictProfile := config.Get("STRICT_PROFILE", "") == "true"

	roadFactor, tables, err := config.LoadPricing(pricingPath)
	if err != nil {
		log.Fatal(err)
	}

	geocodeCache, closeCache, err := openGeocodeCache()
	if err != nil {
		log.Fatal(err)
	}
	if closeCache != nil {
		defer closeCache()
	}

	geocoder, err := geocode.NewNominatimGeocoder(nominatimURL, userAgent, geocodeCache)
	if err != nil {
		log.Fatal(err)
	}

	model := services.NewDistanceModel(roadFactor)
	builder := &services.TripReportBuilder{
		Resolver:      &services.GeoResolver{Geocoder: geocoder},
		Sequencer:     services.RouteSequencer{Distance: model},
		Estimator:     services.CostEstimator{Distance: model},
		Tables:        tables,
		StrictProfile: strictProfile,
	}

	router := api.NewRouter(builder, geocoder, tables)

	// Timeouts are tuned for cold-cache geocoding (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openGeocodeCache selects the cache backend from GEOCODE_CACHE:
// postgres, sqlite, redis, or none. A nil cache is valid and means every
// lookup hits the provider.
func openGeocodeCache() (ports.GeocodeCache, func(), error) {
	backend := strings.ToLower(config.Get("GEOCODE_CACHE", "sqlite"))

	switch backend {
	case "none":
		return nil, nil, nil

	case "postgres":
		databaseURL := config.Get("DATABASE_URL", "")
		if strings.TrimSpace(databaseURL) == "" {
			return nil, nil, fmt.Errorf("open geocode cache: DATABASE_URL is required for the postgres backend")
		}

		pg, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("open geocode cache: %w", err)
		}
		if err := cache.InitSchema(pg); err != nil {
			pg.Close()
			return nil, nil, fmt.Errorf("open geocode cache: %w", err)
		}
		return cache.NewSQLGeocodeCache(pg), func() { pg.Close() }, nil

	case "sqlite":
		dbPath := config.Get("DB_PATH", "data/geocode.db")
		lite, err := openSqlite(dbPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open geocode cache: %w", err)
		}
		if err := cache.InitSchema(lite); err != nil {
			lite.Close()
			return nil, nil, fmt.Errorf("open geocode cache: %w", err)
		}
		return cache.NewSqliteGeocodeCache(lite), func() { lite.Close() }, nil

	case "redis":
		redisURL := config.Get("REDIS_URL", "redis://localhost:6379")
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("open geocode cache: parse REDIS_URL: %w", err)
		}
		client := redis.NewClient(opt)
		return cache.NewRedisGeocodeCache(client, 30*24*time.Hour), func() { client.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("open geocode cache: unknown backend %q", backend)
	}
}

func openSqlite(dbPath string) (*sql.DB, error) {
	lite, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database %q: %w", dbPath, err)
	}

	if err := lite.Ping(); err != nil {
		return nil, fmt.Errorf("verify sqlite connection to %q: %w", dbPath, err)
	}

	return lite, nil
}
