package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	redis "github.com/redis/go-redis/v9"

	"trip-fuel-service/internal/domain"
)

func newTestRedisCache(t *testing.T) *RedisGeocodeCache {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisGeocodeCache(client, 0)
}

func TestRedisGeocodeCacheRoundTrip(t *testing.T) {
	c := newTestRedisCache(t)
	ctx := context.Background()

	err := c.PutMany(ctx, map[string]domain.Position{
		"Cairo": {Lat: 30.0444, Lon: 31.2357},
		"Giza":  {Lat: 29.9870, Lon: 31.2118},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := c.GetMany(ctx, []string{"Cairo", "Giza", "Alexandria"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(got))
	}
	if got["Cairo"].Lat != 30.0444 || got["Cairo"].Lon != 31.2357 {
		t.Fatalf("Cairo = %+v", got["Cairo"])
	}
	if _, ok := got["Alexandria"]; ok {
		t.Fatal("Alexandria should be a miss")
	}
}

func TestRedisGeocodeCacheDeduplicatesAndSkipsEmpty(t *testing.T) {
	c := newTestRedisCache(t)
	ctx := context.Background()

	if err := c.PutMany(ctx, map[string]domain.Position{"Cairo": {Lat: 1, Lon: 2}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := c.GetMany(ctx, []string{"  Cairo  ", "Cairo", "", "   "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(got))
	}
}

func TestRedisGeocodeCacheMalformedEntryIsAMiss(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	mr.Set(redisKeyPrefix+"Cairo", "not-a-position")

	c := NewRedisGeocodeCache(client, 0)
	got, err := c.GetMany(context.Background(), []string{"Cairo"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected malformed entry to be a miss, got %+v", got)
	}
}
