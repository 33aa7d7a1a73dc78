package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	redis "github.com/redis/go-redis/v9"

	"trip-fuel-service/internal/domain"
)

const redisKeyPrefix = "geocode:"

// RedisGeocodeCache stores geocode results in Redis for deployments
// where several instances share one cache. Entries expire after TTL;
// zero means no expiry. Values are stored as "lat,lon" strings.
type RedisGeocodeCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisGeocodeCache(client *redis.Client, ttl time.Duration) *RedisGeocodeCache {
	return &RedisGeocodeCache{Client: client, TTL: ttl}
}

// Fetch cached positions for the given place names.
func (r *RedisGeocodeCache) GetMany(ctx context.Context, names []string) (map[string]domain.Position, error) {
	if r.Client == nil {
		return nil, errors.New("geocode cache: redis client is nil")
	}

	seen := map[string]struct{}{}
	uniq := make([]string, 0, len(names))
	keys := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}

		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		uniq = append(uniq, n)
		keys = append(keys, redisKeyPrefix+n)
	}

	if len(uniq) == 0 {
		return map[string]domain.Position{}, nil
	}

	values, err := r.Client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("get geocode cache: redis mget: %w", err)
	}

	out := make(map[string]domain.Position, len(uniq))
	for i, v := range values {
		if v == nil {
			continue
		}

		s, ok := v.(string)
		if !ok {
			continue
		}

		p, err := parsePosition(s)
		if err != nil {
			// A malformed entry is treated as a miss rather than failing the
			// whole lookup.
			continue
		}
		out[uniq[i]] = p
	}

	return out, nil
}

// Store name -> position mappings in the cache.
func (r *RedisGeocodeCache) PutMany(ctx context.Context, results map[string]domain.Position) error {
	if r.Client == nil {
		return errors.New("geocode cache: redis client is nil")
	}

	if len(results) == 0 {
		return nil
	}

	pipe := r.Client.Pipeline()
	for name, p := range results {
		if strings.TrimSpace(name) == "" {
			return errors.New("insert geocode cache: empty name key")
		}
		pipe.Set(ctx, redisKeyPrefix+name, formatPosition(p), r.TTL)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("insert geocode cache: redis pipeline: %w", err)
	}

	return nil
}

func formatPosition(p domain.Position) string {
	return strconv.FormatFloat(p.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(p.Lon, 'f', -1, 64)
}

func parsePosition(s string) (domain.Position, error) {
	lat, lon, ok := strings.Cut(s, ",")
	if !ok {
		return domain.Position{}, fmt.Errorf("malformed cache value %q", s)
	}

	latF, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return domain.Position{}, fmt.Errorf("malformed latitude in %q: %w", s, err)
	}
	lonF, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return domain.Position{}, fmt.Errorf("malformed longitude in %q: %w", s, err)
	}

	return domain.Position{Lat: latF, Lon: lonF}, nil
}
