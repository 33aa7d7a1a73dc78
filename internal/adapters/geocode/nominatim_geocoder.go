package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"trip-fuel-service/internal/domain"
	"trip-fuel-service/internal/metrics"
	"trip-fuel-service/internal/platform/obs"
	"trip-fuel-service/internal/ports"
)

// NominatimGeocoder implements the Geocoder port using the Nominatim
// search API.
//
// It coordinates:
//   - Place name normalization
//   - Persistent geocode caching (optional)
//   - External API calls with retry/backoff
//
// The geocoder is safe for concurrent use.
type NominatimGeocoder struct {
	session   *http.Client
	baseURL   string
	userAgent string
	cache     ports.GeocodeCache
}

// NewNominatimGeocoder builds a geocoder against baseURL (the public
// instance by default). Nominatim's usage policy requires an
// identifying User-Agent. cache may be nil.
func NewNominatimGeocoder(baseURL string, userAgent string, cache ports.GeocodeCache) (*NominatimGeocoder, error) {
	if strings.TrimSpace(userAgent) == "" {
		return nil, fmt.Errorf("nominatim geocoder: user agent is empty")
	}

	if baseURL == "" {
		baseURL = "https://nominatim.openstreetmap.org"
	}

	return &NominatimGeocoder{
		session:   &http.Client{Timeout: 10 * time.Second},
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		cache:     cache,
	}, nil
}

// normalize ensures consistent cache keys by collapsing whitespace.
func (n *NominatimGeocoder) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Forward resolves a place name via /search, consulting the cache
// first. A name the provider does not know yields an empty slice, not
// an error.
func (n *NominatimGeocoder) Forward(ctx context.Context, name string, limit int) (_ []domain.Position, err error) {
	defer obs.Time(ctx, "nominatim.Forward")(&err)

	norm := n.normalize(name)
	if norm == "" {
		return nil, fmt.Errorf("forward geocode: name must be non-empty")
	}
	if limit < 1 {
		limit = 1
	}

	if n.cache != nil {
		hits, err := n.cache.GetMany(ctx, []string{norm})
		if err != nil {
			return nil, fmt.Errorf("forward geocode cache: %w", err)
		}
		if p, ok := hits[norm]; ok {
			metrics.GeocodeLookups.WithLabelValues("cache_hit").Inc()
			return []domain.Position{p}, nil
		}
	}

	endpoint := n.baseURL + "/search"
	query := func(req *http.Request) {
		q := req.URL.Query()
		q.Set("q", norm)
		q.Set("format", "jsonv2")
		q.Set("limit", strconv.Itoa(limit))
		req.URL.RawQuery = q.Encode()
	}

	resp, err := n.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := n.newRequest(ctx, http.MethodGet, endpoint)
		if err != nil {
			return nil, err
		}
		query(req)
		return req, nil
	})
	if err != nil {
		metrics.GeocodeLookups.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("forward geocode %q: %w", norm, err)
	}
	defer resp.Body.Close()

	var decoded []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		metrics.GeocodeLookups.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("decode search response for %q: %w", norm, err)
	}

	if len(decoded) == 0 {
		metrics.GeocodeLookups.WithLabelValues("not_found").Inc()
		return nil, nil
	}

	out := make([]domain.Position, 0, len(decoded))
	for _, r := range decoded {
		lat, err := strconv.ParseFloat(r.Lat, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid latitude %q for %q: %w", r.Lat, norm, err)
		}
		lon, err := strconv.ParseFloat(r.Lon, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid longitude %q for %q: %w", r.Lon, norm, err)
		}
		out = append(out, domain.Position{Lat: lat, Lon: lon})
	}

	metrics.GeocodeLookups.WithLabelValues("resolved").Inc()

	if n.cache != nil {
		if err := n.cache.PutMany(ctx, map[string]domain.Position{norm: out[0]}); err != nil {
			log.Printf("geocode cache write failed: %v", err)
		}
	}

	return out, nil
}

type reverseResult struct {
	DisplayName string `json:"display_name"`
	Address     struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		Suburb  string `json:"suburb"`
		State   string `json:"state"`
	} `json:"address"`
}

// Reverse resolves a position to an area name via /reverse. The most
// specific populated-place field wins; the display name is the
// fallback.
func (n *NominatimGeocoder) Reverse(ctx context.Context, lat, lon float64) (_ string, err error) {
	defer obs.Time(ctx, "nominatim.Reverse")(&err)

	endpoint := n.baseURL + "/reverse"

	resp, err := n.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := n.newRequest(ctx, http.MethodGet, endpoint)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
		q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
		q.Set("format", "jsonv2")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return "", fmt.Errorf("reverse geocode (%f, %f): %w", lat, lon, err)
	}
	defer resp.Body.Close()

	var decoded reverseResult
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode reverse response: %w", err)
	}

	for _, candidate := range []string{
		decoded.Address.Suburb,
		decoded.Address.City,
		decoded.Address.Town,
		decoded.Address.Village,
		decoded.Address.State,
	} {
		if candidate != "" {
			return candidate, nil
		}
	}

	return decoded.DisplayName, nil
}
