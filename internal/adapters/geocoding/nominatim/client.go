package nominatim

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"pet-finder/internal/platform/cache"
	"pet-finder/internal/platform/httpclient"
	"pet-finder/internal/platform/logger"
	"pet-finder/internal/platform/metrics"
	"pet-finder/internal/ports/geocoding"
)

var ErrGeocode = errors.New("geocoding request failed")

const (
	DefaultBaseURL   = "https://nominatim.openstreetmap.org"
	DefaultUserAgent = "pet-finder/1.0"
	DefaultCountry   = "USA"
)

// Config del cliente Nominatim.
// La política de uso pide User-Agent identificable y máximo 1 req/s.
type Config struct {
	BaseURL           string
	UserAgent         string
	Country           string // contexto fijo agregado a cada query
	RequestsPerSecond float64
	Timeout           time.Duration

	Logger logger.Logger
}

// Client implementa geocoding.Geocoder. Los resultados (incluido "sin match")
// se cachean por query exacta durante toda la vida del proceso.
type Client struct {
	http      *httpclient.Client
	userAgent string
	country   string
	limiter   *rate.Limiter
	results   *cache.Cache[string, *geocoding.Location]
	log       logger.Logger
}

var _ geocoding.Geocoder = (*Client)(nil)

func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	hc, err := httpclient.NewWithBaseURL("nominatim", base, cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("nominatim: %w", err)
	}

	ua := strings.TrimSpace(cfg.UserAgent)
	if ua == "" {
		ua = DefaultUserAgent
	}
	country := strings.TrimSpace(cfg.Country)
	if country == "" {
		country = DefaultCountry
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &Client{
		http:      hc,
		userAgent: ua,
		country:   country,
		limiter:   rate.NewLimiter(rate.Limit(rps), 1),
		results:   cache.NewLifetime[string, *geocoding.Location]("geocode"),
		log:       log.With(map[string]any{"upstream": "nominatim"}),
	}, nil
}

type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode resuelve query + país. Sin match => (nil, nil).
func (c *Client) Geocode(ctx context.Context, query string) (*geocoding.Location, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	if loc, ok := c.results.Get(query); ok {
		return loc, nil
	}

	// Wait respeta ctx; no es un reintento, solo espaciado entre requests.
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeocode, err)
	}

	params := url.Values{}
	params.Set("q", query+" "+c.country)
	params.Set("format", "jsonv2")
	params.Set("limit", "1")

	var out []searchResult
	err := c.http.DoJSON(ctx, http.MethodGet, "/search?"+params.Encode(),
		map[string]string{"User-Agent": c.userAgent}, nil, &out)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeocode, err)
	}

	if len(out) == 0 {
		metrics.GeocodeMisses.Inc()
		c.log.Debug("geocode miss", map[string]any{"query": query})
		c.results.Set(query, nil)
		return nil, nil
	}

	loc, err := toLocation(out[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeocode, err)
	}
	c.results.Set(query, loc)
	return loc, nil
}

func toLocation(r searchResult) (*geocoding.Location, error) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(r.Lat), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid lat %q", r.Lat)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(r.Lon), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid lon %q", r.Lon)
	}
	return &geocoding.Location{
		Latitude:    lat,
		Longitude:   lon,
		DisplayName: r.DisplayName,
	}, nil
}
