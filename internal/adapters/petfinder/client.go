package petfinder

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"pet-finder/internal/platform/cache"
	"pet-finder/internal/platform/httpclient"
	"pet-finder/internal/platform/logger"
	ports "pet-finder/internal/ports/petfinder"
)

var (
	ErrNotConfigured = errors.New("petfinder client not configured")
	ErrAuth          = errors.New("petfinder auth failed")
	ErrCatalog       = errors.New("petfinder catalog request failed")
	ErrSearch        = errors.New("petfinder search request failed")
)

const (
	DefaultBaseURL   = "https://api.petfinder.com/v2"
	DefaultTTL       = 3600 * time.Second
	DefaultPageLimit = 50
)

// Config del cliente Petfinder v2.
type Config struct {
	BaseURL      string
	ClientID     string
	ClientSecret string

	Timeout   time.Duration
	TokenTTL  time.Duration
	CacheTTL  time.Duration
	PageLimit int

	Logger logger.Logger
}

// Client implementa ports.AnimalSource.
type Client struct {
	http      *httpclient.Client
	tokens    *TokenManager
	types     *cache.Cache[string, ports.AnimalType]
	searches  *cache.Cache[string, ports.SearchResponse]
	pageLimit int
	log       logger.Logger
}

var _ ports.AnimalSource = (*Client)(nil)

func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.ClientID) == "" || strings.TrimSpace(cfg.ClientSecret) == "" {
		return nil, ErrNotConfigured
	}
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	hc, err := httpclient.NewWithBaseURL("petfinder", base, cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("petfinder: %w", err)
	}

	tokenTTL := cfg.TokenTTL
	if tokenTTL <= 0 {
		tokenTTL = DefaultTTL
	}
	cacheTTL := cfg.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = DefaultTTL
	}
	limit := cfg.PageLimit
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}
	log = log.With(map[string]any{"upstream": "petfinder"})

	return &Client{
		http:      hc,
		tokens:    NewTokenManager(hc, cfg.ClientID, cfg.ClientSecret, tokenTTL, log),
		types:     cache.New[string, ports.AnimalType]("petfinder_types", cacheTTL),
		searches:  cache.New[string, ports.SearchResponse]("petfinder_search", cacheTTL),
		pageLimit: limit,
		log:       log,
	}, nil
}

// WithClock reemplaza el reloj del token y de los caches (tests).
func (c *Client) WithClock(now func() time.Time) *Client {
	if now == nil {
		return c
	}
	c.tokens.now = now
	c.types.WithClock(now)
	c.searches.WithClock(now)
	return c
}

// Tokens expone el TokenManager.
func (c *Client) Tokens() *TokenManager { return c.tokens }

type animalTypeResponse struct {
	Type *ports.AnimalType `json:"type"`
}

// GetAnimalType trae coats/colors/genders válidos para una especie. Cacheado por especie.
func (c *Client) GetAnimalType(ctx context.Context, species string) (ports.AnimalType, error) {
	species = strings.TrimSpace(species)
	if species == "" {
		return ports.AnimalType{}, fmt.Errorf("%w: species required", ErrCatalog)
	}
	key := strings.ToLower(species)
	if t, ok := c.types.Get(key); ok {
		c.log.Debug("animal type cache hit", map[string]any{"species": species})
		return t, nil
	}

	headers, err := c.tokens.authHeaders(ctx)
	if err != nil {
		return ports.AnimalType{}, err
	}

	var out animalTypeResponse
	if err := c.http.DoJSON(ctx, http.MethodGet, "/types/"+url.PathEscape(species), headers, nil, &out); err != nil {
		c.invalidateOnUnauthorized(err)
		return ports.AnimalType{}, fmt.Errorf("%w: %v", ErrCatalog, err)
	}
	if out.Type == nil {
		return ports.AnimalType{}, fmt.Errorf("%w: response missing type", ErrCatalog)
	}

	t := *out.Type
	if t.Coats == nil {
		t.Coats = []string{}
	}
	if t.Colors == nil {
		t.Colors = []string{}
	}
	if t.Genders == nil {
		t.Genders = []string{}
	}

	c.types.Set(key, t)
	return t, nil
}

// SearchAnimals trae una página de animales. La respuesta vuelve tal cual:
// un error embebido (status >= 400) no se convierte en error de Go, incluso si
// además vino con un status HTTP no-2xx. Solo se cachean respuestas sin error embebido.
func (c *Client) SearchAnimals(ctx context.Context, filter ports.SearchFilter) (ports.SearchResponse, error) {
	q := c.searchQuery(filter)
	key := searchKey(q, filter.After)

	if r, ok := c.searches.Get(key); ok {
		c.log.Debug("search cache hit", map[string]any{"query": key})
		return r, nil
	}

	headers, err := c.tokens.authHeaders(ctx)
	if err != nil {
		return ports.SearchResponse{}, err
	}

	var out ports.SearchResponse
	err = c.http.DoJSON(ctx, http.MethodGet, "/animals?"+q.Encode(), headers, nil, &out)
	if err != nil {
		c.invalidateOnUnauthorized(err)
		if embedded, ok := embeddedStatus(err); ok {
			c.log.Debug("search returned embedded status", map[string]any{"query": key, "status": embedded.Status})
			return embedded, nil
		}
		return ports.SearchResponse{}, fmt.Errorf("%w: %v", ErrSearch, err)
	}

	if out.Failed() {
		return out, nil
	}
	if out.Animals == nil {
		out.Animals = []ports.AnimalRecord{}
	}
	c.searches.Set(key, out)
	return out, nil
}

// searchKey es la clave de cache: los params enviados + after. after no viaja
// a /animals, solo separa búsquedas en el cache.
func searchKey(q url.Values, after time.Time) string {
	key := q.Encode()
	if !after.IsZero() {
		key += "|after=" + after.Format(time.RFC3339)
	}
	return key
}

// searchQuery arma los query params. Listas vacías se omiten (= sin filtro).
func (c *Client) searchQuery(f ports.SearchFilter) url.Values {
	q := url.Values{}
	setIf := func(k, v string) {
		if v = strings.TrimSpace(v); v != "" {
			q.Set(k, v)
		}
	}

	setIf("location", f.Location)
	if f.Distance > 0 {
		q.Set("distance", strconv.Itoa(f.Distance))
	}
	setIf("type", f.Type)
	setIf("gender", strings.Join(f.Genders, ","))
	setIf("color", strings.Join(f.Colors, ","))
	setIf("coat", strings.Join(f.Coats, ","))

	page := f.Page
	if page <= 0 {
		page = 1
	}
	limit := f.Limit
	if limit <= 0 {
		limit = c.pageLimit
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	return q
}

func (c *Client) invalidateOnUnauthorized(err error) {
	var httpErr *httpclient.HTTPError
	if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusUnauthorized {
		c.tokens.Invalidate()
	}
}

// embeddedStatus rescata el body de un no-2xx si trae "status" >= 400.
func embeddedStatus(err error) (ports.SearchResponse, bool) {
	var httpErr *httpclient.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Body == "" {
		return ports.SearchResponse{}, false
	}
	var out ports.SearchResponse
	if json.Unmarshal([]byte(httpErr.Body), &out) != nil || !out.Failed() {
		return ports.SearchResponse{}, false
	}
	return out, true
}
