package animals

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-finder/internal/platform/logger"
	"pet-finder/internal/ports/geocoding"
	"pet-finder/internal/ports/petfinder"
)

type Service struct {
	source    petfinder.AnimalSource
	geocoder  geocoding.Geocoder
	locator   *Locator
	pageLimit int
	log       logger.Logger
	now       func() time.Time
	newID     func() string
}

type Options struct {
	PageLimit int
	Jitter    float64
	Random    RandomSource
	Logger    logger.Logger
}

func NewService(source petfinder.AnimalSource, geocoder geocoding.Geocoder, opts Options) *Service {
	if opts.PageLimit <= 0 {
		opts.PageLimit = 50
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &Service{
		source:    source,
		geocoder:  geocoder,
		locator:   NewLocator(geocoder, opts.Jitter, opts.Random),
		pageLimit: opts.PageLimit,
		log:       opts.Logger,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

func (s *Service) AnimalType(ctx context.Context, species string) (petfinder.AnimalType, error) {
	species = strings.TrimSpace(species)
	if species == "" {
		return petfinder.AnimalType{}, fmt.Errorf("%w: species is required", ErrInvalidFilter)
	}
	t, err := s.source.GetAnimalType(ctx, species)
	if err != nil {
		return petfinder.AnimalType{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	return t, nil
}

// Search devuelve la respuesta cruda. Un status embebido NO es error acá: se entrega tal cual.
func (s *Service) Search(ctx context.Context, f petfinder.SearchFilter) (petfinder.SearchResponse, error) {
	if f.Page == 0 {
		f.Page = 1
	}
	if f.Limit == 0 {
		f.Limit = s.pageLimit
	}
	if err := ValidateFilter(f); err != nil {
		return petfinder.SearchResponse{}, err
	}
	resp, err := s.source.SearchAnimals(ctx, f)
	if err != nil {
		return petfinder.SearchResponse{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	return resp, nil
}

// Dashboard corre el pipeline completo: búsqueda, mapa, gráficos y tabla.
// Cualquier error aborta todo; no hay resultados parciales.
func (s *Service) Dashboard(ctx context.Context, q Query) (Dashboard, error) {
	log := logger.FromContext(ctx, s.log)
	searchID := s.newID()
	log = log.With(map[string]any{"search_id": searchID})

	var catalogCoats []string
	if len(clean(q.Coats)) == 0 {
		species := strings.TrimSpace(q.Type)
		if species == "" {
			species = DefaultType
		}
		t, err := s.AnimalType(ctx, species)
		if err != nil {
			return Dashboard{}, err
		}
		catalogCoats = t.Coats
	}

	f, err := BuildFilter(q, catalogCoats, s.now(), s.pageLimit)
	if err != nil {
		return Dashboard{}, err
	}

	resp, err := s.source.SearchAnimals(ctx, f)
	if err != nil {
		return Dashboard{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	if resp.Failed() {
		log.Warn("search signaled error", map[string]any{
			"status":   resp.Status,
			"title":    resp.Title,
			"location": f.Location,
		})
		return Dashboard{}, &APISignaledError{
			Status:   resp.Status,
			Title:    resp.Title,
			Detail:   resp.Detail,
			Location: f.Location,
		}
	}

	d := Dashboard{
		SearchID:   searchID,
		Filter:     f,
		Columns:    Columns,
		Pagination: resp.Pagination,
	}

	origin, err := s.geocoder.Geocode(ctx, f.Location)
	if err != nil {
		return Dashboard{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	d.Origin = origin
	if origin == nil {
		d.MapMessage = fmt.Sprintf("Could not generate the map given '%s'", f.Location)
	}

	d.Points = make([]GeoPoint, 0, len(resp.Animals))
	for _, a := range resp.Animals {
		p, err := s.locator.Locate(ctx, a)
		if err != nil {
			return Dashboard{}, fmt.Errorf("%w: %w", ErrUpstream, err)
		}
		if p.Plottable() {
			d.Plotted++
		}
		d.Points = append(d.Points, p)
	}

	d.Gender.Male, d.Gender.Female = GenderCounts(resp.Animals)

	counts, err := CoatCounts(resp.Animals, f.Coats)
	if err != nil {
		return Dashboard{}, err
	}
	d.Coats = CoatHistogram{Categories: f.Coats, Counts: counts}

	d.Rows = NormalizeAll(resp.Animals)

	log.Info("dashboard built", map[string]any{
		"animals":  len(resp.Animals),
		"plotted":  d.Plotted,
		"location": f.Location,
		"type":     f.Type,
	})
	return d, nil
}
