package animals

import (
	"context"
	"math/rand/v2"
	"strings"
	"sync"

	"pet-finder/internal/ports/geocoding"
	"pet-finder/internal/ports/petfinder"
)

// DefaultJitter en grados (~1 km). Evita que animales del mismo refugio se apilen.
const DefaultJitter = 0.01

// RandomSource devuelve un float uniforme en [0, 1]. *rand.Rand también sirve
// (su rango es [0, 1) y nunca produce el extremo +jitter).
type RandomSource interface {
	Float64() float64
}

// closedUnit sortea k/2^53 con k en [0, 2^53]: uniforme en el intervalo cerrado [0, 1].
type closedUnit struct{}

const unitSteps = 1 << 53

func (closedUnit) Float64() float64 {
	return float64(rand.Uint64N(unitSteps+1)) / unitSteps
}

// Locator convierte un animal en un GeoPoint aproximado: geocodifica "ciudad código-postal"
// y desplaza cada eje con un offset uniforme en [-jitter, jitter].
type Locator struct {
	geocoder geocoding.Geocoder
	jitter   float64

	mu  sync.Mutex
	rnd RandomSource
}

// NewLocator: rnd nil usa el generador global de math/rand/v2 sobre [0, 1].
func NewLocator(g geocoding.Geocoder, jitter float64, rnd RandomSource) *Locator {
	if jitter < 0 {
		jitter = -jitter
	}
	if rnd == nil {
		rnd = closedUnit{}
	}
	return &Locator{geocoder: g, jitter: jitter, rnd: rnd}
}

// Locate nunca falla por falta de match: en ese caso devuelve coordenadas nil.
// Con match, cada eje se desplaza en [-jitter, jitter], extremos incluidos.
// Solo propaga errores del geocoder.
func (l *Locator) Locate(ctx context.Context, a petfinder.AnimalRecord) (GeoPoint, error) {
	p := GeoPoint{Name: a.Name}

	loc, err := l.geocoder.Geocode(ctx, AddressQuery(a))
	if err != nil {
		return p, err
	}
	if loc == nil {
		return p, nil
	}

	lat := loc.Latitude + l.offset()
	lon := loc.Longitude + l.offset()
	p.Latitude = &lat
	p.Longitude = &lon
	return p, nil
}

func (l *Locator) offset() float64 {
	l.mu.Lock()
	r := l.rnd.Float64()
	l.mu.Unlock()
	return (r*2 - 1) * l.jitter
}

// AddressQuery es "ciudad código-postal" con las partes que existan.
func AddressQuery(a petfinder.AnimalRecord) string {
	addr := address(a)
	if addr == nil {
		return ""
	}
	parts := make([]string, 0, 2)
	for _, s := range []*string{addr.City, addr.Postcode} {
		if s != nil && strings.TrimSpace(*s) != "" {
			parts = append(parts, strings.TrimSpace(*s))
		}
	}
	return strings.Join(parts, " ")
}
