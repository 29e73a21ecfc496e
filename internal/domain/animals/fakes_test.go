package animals

import (
	"context"
	"errors"
	"sync"

	"pet-finder/internal/ports/geocoding"
	"pet-finder/internal/ports/petfinder"
)

func str(s string) *string { return &s }

type fakeSource struct {
	mu       sync.Mutex
	types    map[string]petfinder.AnimalType
	resp     petfinder.SearchResponse
	err      error
	filters  []petfinder.SearchFilter
	catalogs int
}

func (f *fakeSource) GetAnimalType(_ context.Context, species string) (petfinder.AnimalType, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.catalogs++
	t, ok := f.types[species]
	if !ok {
		return petfinder.AnimalType{}, errors.New("no such type")
	}
	return t, nil
}

func (f *fakeSource) SearchAnimals(_ context.Context, filter petfinder.SearchFilter) (petfinder.SearchResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filters = append(f.filters, filter)
	return f.resp, f.err
}

type fakeGeocoder struct {
	places  map[string]geocoding.Location
	err     error
	queries []string
}

func (g *fakeGeocoder) Geocode(_ context.Context, query string) (*geocoding.Location, error) {
	g.queries = append(g.queries, query)
	if g.err != nil {
		return nil, g.err
	}
	loc, ok := g.places[query]
	if !ok {
		return nil, nil
	}
	return &loc, nil
}

// fixedRand devuelve los valores en orden y repite el último.
type fixedRand struct {
	values []float64
	i      int
}

func (r *fixedRand) Float64() float64 {
	v := r.values[min(r.i, len(r.values)-1)]
	r.i++
	return v
}

func animal(id int, name, gender string, coat *string, city, postcode string) petfinder.AnimalRecord {
	return petfinder.AnimalRecord{
		ID:             id,
		OrganizationID: "CA123",
		Name:           name,
		Age:            "Adult",
		Gender:         gender,
		Size:           "Medium",
		Coat:           coat,
		Breeds:         &petfinder.Breeds{Primary: str("Tabby")},
		Colors:         &petfinder.Colors{Primary: str("Gray")},
		Contact: &petfinder.Contact{Address: &petfinder.Address{
			City:     str(city),
			State:    str("CA"),
			Postcode: str(postcode),
		}},
	}
}
