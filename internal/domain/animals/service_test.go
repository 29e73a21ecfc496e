package animals

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-finder/internal/ports/geocoding"
	"pet-finder/internal/ports/petfinder"
)

func newTestService(src *fakeSource, geo *fakeGeocoder) *Service {
	s := NewService(src, geo, Options{
		PageLimit: 50,
		Jitter:    DefaultJitter,
		Random:    &fixedRand{values: []float64{0.5}}, // offset 0
	})
	s.now = func() time.Time { return time.Date(2024, 5, 8, 12, 0, 0, 0, time.UTC) }
	s.newID = func() string { return "search-1" }
	return s
}

func catSource() *fakeSource {
	return &fakeSource{
		types: map[string]petfinder.AnimalType{
			"Cat": {Name: "Cat", Coats: []string{"Short", "Medium", "Long"}},
		},
		resp: petfinder.SearchResponse{
			Animals: []petfinder.AnimalRecord{
				animal(1, "Milo", "Male", str("Short"), "Beverly Hills", "90210"),
				animal(2, "Luna", "Female", str("Short"), "Beverly Hills", "90210"),
				animal(3, "Nala", "Unknown", str("Medium"), "Nowhere", "00000"),
			},
			Pagination: &petfinder.Pagination{CountPerPage: 50, TotalCount: 3, CurrentPage: 1, TotalPages: 1},
		},
	}
}

func laGeocoder() *fakeGeocoder {
	return &fakeGeocoder{places: map[string]geocoding.Location{
		"90210":               {Latitude: 34.09, Longitude: -118.41, DisplayName: "Beverly Hills"},
		"Beverly Hills 90210": {Latitude: 34.07, Longitude: -118.40},
	}}
}

func TestDashboard_HappyPath(t *testing.T) {
	src := catSource()
	s := newTestService(src, laGeocoder())

	d, err := s.Dashboard(context.Background(), Query{})
	require.NoError(t, err)

	assert.Equal(t, "search-1", d.SearchID)
	require.Len(t, src.filters, 1)
	assert.Equal(t, []string{"Short", "Medium", "Long"}, src.filters[0].Coats)
	assert.Equal(t, "90210", src.filters[0].Location)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), src.filters[0].After)

	require.NotNil(t, d.Origin)
	assert.Empty(t, d.MapMessage)

	require.Len(t, d.Points, 3)
	assert.Equal(t, 2, d.Plotted)
	assert.InDelta(t, 34.07, *d.Points[0].Latitude, 1e-12)
	assert.Nil(t, d.Points[2].Latitude)

	assert.Equal(t, GenderSplit{Male: 1, Female: 2}, d.Gender)
	assert.Equal(t, []string{"Short", "Medium", "Long"}, d.Coats.Categories)
	assert.Equal(t, []int{2, 1, 0}, d.Coats.Counts)

	assert.Equal(t, Columns, d.Columns)
	require.Len(t, d.Rows, 3)
	assert.Equal(t, "Nala", d.Rows[2].Name)
	assert.Equal(t, 3, d.Pagination.TotalCount)
}

func TestDashboard_SelectedCoatsSkipCatalog(t *testing.T) {
	src := catSource()
	s := newTestService(src, laGeocoder())

	d, err := s.Dashboard(context.Background(), Query{Coats: []string{"Medium", "Short"}})
	require.NoError(t, err)

	assert.Equal(t, 0, src.catalogs)
	assert.Equal(t, []string{"Medium", "Short"}, d.Coats.Categories)
	assert.Equal(t, []int{1, 2}, d.Coats.Counts)
}

func TestDashboard_OriginMissSetsMapMessage(t *testing.T) {
	geo := laGeocoder()
	s := newTestService(catSource(), geo)

	d, err := s.Dashboard(context.Background(), Query{Location: "99999"})
	require.NoError(t, err)

	assert.Nil(t, d.Origin)
	assert.Equal(t, "Could not generate the map given '99999'", d.MapMessage)
	assert.Len(t, d.Rows, 3)
}

func TestDashboard_EmbeddedStatusIsAPISignaledError(t *testing.T) {
	src := catSource()
	src.resp = petfinder.SearchResponse{Status: 400, Title: "Invalid Request", Detail: "location invalid"}
	geo := laGeocoder()
	s := newTestService(src, geo)

	_, err := s.Dashboard(context.Background(), Query{Location: "zzzzz"})
	require.ErrorIs(t, err, ErrAPISignaled)

	var signaled *APISignaledError
	require.ErrorAs(t, err, &signaled)
	assert.Equal(t, 400, signaled.Status)
	assert.Equal(t, "zzzzz", signaled.Location)
	assert.Equal(t, "Unable to find animals for given location: 'zzzzz'", signaled.Message())
	assert.Empty(t, geo.queries, "no debe geocodificar si la búsqueda falló")
}

func TestDashboard_UnknownCoatAborts(t *testing.T) {
	src := catSource()
	src.resp.Animals = append(src.resp.Animals, animal(4, "Curly", "Male", str("Curly"), "Beverly Hills", "90210"))
	s := newTestService(src, laGeocoder())

	_, err := s.Dashboard(context.Background(), Query{})
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestDashboard_UpstreamErrors(t *testing.T) {
	t.Run("catalog", func(t *testing.T) {
		s := newTestService(&fakeSource{}, laGeocoder())
		_, err := s.Dashboard(context.Background(), Query{})
		assert.ErrorIs(t, err, ErrUpstream)
	})

	t.Run("search", func(t *testing.T) {
		src := catSource()
		src.err = errors.New("connection reset")
		s := newTestService(src, laGeocoder())
		_, err := s.Dashboard(context.Background(), Query{})
		assert.ErrorIs(t, err, ErrUpstream)
	})

	t.Run("geocoder", func(t *testing.T) {
		s := newTestService(catSource(), &fakeGeocoder{err: errors.New("503")})
		_, err := s.Dashboard(context.Background(), Query{})
		assert.ErrorIs(t, err, ErrUpstream)
	})
}

func TestSearch_PassesEmbeddedStatusThrough(t *testing.T) {
	src := &fakeSource{resp: petfinder.SearchResponse{Status: 404, Title: "Not Found"}}
	s := newTestService(src, laGeocoder())

	resp, err := s.Search(context.Background(), petfinder.SearchFilter{Location: "x", Distance: 10, Type: "Cat"})
	require.NoError(t, err)
	assert.True(t, resp.Failed())
	assert.Equal(t, 404, resp.Status)

	require.Len(t, src.filters, 1)
	assert.Equal(t, 1, src.filters[0].Page)
	assert.Equal(t, 50, src.filters[0].Limit)
}

func TestSearch_InvalidFilter(t *testing.T) {
	src := &fakeSource{}
	s := newTestService(src, laGeocoder())

	_, err := s.Search(context.Background(), petfinder.SearchFilter{Distance: 10, Type: "Cat"})
	assert.ErrorIs(t, err, ErrInvalidFilter)
	assert.Empty(t, src.filters)
}

func TestAnimalType(t *testing.T) {
	s := newTestService(catSource(), laGeocoder())

	got, err := s.AnimalType(context.Background(), " Cat ")
	require.NoError(t, err)
	assert.Equal(t, []string{"Short", "Medium", "Long"}, got.Coats)

	_, err = s.AnimalType(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidFilter)
}
