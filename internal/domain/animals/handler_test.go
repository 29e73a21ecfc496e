package animals

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-finder/internal/ports/petfinder"
)

func serve(t *testing.T, s *Service, target string) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	RegisterRoutes(r, s)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestDashboardHandler_OK(t *testing.T) {
	src := catSource()
	rec := serve(t, newTestService(src, laGeocoder()), "/dashboard?male=true&female=false&coat=Short,Medium&color=Black&distance=30")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		SearchID string `json:"search_id"`
		Gender   struct {
			Male   int `json:"male"`
			Female int `json:"female"`
		} `json:"gender"`
		Coats struct {
			Categories []string `json:"categories"`
			Counts     []int    `json:"counts"`
		} `json:"coats"`
		Columns []string         `json:"columns"`
		Rows    []map[string]any `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "search-1", body.SearchID)
	assert.Equal(t, []string{"Short", "Medium"}, body.Coats.Categories)
	assert.Equal(t, []int{2, 1}, body.Coats.Counts)
	assert.Equal(t, Columns, body.Columns)
	require.Len(t, body.Rows, 3)
	assert.Equal(t, "Milo", body.Rows[0]["Name"])

	require.Len(t, src.filters, 1)
	assert.Equal(t, []string{"Male"}, src.filters[0].Genders)
	assert.Equal(t, []string{"Black"}, src.filters[0].Colors)
	assert.Equal(t, 30, src.filters[0].Distance)
}

func TestDashboardHandler_EmbeddedErrorIs404(t *testing.T) {
	src := catSource()
	src.resp = petfinder.SearchResponse{Status: 400, Title: "Invalid Request"}

	rec := serve(t, newTestService(src, laGeocoder()), "/dashboard?location=abcde")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Unable to find animals for given location: 'abcde'","status":400}`, rec.Body.String())
}

func TestDashboardHandler_BadParams(t *testing.T) {
	s := newTestService(catSource(), laGeocoder())

	for _, target := range []string{
		"/dashboard?distance=far",
		"/dashboard?male=maybe",
		"/dashboard?after=last-week",
	} {
		rec := serve(t, s, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestDashboardHandler_UnknownCoatIs500(t *testing.T) {
	src := catSource()
	rec := serve(t, newTestService(src, laGeocoder()), "/dashboard?coat=Long")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSearchHandler_SurfacesEmbeddedStatus(t *testing.T) {
	src := &fakeSource{resp: petfinder.SearchResponse{Status: 404, Title: "Not Found", Detail: "nope"}}
	rec := serve(t, newTestService(src, laGeocoder()), "/animals?location=00000&type=Cat&gender=Male,Female")

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got petfinder.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 404, got.Status)
	assert.Equal(t, "nope", got.Detail)

	require.Len(t, src.filters, 1)
	assert.Equal(t, []string{"Male", "Female"}, src.filters[0].Genders)
	assert.Equal(t, DefaultDistance, src.filters[0].Distance)
}

func TestSearchHandler_OutOfRangeEmbeddedStatusIs502(t *testing.T) {
	for _, status := range []int{1200, 600} {
		src := &fakeSource{resp: petfinder.SearchResponse{Status: status, Title: "Weird"}}
		rec := serve(t, newTestService(src, laGeocoder()), "/animals?location=00000&type=Cat")

		assert.Equal(t, http.StatusBadGateway, rec.Code, status)
		assert.Contains(t, rec.Body.String(), `"title":"Weird"`)
	}
}

func TestSignaledStatus(t *testing.T) {
	assert.Equal(t, 400, signaledStatus(400))
	assert.Equal(t, 599, signaledStatus(599))
	assert.Equal(t, http.StatusBadGateway, signaledStatus(600))
	assert.Equal(t, http.StatusBadGateway, signaledStatus(99999))
}

func TestSearchHandler_MissingLocationIs400(t *testing.T) {
	rec := serve(t, newTestService(&fakeSource{}, laGeocoder()), "/animals?type=Cat")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTypeHandler(t *testing.T) {
	s := newTestService(catSource(), laGeocoder())

	rec := serve(t, s, "/types/Cat")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"coats":["Short","Medium","Long"]`)

	rec = serve(t, s, "/types/Dragon")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
