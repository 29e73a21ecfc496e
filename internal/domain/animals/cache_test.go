package animals

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pfclient "pet-finder/internal/adapters/petfinder"
)

func TestDashboard_DefaultAfterKeepsSearchCached(t *testing.T) {
	var searches atomic.Int32
	var lastQuery atomic.Value

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v2/oauth2/token", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"access_token":"tok"}`)
	})
	mux.HandleFunc("GET /v2/animals", func(w http.ResponseWriter, r *http.Request) {
		searches.Add(1)
		lastQuery.Store(r.URL.RawQuery)
		_, _ = io.WriteString(w, `{"animals":[{"id":1,"name":"Milo","gender":"Male","coat":"Short"}]}`)
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	src, err := pfclient.NewClient(pfclient.Config{
		BaseURL:      ts.URL + "/v2",
		ClientID:     "id",
		ClientSecret: "secret",
		Timeout:      2 * time.Second,
	})
	require.NoError(t, err)

	clk := time.Date(2024, 5, 8, 12, 0, 0, 0, time.UTC)
	src.WithClock(func() time.Time { return clk })

	s := NewService(src, laGeocoder(), Options{Random: &fixedRand{values: []float64{0.5}}})
	s.now = func() time.Time { return clk }

	for range 3 {
		_, err := s.Dashboard(context.Background(), Query{Coats: []string{"Short"}})
		require.NoError(t, err)
		clk = clk.Add(90 * time.Second)
	}

	assert.Equal(t, int32(1), searches.Load())
	assert.NotContains(t, lastQuery.Load().(string), "after=")
}
