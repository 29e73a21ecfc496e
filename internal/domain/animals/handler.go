package animals

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"pet-finder/internal/platform/logger"
	"pet-finder/internal/ports/petfinder"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/types/{species}", getTypeHandler(svc))
	r.Get("/animals", searchHandler(svc))
	r.Get("/dashboard", dashboardHandler(svc))
}

type errorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status,omitempty"`
}

// getTypeHandler godoc
// @Summary  Catálogo de una especie
// @Tags     animals
// @Produce  json
// @Param    species path string true "Especie (Cat, Dog, ...)"
// @Success  200 {object} petfinder.AnimalType
// @Failure  502 {object} errorResponse
// @Router   /types/{species} [get]
func getTypeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := svc.AnimalType(r.Context(), chi.URLParam(r, "species"))
		if err != nil {
			writeError(w, r, svc, err)
			return
		}
		writeJSON(w, http.StatusOK, t)
	}
}

// searchHandler godoc
// @Summary  Búsqueda cruda de animales
// @Description Devuelve la respuesta de Petfinder sin tocar. Si trae status 4xx/5xx embebido se responde con ese status; cualquier otro valor => 502.
// @Tags     animals
// @Produce  json
// @Param    location query string true  "Código postal o ciudad"
// @Param    distance query int    false "Millas"
// @Param    type     query string true  "Especie"
// @Param    gender   query string false "Male,Female,Unknown"
// @Param    coat     query string false "Lista separada por coma"
// @Param    color    query string false "Lista separada por coma"
// @Param    after    query string false "YYYY-MM-DD o YYYY-MM-DD HH:MM:SS"
// @Param    page     query int    false "Página (default 1)"
// @Param    limit    query int    false "Resultados por página (default 50)"
// @Success  200 {object} petfinder.SearchResponse
// @Failure  400 {object} errorResponse
// @Failure  502 {object} errorResponse
// @Router   /animals [get]
func searchHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := parseSearchFilter(r.URL.Query())
		if err != nil {
			writeError(w, r, svc, err)
			return
		}

		resp, err := svc.Search(r.Context(), f)
		if err != nil {
			writeError(w, r, svc, err)
			return
		}

		status := http.StatusOK
		if resp.Failed() {
			status = signaledStatus(resp.Status)
		}
		writeJSON(w, status, resp)
	}
}

// dashboardHandler godoc
// @Summary  Dashboard de búsqueda (mapa, gráficos y tabla)
// @Tags     animals
// @Produce  json
// @Param    location query string false "Default 90210"
// @Param    distance query int    false "Default 20"
// @Param    type     query string false "Default Cat"
// @Param    male     query bool   false "Default true"
// @Param    female   query bool   false "Default true"
// @Param    coat     query string false "Default: todos los del catálogo"
// @Param    color    query string false "Lista separada por coma"
// @Param    after    query string false "Default: hoy - 7 días"
// @Success  200 {object} Dashboard
// @Failure  400 {object} errorResponse
// @Failure  404 {object} errorResponse
// @Failure  502 {object} errorResponse
// @Router   /dashboard [get]
func dashboardHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := parseQuery(r.URL.Query())
		if err != nil {
			writeError(w, r, svc, err)
			return
		}

		d, err := svc.Dashboard(r.Context(), q)
		if err != nil {
			writeError(w, r, svc, err)
			return
		}
		writeJSON(w, http.StatusOK, d)
	}
}

func parseQuery(v url.Values) (Query, error) {
	q := Query{
		Type:     v.Get("type"),
		Location: v.Get("location"),
		Coats:    splitList(v["coat"]),
		Colors:   splitList(v["color"]),
		After:    v.Get("after"),
	}

	var err error
	if q.Distance, err = intParam(v, "distance"); err != nil {
		return Query{}, err
	}
	if q.Page, err = intParam(v, "page"); err != nil {
		return Query{}, err
	}
	if q.Limit, err = intParam(v, "limit"); err != nil {
		return Query{}, err
	}
	if q.Male, err = boolParam(v, "male"); err != nil {
		return Query{}, err
	}
	if q.Female, err = boolParam(v, "female"); err != nil {
		return Query{}, err
	}
	return q, nil
}

func parseSearchFilter(v url.Values) (petfinder.SearchFilter, error) {
	f := petfinder.SearchFilter{
		Location: strings.TrimSpace(v.Get("location")),
		Type:     strings.TrimSpace(v.Get("type")),
		Genders:  splitList(v["gender"]),
		Coats:    splitList(v["coat"]),
		Colors:   splitList(v["color"]),
	}

	var err error
	if f.Distance, err = intParam(v, "distance"); err != nil {
		return f, err
	}
	if f.Distance == 0 {
		f.Distance = DefaultDistance
	}
	if f.Page, err = intParam(v, "page"); err != nil {
		return f, err
	}
	if f.Limit, err = intParam(v, "limit"); err != nil {
		return f, err
	}
	if s := v.Get("after"); strings.TrimSpace(s) != "" {
		if f.After, err = ParseAfter(s, nil); err != nil {
			return f, err
		}
	}
	return f, nil
}

// splitList acepta "a,b" y también el parámetro repetido (?coat=a&coat=b).
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func intParam(v url.Values, name string) (int, error) {
	s := strings.TrimSpace(v.Get(name))
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidFilter, name)
	}
	return n, nil
}

func boolParam(v url.Values, name string) (*bool, error) {
	s := strings.TrimSpace(v.Get(name))
	if s == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a boolean", ErrInvalidFilter, name)
	}
	return &b, nil
}

// signaledStatus usa el status embebido como status HTTP si es un error válido (4xx/5xx).
// Cualquier otro valor viene mal del upstream => 502.
func signaledStatus(status int) int {
	if status < 400 || status > 599 {
		return http.StatusBadGateway
	}
	return status
}

func writeError(w http.ResponseWriter, r *http.Request, svc *Service, err error) {
	var signaled *APISignaledError
	switch {
	case errors.As(err, &signaled):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: signaled.Message(), Status: signaled.Status})
	case errors.Is(err, ErrInvalidFilter):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, ErrUpstream):
		logger.FromContext(r.Context(), svc.log).Error("upstream failure", map[string]any{"err": err})
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "upstream service unavailable"})
	default:
		logger.FromContext(r.Context(), svc.log).Error("request failed", map[string]any{"err": err})
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
