package middleware

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"pet-finder/internal/platform/logger"
)

// RequestLogger deja en el ctx un logger con el request_id de chimw.RequestID
// (por eso tiene que ir después de ese middleware).
func RequestLogger(base logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			l := base
			if id := chimw.GetReqID(r.Context()); id != "" {
				l = l.With(map[string]any{"request_id": id})
			}
			next.ServeHTTP(w, r.WithContext(logger.NewContext(r.Context(), l)))
		})
	}
}
