package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pet-finder/internal/docs"
	"pet-finder/internal/domain/animals"
	"pet-finder/internal/middleware"
	"pet-finder/internal/platform/logger"
	"pet-finder/internal/ports/geocoding"
	"pet-finder/internal/ports/petfinder"
)

type Options struct {
	Source   petfinder.AnimalSource
	Geocoder geocoding.Geocoder

	// Opcionales
	Logger    logger.Logger
	PageLimit int
	Jitter    float64
	Random    animals.RandomSource
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	jitter := opts.Jitter
	if jitter == 0 {
		jitter = animals.DefaultJitter
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))
	r.Use(middleware.Metrics)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Observabilidad
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	svc := animals.NewService(opts.Source, opts.Geocoder, animals.Options{
		PageLimit: opts.PageLimit,
		Jitter:    jitter,
		Random:    opts.Random,
		Logger:    log,
	})
	animals.RegisterRoutes(r, svc)

	return r
}
