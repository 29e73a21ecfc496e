// @title       Pet Finder API
// @version     1.0
// @description Búsqueda de animales en adopción sobre la API de Petfinder: catálogo, búsqueda y dashboard.
// @BasePath    /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"pet-finder/internal/adapters/geocoding/nominatim"
	"pet-finder/internal/adapters/petfinder"
	"pet-finder/internal/platform/config"
	"pet-finder/internal/platform/logger"
	"pet-finder/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// sin config todavía no hay logger configurado
		logger.NewFromEnv().Error("config error", map[string]any{"err": err})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Logging.Level),
		Format: logger.ParseFormat(cfg.Logging.Format),
		App:    cfg.Logging.App,
	})

	src, err := petfinder.NewClient(petfinder.Config{
		BaseURL:      cfg.PetFinder.BaseURL,
		ClientID:     cfg.PetFinder.ClientID,
		ClientSecret: cfg.PetFinder.ClientSecret,
		Timeout:      cfg.PetFinder.Timeout,
		TokenTTL:     cfg.PetFinder.TokenTTL,
		CacheTTL:     cfg.PetFinder.CacheTTL,
		PageLimit:    cfg.PetFinder.PageLimit,
		Logger:       log,
	})
	if err != nil {
		log.Error("petfinder client", map[string]any{"err": err})
		os.Exit(1)
	}

	geo, err := nominatim.NewClient(nominatim.Config{
		BaseURL:           cfg.Geocoding.BaseURL,
		UserAgent:         cfg.Geocoding.UserAgent,
		Country:           cfg.Geocoding.Country,
		RequestsPerSecond: cfg.Geocoding.RequestsPerSecond,
		Timeout:           cfg.Geocoding.Timeout,
		Logger:            log,
	})
	if err != nil {
		log.Error("geocoder client", map[string]any{"err": err})
		os.Exit(1)
	}

	r := router.NewRouter(router.Options{
		Source:    src,
		Geocoder:  geo,
		Logger:    log,
		PageLimit: cfg.PetFinder.PageLimit,
		Jitter:    cfg.Geocoding.JitterDegrees,
	})

	addr := ":" + strconv.Itoa(cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("starting server", map[string]any{"addr": addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", map[string]any{"err": err})
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", map[string]any{"err": err})
	}
	log.Info("server stopped", nil)
}
