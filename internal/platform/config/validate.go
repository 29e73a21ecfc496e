package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate chequea lo obligatorio. Credenciales faltantes fallan acá y no como
// un 401 del token endpoint más adelante.
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateCredentials,
		c.validatePetFinder,
		c.validateGeocoding,
		c.validateServer,
	}
	for _, v := range validators {
		if err := v(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateCredentials() error {
	var missing []string
	if strings.TrimSpace(c.PetFinder.ClientID) == "" {
		missing = append(missing, "PET_FINDER_API_KEY")
	}
	if strings.TrimSpace(c.PetFinder.ClientSecret) == "" {
		missing = append(missing, "PET_FINDER_API_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrConfig, strings.Join(missing, ", "))
	}
	return nil
}

func (c *Config) validatePetFinder() error {
	if err := validateURL("petfinder.base_url", c.PetFinder.BaseURL); err != nil {
		return err
	}
	if c.PetFinder.TokenTTL <= 0 {
		return fmt.Errorf("%w: petfinder.token_ttl must be > 0", ErrConfig)
	}
	if c.PetFinder.CacheTTL <= 0 {
		return fmt.Errorf("%w: petfinder.cache_ttl must be > 0", ErrConfig)
	}
	// la API acepta 1..100 por página
	if c.PetFinder.PageLimit < 1 || c.PetFinder.PageLimit > 100 {
		return fmt.Errorf("%w: petfinder.page_limit must be between 1 and 100", ErrConfig)
	}
	return nil
}

func (c *Config) validateGeocoding() error {
	if err := validateURL("geocoding.base_url", c.Geocoding.BaseURL); err != nil {
		return err
	}
	if strings.TrimSpace(c.Geocoding.UserAgent) == "" {
		return fmt.Errorf("%w: geocoding.user_agent is required", ErrConfig)
	}
	if c.Geocoding.RequestsPerSecond <= 0 {
		return fmt.Errorf("%w: geocoding.requests_per_second must be > 0", ErrConfig)
	}
	if c.Geocoding.JitterDegrees < 0 || c.Geocoding.JitterDegrees > 1 {
		return fmt.Errorf("%w: geocoding.jitter_degrees must be between 0 and 1", ErrConfig)
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server.port out of range: %d", ErrConfig, c.Server.Port)
	}
	return nil
}

func validateURL(field, raw string) error {
	u, err := url.ParseRequestURI(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return fmt.Errorf("%w: %s must be an absolute url", ErrConfig, field)
	}
	return nil
}
