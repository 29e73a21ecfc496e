package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ErrConfig indica configuración faltante o inválida. El proceso no debe arrancar.
var ErrConfig = errors.New("configuration error")

// ConfigPathEnvVar permite apuntar a un YAML explícito.
const ConfigPathEnvVar = "CONFIG_PATH"

var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
}

type Config struct {
	Server    ServerConfig    `koanf:"server"`
	PetFinder PetFinderConfig `koanf:"petfinder"`
	Geocoding GeocodingConfig `koanf:"geocoding"`
	Logging   LoggingConfig   `koanf:"logging"`
}

type ServerConfig struct {
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
}

type PetFinderConfig struct {
	BaseURL      string        `koanf:"base_url"`
	ClientID     string        `koanf:"client_id"`
	ClientSecret string        `koanf:"client_secret"`
	Timeout      time.Duration `koanf:"timeout"`

	// TokenTTL: vida del bearer token; CacheTTL: vida de catálogo y búsquedas cacheadas.
	TokenTTL  time.Duration `koanf:"token_ttl"`
	CacheTTL  time.Duration `koanf:"cache_ttl"`
	PageLimit int           `koanf:"page_limit"`
}

type GeocodingConfig struct {
	BaseURL           string        `koanf:"base_url"`
	UserAgent         string        `koanf:"user_agent"`
	Country           string        `koanf:"country"`
	RequestsPerSecond float64       `koanf:"requests_per_second"`
	Timeout           time.Duration `koanf:"timeout"`

	// JitterDegrees es el offset máximo (±) aplicado a lat/lon de cada animal.
	JitterDegrees float64 `koanf:"jitter_degrees"`
}

type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	App    string `koanf:"app"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 60 * time.Second, // el dashboard geocodifica a 1 req/s
		},
		PetFinder: PetFinderConfig{
			BaseURL:   "https://api.petfinder.com/v2",
			Timeout:   10 * time.Second,
			TokenTTL:  3600 * time.Second,
			CacheTTL:  3600 * time.Second,
			PageLimit: 50,
		},
		Geocoding: GeocodingConfig{
			BaseURL:           "https://nominatim.openstreetmap.org",
			UserAgent:         "pet-finder/1.0",
			Country:           "USA",
			RequestsPerSecond: 1,
			Timeout:           10 * time.Second,
			JitterDegrees:     0.01,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			App:    "pet-finder",
		},
	}
}

// Load arma la config en capas: defaults -> YAML opcional -> env.
// Devuelve ErrConfig (wrapped) si falta algo obligatorio.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("%w: load defaults: %v", ErrConfig, err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: load file %s: %v", ErrConfig, path, err)
		}
	}

	// Solo variables conocidas; el resto del entorno se ignora.
	if err := k.Load(env.ProviderWithValue("", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("%w: load env: %v", ErrConfig, err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("%w: unmarshal: %v", ErrConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func findConfigFile() string {
	if p := strings.TrimSpace(os.Getenv(ConfigPathEnvVar)); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

var envMappings = map[string]string{
	"PET_FINDER_API_KEY":    "petfinder.client_id",
	"PET_FINDER_API_SECRET": "petfinder.client_secret",
	"PETFINDER_BASE_URL":    "petfinder.base_url",
	"PETFINDER_TIMEOUT":     "petfinder.timeout",
	"PETFINDER_TOKEN_TTL":   "petfinder.token_ttl",
	"PETFINDER_CACHE_TTL":   "petfinder.cache_ttl",
	"PETFINDER_PAGE_LIMIT":  "petfinder.page_limit",

	"NOMINATIM_BASE_URL":  "geocoding.base_url",
	"GEOCODER_USER_AGENT": "geocoding.user_agent",
	"GEOCODER_COUNTRY":    "geocoding.country",
	"GEOCODER_RPS":        "geocoding.requests_per_second",
	"GEOCODER_TIMEOUT":    "geocoding.timeout",
	"JITTER_DEGREES":      "geocoding.jitter_degrees",

	"PORT":                "server.port",
	"HTTP_READ_TIMEOUT":   "server.read_timeout",
	"HTTP_WRITE_TIMEOUT":  "server.write_timeout",
	"LOG_LEVEL":           "logging.level",
	"LOG_FORMAT":          "logging.format",
	"APP_NAME":            "logging.app",
}

// durationKeys son los paths time.Duration. Desde env aceptan "1h30m" o segundos enteros ("3600").
var durationKeys = map[string]bool{
	"petfinder.timeout":    true,
	"petfinder.token_ttl":  true,
	"petfinder.cache_ttl":  true,
	"geocoding.timeout":    true,
	"server.read_timeout":  true,
	"server.write_timeout": true,
}

// envTransform mapea nombres de env a paths koanf. "" => la variable se descarta.
func envTransform(key, value string) (string, any) {
	path := envMappings[strings.ToUpper(strings.TrimSpace(key))]
	value = strings.TrimSpace(value)
	if durationKeys[path] && isDigits(value) {
		value += "s"
	}
	return path, value
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
