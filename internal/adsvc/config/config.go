package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/duofinder/duo-services/internal/adsvc/service"
)

type Config struct {
	Port           string   `envconfig:"AD_SERVICE_PORT" default:"3333"`
	PostgresURL    string   `envconfig:"POSTGRES_URL" required:"true"`
	RateLimit      int      `envconfig:"RATE_LIMIT" default:"100"`
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173"`

	// EmptyResultPolicy picks between the legacy "zero rows is a 400"
	// contract ("error") and empty success responses ("empty").
	EmptyResultPolicy string `envconfig:"EMPTY_RESULT_POLICY" default:"error"`
}

func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, fmt.Errorf("failed to process environment: %w", err)
	}

	switch c.EmptyResultPolicy {
	case string(service.EmptyResultError), string(service.EmptyResultOK):
	default:
		return Config{}, fmt.Errorf("invalid EMPTY_RESULT_POLICY %q", c.EmptyResultPolicy)
	}

	return c, nil
}

func (c Config) Policy() service.EmptyResultPolicy {
	return service.EmptyResultPolicy(c.EmptyResultPolicy)
}
