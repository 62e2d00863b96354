// Package auth issues and verifies JSON Web Tokens and authenticates
// requests.
package auth

import (
	"errors"
	"fmt"
	"os"
	"time"
)

var (
	ErrSecretMissing = errors.New("the JWT_SECRET environment variable must be set")
	ErrInvalidTTL    = errors.New("token lifetimes must be positive durations")
)

const (
	DefaultAccessTTL  = 5 * time.Minute
	DefaultRefreshTTL = 24 * time.Hour
)

// Config configures token signing.
type Config struct {
	Secret     []byte
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

var config Config

// Configure sets the configuration used by all token operations.
func Configure(c Config) {
	config = c
}

// ConfigFromEnv reads JWT_SECRET, JWT_ACCESS_TTL and JWT_REFRESH_TTL.
func ConfigFromEnv() (Config, error) {
	c := Config{
		AccessTTL:  DefaultAccessTTL,
		RefreshTTL: DefaultRefreshTTL,
	}

	secret, ok := os.LookupEnv("JWT_SECRET")
	if !ok || secret == "" {
		return Config{}, ErrSecretMissing
	}
	c.Secret = []byte(secret)

	for name, target := range map[string]*time.Duration{
		"JWT_ACCESS_TTL":  &c.AccessTTL,
		"JWT_REFRESH_TTL": &c.RefreshTTL,
	} {
		value, ok := os.LookupEnv(name)
		if !ok {
			continue
		}

		d, err := time.ParseDuration(value)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", name, err)
		}

		if d <= 0 {
			return Config{}, fmt.Errorf("%s: %w", name, ErrInvalidTTL)
		}
		*target = d
	}

	return c, nil
}
