package config

import (
	"log"
	"os"
	"strings"
	"time"
)

const (
	ServiceName    = "mobile-money-relay"
	ServiceVersion = "1.0.0"
)

// Config is the immutable process configuration, loaded once at startup and
// injected into the layers that need it.
//
// Supported env vars (local-friendly):
//   - PORT (default: 8080)
//   - MONEYUNIFY_AUTH_ID (provider credential; endpoints degrade when unset)
//   - MONEYUNIFY_BASE_URL (default: https://api.moneyunify.com)
//   - MONEYUNIFY_HTTP_TIMEOUT (Go duration, default: 30s)
//   - APP_ENV (production hides internal error detail)
type Config struct {
	Port              string
	MoneyUnifyAuthID  string
	MoneyUnifyBaseURL string
	ProviderTimeout   time.Duration
	Environment       string
}

func Load() Config {
	return Config{
		Port:              getenvDefault("PORT", "8080"),
		MoneyUnifyAuthID:  strings.TrimSpace(os.Getenv("MONEYUNIFY_AUTH_ID")),
		MoneyUnifyBaseURL: getenvDefault("MONEYUNIFY_BASE_URL", "https://api.moneyunify.com"),
		ProviderTimeout:   parseTimeout(os.Getenv("MONEYUNIFY_HTTP_TIMEOUT")),
		Environment:       getenvDefault("APP_ENV", "development"),
	}
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(c.Environment), "production")
}

// MoneyUnifyConfigured reports whether the provider credential is present.
// Exposed on /health so deploys can catch a missing secret early.
func (c Config) MoneyUnifyConfigured() bool {
	return c.MoneyUnifyAuthID != ""
}

func parseTimeout(raw string) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 30 * time.Second
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("[config] invalid MONEYUNIFY_HTTP_TIMEOUT=%q; using 30s", raw)
		return 30 * time.Second
	}
	return d
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
