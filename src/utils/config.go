package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel     string `env:"LOG_LEVEL" envDefault:"warn"`
	Environment  string `env:"DGN" envDefault:""`
	OutputFormat string `env:"OUTPUT_FORMAT" envDefault:"table"`
	StrictBounds bool   `env:"STRICT_BOUNDS" envDefault:"false"`

	CacheEnabled    bool          `env:"CACHE_ENABLED" envDefault:"false"`
	CacheURLScheme  string        `env:"CACHE_URL_SCHEME" envDefault:"redis"`
	CacheClusterURL string        `env:"CACHE_CLUSTER_URL" envDefault:"localhost"`
	CachePort       string        `env:"CACHE_PORT" envDefault:"6379"`
	CachePassword   string        `env:"CACHE_PASSWORD" envDefault:""`
	CacheUsername   string        `env:"CACHE_USERNAME" envDefault:""`
	CacheTLSDomain  string        `env:"CACHE_TLS_DOMAIN" envDefault:""`
	CacheDB         int           `env:"CACHE_DB" envDefault:"0"`
	CacheTTL        time.Duration `env:"CACHE_TTL" envDefault:"24h"`
}

// LoadConfig reads the optional dotenv files and then the environment.
// A missing dotenv file is not an error.
func LoadConfig(dotenvFiles ...string) (*Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, file := range dotenvFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// CacheAddr returns host:port of the cache server
func (c *Config) CacheAddr() string {
	return fmt.Sprintf("%s:%s", c.CacheClusterURL, c.CachePort)
}
