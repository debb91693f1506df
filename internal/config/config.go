// README: Config loader; viper over TRIPSENSE_* env vars with an optional .env file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "TRIPSENSE"

// Catalog sources.
const (
	SourceSeed     = "seed"
	SourcePostgres = "postgres"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	HTTP struct {
		Addr         string
		CORSOrigins  []string
		FetchTimeout time.Duration
	}
	Log struct {
		Level  string
		Format string
	}
	Catalog struct {
		Source string
		// SeedOnStart copies the embedded seed into Postgres at boot.
		SeedOnStart bool
	}
	DB struct {
		DSN string
	}
	Redis struct {
		// Addr empty disables the catalog cache.
		Addr     string
		CacheTTL time.Duration
	}
}

// Load reads .env when present, then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("http_addr", ":8080")
	v.SetDefault("cors_origins", "*")
	v.SetDefault("fetch_timeout", "5s")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("catalog_source", SourceSeed)
	v.SetDefault("catalog_seed_on_start", false)
	v.SetDefault("db_dsn", "")
	v.SetDefault("redis_addr", "")
	v.SetDefault("cache_ttl", "10m")
	return v
}

// FromViper builds and validates a Config from v.
func FromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = v.GetString("http_addr")
	cfg.HTTP.CORSOrigins = splitList(v.GetString("cors_origins"))
	cfg.HTTP.FetchTimeout = v.GetDuration("fetch_timeout")
	cfg.Log.Level = v.GetString("log_level")
	cfg.Log.Format = v.GetString("log_format")
	cfg.Catalog.Source = strings.ToLower(strings.TrimSpace(v.GetString("catalog_source")))
	cfg.Catalog.SeedOnStart = v.GetBool("catalog_seed_on_start")
	cfg.DB.DSN = v.GetString("db_dsn")
	cfg.Redis.Addr = v.GetString("redis_addr")
	cfg.Redis.CacheTTL = v.GetDuration("cache_ttl")

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Catalog.Source {
	case SourceSeed:
	case SourcePostgres:
		if c.DB.DSN == "" {
			return fmt.Errorf("%w: %s_DB_DSN is required when catalog source is postgres", ErrInvalid, envPrefix)
		}
	default:
		return fmt.Errorf("%w: unknown catalog source %q", ErrInvalid, c.Catalog.Source)
	}
	if c.HTTP.FetchTimeout <= 0 {
		return fmt.Errorf("%w: %s_FETCH_TIMEOUT must be a positive duration", ErrInvalid, envPrefix)
	}
	if c.Redis.Addr != "" && c.Redis.CacheTTL <= 0 {
		return fmt.Errorf("%w: %s_CACHE_TTL must be a positive duration", ErrInvalid, envPrefix)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
