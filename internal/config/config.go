// Package config assembles the news service configuration. An optional
// YAML file named by CONFIG_FILE supplies the base values; environment
// variables override them.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"news-portal/internal/common/pagination"
	"news-portal/internal/infra/db"
	env "news-portal/pkg/config"
)

// Store drivers.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config is the full service configuration.
type Config struct {
	Version  string `yaml:"version"`
	LogLevel string `yaml:"log_level"`

	HTTP struct {
		Addr            string        `yaml:"addr"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		IdleTimeout     time.Duration `yaml:"idle_timeout"`
		RequestTimeout  time.Duration `yaml:"request_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
		CORSOrigins     []string      `yaml:"cors_allowed_origins"`
	} `yaml:"http"`

	Store struct {
		Driver string `yaml:"driver"`
		Mongo  struct {
			URI            string        `yaml:"uri"`
			Database       string        `yaml:"database"`
			ConnectTimeout time.Duration `yaml:"connect_timeout"`
			MaxPoolSize    uint64        `yaml:"max_pool_size"`
		} `yaml:"mongo"`
		Postgres struct {
			URL             string        `yaml:"url"`
			MaxOpenConns    int           `yaml:"max_open_conns"`
			MaxIdleConns    int           `yaml:"max_idle_conns"`
			ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
			ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
		} `yaml:"postgres"`
		Memory struct {
			// Categories seeds the in-memory store, keyed by category id.
			Categories map[string]string `yaml:"categories"`
		} `yaml:"memory"`
	} `yaml:"store"`

	News struct {
		DefaultLimit    int   `yaml:"default_limit"`
		MaxLimit        int   `yaml:"max_limit"`
		MaxUploadBytes  int64 `yaml:"max_upload_bytes"`
		SanitizeContent bool  `yaml:"sanitize_content"`
	} `yaml:"news"`

	Auth struct {
		JWTSecret string `yaml:"jwt_secret"`
	} `yaml:"auth"`

	Tracing struct {
		OTLPEndpoint string  `yaml:"otlp_endpoint"`
		SampleRatio  float64 `yaml:"sample_ratio"`
		Environment  string  `yaml:"environment"`
	} `yaml:"tracing"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	var c Config
	c.Version = "dev"
	c.LogLevel = "info"

	c.HTTP.Addr = ":8080"
	c.HTTP.ReadTimeout = 15 * time.Second
	c.HTTP.WriteTimeout = 30 * time.Second
	c.HTTP.IdleTimeout = 60 * time.Second
	c.HTTP.RequestTimeout = 20 * time.Second
	c.HTTP.ShutdownTimeout = 10 * time.Second

	c.Store.Driver = DriverMongo
	c.Store.Mongo.Database = "news_portal"
	c.Store.Mongo.ConnectTimeout = 10 * time.Second
	pool := db.DefaultConnectionConfig()
	c.Store.Postgres.MaxOpenConns = pool.MaxOpenConns
	c.Store.Postgres.MaxIdleConns = pool.MaxIdleConns
	c.Store.Postgres.ConnMaxLifetime = pool.ConnMaxLifetime
	c.Store.Postgres.ConnMaxIdleTime = pool.ConnMaxIdleTime

	pg := pagination.DefaultConfig()
	c.News.DefaultLimit = pg.DefaultLimit
	c.News.MaxLimit = pg.MaxLimit
	c.News.MaxUploadBytes = 5 << 20

	c.Tracing.SampleRatio = 1.0
	c.Tracing.Environment = "development"
	return c
}

// Load builds the configuration from CONFIG_FILE (if set) and the environment.
func Load() (Config, error) {
	return LoadFile(os.Getenv("CONFIG_FILE"))
}

// LoadFile reads path on top of Default, applies environment overrides and
// validates the result. An empty path skips the file.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		// #nosec G304 -- path comes from the operator, not from requests
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Version = env.GetEnvString("VERSION", c.Version)
	c.LogLevel = env.GetEnvString("LOG_LEVEL", c.LogLevel)

	c.HTTP.Addr = env.GetEnvString("HTTP_ADDR", c.HTTP.Addr)
	c.HTTP.ReadTimeout = env.GetEnvDuration("HTTP_READ_TIMEOUT", c.HTTP.ReadTimeout)
	c.HTTP.WriteTimeout = env.GetEnvDuration("HTTP_WRITE_TIMEOUT", c.HTTP.WriteTimeout)
	c.HTTP.IdleTimeout = env.GetEnvDuration("HTTP_IDLE_TIMEOUT", c.HTTP.IdleTimeout)
	c.HTTP.RequestTimeout = env.GetEnvDuration("REQUEST_TIMEOUT", c.HTTP.RequestTimeout)
	c.HTTP.ShutdownTimeout = env.GetEnvDuration("SHUTDOWN_TIMEOUT", c.HTTP.ShutdownTimeout)
	c.HTTP.CORSOrigins = env.GetEnvStringList("CORS_ALLOWED_ORIGINS", c.HTTP.CORSOrigins)

	c.Store.Driver = env.GetEnvString("STORE_DRIVER", c.Store.Driver)
	c.Store.Mongo.URI = env.GetEnvString("MONGO_URI", c.Store.Mongo.URI)
	c.Store.Mongo.Database = env.GetEnvString("MONGO_DATABASE", c.Store.Mongo.Database)
	c.Store.Mongo.ConnectTimeout = env.GetEnvDuration("MONGO_CONNECT_TIMEOUT", c.Store.Mongo.ConnectTimeout)
	if n := env.GetEnvInt64("MONGO_MAX_POOL_SIZE", 0); n > 0 {
		c.Store.Mongo.MaxPoolSize = uint64(n)
	}
	c.Store.Postgres.URL = env.GetEnvString("DATABASE_URL", c.Store.Postgres.URL)
	pool := db.ConnectionConfigFromEnv(c.Pool())
	c.Store.Postgres.MaxOpenConns = pool.MaxOpenConns
	c.Store.Postgres.MaxIdleConns = pool.MaxIdleConns
	c.Store.Postgres.ConnMaxLifetime = pool.ConnMaxLifetime
	c.Store.Postgres.ConnMaxIdleTime = pool.ConnMaxIdleTime

	pg := pagination.LoadFromEnv(c.Pagination())
	c.News.DefaultLimit = pg.DefaultLimit
	c.News.MaxLimit = pg.MaxLimit
	c.News.MaxUploadBytes = env.GetEnvInt64("MAX_UPLOAD_BYTES", c.News.MaxUploadBytes)
	c.News.SanitizeContent = env.GetEnvBool("SANITIZE_CONTENT", c.News.SanitizeContent)

	c.Auth.JWTSecret = env.GetEnvString("NEWS_JWT_SECRET", c.Auth.JWTSecret)

	c.Tracing.OTLPEndpoint = env.GetEnvString("OTEL_EXPORTER_OTLP_ENDPOINT", c.Tracing.OTLPEndpoint)
	c.Tracing.SampleRatio = env.GetEnvFloat("OTEL_TRACES_SAMPLER_RATIO", c.Tracing.SampleRatio)
	c.Tracing.Environment = env.GetEnvString("ENVIRONMENT", c.Tracing.Environment)
}

var knownDrivers = []string{DriverMongo, DriverPostgres, DriverMemory}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error

	if c.HTTP.Addr == "" {
		errs = append(errs, errors.New("http addr is required"))
	}
	for name, d := range map[string]time.Duration{
		"read_timeout":     c.HTTP.ReadTimeout,
		"write_timeout":    c.HTTP.WriteTimeout,
		"shutdown_timeout": c.HTTP.ShutdownTimeout,
	} {
		if err := env.ValidatePositiveDuration(d); err != nil {
			errs = append(errs, fmt.Errorf("http %s: %w", name, err))
		}
	}
	if c.HTTP.RequestTimeout != 0 {
		if err := env.ValidateDurationRange(c.HTTP.RequestTimeout, time.Second, 5*time.Minute); err != nil {
			errs = append(errs, fmt.Errorf("request_timeout: %w", err))
		}
	}

	switch c.Store.Driver {
	case DriverMongo:
		if c.Store.Mongo.URI == "" {
			errs = append(errs, errors.New("MONGO_URI is required for the mongo driver"))
		}
		if c.Store.Mongo.Database == "" {
			errs = append(errs, errors.New("mongo database is required"))
		}
	case DriverPostgres:
		if c.Store.Postgres.URL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required for the postgres driver"))
		}
	default:
		if !slices.Contains(knownDrivers, c.Store.Driver) {
			errs = append(errs, fmt.Errorf("unknown store driver %q (want one of %v)", c.Store.Driver, knownDrivers))
		}
	}

	if c.News.DefaultLimit < 1 {
		errs = append(errs, errors.New("default page limit must be at least 1"))
	}
	if c.News.MaxLimit < c.News.DefaultLimit {
		errs = append(errs, fmt.Errorf("max page limit %d is below the default %d", c.News.MaxLimit, c.News.DefaultLimit))
	}
	if c.News.MaxUploadBytes <= 0 {
		errs = append(errs, errors.New("max upload bytes must be positive"))
	}
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		errs = append(errs, fmt.Errorf("sample ratio %v outside [0, 1]", c.Tracing.SampleRatio))
	}
	return errors.Join(errs...)
}

// Pagination returns the listing limits.
func (c Config) Pagination() pagination.Config {
	p := pagination.DefaultConfig()
	p.DefaultLimit = c.News.DefaultLimit
	p.MaxLimit = c.News.MaxLimit
	return p
}

// Pool returns the postgres pool settings.
func (c Config) Pool() db.ConnectionConfig {
	return db.ConnectionConfig{
		MaxOpenConns:    c.Store.Postgres.MaxOpenConns,
		MaxIdleConns:    c.Store.Postgres.MaxIdleConns,
		ConnMaxLifetime: c.Store.Postgres.ConnMaxLifetime,
		ConnMaxIdleTime: c.Store.Postgres.ConnMaxIdleTime,
	}
}

// Mongo returns the document store connection settings.
func (c Config) Mongo() db.MongoConfig {
	return db.MongoConfig{
		URI:            c.Store.Mongo.URI,
		Database:       c.Store.Mongo.Database,
		ConnectTimeout: c.Store.Mongo.ConnectTimeout,
		MaxPoolSize:    c.Store.Mongo.MaxPoolSize,
	}
}
