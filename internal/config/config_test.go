package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"CONFIG_FILE", "VERSION", "LOG_LEVEL", "HTTP_ADDR", "REQUEST_TIMEOUT",
	"STORE_DRIVER", "MONGO_URI", "MONGO_DATABASE", "DATABASE_URL",
	"PAGINATION_DEFAULT_LIMIT", "PAGINATION_MAX_LIMIT", "MAX_UPLOAD_BYTES",
	"CORS_ALLOWED_ORIGINS", "SANITIZE_CONTENT", "NEWS_JWT_SECRET",
	"DB_MAX_OPEN_CONNS", "OTEL_TRACES_SAMPLER_RATIO",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "news.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFile_EnvOnly(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("SANITIZE_CONTENT", "true")

	cfg, err := LoadFile("")
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.Store.Driver)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.CORSOrigins)
	assert.True(t, cfg.News.SanitizeContent)
	assert.Equal(t, 10, cfg.Pagination().DefaultLimit)
	assert.Equal(t, 1, cfg.Pagination().DefaultPage)
}

func TestLoadFile_YAMLThenEnv(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
version: "1.4.0"
http:
  addr: ":7000"
  request_timeout: 45s
store:
  driver: postgres
  postgres:
    url: postgres://news@db/portal
    max_open_conns: 40
news:
  default_limit: 20
  max_limit: 50
  max_upload_bytes: 1048576
`)
	t.Setenv("HTTP_ADDR", ":7001")
	t.Setenv("DB_MAX_OPEN_CONNS", "60")

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "1.4.0", cfg.Version)
	assert.Equal(t, ":7001", cfg.HTTP.Addr, "environment wins over the file")
	assert.Equal(t, 45*time.Second, cfg.HTTP.RequestTimeout)
	assert.Equal(t, DriverPostgres, cfg.Store.Driver)
	assert.Equal(t, 60, cfg.Pool().MaxOpenConns)
	assert.Equal(t, 10, cfg.Pool().MaxIdleConns, "unset keys keep defaults")
	assert.Equal(t, 20, cfg.Pagination().DefaultLimit)
	assert.Equal(t, 50, cfg.Pagination().MaxLimit)
	assert.Equal(t, int64(1<<20), cfg.News.MaxUploadBytes)
}

func TestLoadFile_MemoryCategories(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
store:
  driver: memory
  memory:
    categories:
      c1: Politics
      c2: Sports
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"c1": "Politics", "c2": "Sports"}, cfg.Store.Memory.Categories)
}

func TestLoadFile_Errors(t *testing.T) {
	clearEnv(t)

	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")

	_, err = LoadFile(writeFile(t, "http: [unclosed"))
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		c := Default()
		c.Store.Driver = DriverMemory
		return c
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "mongo without uri", mutate: func(c *Config) { c.Store.Driver = DriverMongo }, wantErr: "MONGO_URI"},
		{name: "mongo with uri", mutate: func(c *Config) {
			c.Store.Driver = DriverMongo
			c.Store.Mongo.URI = "mongodb://localhost"
		}},
		{name: "postgres without url", mutate: func(c *Config) { c.Store.Driver = DriverPostgres }, wantErr: "DATABASE_URL"},
		{name: "unknown driver", mutate: func(c *Config) { c.Store.Driver = "sqlite" }, wantErr: `unknown store driver "sqlite"`},
		{name: "max below default", mutate: func(c *Config) { c.News.MaxLimit = 5 }, wantErr: "below the default"},
		{name: "zero default limit", mutate: func(c *Config) { c.News.DefaultLimit = 0 }, wantErr: "at least 1"},
		{name: "zero upload limit", mutate: func(c *Config) { c.News.MaxUploadBytes = 0 }, wantErr: "upload"},
		{name: "sample ratio", mutate: func(c *Config) { c.Tracing.SampleRatio = 1.5 }, wantErr: "sample ratio"},
		{name: "request timeout too long", mutate: func(c *Config) { c.HTTP.RequestTimeout = time.Hour }, wantErr: "request_timeout"},
		{name: "request timeout disabled", mutate: func(c *Config) { c.HTTP.RequestTimeout = 0 }},
		{name: "shutdown timeout", mutate: func(c *Config) { c.HTTP.ShutdownTimeout = 0 }, wantErr: "shutdown_timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	c := Default()
	c.Store.Driver = DriverPostgres
	c.News.MaxUploadBytes = -1

	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
	assert.Contains(t, err.Error(), "upload")
}
