// Package pagination holds the page/limit model used by the news listing:
// query parsing, validation, skip calculation and the related metrics.
package pagination

import "news-portal/pkg/config"

// Config holds pagination configuration settings.
type Config struct {
	DefaultPage  int // used when pageNo is absent
	DefaultLimit int // used when pageLimit is absent
	MaxLimit     int // largest accepted pageLimit
}

// DefaultConfig returns page=1, limit=10, max=100.
func DefaultConfig() Config {
	return Config{
		DefaultPage:  1,
		DefaultLimit: 10,
		MaxLimit:     100,
	}
}

// LoadFromEnv reads PAGINATION_DEFAULT_PAGE, PAGINATION_DEFAULT_LIMIT and
// PAGINATION_MAX_LIMIT on top of base.
func LoadFromEnv(base Config) Config {
	return Config{
		DefaultPage:  config.GetEnvInt("PAGINATION_DEFAULT_PAGE", base.DefaultPage),
		DefaultLimit: config.GetEnvInt("PAGINATION_DEFAULT_LIMIT", base.DefaultLimit),
		MaxLimit:     config.GetEnvInt("PAGINATION_MAX_LIMIT", base.MaxLimit),
	}
}
