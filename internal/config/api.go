package config

import (
	"fmt"
	"os"

	"github.com/meditriage/meditriage/pkg/formatting"
	"github.com/meditriage/meditriage/pkg/middleware"
	"github.com/meditriage/meditriage/pkg/pagination"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "MEDITRIAGE_CORS_ENABLED",
	Origins:          "MEDITRIAGE_CORS_ORIGINS",
	AllowedMethods:   "MEDITRIAGE_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "MEDITRIAGE_CORS_ALLOWED_HEADERS",
	AllowCredentials: "MEDITRIAGE_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "MEDITRIAGE_CORS_MAX_AGE",
}

var authEnv = &middleware.AuthEnv{
	Enabled:  "MEDITRIAGE_AUTH_ENABLED",
	Issuer:   "MEDITRIAGE_AUTH_ISSUER",
	ClientID: "MEDITRIAGE_AUTH_CLIENT_ID",
}

var paginationEnv = &pagination.ConfigEnv{
	DefaultPageSize: "MEDITRIAGE_PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "MEDITRIAGE_PAGINATION_MAX_PAGE_SIZE",
}

// APIConfig holds API routing, request limits, CORS, auth, and pagination
// settings.
type APIConfig struct {
	BasePath       string                `toml:"base_path"`
	MaxRequestSize string                `toml:"max_request_size"`
	CORS           middleware.CORSConfig `toml:"cors"`
	Auth           middleware.AuthConfig `toml:"auth"`
	Pagination     pagination.Config     `toml:"pagination"`
}

// MaxRequestSizeBytes returns the request body limit as a byte count.
func (c *APIConfig) MaxRequestSizeBytes() int64 {
	size, err := formatting.ParseBytes(c.MaxRequestSize)
	if err != nil {
		return 1024 * 1024 // 1MB fallback
	}
	return size
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested configs.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.Auth.Finalize(authEnv); err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	if err := c.Pagination.Finalize(paginationEnv); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxRequestSize != "" {
		c.MaxRequestSize = overlay.MaxRequestSize
	}

	c.CORS.Merge(&overlay.CORS)
	c.Auth.Merge(&overlay.Auth)
	c.Pagination.Merge(&overlay.Pagination)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxRequestSize == "" {
		c.MaxRequestSize = "1MB"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv("MEDITRIAGE_API_BASE_PATH"); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv("MEDITRIAGE_API_MAX_REQUEST_SIZE"); v != "" {
		c.MaxRequestSize = v
	}
}
