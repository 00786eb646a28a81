// Package api assembles the API module with all domain systems and route
// registration.
package api

import (
	"net/http"

	"github.com/meditriage/meditriage/internal/config"
	"github.com/meditriage/meditriage/internal/infrastructure"
	"github.com/meditriage/meditriage/pkg/middleware"
	"github.com/meditriage/meditriage/pkg/module"
)

// NewModule creates the API module with all domain handlers and middleware.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	mux := http.NewServeMux()
	registerRoutes(mux, domain, runtime)

	auth, err := middleware.Auth(
		infra.Lifecycle.Context(),
		&cfg.API.Auth,
		runtime.Logger,
	)
	if err != nil {
		return nil, err
	}

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))
	m.Use(auth)
	m.Use(limitRequestSize(cfg.API.MaxRequestSizeBytes()))

	return m, nil
}

// limitRequestSize caps request bodies so oversized narratives fail with a
// decode error instead of exhausting the server.
func limitRequestSize(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
