package notifications

import (
	"log/slog"
	"net/http"

	"github.com/meditriage/meditriage/internal/engine"
	"github.com/meditriage/meditriage/pkg/handlers"
	"github.com/meditriage/meditriage/pkg/routes"
)

// CategoryHandler exposes the category registry over HTTP. Categories are
// compiled in, so the handler reads straight from the engine.
type CategoryHandler struct {
	logger *slog.Logger
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		logger: logger.With("handler", "categories"),
	}
}

// Routes returns the route group definition for category endpoints.
func (h *CategoryHandler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/categories",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/{code}", Handler: h.Find},
		},
	}
}

// List returns all category definitions in priority order.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, engine.Definitions())
}

// Find returns the category definition for the code path parameter. Unknown
// codes resolve to the needs-further-information fallback rather than failing.
func (h *CategoryHandler) Find(w http.ResponseWriter, r *http.Request) {
	code := engine.Category(r.PathValue("code"))
	handlers.RespondJSON(w, http.StatusOK, engine.Lookup(code))
}
