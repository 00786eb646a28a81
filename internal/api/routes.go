package api

import (
	"net/http"

	"github.com/meditriage/meditriage/internal/notifications"
	"github.com/meditriage/meditriage/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	runtime *Runtime,
) {
	routes.Register(mux, domain.Notifications.Handler().Routes())
	routes.Register(mux, notifications.NewCategoryHandler(runtime.Logger).Routes())
	routes.Register(mux, domain.Reports.Handler().Routes())
}
