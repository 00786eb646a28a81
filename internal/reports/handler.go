package reports

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strconv"

	"github.com/meditriage/meditriage/pkg/handlers"
	"github.com/meditriage/meditriage/pkg/routes"
	"github.com/meditriage/meditriage/pkg/storage"
)

// Handler provides HTTP endpoints for reporting operations.
type Handler struct {
	sys         System
	logger      *slog.Logger
	maxListSize int32
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger, maxListSize int32) *Handler {
	return &Handler{
		sys:         sys,
		logger:      logger.With("handler", "reports"),
		maxListSize: maxListSize,
	}
}

// Routes returns the route group definition for reporting endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/reports",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/summary", Handler: h.Summary},
			{Method: "POST", Pattern: "/export", Handler: h.Export},
			{Method: "GET", Pattern: "/download/{key...}", Handler: h.Download},
		},
	}
}

// Summary computes and returns the current aggregate report.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.sys.Summary(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, summary)
}

// Export computes the current summary and archives it to blob storage.
// Returns 201 with the archive key on success.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	export, err := h.sys.Export(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, export)
}

// List returns archived report blobs, paged by storage marker.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	marker := r.URL.Query().Get("marker")
	maxResults := storage.ParseMaxResults(
		r.URL.Query().Get("max_results"),
		h.maxListSize,
	)

	result, err := h.sys.List(r.Context(), marker, maxResults)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Download streams an archived report blob identified by the key path
// parameter.
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	result, err := h.sys.Download(r.Context(), key)
	if err != nil {
		handlers.RespondError(w, h.logger, storage.MapHTTPStatus(err), err)
		return
	}
	defer result.Body.Close()

	w.Header().Set("Content-Type", result.ContentType)

	if result.ContentLength > 0 {
		w.Header().Set(
			"Content-Length",
			strconv.FormatInt(result.ContentLength, 10),
		)
	}
	w.Header().Set(
		"Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", path.Base(key)),
	)
	w.WriteHeader(http.StatusOK)
	io.Copy(w, result.Body)
}
