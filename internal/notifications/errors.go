package notifications

import (
	"errors"
	"net/http"

	"github.com/meditriage/meditriage/internal/engine"
)

// Domain errors for notification operations.
var (
	ErrNotFound  = errors.New("notification not found")
	ErrDuplicate = errors.New("notification already exists")
)

// MapHTTPStatus maps notification domain errors to HTTP status codes. A
// blank narrative is a client error, not a server fault.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, engine.ErrBlankNarrative) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
