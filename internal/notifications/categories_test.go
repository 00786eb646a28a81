package notifications_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/meditriage/meditriage/internal/engine"
	"github.com/meditriage/meditriage/internal/notifications"
	"github.com/meditriage/meditriage/pkg/routes"
)

func categoriesMux() *http.ServeMux {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := notifications.NewCategoryHandler(logger)
	mux := http.NewServeMux()
	routes.Register(mux, handler.Routes())
	return mux
}

func TestCategoriesList(t *testing.T) {
	mux := categoriesMux()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/categories", nil)
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	var defs []engine.Definition
	if err := json.NewDecoder(rec.Body).Decode(&defs); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(defs) != 9 {
		t.Fatalf("definitions: got %d, want 9", len(defs))
	}
	for i := 1; i < len(defs); i++ {
		if defs[i-1].Priority > defs[i].Priority {
			t.Errorf("definitions out of priority order at %d: %+v", i, defs[i])
		}
	}
}

func TestCategoriesFind(t *testing.T) {
	mux := categoriesMux()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/categories/urgent_safety_review", nil)
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	var def engine.Definition
	if err := json.NewDecoder(rec.Body).Decode(&def); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if def.Code != engine.UrgentSafetyReview {
		t.Errorf("code: got %q, want urgent_safety_review", def.Code)
	}
}

func TestCategoriesFindUnknownFallsBack(t *testing.T) {
	mux := categoriesMux()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/categories/not_a_category", nil)
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	var def engine.Definition
	if err := json.NewDecoder(rec.Body).Decode(&def); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if def.Code != engine.NeedsFurtherInformation {
		t.Errorf("code: got %q, want %q", def.Code, engine.NeedsFurtherInformation)
	}
}
