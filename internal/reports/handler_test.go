package reports_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/meditriage/meditriage/internal/reports"
	"github.com/meditriage/meditriage/pkg/routes"
	"github.com/meditriage/meditriage/pkg/storage"
)

type fakeSystem struct {
	summary *reports.Summary
	export  *reports.Export
	blobs   map[string]string
}

func (f *fakeSystem) Handler() *reports.Handler {
	panic("not used in tests")
}

func (f *fakeSystem) Summary(ctx context.Context) (*reports.Summary, error) {
	return f.summary, nil
}

func (f *fakeSystem) Export(ctx context.Context) (*reports.Export, error) {
	return f.export, nil
}

func (f *fakeSystem) List(ctx context.Context, marker string, maxResults int32) (*storage.ListResult, error) {
	result := &storage.ListResult{Blobs: make([]storage.BlobInfo, 0, len(f.blobs))}
	for key, content := range f.blobs {
		result.Blobs = append(result.Blobs, storage.BlobInfo{
			Key:         key,
			ContentType: "application/json",
			Size:        int64(len(content)),
		})
	}
	return result, nil
}

func (f *fakeSystem) Download(ctx context.Context, key string) (*storage.DownloadResult, error) {
	content, ok := f.blobs[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &storage.DownloadResult{
		Body:          io.NopCloser(strings.NewReader(content)),
		ContentType:   "application/json",
		ContentLength: int64(len(content)),
	}, nil
}

func testMux(sys reports.System) *http.ServeMux {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := reports.NewHandler(sys, logger, 50)
	mux := http.NewServeMux()
	routes.Register(mux, handler.Routes())
	return mux
}

func TestSummary(t *testing.T) {
	sys := &fakeSystem{
		summary: &reports.Summary{
			GeneratedAt:        time.Now().UTC(),
			TotalNotifications: 12,
			RequiresReview:     3,
			Categories:         map[string]int{"no_further_action": 9, "dual_referral": 3},
			Severities:         map[string]int{"minor": 9, "serious": 3},
			Confidence:         reports.ConfidenceDistribution{High: 4, Medium: 6, Low: 2},
		},
	}
	mux := testMux(sys)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/reports/summary", nil)
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	var summary reports.Summary
	if err := json.NewDecoder(rec.Body).Decode(&summary); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if summary.TotalNotifications != 12 {
		t.Errorf("total: got %d, want 12", summary.TotalNotifications)
	}
	if summary.Categories["dual_referral"] != 3 {
		t.Errorf("dual referral count: got %d, want 3", summary.Categories["dual_referral"])
	}
}

func TestExport(t *testing.T) {
	sys := &fakeSystem{
		export: &reports.Export{
			Key:        "reports/summary-20260824-120000.json",
			Size:       512,
			ExportedAt: time.Now().UTC(),
		},
	}
	mux := testMux(sys)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/reports/export", nil)
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want 201", rec.Code)
	}

	var export reports.Export
	if err := json.NewDecoder(rec.Body).Decode(&export); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if export.Key != sys.export.Key {
		t.Errorf("key: got %q, want %q", export.Key, sys.export.Key)
	}
}

func TestListArchive(t *testing.T) {
	sys := &fakeSystem{
		blobs: map[string]string{
			"reports/summary-20260801-090000.json": `{"total_notifications":5}`,
		},
	}
	mux := testMux(sys)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/reports", nil)
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	var result storage.ListResult
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(result.Blobs) != 1 {
		t.Errorf("blobs: got %d, want 1", len(result.Blobs))
	}
}

func TestDownload(t *testing.T) {
	content := `{"total_notifications":5}`
	sys := &fakeSystem{
		blobs: map[string]string{
			"reports/summary-20260801-090000.json": content,
		},
	}
	mux := testMux(sys)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/reports/download/reports/summary-20260801-090000.json", nil)
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if rec.Body.String() != content {
		t.Errorf("body: got %q, want %q", rec.Body.String(), content)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "summary-20260801-090000.json") {
		t.Errorf("content disposition: got %q", cd)
	}
}

func TestDownloadMissing(t *testing.T) {
	sys := &fakeSystem{blobs: map[string]string{}}
	mux := testMux(sys)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/reports/download/reports/nope.json", nil)
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rec.Code)
	}
}
