package pagination_test

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/meditriage/meditriage/pkg/pagination"
)

func testConfig() pagination.Config {
	cfg := pagination.Config{}
	if err := cfg.Finalize(nil); err != nil {
		panic(err)
	}
	return cfg
}

func TestConfigDefaults(t *testing.T) {
	cfg := testConfig()

	if cfg.DefaultPageSize != 20 {
		t.Errorf("default page size: got %d, want 20", cfg.DefaultPageSize)
	}
	if cfg.MaxPageSize != 100 {
		t.Errorf("max page size: got %d, want 100", cfg.MaxPageSize)
	}
}

func TestConfigEnvOverride(t *testing.T) {
	t.Setenv("TEST_PAGINATION_DEFAULT", "30")
	t.Setenv("TEST_PAGINATION_MAX", "60")

	cfg := pagination.Config{}
	env := &pagination.ConfigEnv{
		DefaultPageSize: "TEST_PAGINATION_DEFAULT",
		MaxPageSize:     "TEST_PAGINATION_MAX",
	}

	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}
	if cfg.DefaultPageSize != 30 {
		t.Errorf("default page size: got %d, want 30", cfg.DefaultPageSize)
	}
	if cfg.MaxPageSize != 60 {
		t.Errorf("max page size: got %d, want 60", cfg.MaxPageSize)
	}
}

func TestConfigValidateDefaultExceedsMax(t *testing.T) {
	cfg := pagination.Config{DefaultPageSize: 200, MaxPageSize: 100}
	if err := cfg.Finalize(nil); err == nil {
		t.Error("expected error when default exceeds max")
	}
}

func TestNormalize(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{"zero values", 0, 0, 1, 20},
		{"negative page", -5, 10, 1, 10},
		{"oversized page size", 1, 500, 1, 100},
		{"valid values", 3, 50, 3, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := pagination.PageRequest{Page: tt.page, PageSize: tt.pageSize}
			req.Normalize(cfg)

			if req.Page != tt.wantPage {
				t.Errorf("page: got %d, want %d", req.Page, tt.wantPage)
			}
			if req.PageSize != tt.wantPageSize {
				t.Errorf("page size: got %d, want %d", req.PageSize, tt.wantPageSize)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	req := pagination.PageRequest{Page: 3, PageSize: 25}
	if got := req.Offset(); got != 50 {
		t.Errorf("offset: got %d, want 50", got)
	}
}

func TestPageRequestFromQuery(t *testing.T) {
	cfg := testConfig()
	values := url.Values{}
	values.Set("page", "2")
	values.Set("page_size", "10")
	values.Set("search", "shaking")
	values.Set("sort", "-submitted_at")

	req := pagination.PageRequestFromQuery(values, cfg)

	if req.Page != 2 {
		t.Errorf("page: got %d, want 2", req.Page)
	}
	if req.PageSize != 10 {
		t.Errorf("page size: got %d, want 10", req.PageSize)
	}
	if req.Search == nil || *req.Search != "shaking" {
		t.Errorf("search: got %v, want shaking", req.Search)
	}
	if len(req.Sort) != 1 || req.Sort[0].Field != "submitted_at" || !req.Sort[0].Descending {
		t.Errorf("sort: got %+v, want [-submitted_at]", req.Sort)
	}
}

func TestSortFieldsUnmarshalString(t *testing.T) {
	var req pagination.PageRequest
	body := `{"page": 1, "sort": "category,-submitted_at"}`

	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(req.Sort) != 2 {
		t.Fatalf("sort length: got %d, want 2", len(req.Sort))
	}
	if req.Sort[0].Field != "category" || req.Sort[0].Descending {
		t.Errorf("first sort: got %+v", req.Sort[0])
	}
	if req.Sort[1].Field != "submitted_at" || !req.Sort[1].Descending {
		t.Errorf("second sort: got %+v", req.Sort[1])
	}
}

func TestSortFieldsUnmarshalArray(t *testing.T) {
	var req pagination.PageRequest
	body := `{"page": 1, "sort": [{"Field": "category", "Descending": true}]}`

	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(req.Sort) != 1 || req.Sort[0].Field != "category" || !req.Sort[0].Descending {
		t.Errorf("sort: got %+v", req.Sort)
	}
}

func TestNewPageResult(t *testing.T) {
	tests := []struct {
		name           string
		total          int
		pageSize       int
		wantTotalPages int
	}{
		{"exact division", 100, 20, 5},
		{"remainder rounds up", 101, 20, 6},
		{"empty floors to one", 0, 20, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := pagination.NewPageResult([]string{}, tt.total, 1, tt.pageSize)
			if result.TotalPages != tt.wantTotalPages {
				t.Errorf("total pages: got %d, want %d", result.TotalPages, tt.wantTotalPages)
			}
		})
	}
}

func TestNewPageResultNilData(t *testing.T) {
	result := pagination.NewPageResult[string](nil, 0, 1, 20)
	if result.Data == nil {
		t.Error("data should be an empty slice, not nil")
	}
}
