package storage_test

import (
	"testing"

	"github.com/meditriage/meditriage/pkg/storage"
)

func validConfig() storage.Config {
	return storage.Config{
		ConnectionString: "DefaultEndpointsProtocol=http;AccountName=test;AccountKey=key;",
	}
}

func TestFinalizeDefaults(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.ContainerName != "reports" {
		t.Errorf("container: got %q, want reports", cfg.ContainerName)
	}
	if cfg.MaxListSize != 50 {
		t.Errorf("max list size: got %d, want 50", cfg.MaxListSize)
	}
}

func TestFinalizeMissingConnectionString(t *testing.T) {
	cfg := storage.Config{ContainerName: "reports"}
	if err := cfg.Finalize(nil); err == nil {
		t.Error("expected error for missing connection string")
	}
}

func TestFinalizeClampsListSize(t *testing.T) {
	cfg := validConfig()
	cfg.MaxListSize = 10_000

	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}
	if cfg.MaxListSize != storage.MaxListCap {
		t.Errorf("max list size: got %d, want %d", cfg.MaxListSize, storage.MaxListCap)
	}
}

func TestFinalizeEnvOverride(t *testing.T) {
	t.Setenv("TEST_STORAGE_CONTAINER", "archive")
	t.Setenv("TEST_STORAGE_MAX_LIST", "75")

	cfg := validConfig()
	env := &storage.Env{
		ContainerName: "TEST_STORAGE_CONTAINER",
		MaxListSize:   "TEST_STORAGE_MAX_LIST",
	}

	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}
	if cfg.ContainerName != "archive" {
		t.Errorf("container: got %q, want archive", cfg.ContainerName)
	}
	if cfg.MaxListSize != 75 {
		t.Errorf("max list size: got %d, want 75", cfg.MaxListSize)
	}
}

func TestParseMaxResults(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   int32
		want  int32
	}{
		{"empty uses default", "", 50, 50},
		{"valid", "25", 50, 25},
		{"zero uses default", "0", 50, 50},
		{"negative uses default", "-5", 50, 50},
		{"malformed uses default", "lots", 50, 50},
		{"over cap clamps", "9999", 50, storage.MaxListCap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := storage.ParseMaxResults(tt.input, tt.def); got != tt.want {
				t.Errorf("ParseMaxResults(%q, %d) = %d, want %d", tt.input, tt.def, got, tt.want)
			}
		})
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", storage.ErrNotFound, 404},
		{"empty key", storage.ErrEmptyKey, 400},
		{"invalid key", storage.ErrInvalidKey, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := storage.MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("status: got %d, want %d", got, tt.want)
			}
		})
	}
}
