package facade_test

import (
	"errors"
	"testing"

	"github.com/theMoor9/SolidArx-Framework/api"
	"github.com/theMoor9/SolidArx-Framework/facade"
)

func TestNewResolvesProfileDefaults(t *testing.T) {
	s, err := facade.New(&facade.Config{AppType: api.EmbeddedSystem})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	cfg := s.Memory().Config()
	if cfg.BufferSize != 512*1024 {
		t.Errorf("BufferSize = %d, want embedded default", cfg.BufferSize)
	}
	if s.Memory().Strategy() != api.CustomEmbedded {
		t.Errorf("strategy = %v, want custom-embedded", s.Memory().Strategy())
	}
	snap := s.Runtime().Snapshot()
	if snap["strategy"] != "custom-embedded" {
		t.Errorf("runtime strategy = %v", snap["strategy"])
	}
}

func TestNewRejectsUnsupportedProfile(t *testing.T) {
	_, err := facade.New(&facade.Config{AppType: api.Unsupported})
	var cfgErr *api.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
}

func TestPublishStats(t *testing.T) {
	s, err := facade.New(&facade.Config{
		AppType: api.ApiBackend,
		Memory:  api.MemoryConfig{BufferSize: 1024, PoolSize: 4096},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := s.Memory().Allocate(nil, 1024); err != nil {
		t.Fatalf("Allocate: %v", err)
	}

	stats := s.PublishStats()
	if stats.PoolHits != 1 {
		t.Errorf("PoolHits = %d, want 1", stats.PoolHits)
	}
	if got := s.Metrics().Snapshot()["memory.pool_hits"]; got != int64(1) {
		t.Errorf("published pool_hits = %v, want 1", got)
	}
}

func TestConnectionLayerDisabledByDefault(t *testing.T) {
	s, err := facade.New(&facade.Config{AppType: api.DesktopApp})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.Connection() != nil {
		t.Error("connection manager present without configuration")
	}
}
