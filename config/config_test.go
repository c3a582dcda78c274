package config_test

import (
	"testing"

	"github.com/theMoor9/SolidArx-Framework/api"
	"github.com/theMoor9/SolidArx-Framework/config"
	"github.com/theMoor9/SolidArx-Framework/core/memory"
)

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv(config.EnvAppType, "api-backend")
	t.Setenv(config.EnvBufferSize, "2048")
	t.Setenv(config.EnvPoolSize, "8192")
	t.Setenv(config.EnvScale, "2")
	t.Setenv(config.EnvSizeBounds, "clamp")

	s := config.Load()
	if s.AppType != api.ApiBackend {
		t.Errorf("AppType = %v, want api-backend", s.AppType)
	}
	if s.Memory.BufferSize != 2048 || s.Memory.PoolSize != 8192 {
		t.Errorf("sizes = %d/%d, want 2048/8192", s.Memory.BufferSize, s.Memory.PoolSize)
	}
	if s.Memory.ScaleMultiplier != 2 {
		t.Errorf("ScaleMultiplier = %d, want 2", s.Memory.ScaleMultiplier)
	}
	if s.Bounds != memory.Clamp {
		t.Errorf("Bounds = %v, want Clamp", s.Bounds)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(config.EnvAppType, "")
	t.Setenv(config.EnvBufferSize, "")
	t.Setenv(config.EnvPoolSize, "")
	t.Setenv(config.EnvScale, "")
	t.Setenv(config.EnvSizeBounds, "")

	s := config.Load()
	if s.AppType != api.Unsupported {
		t.Errorf("AppType = %v, want unsupported", s.AppType)
	}
	if s.Memory != (api.MemoryConfig{}) {
		t.Errorf("Memory = %+v, want zero", s.Memory)
	}
	if s.Bounds != memory.Reject {
		t.Errorf("Bounds = %v, want Reject", s.Bounds)
	}
}

func TestLoadMalformedNumberFallsBack(t *testing.T) {
	t.Setenv(config.EnvAppType, "webapp")
	t.Setenv(config.EnvBufferSize, "not-a-number")

	s := config.Load()
	if s.Memory.BufferSize != 0 {
		t.Errorf("BufferSize = %d, want 0 (profile default applies later)", s.Memory.BufferSize)
	}
}
