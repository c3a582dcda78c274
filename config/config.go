// File: config/config.go
// Author: theMoor9
// License: Apache-2.0
//
// Environment-driven configuration loading. Produces the sizing inputs the
// memory core consumes; unset sizes stay zero and are resolved by
// SizingPolicy profile defaults downstream.

package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/theMoor9/SolidArx-Framework/api"
	"github.com/theMoor9/SolidArx-Framework/core/memory"
	"github.com/theMoor9/SolidArx-Framework/pkg/log"
)

// Environment variable names recognized by Load.
const (
	EnvAppType    = "SOLIDARX_APP_TYPE"
	EnvBufferSize = "SOLIDARX_BUFFER_SIZE"
	EnvPoolSize   = "SOLIDARX_POOL_SIZE"
	EnvScale      = "SOLIDARX_MEMORY_SCALE"
	EnvSizeBounds = "SOLIDARX_SIZE_BOUNDS"
	EnvLogLevel   = "SOLIDARX_LOG_LEVEL"
)

// Settings is the raw application configuration before sizing resolution.
type Settings struct {
	AppType  api.ApplicationType
	Memory   api.MemoryConfig
	Bounds   memory.BoundPolicy
	LogLevel string
}

// Load reads an optional .env file, then the process environment. Missing
// values fall back to zero sizes (profile defaults apply later); malformed
// numerics are logged and treated as unset, matching a best-effort boot.
func Load() Settings {
	// Ignore a missing .env; the process environment still applies.
	_ = godotenv.Load()

	s := Settings{
		AppType:  api.ParseApplicationType(os.Getenv(EnvAppType)),
		LogLevel: os.Getenv(EnvLogLevel),
	}
	s.Memory.BufferSize = intEnv(EnvBufferSize)
	s.Memory.PoolSize = intEnv(EnvPoolSize)
	s.Memory.ScaleMultiplier = intEnv(EnvScale)
	s.Bounds = parseBounds(os.Getenv(EnvSizeBounds))
	return s
}

// parseBounds maps the clamp-vs-reject choice. Reject is the default: a
// value beyond its safety bound is an error unless clamping is asked for
// explicitly.
func parseBounds(v string) memory.BoundPolicy {
	if strings.EqualFold(strings.TrimSpace(v), "clamp") {
		return memory.Clamp
	}
	return memory.Reject
}

func intEnv(key string) int {
	raw := os.Getenv(key)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Warnf("%s=%q is not an integer, using profile default", key, raw)
		return 0
	}
	return n
}
