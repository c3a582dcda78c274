// File: pkg/log/log.go
// Author: theMoor9
// License: Apache-2.0
//
// Thin leveled logging front over kataras/pio. The core allocation paths
// never log; this package serves the facade and the collaborators around
// the core.

package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/kataras/pio"
)

// Level orders log severities.
type Level int32

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

var (
	level   atomic.Int32
	printer = pio.NewTextPrinter("solidarx", os.Stdout).EnableDirectOutput().SetSync(true)
)

func init() {
	level.Store(int32(InfoLevel))
}

// SetLevel selects the minimum severity that gets printed. Unknown names
// keep the current level.
func SetLevel(name string) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		level.Store(int32(DebugLevel))
	case "info":
		level.Store(int32(InfoLevel))
	case "warn", "warning":
		level.Store(int32(WarnLevel))
	case "error":
		level.Store(int32(ErrorLevel))
	}
}

// SetOutput redirects log output, mainly for tests. A nil writer restores
// stdout.
func SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	printer = pio.NewTextPrinter("solidarx", w).EnableDirectOutput().SetSync(true)
}

// Debug prints a debug-level line.
func Debug(args ...any) { emit(DebugLevel, "[DBUG] ", args...) }

// Info prints an info-level line.
func Info(args ...any) { emit(InfoLevel, "[INFO] ", args...) }

// Warn prints a warn-level line.
func Warn(args ...any) { emit(WarnLevel, "[WARN] ", args...) }

// Error prints an error-level line.
func Error(args ...any) { emit(ErrorLevel, "[ERRO] ", args...) }

// Debugf, Infof, Warnf and Errorf are the formatted variants.
func Debugf(format string, args ...any) { Debug(fmt.Sprintf(format, args...)) }
func Infof(format string, args ...any)  { Info(fmt.Sprintf(format, args...)) }
func Warnf(format string, args ...any)  { Warn(fmt.Sprintf(format, args...)) }
func Errorf(format string, args ...any) { Error(fmt.Sprintf(format, args...)) }

func emit(l Level, prefix string, args ...any) {
	if l < Level(level.Load()) {
		return
	}
	printer.Println(prefix + fmt.Sprint(args...))
}
