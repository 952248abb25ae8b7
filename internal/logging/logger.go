// Package logging constructs the zerolog logger used across the tool.
//
// Level resolution, lowest wins: trace when VIDEO_EDIT_TRACE is set, debug
// when --verbose or VIDEO_EDIT_DEBUG is set, info otherwise. Every run is
// tagged with a short run id so interleaved output from concurrent
// subtitle extractions stays attributable.
package logging

import (
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Env vars raising verbosity. Any non-empty value other than "0"/"false"
// counts as set.
const (
	EnvDebug = "VIDEO_EDIT_DEBUG"
	EnvTrace = "VIDEO_EDIT_TRACE"
)

// New returns a console logger writing to stderr, leaving stdout free for
// the stream reports.
func New(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose || envSet(EnvDebug) {
		level = zerolog.DebugLevel
	}
	if envSet(EnvTrace) {
		level = zerolog.TraceLevel
	}

	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	runID := uuid.NewString()[:8]

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("run", runID).
		Logger()
}

func envSet(name string) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(name)))
	return v != "" && v != "0" && v != "false"
}
