// Package logging bridges zerolog to the logger interfaces used by the client
// and its HTTP transport.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fivetwenty-io/outseta-client/pkg/outseta"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
)

// Options configures New.
type Options struct {
	Level   string
	Format  string
	NoColor bool
	Output  io.Writer
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(name string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// New builds a zerolog logger writing to opts.Output (stderr when nil).
func New(opts Options) zerolog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	if strings.EqualFold(opts.Format, "json") {
		return zerolog.New(out).Level(ParseLevel(opts.Level)).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    opts.NoColor,
	}

	return zerolog.New(output).Level(ParseLevel(opts.Level)).With().Timestamp().Logger()
}

// Adapter implements outseta.Logger on top of zerolog.
type Adapter struct {
	logger zerolog.Logger
}

var _ outseta.Logger = (*Adapter)(nil)

// NewAdapter wraps logger.
func NewAdapter(logger zerolog.Logger) *Adapter {
	return &Adapter{logger: logger}
}

// Debug implements outseta.Logger.
func (a *Adapter) Debug(msg string, fields map[string]interface{}) {
	a.logger.Debug().Fields(fields).Msg(msg)
}

// Info implements outseta.Logger.
func (a *Adapter) Info(msg string, fields map[string]interface{}) {
	a.logger.Info().Fields(fields).Msg(msg)
}

// Warn implements outseta.Logger.
func (a *Adapter) Warn(msg string, fields map[string]interface{}) {
	a.logger.Warn().Fields(fields).Msg(msg)
}

// Error implements outseta.Logger.
func (a *Adapter) Error(msg string, fields map[string]interface{}) {
	a.logger.Error().Fields(fields).Msg(msg)
}

// LeveledAdapter implements retryablehttp.LeveledLogger on top of an
// outseta.Logger.
type LeveledAdapter struct {
	logger outseta.Logger
}

var _ retryablehttp.LeveledLogger = (*LeveledAdapter)(nil)

// NewLeveledAdapter wraps logger for use by the retryablehttp transport.
func NewLeveledAdapter(logger outseta.Logger) *LeveledAdapter {
	return &LeveledAdapter{logger: logger}
}

// Error implements retryablehttp.LeveledLogger.
func (l *LeveledAdapter) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, toFields(keysAndValues))
}

// Info implements retryablehttp.LeveledLogger.
func (l *LeveledAdapter) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, toFields(keysAndValues))
}

// Debug implements retryablehttp.LeveledLogger.
func (l *LeveledAdapter) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, toFields(keysAndValues))
}

// Warn implements retryablehttp.LeveledLogger.
func (l *LeveledAdapter) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, toFields(keysAndValues))
}

func toFields(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2+1)

	for i := 0; i < len(keysAndValues); i += 2 {
		key := fmt.Sprint(keysAndValues[i])

		if i+1 < len(keysAndValues) {
			fields[key] = keysAndValues[i+1]
		} else {
			fields[key] = nil
		}
	}

	return fields
}

// Nop is an outseta.Logger that discards everything.
type Nop struct{}

// Debug implements outseta.Logger.
func (Nop) Debug(string, map[string]interface{}) {}

// Info implements outseta.Logger.
func (Nop) Info(string, map[string]interface{}) {}

// Warn implements outseta.Logger.
func (Nop) Warn(string, map[string]interface{}) {}

// Error implements outseta.Logger.
func (Nop) Error(string, map[string]interface{}) {}
