// Package navkit manages navigation state for declarative UIs: typed route
// stacks, a stack that mixes route types, a single modal slot, and deep
// link parsing.
//
// The subpackages hold the components; this package only configures the
// logging they share.
//
//   - router: typed Stack per flow and the Router context tying flows,
//     the modal slot and deep links together
//   - navpath: Navigator, a stack of mixed route types with typed lookups
//   - modal: Presenter, a single sheet or full-screen slot
//   - deeplink: URL to Request parsing
//   - transition: the Runner that commits every change, animated or not
package navkit

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/BrandonKowalski/navkit/pkg/navkit/internal"
)

// Options configures navkit's logging.
type Options struct {
	LogLevel         string    // Application logger level: debug, info, warn or error (default info)
	InternalLogLevel string    // Level for navkit's own debug events (default error, i.e. silent)
	LogOutput        io.Writer // Destination for both loggers (default os.Stderr)
}

// Init applies options. Empty fields keep their current setting. It fails
// with a *ConfigError wrapping ErrInvalidLogLevel for an unknown level name.
func Init(options Options) error {
	if options.LogOutput != nil {
		internal.SetLogOutput(options.LogOutput)
	}

	if options.LogLevel != "" {
		level, err := parseLevel(options.LogLevel)
		if err != nil {
			return NewConfigError("log_level", err)
		}
		internal.SetLogLevel(level)
	}

	if options.InternalLogLevel != "" {
		level, err := parseLevel(options.InternalLogLevel)
		if err != nil {
			return NewConfigError("internal_log_level", err)
		}
		internal.SetInternalLogLevel(level)
	}

	return nil
}

func parseLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug", "info", "warn", "warning", "error":
		return internal.ParseLevel(raw), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, raw)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
// Unknown names fall back to info.
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetInternalLogLevel sets the level of navkit's own debug events, which
// trace reconciliation and deep-link dispatch.
func SetInternalLogLevel(level slog.Level) {
	internal.SetInternalLogLevel(level)
}

// SetLogOutput redirects both loggers. A nil writer discards output.
func SetLogOutput(w io.Writer) {
	internal.SetLogOutput(w)
}
