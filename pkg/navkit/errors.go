package navkit

import (
	"errors"
	"fmt"
)

// ErrInvalidLogLevel indicates a log level name navkit does not know.
var ErrInvalidLogLevel = errors.New("invalid log level")

// ConfigError reports an Options value Init could not apply.
type ConfigError struct {
	Op  string // Setting that failed (e.g., "log_level")
	Err error  // Underlying error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("navkit: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("navkit: %s", e.Op)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new configuration error.
func NewConfigError(op string, err error) *ConfigError {
	return &ConfigError{Op: op, Err: err}
}

// IsConfigError checks if an error is a configuration error.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}
