package deeplink

import (
	"errors"
	"fmt"
)

// ErrNoRoutablePath indicates the URL parsed but produced no path segments,
// e.g. "myapp://" or "https://example.com".
var ErrNoRoutablePath = errors.New("deeplink: no routable path")

var errInvalidHost = errors.New("invalid character in host")

// ParseError reports a string that could not be parsed as a URL at all.
type ParseError struct {
	URL string // Input that failed
	Err error  // Underlying net/url error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("deeplink: parse %q: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("deeplink: parse %q", e.URL)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseError checks if an error came from an unparseable URL string.
func IsParseError(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}
