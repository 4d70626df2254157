package deeplink

import (
	"net/url"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/navkit/pkg/navkit/constants"
)

// Parse parses a raw URL string with DefaultOptions.
func Parse(raw string) (Request, error) {
	return ParseWithOptions(raw, DefaultOptions())
}

// ParseWithOptions parses a raw URL string.
// It returns a *ParseError when raw is not a URL and ErrNoRoutablePath when
// the URL has no path segments.
func ParseWithOptions(raw string, opts Options) (Request, error) {
	u, host, err := splitURL(raw)
	if err != nil {
		return Request{}, &ParseError{URL: raw, Err: err}
	}
	return parse(u, host, opts)
}

// splitURL parses raw and returns its host, still percent-encoded.
// net/url rejects most escapes in a host, so the authority of a custom-scheme
// URL is cut out by hand and only the remainder goes through url.Parse.
func splitURL(raw string) (*url.URL, string, error) {
	scheme, rest, ok := strings.Cut(raw, "://")
	if !ok || !validScheme(scheme) || !isCustomScheme(scheme) {
		u, err := url.Parse(raw)
		if err != nil {
			return nil, "", err
		}
		return u, u.Hostname(), nil
	}

	end := strings.IndexAny(rest, "/?#")
	if end < 0 {
		end = len(rest)
	}
	authority := rest[:end]
	if strings.IndexFunc(authority, invalidHostRune) >= 0 {
		return nil, "", &url.Error{Op: "parse", URL: raw, Err: errInvalidHost}
	}
	u, err := url.Parse(scheme + "://" + rest[end:])
	if err != nil {
		return nil, "", err
	}
	return u, authorityHost(authority), nil
}

// invalidHostRune reports control characters and spaces, which must be
// percent-encoded in a host.
func invalidHostRune(r rune) bool {
	return r <= ' ' || r == 0x7f
}

// authorityHost drops user info and port from a raw authority.
func authorityHost(authority string) string {
	if i := strings.LastIndex(authority, "@"); i >= 0 {
		authority = authority[i+1:]
	}
	if strings.HasPrefix(authority, "[") {
		if end := strings.Index(authority, "]"); end >= 0 {
			return authority[1:end]
		}
		return authority
	}
	if i := strings.LastIndex(authority, ":"); i >= 0 && isPort(authority[i+1:]) {
		authority = authority[:i]
	}
	return authority
}

func isPort(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func validScheme(scheme string) bool {
	if scheme == "" {
		return false
	}
	for i, r := range scheme {
		switch {
		case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z':
		case i > 0 && ('0' <= r && r <= '9' || r == '+' || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return true
}

// ParseURL parses an already-parsed URL with DefaultOptions.
func ParseURL(u *url.URL) (Request, error) {
	return ParseURLWithOptions(u, DefaultOptions())
}

// ParseURLWithOptions parses an already-parsed URL.
func ParseURLWithOptions(u *url.URL, opts Options) (Request, error) {
	if u == nil {
		return Request{}, ErrNoRoutablePath
	}
	return parse(u, u.Hostname(), opts)
}

func parse(u *url.URL, host string, opts Options) (Request, error) {
	var segments []string

	if opts.IncludeHostForCustomSchemes && isCustomScheme(u.Scheme) {
		if host != "" {
			segments = append(segments, normalizeSegment(unescape(host), opts))
		}
	}

	// myapp:detail/123 parses as an opaque URL; its opaque part is the path.
	rawPath := u.EscapedPath()
	if u.Opaque != "" {
		rawPath = u.Opaque
	}
	for _, segment := range strings.Split(rawPath, "/") {
		if segment == "" {
			continue
		}
		segments = append(segments, normalizeSegment(unescape(segment), opts))
	}

	if len(segments) == 0 {
		return Request{}, ErrNoRoutablePath
	}

	return Request{
		Path:  segments,
		Query: parseQuery(u.RawQuery, opts),
	}, nil
}

func isCustomScheme(scheme string) bool {
	if scheme == "" {
		return false
	}
	return !strings.EqualFold(scheme, constants.SchemeHTTP) &&
		!strings.EqualFold(scheme, constants.SchemeHTTPS)
}

func normalizeSegment(segment string, opts Options) string {
	if opts.LowercasePath {
		return Lower(segment)
	}
	return segment
}

// parseQuery collects query items in order. Items without '=' carry no
// value and are dropped; "key=" keeps an empty value.
func parseQuery(rawQuery string, opts Options) map[string]string {
	query := make(map[string]string)
	if rawQuery == "" {
		return query
	}

	for _, item := range strings.Split(rawQuery, "&") {
		rawName, rawValue, hasValue := strings.Cut(item, "=")
		if !hasValue {
			continue
		}

		name := unescape(rawName)
		if opts.LowercaseQueryKeys {
			name = Lower(name)
		}
		value := unescape(rawValue)

		switch opts.DuplicatePolicy {
		case FirstWins:
			if _, exists := query[name]; !exists {
				query[name] = value
			}
		default:
			query[name] = value
		}
	}
	return query
}

// unescape percent-decodes s, returning it unchanged when the escapes are
// malformed. '+' is left alone.
func unescape(s string) string {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}

// Lower lowercases s the way Root and the lowercasing options do.
// Callers matching their own names against Root should use it too.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
