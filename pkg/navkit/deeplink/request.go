package deeplink

import (
	"maps"
	"slices"
)

// Request is a parsed deep link. It is built once per parse and not
// mutated afterwards.
type Request struct {
	// Path holds the decoded path segments. Casing is preserved unless the
	// parser was configured to lowercase it.
	Path []string
	// Query holds the decoded query parameters.
	Query map[string]string
}

// Root returns the first path segment, lowercased.
func (r Request) Root() (string, bool) {
	if len(r.Path) == 0 {
		return "", false
	}
	return Lower(r.Path[0]), true
}

// ChildPath returns every segment after the root.
func (r Request) ChildPath() []string {
	if len(r.Path) <= 1 {
		return []string{}
	}
	return slices.Clone(r.Path[1:])
}

// Value returns the query value for key.
func (r Request) Value(key string) (string, bool) {
	v, ok := r.Query[key]
	return v, ok
}

func (r Request) Equal(other Request) bool {
	return slices.Equal(r.Path, other.Path) && maps.Equal(r.Query, other.Query)
}
