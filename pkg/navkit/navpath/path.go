package navpath

import (
	"reflect"
	"slices"
)

// Path is an ordered, type-erased sequence of routes. It is a value: every
// method that changes it returns a new Path and leaves the receiver intact.
// The zero Path is empty.
type Path struct {
	elems []any
}

// PathOf builds a path from values, first value at the bottom.
func PathOf(values ...any) Path {
	return Path{elems: slices.Clone(values)}
}

// Len returns the number of routes on the path.
func (p Path) Len() int {
	return len(p.elems)
}

// IsEmpty returns true if the path has no routes.
func (p Path) IsEmpty() bool {
	return len(p.elems) == 0
}

// Append returns p with v pushed on top.
func (p Path) Append(v any) Path {
	return Path{elems: append(slices.Clip(p.elems), v)}
}

// RemoveLast returns p without its top n routes. n is clamped to
// [0, p.Len()].
func (p Path) RemoveLast(n int) Path {
	n = max(0, min(n, len(p.elems)))
	return Path{elems: slices.Clip(p.elems[:len(p.elems)-n])}
}

// At returns the route at index i, bottom first. It is meant for rendering
// layers resolving destinations; Navigator never reads routes back out of
// a path.
func (p Path) At(i int) any {
	return p.elems[i]
}

// Equal reports whether both paths hold equal routes in the same order.
// Routes compare equal when their dynamic types match and their values are
// ==; values that cannot be compared are never equal.
func (p Path) Equal(other Path) bool {
	return slices.EqualFunc(p.elems, other.elems, sameRoute)
}

// hasPrefix reports whether p starts with every route of prefix.
func (p Path) hasPrefix(prefix Path) bool {
	if len(prefix.elems) > len(p.elems) {
		return false
	}
	return slices.EqualFunc(p.elems[:len(prefix.elems)], prefix.elems, sameRoute)
}

func sameRoute(a, b any) bool {
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if a == nil {
		return true
	}
	if !reflect.ValueOf(a).Comparable() || !reflect.ValueOf(b).Comparable() {
		return false
	}
	return a == b
}
