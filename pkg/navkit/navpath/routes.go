package navpath

import "slices"

// Navigate pushes route on top of n. The route is recorded as known, so
// typed queries for R can find it.
func Navigate[R comparable](n *Navigator, route R, animated bool) {
	n.commit(animated, n.path.Append(route), append(slices.Clip(n.shadow), known(route)))
}

// Replace overwrites the whole path with routes, all known.
func Replace[R comparable](n *Navigator, routes []R, animated bool) {
	path, shadow := build(routes)
	n.commit(animated, path, shadow)
}

// Contains reports whether a known route equal to route is on the path.
func Contains[R comparable](n *Navigator, route R) bool {
	return ContainsFunc(n, func(r R) bool { return r == route })
}

// ContainsFunc reports whether a known route of type R satisfies match.
// Unknown positions never match, and a nil match never matches.
func ContainsFunc[R comparable](n *Navigator, match func(R) bool) bool {
	if match == nil {
		return false
	}
	for _, s := range n.shadow {
		if !s.known {
			continue
		}
		if r, ok := s.value.(R); ok && match(r) {
			return true
		}
	}
	return false
}

// Match is the combined lookup: match wins when given, otherwise route is
// compared for equality, and with neither the answer is false.
func Match[R comparable](n *Navigator, route *R, match func(R) bool) bool {
	if match != nil {
		return ContainsFunc(n, match)
	}
	if route != nil {
		return Contains(n, *route)
	}
	return false
}

// PresentedRoute returns the most recent known route of type R. Unknown
// positions and routes of other types above it are skipped, so the result
// is not necessarily the top of the path.
func PresentedRoute[R comparable](n *Navigator) (R, bool) {
	for i := len(n.shadow) - 1; i >= 0; i-- {
		s := n.shadow[i]
		if !s.known {
			continue
		}
		if r, ok := s.value.(R); ok {
			return r, true
		}
	}
	var zero R
	return zero, false
}
