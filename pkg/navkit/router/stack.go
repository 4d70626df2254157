package router

import (
	"log/slog"
	"slices"

	"github.com/BrandonKowalski/navkit/pkg/navkit/internal"
	"github.com/BrandonKowalski/navkit/pkg/navkit/transition"
)

// Stack is the navigation history of a single flow whose routes all share
// one type. The last route is the screen currently on top; an empty stack
// means the flow is showing its root.
//
// Every operation is total: counts are clamped rather than rejected.
type Stack[R comparable] struct {
	routes    []R
	runner    transition.Runner
	logger    *slog.Logger
	observers internal.Observers[[]R]
}

// StackOption configures a Stack.
type StackOption func(*stackOptions)

type stackOptions struct {
	runner transition.Runner
	logger *slog.Logger
}

// WithStackRunner sets the runner that commits stack changes.
func WithStackRunner(r transition.Runner) StackOption {
	return func(o *stackOptions) { o.runner = r }
}

// WithStackLogger sets the logger used for debug events.
func WithStackLogger(l *slog.Logger) StackOption {
	return func(o *stackOptions) { o.logger = l }
}

// NewStack creates a stack seeded with routes.
func NewStack[R comparable](routes []R, opts ...StackOption) *Stack[R] {
	o := stackOptions{runner: transition.Immediate}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = internal.GetInternalLogger()
	}
	return &Stack[R]{
		routes: slices.Clone(routes),
		runner: o.runner,
		logger: o.logger,
	}
}

// Navigate pushes route on top of the stack.
func (s *Stack[R]) Navigate(route R, animated bool) {
	s.commit(animated, append(slices.Clip(s.routes), route))
}

// Replace overwrites the whole stack with routes.
func (s *Stack[R]) Replace(routes []R, animated bool) {
	s.commit(animated, slices.Clone(routes))
}

// Contains reports whether route is anywhere on the stack.
func (s *Stack[R]) Contains(route R) bool {
	return slices.Contains(s.routes, route)
}

// ContainsFunc reports whether any route satisfies match. A nil match
// never matches.
func (s *Stack[R]) ContainsFunc(match func(R) bool) bool {
	if match == nil {
		return false
	}
	return slices.ContainsFunc(s.routes, match)
}

// Match is the combined lookup: match wins when given, otherwise route is
// compared for equality, and with neither the answer is false.
func (s *Stack[R]) Match(route *R, match func(R) bool) bool {
	if match != nil {
		return s.ContainsFunc(match)
	}
	if route != nil {
		return s.Contains(*route)
	}
	return false
}

// PopLast removes up to count routes from the top. A count of zero or less
// does nothing; a count larger than the stack empties it.
func (s *Stack[R]) PopLast(count int, animated bool) {
	if count <= 0 {
		return
	}
	remove := min(count, len(s.routes))
	if remove == 0 {
		return
	}
	s.commit(animated, s.routes[:len(s.routes)-remove])
}

// PopToRoot removes every route.
func (s *Stack[R]) PopToRoot(animated bool) {
	s.commit(animated, nil)
}

// HasPresentedRoutes returns true if the stack has any route above the root.
func (s *Stack[R]) HasPresentedRoutes() bool {
	return len(s.routes) > 0
}

// PresentedRoute returns the top route.
func (s *Stack[R]) PresentedRoute() (R, bool) {
	if len(s.routes) == 0 {
		var zero R
		return zero, false
	}
	return s.routes[len(s.routes)-1], true
}

// Routes returns a copy of the stack, bottom first.
func (s *Stack[R]) Routes() []R {
	return slices.Clone(s.routes)
}

// SetRoutes is the write side of a binding: the rendering layer assigns the
// stack it now shows, e.g. after a back gesture.
func (s *Stack[R]) SetRoutes(routes []R) {
	s.commit(true, slices.Clone(routes))
}

// Len returns the number of routes on the stack.
func (s *Stack[R]) Len() int {
	return len(s.routes)
}

// Observe registers fn to be called with a copy of the stack after every
// committed change, inside the runner's scope.
func (s *Stack[R]) Observe(fn func([]R)) (cancel func()) {
	return s.observers.Add(fn)
}

func (s *Stack[R]) commit(animated bool, next []R) {
	transition.Perform(s.runner, animated, func() {
		s.routes = next
		s.observers.Each(func(fn func([]R)) {
			fn(slices.Clone(next))
		})
	})
	s.logger.Debug("stack: committed", "len", len(next), "animated", animated)
}
