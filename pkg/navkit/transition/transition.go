// Package transition decides how a navigation state change is handed to the
// rendering layer.
//
// Every mutating call in navkit takes an animated flag. The flag never
// changes what the mutation does; it selects whether the commit runs inside
// a scope where the rendering layer should skip transition effects. The
// scope is resolved in exactly one place, the Runner, so individual
// operations never branch on animation.
package transition

import "go.uber.org/atomic"

// Runner executes a state mutation, optionally inside an
// animation-suppressing scope. Perform must run mutation exactly once and
// before returning.
type Runner interface {
	Perform(animated bool, mutation func())
}

// RunnerFunc adapts a function to the Runner interface.
type RunnerFunc func(animated bool, mutation func())

func (f RunnerFunc) Perform(animated bool, mutation func()) {
	f(animated, mutation)
}

// Immediate runs every mutation directly. It is the default runner.
var Immediate Runner = RunnerFunc(func(_ bool, mutation func()) {
	mutation()
})

// Perform runs fn through r, falling back to Immediate when r is nil.
func Perform(r Runner, animated bool, fn func()) {
	if r == nil {
		r = Immediate
	}
	r.Perform(animated, fn)
}

// Suppressing tracks non-animated scopes so a binding layer can ask, while
// reacting to a change, whether it should skip its transition.
// Scopes nest: an animated commit inside a suppressed one stays suppressed.
type Suppressing struct {
	depth atomic.Int32
}

// NewSuppressing creates a runner with no active scope.
func NewSuppressing() *Suppressing {
	return &Suppressing{}
}

func (s *Suppressing) Perform(animated bool, mutation func()) {
	if animated {
		mutation()
		return
	}
	s.depth.Inc()
	defer s.depth.Dec()
	mutation()
}

// Suppressed reports whether a non-animated commit is currently running.
func (s *Suppressing) Suppressed() bool {
	return s.depth.Load() > 0
}
