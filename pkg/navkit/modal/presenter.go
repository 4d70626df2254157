// Package modal manages a single modal slot: at most one route shown as a
// sheet or a full-screen cover.
package modal

import (
	"log/slog"

	"github.com/BrandonKowalski/navkit/pkg/navkit/internal"
	"github.com/BrandonKowalski/navkit/pkg/navkit/transition"
)

// Presentation is the presenter's state. Active is false when nothing is
// presented, in which case Route and Style are zero.
type Presentation[R comparable] struct {
	Route  R
	Style  Style
	Active bool
}

// Presenter is a two-state machine, Empty or Presenting(route, style).
// Like the rest of navkit it is meant to be driven from a single UI
// goroutine and is not safe for concurrent use.
type Presenter[R comparable] struct {
	current   Presentation[R]
	runner    transition.Runner
	logger    *slog.Logger
	observers internal.Observers[Presentation[R]]
}

// Option configures a Presenter.
type Option func(*options)

type options struct {
	runner transition.Runner
	logger *slog.Logger
}

// WithRunner sets the runner that commits presentation changes.
func WithRunner(r transition.Runner) Option {
	return func(o *options) { o.runner = r }
}

// WithLogger sets the logger used for debug events.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New creates a presenter with nothing presented.
func New[R comparable](opts ...Option) *Presenter[R] {
	o := options{runner: transition.Immediate}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = internal.GetInternalLogger()
	}
	return &Presenter[R]{runner: o.runner, logger: o.logger}
}

// Present shows route with the given style. Under IgnoreIfAlreadyPresented
// the call is dropped while anything is showing; otherwise it always
// overwrites the current presentation.
func (p *Presenter[R]) Present(route R, style Style, animated bool, policy Policy) {
	if policy == IgnoreIfAlreadyPresented && p.current.Active {
		p.logger.Debug("modal: present ignored", "style", style, "current_style", p.current.Style)
		return
	}
	p.commit(animated, Presentation[R]{Route: route, Style: style, Active: true})
}

// Dismiss clears the presentation.
func (p *Presenter[R]) Dismiss(animated bool) {
	p.commit(animated, Presentation[R]{})
}

// Presented returns the current presentation.
func (p *Presenter[R]) Presented() Presentation[R] {
	return p.current
}

// PresentedRoute returns the route being shown, of either style.
func (p *Presenter[R]) PresentedRoute() (R, bool) {
	return p.current.Route, p.current.Active
}

// PresentedStyle returns the style of the current presentation.
func (p *Presenter[R]) PresentedStyle() (Style, bool) {
	return p.current.Style, p.current.Active
}

// IsPresenting reports whether anything is showing.
func (p *Presenter[R]) IsPresenting() bool {
	return p.current.Active
}

// Sheet returns the current route only when it is shown as a sheet.
func (p *Presenter[R]) Sheet() (R, bool) {
	return p.slot(Sheet)
}

// SetSheet is the write side of a sheet binding. A nil route dismisses a
// sheet and is ignored while a full-screen cover is showing; a non-nil
// route is presented as a sheet, replacing anything current.
func (p *Presenter[R]) SetSheet(route *R) {
	p.setSlot(Sheet, route)
}

// FullScreen returns the current route only when it is shown full screen.
func (p *Presenter[R]) FullScreen() (R, bool) {
	return p.slot(FullScreen)
}

// SetFullScreen is the write side of a full-screen binding, with the same
// rules as SetSheet.
func (p *Presenter[R]) SetFullScreen(route *R) {
	p.setSlot(FullScreen, route)
}

// Observe registers fn to be called with every committed change, inside
// the runner's scope. It returns a function that removes the observer.
func (p *Presenter[R]) Observe(fn func(Presentation[R])) (cancel func()) {
	return p.observers.Add(fn)
}

func (p *Presenter[R]) slot(style Style) (R, bool) {
	if !p.current.Active || p.current.Style != style {
		var zero R
		return zero, false
	}
	return p.current.Route, true
}

func (p *Presenter[R]) setSlot(style Style, route *R) {
	if route == nil {
		if !p.current.Active || p.current.Style != style {
			return
		}
		p.Dismiss(true)
		return
	}
	p.Present(*route, style, true, ReplaceCurrent)
}

func (p *Presenter[R]) commit(animated bool, next Presentation[R]) {
	transition.Perform(p.runner, animated, func() {
		p.current = next
		p.observers.Notify(next)
	})
	p.logger.Debug("modal: committed", "active", next.Active, "style", next.Style, "animated", animated)
}
