package router

import (
	"log/slog"

	"github.com/BrandonKowalski/navkit/pkg/navkit/constants"
	"github.com/BrandonKowalski/navkit/pkg/navkit/deeplink"
	"github.com/BrandonKowalski/navkit/pkg/navkit/internal"
	"github.com/BrandonKowalski/navkit/pkg/navkit/modal"
	"github.com/BrandonKowalski/navkit/pkg/navkit/navpath"
	"github.com/BrandonKowalski/navkit/pkg/navkit/transition"
)

// Flow names an independent navigation stack, typically one tab.
// Deep links select a flow by their root segment, compared case-insensitively.
//
// Example:
//
//	const (
//	    FlowHome     Flow = "home"
//	    FlowSearch   Flow = "search"
//	    FlowSettings Flow = "settings"
//	)
type Flow string

// NoFlow is the selection of a router with nothing mounted.
const NoFlow Flow = ""

// Resolver maps a deep link onto the new contents of one flow's stack.
// It receives the whole request (use ChildPath and Query) and must not
// touch navigation state; returning false leaves everything unchanged.
type Resolver[R comparable] func(req deeplink.Request) (routes []R, ok bool)

// mount is a flow with its stack type erased.
type mount struct {
	flow      Flow
	pop       func(count int, animated bool)
	reset     func(animated bool)
	presented func() bool
	// resolve runs the flow's Resolver and, on success, returns the change
	// to apply. It has no side effects.
	resolve   func(req deeplink.Request) (apply func(), ok bool)
}

// Router is the navigation context of a multi-flow application: one stack
// per flow, the selected flow, and a single modal slot shared by all flows.
// Pass it by reference to whatever needs to trigger navigation.
type Router[M comparable] struct {
	mounts   map[Flow]*mount
	order    []Flow
	selected Flow

	modal  *modal.Presenter[M]
	parse  deeplink.Options
	runner transition.Runner
	logger *slog.Logger
}

// Option configures a Router.
type Option func(*options)

type options struct {
	runner transition.Runner
	logger *slog.Logger
	parse  deeplink.Options
}

// WithRunner sets the runner used for flow selection, resets and deep-link
// dispatch. The router's modal presenter shares it.
func WithRunner(r transition.Runner) Option {
	return func(o *options) { o.runner = r }
}

// WithLogger sets the logger used for debug events.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithParserOptions sets how HandleURL parses URLs.
func WithParserOptions(opts deeplink.Options) Option {
	return func(o *options) { o.parse = opts }
}

// New creates a router with no flows and nothing presented.
func New[M comparable](opts ...Option) *Router[M] {
	o := options{
		runner: transition.Immediate,
		parse:  deeplink.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = internal.GetInternalLogger()
	}
	return &Router[M]{
		mounts: make(map[Flow]*mount),
		modal:  modal.New[M](modal.WithRunner(o.runner), modal.WithLogger(o.logger)),
		parse:  o.parse,
		runner: o.runner,
		logger: o.logger,
	}
}

// Mount adds a flow backed by a typed stack. The first flow mounted becomes
// the selection. Mounting a flow name again replaces it.
func Mount[R comparable, M comparable](r *Router[M], flow Flow, stack *Stack[R], resolve Resolver[R]) *Router[M] {
	r.add(&mount{
		flow:      flow,
		pop:       stack.PopLast,
		reset:     stack.PopToRoot,
		presented: stack.HasPresentedRoutes,
		resolve: func(req deeplink.Request) (func(), bool) {
			routes, ok := resolveWith(resolve, req)
			if !ok {
				return nil, false
			}
			return func() { stack.Replace(routes, true) }, true
		},
	})
	return r
}

// MountPath adds a flow backed by a multi-type navigator. Deep links replace
// its path with routes of type R, all known to the navigator.
func MountPath[R comparable, M comparable](r *Router[M], flow Flow, nav *navpath.Navigator, resolve Resolver[R]) *Router[M] {
	r.add(&mount{
		flow:      flow,
		pop:       nav.PopLast,
		reset:     nav.PopToRoot,
		presented: nav.HasPresentedRoutes,
		resolve: func(req deeplink.Request) (func(), bool) {
			routes, ok := resolveWith(resolve, req)
			if !ok {
				return nil, false
			}
			return func() { navpath.Replace(nav, routes, true) }, true
		},
	})
	return r
}

func resolveWith[R comparable](resolve Resolver[R], req deeplink.Request) ([]R, bool) {
	if resolve == nil {
		return nil, false
	}
	return resolve(req)
}

func (r *Router[M]) add(m *mount) {
	key := flowKey(m.flow)
	if _, exists := r.mounts[key]; !exists {
		r.order = append(r.order, m.flow)
	}
	r.mounts[key] = m
	if r.selected == NoFlow {
		r.selected = m.flow
	}
}

// Flows returns the mounted flows in mount order.
func (r *Router[M]) Flows() []Flow {
	return append([]Flow(nil), r.order...)
}

// Selected returns the selected flow, or NoFlow if nothing is mounted.
func (r *Router[M]) Selected() Flow {
	return r.selected
}

// Select makes flow the selected one. It returns false for a flow that is
// not mounted.
func (r *Router[M]) Select(flow Flow) bool {
	m, ok := r.mounts[flowKey(flow)]
	if !ok {
		return false
	}
	r.selected = m.flow
	return true
}

// HasPresentedRoutes reports whether flow has anything above its root.
func (r *Router[M]) HasPresentedRoutes(flow Flow) bool {
	m, ok := r.mounts[flowKey(flow)]
	return ok && m.presented()
}

// Modal returns the modal presenter shared by every flow.
func (r *Router[M]) Modal() *modal.Presenter[M] {
	return r.modal
}

// Back pops one route off the selected flow. It returns false when the
// flow is already at its root, so the caller can handle "back" itself.
func (r *Router[M]) Back(animated bool) bool {
	m, ok := r.mounts[flowKey(r.selected)]
	if !ok || !m.presented() {
		return false
	}
	m.pop(constants.DefaultPopCount, animated)
	return true
}

// ResetSelected pops the selected flow back to its root.
func (r *Router[M]) ResetSelected(animated bool) {
	if m, ok := r.mounts[flowKey(r.selected)]; ok {
		m.reset(animated)
	}
}

// ResetAll pops every flow back to its root in one transition.
func (r *Router[M]) ResetAll(animated bool) {
	transition.Perform(r.runner, animated, func() {
		for _, flow := range r.order {
			r.mounts[flowKey(flow)].reset(true)
		}
	})
}

// Resolve reports which flow req would select, without changing anything.
func (r *Router[M]) Resolve(req deeplink.Request) (Flow, bool) {
	m, _, ok := r.resolve(req)
	if !ok {
		return NoFlow, false
	}
	return m.flow, true
}

// HandleURL parses raw and dispatches it. It returns false, changing
// nothing, when the URL is not routable or no flow accepts it.
func (r *Router[M]) HandleURL(raw string, animated bool) bool {
	req, err := deeplink.ParseWithOptions(raw, r.parse)
	if err != nil {
		r.logger.Debug("router: deep link ignored", "url", raw, "error", err)
		return false
	}
	return r.HandleRequest(req, animated)
}

// HandleRequest selects the flow named by the request's root and replaces
// its stack with the resolver's routes, as one transition. Resolution
// happens before anything changes, so a rejected request leaves the
// selection and every stack untouched.
func (r *Router[M]) HandleRequest(req deeplink.Request, animated bool) bool {
	m, apply, ok := r.resolve(req)
	if !ok {
		r.logger.Debug("router: deep link unresolved", "path", req.Path)
		return false
	}

	transition.Perform(r.runner, animated, func() {
		r.selected = m.flow
		apply()
	})
	r.logger.Debug("router: deep link handled", "flow", m.flow, "path", req.Path)
	return true
}

func (r *Router[M]) resolve(req deeplink.Request) (*mount, func(), bool) {
	root, ok := req.Root()
	if !ok {
		return nil, nil, false
	}
	m, ok := r.mounts[flowKey(Flow(root))]
	if !ok {
		return nil, nil, false
	}
	apply, ok := m.resolve(req)
	if !ok {
		return nil, nil, false
	}
	return m, apply, true
}

func flowKey(flow Flow) Flow {
	return Flow(deeplink.Lower(string(flow)))
}
