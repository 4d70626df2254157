package navpath

import (
	"log/slog"
	"slices"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/navkit/pkg/navkit/internal"
	"github.com/BrandonKowalski/navkit/pkg/navkit/transition"
)

// slot is the navigator's record of one path position. A known slot holds
// the exact route that was pushed there; the zero slot is unknown.
type slot struct {
	value any
	known bool
}

func known(route any) slot {
	return slot{value: route, known: true}
}

// Navigator is a navigation stack holding routes of any comparable type.
//
// The navigator is the only writer of its shadow slots and, apart from
// SetRoutes, of its path. It is meant to be driven from a single UI
// goroutine and is not safe for concurrent use.
type Navigator struct {
	path   Path
	shadow []slot

	// committing is set only while the navigator assigns its own path, so
	// setPath can tell self-inflicted changes from external ones.
	committing atomic.Bool
	revision   atomic.Uint64

	runner    transition.Runner
	logger    *slog.Logger
	observers internal.Observers[Path]
}

// Option configures a Navigator.
type Option func(*options)

type options struct {
	runner transition.Runner
	logger *slog.Logger
	path   Path
}

// WithRunner sets the runner that commits path changes.
func WithRunner(r transition.Runner) Option {
	return func(o *options) { o.runner = r }
}

// WithLogger sets the logger used for reconciliation debug events.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithPath seeds the navigator with a path it did not build. Every
// position starts unknown.
func WithPath(p Path) Option {
	return func(o *options) { o.path = p }
}

// New creates a navigator, empty unless WithPath is given.
func New(opts ...Option) *Navigator {
	o := options{runner: transition.Immediate}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = internal.GetInternalLogger()
	}
	return &Navigator{
		path:   o.path,
		shadow: make([]slot, o.path.Len()),
		runner: o.runner,
		logger: o.logger,
	}
}

// NewWithRoutes creates a navigator seeded with typed routes, all known.
func NewWithRoutes[R comparable](routes []R, opts ...Option) *Navigator {
	n := New(opts...)
	n.path, n.shadow = build(routes)
	return n
}

// Routes returns the current path for binding to the rendering layer.
func (n *Navigator) Routes() Path {
	return n.path
}

// SetRoutes is the external write channel: the rendering layer assigns the
// path it now shows. The change is reconciled against the shadow slots; see
// the package documentation for the rules.
func (n *Navigator) SetRoutes(p Path) {
	if n.setPath(p) {
		n.notify()
	}
}

// PopLast removes up to count routes from the top. A count of zero or less
// does nothing; a count larger than the path empties it.
func (n *Navigator) PopLast(count int, animated bool) {
	if count <= 0 {
		return
	}
	remove := min(count, n.path.Len())
	if remove == 0 {
		return
	}
	n.commit(animated, n.path.RemoveLast(remove), slices.Clip(n.shadow[:len(n.shadow)-remove]))
}

// PopToRoot removes every route.
func (n *Navigator) PopToRoot(animated bool) {
	n.commit(animated, Path{}, nil)
}

// HasPresentedRoutes returns true if the path has any route above the root.
func (n *Navigator) HasPresentedRoutes() bool {
	return !n.path.IsEmpty()
}

// Len returns the number of routes on the path.
func (n *Navigator) Len() int {
	return n.path.Len()
}

// Revision counts the path changes the navigator has accepted. Spurious
// external writes that change nothing do not advance it.
func (n *Navigator) Revision() uint64 {
	return n.revision.Load()
}

// Observe registers fn to be called with the new path after every accepted
// change. Changes made through the navigator notify inside the runner's
// scope. Observers may call SetRoutes.
func (n *Navigator) Observe(fn func(Path)) (cancel func()) {
	return n.observers.Add(fn)
}

// commit applies a change whose effect on both sequences is fully known.
func (n *Navigator) commit(animated bool, next Path, shadow []slot) {
	transition.Perform(n.runner, animated, func() {
		func() {
			n.committing.Store(true)
			defer n.committing.Store(false)
			n.shadow = shadow
			n.setPath(next)
		}()
		n.notify()
	})
}

// setPath is the single point where the path changes, whoever wrote it.
// It reports whether the change was accepted.
func (n *Navigator) setPath(next Path) bool {
	prev := n.path
	n.path = next

	if !n.committing.Load() && !n.reconcile(prev, next) {
		return false
	}
	n.revision.Inc()
	return true
}

// reconcile brings the shadow slots in line with an externally written
// path. It returns false when the write changed nothing.
func (n *Navigator) reconcile(prev, next Path) bool {
	oldCount, newCount := len(n.shadow), next.Len()

	switch {
	case newCount < oldCount && prev.hasPrefix(next):
		clear(n.shadow[newCount:])
		n.shadow = n.shadow[:newCount]
		n.logger.Debug("navpath: external pop", "from", oldCount, "to", newCount)

	case newCount > oldCount && next.hasPrefix(prev):
		for i := 0; i < newCount-oldCount; i++ {
			n.shadow = append(n.shadow, slot{})
		}
		n.logger.Debug("navpath: external push", "from", oldCount, "to", newCount)

	case newCount == oldCount && prev.Equal(next):
		n.logger.Debug("navpath: unchanged external write ignored", "len", newCount)
		return false

	default:
		n.shadow = make([]slot, newCount)
		n.logger.Debug("navpath: external replace, all routes unknown", "from", oldCount, "to", newCount)
	}
	return true
}

func (n *Navigator) notify() {
	n.observers.Notify(n.path)
}

func build[R comparable](routes []R) (Path, []slot) {
	elems := make([]any, len(routes))
	shadow := make([]slot, len(routes))
	for i, route := range routes {
		elems[i] = route
		shadow[i] = known(route)
	}
	return Path{elems: elems}, shadow
}
