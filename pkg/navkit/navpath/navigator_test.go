package navpath

import (
	"bytes"
	"log/slog"
	"math/rand"
	"strings"
	"testing"

	"github.com/BrandonKowalski/navkit/pkg/navkit/transition"
)

type detailRoute struct{ ID string }

type settingsRoute string

type tabRoute int

func checkInvariants(t *testing.T, n *Navigator) {
	t.Helper()
	if len(n.shadow) != n.path.Len() {
		t.Fatalf("shadow has %d slots, path has %d routes", len(n.shadow), n.path.Len())
	}
	for i, s := range n.shadow {
		if s.known && !sameRoute(s.value, n.path.At(i)) {
			t.Fatalf("known slot %d holds %v, path holds %v", i, s.value, n.path.At(i))
		}
	}
}

func knownCount(n *Navigator) int {
	count := 0
	for _, s := range n.shadow {
		if s.known {
			count++
		}
	}
	return count
}

func TestNavigateAppendsRoute(t *testing.T) {
	for _, animated := range []bool{true, false} {
		n := New()
		Navigate(n, detailRoute{"home-001"}, animated)

		if n.Len() != 1 {
			t.Errorf("Len() = %d, want 1", n.Len())
		}
		if got, ok := PresentedRoute[detailRoute](n); !ok || got != (detailRoute{"home-001"}) {
			t.Errorf("PresentedRoute = %v, %v", got, ok)
		}
		checkInvariants(t, n)
	}
}

func TestReplaceOverwritesPath(t *testing.T) {
	n := New()
	Navigate(n, settingsRoute("privacy"), true)
	Replace(n, []detailRoute{{"home-100"}, {"home-200"}}, true)

	if n.Len() != 2 {
		t.Errorf("Len() = %d, want 2", n.Len())
	}
	if got, _ := PresentedRoute[detailRoute](n); got != (detailRoute{"home-200"}) {
		t.Errorf("PresentedRoute = %v", got)
	}
	if Contains(n, settingsRoute("privacy")) {
		t.Error("replaced route still reported")
	}
	checkInvariants(t, n)
}

func TestReplaceWithEmpty(t *testing.T) {
	n := NewWithRoutes([]detailRoute{{"1"}, {"2"}})
	Replace(n, []detailRoute{}, false)

	if n.HasPresentedRoutes() {
		t.Error("HasPresentedRoutes after empty replace")
	}
	checkInvariants(t, n)
}

func TestPopLast(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		wantLen int
	}{
		{"one", 1, 1},
		{"clamped", 10, 0},
		{"zero is no-op", 0, 2},
		{"negative is no-op", -3, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := New()
			Navigate(n, detailRoute{"1"}, true)
			Navigate(n, settingsRoute("2"), true)
			rev := n.Revision()

			n.PopLast(tt.count, false)

			if n.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", n.Len(), tt.wantLen)
			}
			if tt.count <= 0 && n.Revision() != rev {
				t.Error("no-op pop advanced the revision")
			}
			checkInvariants(t, n)
		})
	}
}

func TestPopLastKeepsEarlierRoutes(t *testing.T) {
	n := New()
	Navigate(n, detailRoute{"1"}, true)
	Navigate(n, detailRoute{"2"}, true)
	n.PopLast(1, true)

	if got, _ := PresentedRoute[detailRoute](n); got != (detailRoute{"1"}) {
		t.Errorf("PresentedRoute = %v, want {1}", got)
	}
}

func TestPopToRoot(t *testing.T) {
	n := New()
	Navigate(n, detailRoute{"1"}, true)
	Navigate(n, settingsRoute("2"), true)
	n.PopToRoot(false)

	if n.HasPresentedRoutes() || n.Len() != 0 {
		t.Errorf("Len() = %d after PopToRoot", n.Len())
	}
	if _, ok := PresentedRoute[detailRoute](n); ok {
		t.Error("PresentedRoute found a route on an empty path")
	}
	checkInvariants(t, n)
}

func TestContains(t *testing.T) {
	n := New()
	Navigate(n, detailRoute{"home-001"}, true)
	Navigate(n, settingsRoute("privacy"), true)

	if !Contains(n, detailRoute{"home-001"}) {
		t.Error("exact route not found")
	}
	if !ContainsFunc(n, func(s settingsRoute) bool { return s == "privacy" }) {
		t.Error("predicate match not found")
	}
	if Contains(n, detailRoute{"missing"}) {
		t.Error("missing route reported")
	}
	if ContainsFunc(n, func(d detailRoute) bool { return d.ID == "not-found" }) {
		t.Error("missing predicate match reported")
	}
	if ContainsFunc[tabRoute](n, func(tabRoute) bool { return true }) {
		t.Error("route of an absent type reported")
	}
	if ContainsFunc[detailRoute](n, nil) {
		t.Error("nil predicate matched")
	}
}

func TestMatch(t *testing.T) {
	n := NewWithRoutes([]detailRoute{{"a"}, {"b"}})
	b := detailRoute{"b"}
	z := detailRoute{"z"}

	if !Match(n, &b, nil) {
		t.Error("route lookup failed")
	}
	if !Match(n, &z, func(d detailRoute) bool { return d.ID == "a" }) {
		t.Error("predicate did not take precedence over route")
	}
	if Match[detailRoute](n, nil, nil) {
		t.Error("lookup with neither route nor predicate matched")
	}
}

func TestPresentedRouteIsMostRecentOfType(t *testing.T) {
	n := New()
	if _, ok := PresentedRoute[detailRoute](n); ok {
		t.Error("PresentedRoute on root reported a route")
	}

	Navigate(n, detailRoute{"home-001"}, true)
	Navigate(n, detailRoute{"nested-001"}, true)
	Navigate(n, settingsRoute("privacy"), true)

	if got, _ := PresentedRoute[detailRoute](n); got != (detailRoute{"nested-001"}) {
		t.Errorf("PresentedRoute[detailRoute] = %v", got)
	}
	if got, _ := PresentedRoute[settingsRoute](n); got != "privacy" {
		t.Errorf("PresentedRoute[settingsRoute] = %v", got)
	}
}

func TestHasPresentedRoutes(t *testing.T) {
	n := New()
	if n.HasPresentedRoutes() {
		t.Error("empty navigator has presented routes")
	}
	Navigate(n, detailRoute{"home-001"}, true)
	if !n.HasPresentedRoutes() {
		t.Error("navigator without presented routes after push")
	}
	n.PopToRoot(true)
	if n.HasPresentedRoutes() {
		t.Error("navigator has presented routes after PopToRoot")
	}
}

func TestExternalShrinkPreservesPrefix(t *testing.T) {
	a, b := detailRoute{"a"}, detailRoute{"b"}
	n := New()
	Navigate(n, a, true)
	Navigate(n, b, true)

	n.SetRoutes(n.Routes().RemoveLast(1))

	if got, ok := PresentedRoute[detailRoute](n); !ok || got != a {
		t.Errorf("PresentedRoute = %v, %v; want %v", got, ok, a)
	}
	if Contains(n, b) {
		t.Error("popped route still reported")
	}
	checkInvariants(t, n)
}

func TestExternalGrowthInvalidatesOnlyNewEntries(t *testing.T) {
	a := detailRoute{"a"}
	n := New()
	Navigate(n, a, true)

	n.SetRoutes(n.Routes().Append(detailRoute{"pushed-elsewhere"}))

	if n.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", n.Len())
	}
	if !Contains(n, a) {
		t.Error("known route lost after external push")
	}
	if Contains(n, detailRoute{"pushed-elsewhere"}) {
		t.Error("externally pushed route reported as known")
	}
	if got, _ := PresentedRoute[detailRoute](n); got != a {
		t.Errorf("PresentedRoute = %v, want %v (unknown slots are skipped)", got, a)
	}
	if knownCount(n) != 1 {
		t.Errorf("known slots = %d, want 1", knownCount(n))
	}
	checkInvariants(t, n)
}

func TestExternalSameLengthReplaceInvalidatesAll(t *testing.T) {
	a, b := detailRoute{"a"}, detailRoute{"b"}
	n := New()
	Navigate(n, a, true)
	Navigate(n, b, true)

	n.SetRoutes(PathOf(tabRoute(1), tabRoute(2)))

	if Contains(n, a) {
		t.Error("route reported after wholesale replace")
	}
	if _, ok := PresentedRoute[detailRoute](n); ok {
		t.Error("PresentedRoute found a route after wholesale replace")
	}
	if ContainsFunc(n, func(tabRoute) bool { return true }) {
		t.Error("externally written routes reported as known")
	}
	checkInvariants(t, n)
}

func TestExternalSameContentIsNoOp(t *testing.T) {
	a, b := detailRoute{"a"}, detailRoute{"b"}
	n := New()
	Navigate(n, a, true)
	Navigate(n, b, true)
	rev := n.Revision()

	notified := 0
	n.Observe(func(Path) { notified++ })
	n.SetRoutes(PathOf(a, b))

	if !Contains(n, a) || !Contains(n, b) {
		t.Error("equal-content write invalidated known routes")
	}
	if n.Revision() != rev || notified != 0 {
		t.Errorf("equal-content write accepted: revision %d -> %d, %d notifications", rev, n.Revision(), notified)
	}
}

func TestExternalShrinkWithDifferentContentInvalidatesAll(t *testing.T) {
	n := NewWithRoutes([]detailRoute{{"a"}, {"b"}})
	n.SetRoutes(PathOf(detailRoute{"x"}))

	if knownCount(n) != 0 {
		t.Errorf("known slots = %d, want 0", knownCount(n))
	}
	checkInvariants(t, n)
}

func TestExternalGrowthWithDifferentPrefixInvalidatesAll(t *testing.T) {
	n := NewWithRoutes([]detailRoute{{"a"}})
	n.SetRoutes(PathOf(detailRoute{"x"}, detailRoute{"y"}))

	if Contains(n, detailRoute{"a"}) || knownCount(n) != 0 {
		t.Errorf("known slots = %d, want 0", knownCount(n))
	}
	checkInvariants(t, n)
}

func TestWithPathStartsUnknown(t *testing.T) {
	n := New(WithPath(PathOf(detailRoute{"a"}, settingsRoute("b"))))

	if n.Len() != 2 || knownCount(n) != 0 {
		t.Errorf("Len() = %d, known = %d", n.Len(), knownCount(n))
	}
	Navigate(n, detailRoute{"c"}, true)
	if got, _ := PresentedRoute[detailRoute](n); got != (detailRoute{"c"}) {
		t.Errorf("PresentedRoute = %v", got)
	}
	checkInvariants(t, n)
}

func TestObserversSeeEveryChangeInsideRunnerScope(t *testing.T) {
	runner := transition.NewSuppressing()
	n := New(WithRunner(runner))

	type event struct {
		len        int
		suppressed bool
	}
	var events []event
	cancel := n.Observe(func(p Path) {
		events = append(events, event{p.Len(), runner.Suppressed()})
	})

	Navigate(n, detailRoute{"a"}, true)
	Navigate(n, detailRoute{"b"}, false)
	n.SetRoutes(n.Routes().RemoveLast(1))
	cancel()
	n.PopToRoot(true)

	want := []event{{1, false}, {2, true}, {1, false}}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, events[i], want[i])
		}
	}
}

func TestCancelledObserversAreReleased(t *testing.T) {
	n := New()
	calls := 0
	for i := 0; i < 50; i++ {
		cancel := n.Observe(func(Path) { calls++ })
		cancel()
	}
	if got := n.observers.Len(); got != 0 {
		t.Errorf("observers retained after cancel = %d, want 0", got)
	}

	Navigate(n, detailRoute{"a"}, true)
	if calls != 0 {
		t.Errorf("cancelled observers called %d times", calls)
	}
}

func TestObserverWriteIsReconciledAsExternal(t *testing.T) {
	n := New()
	n.Observe(func(p Path) {
		if p.Len() == 1 {
			n.SetRoutes(p.Append(settingsRoute("from-observer")))
		}
	})

	Navigate(n, detailRoute{"a"}, true)

	if n.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", n.Len())
	}
	if Contains(n, settingsRoute("from-observer")) {
		t.Error("route written by an observer reported as known")
	}
	if !Contains(n, detailRoute{"a"}) {
		t.Error("route pushed through the navigator lost")
	}
	checkInvariants(t, n)
}

func TestInvariantsUnderRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	n := New()

	for step := 0; step < 2000; step++ {
		switch rng.Intn(9) {
		case 0:
			Navigate(n, detailRoute{string(rune('a' + rng.Intn(5)))}, rng.Intn(2) == 0)
		case 1:
			Navigate(n, tabRoute(rng.Intn(3)), true)
		case 2:
			Replace(n, []settingsRoute{"x", "y"}[:rng.Intn(3)], false)
		case 3:
			n.PopLast(rng.Intn(4)-1, true)
		case 4:
			if rng.Intn(10) == 0 {
				n.PopToRoot(true)
			}
		case 5:
			n.SetRoutes(n.Routes().RemoveLast(rng.Intn(3)))
		case 6:
			n.SetRoutes(n.Routes().Append(tabRoute(rng.Intn(3))))
		case 7:
			elems := make([]any, n.Len())
			for i := range elems {
				elems[i] = tabRoute(rng.Intn(2))
			}
			n.SetRoutes(PathOf(elems...))
		case 8:
			n.SetRoutes(n.Routes())
		}
		checkInvariants(t, n)
	}
}

func TestReconciliationIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	n := NewWithRoutes([]detailRoute{{"a"}, {"b"}}, WithLogger(logger))

	n.SetRoutes(n.Routes().RemoveLast(1))
	n.SetRoutes(PathOf(tabRoute(1)))

	out := buf.String()
	for _, want := range []string{"external pop", "external replace"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
