// Package navpath provides a navigation stack that can hold routes of
// different types at once while still answering typed questions about it.
//
// A Navigator owns two parallel sequences. The Path is the type-erased
// stack handed to the rendering layer; the rendering layer may also write
// it back, for example when the user swipes back a screen. Next to it the
// navigator keeps one slot per position that either holds the exact typed
// route pushed there, or is unknown because the navigator cannot prove
// what is at that position.
//
// Changes made through the navigator (Navigate, Replace, PopLast,
// PopToRoot) keep both sequences in step. Changes written through
// SetRoutes are reconciled from what is observable, the length and the
// content equality of the old and new paths:
//
//   - a shorter path whose content is a prefix of the old one drops slots
//     from the tail;
//   - a longer path that extends the old one appends unknown slots;
//   - a same-length path with equal content changes nothing;
//   - anything else marks every slot unknown.
//
// Typed queries only ever look at known slots, so they can miss a route
// but never return a wrong one.
//
//	nav := navpath.New()
//	navpath.Navigate(nav, HomeRoute{ID: "home-001"}, true)
//	navpath.Navigate(nav, SettingsRoute("privacy"), true)
//
//	home, ok := navpath.PresentedRoute[HomeRoute](nav)
package navpath
