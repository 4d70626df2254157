// Package router provides typed navigation stacks and the context that ties
// several of them together.
//
// A Stack holds the history of one flow whose routes share a type. A Router
// holds one stack per flow, remembers which flow is selected, owns the
// single modal slot, and turns deep links into navigation. Routing logic
// for deep links lives in one Resolver per flow, so what a URL does is
// traceable from a single function.
//
// # Basic Usage
//
//	// Define routes as comparable values
//	type HomeRoute struct {
//	    Kind string
//	    ID   string
//	}
//
//	// Create stacks and the router
//	home := router.NewStack[HomeRoute](nil)
//	r := router.New[ModalRoute]()
//
//	router.Mount(r, "home", home, func(req deeplink.Request) ([]HomeRoute, bool) {
//	    child := req.ChildPath()
//	    switch {
//	    case len(child) == 0:
//	        return nil, true // root of the flow
//	    case len(child) == 2 && child[0] == "detail":
//	        return []HomeRoute{{Kind: "detail", ID: child[1]}}, true
//	    }
//	    return nil, false
//	})
//
//	// Navigate directly
//	home.Navigate(HomeRoute{Kind: "detail", ID: "42"}, true)
//
//	// Or from a URL: selects "home" and replaces its stack
//	r.HandleURL("myapp://home/detail/42", true)
//
// # Mixed Route Types
//
// Flows whose stack holds more than one route type mount a
// navpath.Navigator with MountPath instead of a Stack.
//
// # Animation
//
// Every mutating call takes an animated flag. It never changes the
// resulting state; it is forwarded to the transition.Runner that commits
// the change, so the rendering layer can skip the transition.
package router
