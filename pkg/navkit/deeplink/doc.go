// Package deeplink turns incoming URLs into navigation requests.
//
// A Request is the routing-relevant part of a URL: an ordered list of
// decoded path segments and a map of query parameters. What the segments
// mean is up to the application; navkit's router package maps them onto
// flows and route stacks.
//
// # Schemes
//
// Custom schemes put the first route name in the host position
// (myapp://home/detail/42), so by default the host of a non-http(s) URL
// becomes the first segment. Universal links (https://example.com/home/42)
// use only the path.
//
//	req, err := deeplink.Parse("myapp://home/detail/home-001?query=swift%20ui")
//	// req.Path  == []string{"home", "detail", "home-001"}
//	// req.Query == map[string]string{"query": "swift ui"}
//
// A URL that leaves no path segments is not routable and yields
// ErrNoRoutablePath. The fragment is always ignored.
package deeplink
