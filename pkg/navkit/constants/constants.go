// Package constants defines shared constants used throughout navkit.
package constants

// Web schemes. URLs with any other scheme are treated as custom-scheme deep
// links whose host names the first route.
const (
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
)

// DefaultPopCount is the number of routes a plain "back" removes.
const DefaultPopCount = 1
