// Package internal holds plumbing shared by navkit's packages that is not
// part of the public API.
package internal
