package modal

import "fmt"

// Style is how a modal is shown.
type Style int

const (
	Sheet      Style = iota // Partial-height sheet
	FullScreen              // Full-screen cover
)

func (s Style) String() string {
	switch s {
	case Sheet:
		return "sheet"
	case FullScreen:
		return "full_screen"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// Policy decides what Present does when a modal is already showing.
type Policy int

const (
	ReplaceCurrent           Policy = iota // Replace whatever is showing (default)
	IgnoreIfAlreadyPresented               // Keep the current modal, drop the request
)

func (p Policy) String() string {
	switch p {
	case ReplaceCurrent:
		return "replace_current"
	case IgnoreIfAlreadyPresented:
		return "ignore_if_already_presented"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}
