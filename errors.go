package reflow

import "errors"

var (
	// ErrSessionClosed reports a command issued after Close.
	ErrSessionClosed = errors.New("reflow: session closed")

	// ErrLastPage reports an attempt to remove the only page.
	ErrLastPage = errors.New("reflow: cannot remove the only page")

	// ErrNoSplit reports a manual split that would move no content, or a
	// cursor that does not address a content position.
	ErrNoSplit = errors.New("reflow: split would move no content")
)
