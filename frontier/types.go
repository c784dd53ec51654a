package frontier

import "errors"

// Sentinel errors for frontier operations.
var (
	// ErrEmptyFrontier is returned by Pop on an empty frontier.
	// The engine never triggers it: it checks IsEmpty before popping.
	ErrEmptyFrontier = errors.New("frontier: pop from empty frontier")
)
