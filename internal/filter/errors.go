package filter

import "errors"

var (
	// ErrInvalidThreshold is returned when the spam threshold is below one.
	ErrInvalidThreshold = errors.New("spam threshold must be at least 1")

	// ErrNoPatterns is returned when every category is empty.
	ErrNoPatterns = errors.New("at least one pattern is required")
)
