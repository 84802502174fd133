package domain

import "errors"

// ValidationError carries the exact user-facing message for input
// rejected before any remote call is made.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

const (
	ErrPromptTooShort   ValidationError = "Prompt must be at least 10 characters long."
	ErrFeedbackTooShort ValidationError = "Feedback must be at least 5 characters long."
	ErrEmptyMessage     ValidationError = "Message cannot be empty."
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrComingSoon      = errors.New("product is not yet available")

	// ErrNoSolutions marks a generation call that returned nothing.
	ErrNoSolutions = errors.New("no solutions generated")

	// ErrUpstream wraps any remote service failure. The presentation
	// layer converts it to a generic message and never exposes the cause.
	ErrUpstream = errors.New("upstream service failure")
)
