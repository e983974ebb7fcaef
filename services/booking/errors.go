package booking

import "errors"

var (
	// ErrSessionNotFound means the wizard session expired or never existed.
	ErrSessionNotFound = errors.New("booking session not found or expired")

	// ErrStepBlocked means the current step's gate did not pass.
	ErrStepBlocked = errors.New("current step is not complete")

	// ErrNonContiguousSelection is a contract violation: the UI handed over a
	// slot selection that is not a contiguous run. Never shown to users.
	ErrNonContiguousSelection = errors.New("merged slot indices must form a contiguous run")

	// ErrSubmitInFlight rejects a second submit while one is still running.
	ErrSubmitInFlight = errors.New("submission already in progress")

	// ErrNotOnReview means submit was called before the wizard reached review.
	ErrNotOnReview = errors.New("wizard has not reached the review step")

	// ErrSupersededAvailability marks an availability response whose inputs
	// changed while the query was in flight. Discarded silently upstream.
	ErrSupersededAvailability = errors.New("availability response superseded by newer inputs")

	// ErrServiceNotFound means the requested catalogue entry does not exist.
	ErrServiceNotFound = errors.New("service not found")
)

// ValidationError is a user-facing, recoverable gate failure. The wizard stays
// on its current step and no remote call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}
