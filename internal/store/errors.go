package store

import "errors"

// Learner-facing error kinds. Raised at operation boundaries and translated
// into user feedback by the presentation layer; never retried internally.
var (
	// ErrNotAuthenticated rejects mutating operations invoked without a
	// resolved learner identity.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrPlanUnavailable means the planner could not resolve any unit or
	// item pool for the requested configuration.
	ErrPlanUnavailable = errors.New("could not build plan")

	// ErrItemNotFound means an attempt referenced an item id that is not
	// part of the specified session.
	ErrItemNotFound = errors.New("item not found")

	// ErrSessionNotFound means the session does not exist or does not
	// belong to the caller.
	ErrSessionNotFound = errors.New("session not found")

	// ErrUnknownUnit means a referenced unit id resolves neither in the
	// seeded catalog nor among the learner's custom units.
	ErrUnknownUnit = errors.New("unknown unit")
)
