package services

import "errors"

// Engine error taxonomy. Handlers translate these onto HTTP statuses;
// anything not wrapping one of them is a plain server error. Validation
// never reaches the engines (gin binding rejects it first) and upstream
// classification failures are absorbed into degraded outcomes, so this set
// stays small.
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
	ErrConflict  = errors.New("already resolved")
)
