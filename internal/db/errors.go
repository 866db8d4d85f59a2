package db

import "errors"

// Sentinel errors callers branch on with errors.Is. Validation failures
// are plain errors produced before any of these can occur.
var (
	// ErrNotFound means a lookup by id matched nothing.
	ErrNotFound = errors.New("record not found")

	// ErrScheduleConflict means the therapist already has a session
	// overlapping the requested interval.
	ErrScheduleConflict = errors.New("therapist already has a session in this time slot")

	// ErrInUse means a delete was blocked because other records still
	// reference the target.
	ErrInUse = errors.New("record is still in use")

	// ErrDuplicate means a unique field (username, plan name) is taken.
	ErrDuplicate = errors.New("record already exists")

	// ErrInvalidCredentials means username/password did not match.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
