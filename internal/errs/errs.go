// Package errs contains sentinel errors shared by both services for stable
// error-to-status mapping.
package errs

import "errors"

var (
	// ErrInvalidInput indicates a request that violates input constraints.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict indicates a unique constraint violation (e.g., email taken).
	ErrConflict = errors.New("conflict")

	// ErrUnauthenticated indicates missing or failed authentication.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden indicates a valid caller acting on another owner's record.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")
)
