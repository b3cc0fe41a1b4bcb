package store

import (
	"errors"
	"fmt"
)

// Error kinds the store returns. Handlers map these onto HTTP status
// codes; callers branch with errors.Is.
var (
	// ErrUnauthenticated means the operation needs a session and none
	// exists, or the presented credentials did not match.
	ErrUnauthenticated = errors.New("not logged in")

	// ErrForbidden means a session exists but the role or ownership
	// check failed.
	ErrForbidden = errors.New("insufficient permissions")

	// ErrNotFound means the target record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is the uniqueness-violation kind. The username and
	// email variants wrap it so callers can still match the class.
	ErrConflict      = errors.New("duplicate identity")
	ErrUsernameTaken = fmt.Errorf("username already exists: %w", ErrConflict)
	ErrEmailTaken    = fmt.Errorf("email already exists: %w", ErrConflict)

	// ErrInvalidInput covers domain-level validation failures such as
	// an unknown inquiry status or role.
	ErrInvalidInput = errors.New("invalid input")
)
