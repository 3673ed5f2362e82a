package user

import (
	"errors"
	"fmt"

	"github.com/roleboard/roleboard/internal/apperr"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")

	// ErrNameEmpty is returned when attempting to create/update a user with an empty name.
	ErrNameEmpty = fmt.Errorf("%w: user name cannot be empty", apperr.ErrValidation)

	// ErrEmailEmpty is returned when attempting to create/update a user with an empty email.
	ErrEmailEmpty = fmt.Errorf("%w: user email cannot be empty", apperr.ErrValidation)

	// ErrUserNotFound is returned when a user ID does not resolve to a row.
	ErrUserNotFound = fmt.Errorf("user %w", apperr.ErrNotFound)

	// ErrRoleNotFound is returned when a role ID passed for assignment does not resolve.
	ErrRoleNotFound = fmt.Errorf("role %w", apperr.ErrNotFound)
)
