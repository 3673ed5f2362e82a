package role

import (
	"errors"
	"fmt"

	"github.com/roleboard/roleboard/internal/apperr"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")

	// ErrNameEmpty is returned when attempting to create/update a role with an empty name.
	ErrNameEmpty = fmt.Errorf("%w: role name cannot be empty", apperr.ErrValidation)

	// ErrDescriptionEmpty is returned when attempting to create/update a role with an empty description.
	ErrDescriptionEmpty = fmt.Errorf("%w: role description cannot be empty", apperr.ErrValidation)

	// ErrDuplicatePermission is returned when a permission list names the same
	// permission more than once.
	ErrDuplicatePermission = fmt.Errorf("%w: permission list contains duplicates", apperr.ErrValidation)

	// ErrRoleNotFound is returned when a role ID does not resolve to a row.
	ErrRoleNotFound = fmt.Errorf("role %w", apperr.ErrNotFound)

	// ErrRoleHasUsers is the guard error rejecting deletion of a role that
	// still has user assignments. Users must be reassigned first.
	ErrRoleHasUsers = fmt.Errorf("%w: role has active users, reassign first", apperr.ErrConflict)
)
