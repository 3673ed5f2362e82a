package permission

import (
	"errors"
	"fmt"

	"github.com/roleboard/roleboard/internal/apperr"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")

	// ErrNameEmpty is returned when a permission lookup is attempted with an empty name.
	ErrNameEmpty = fmt.Errorf("%w: permission name cannot be empty", apperr.ErrValidation)

	// ErrPermissionNotFound is returned when a permission name does not resolve
	// against the fixed reference set.
	ErrPermissionNotFound = fmt.Errorf("permission %w", apperr.ErrNotFound)
)
