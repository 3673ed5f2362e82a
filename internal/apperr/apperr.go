// Package apperr defines the error classes shared by all store controllers.
// Domain packages declare their own sentinel errors and wrap one of these
// classes, so callers can classify any failure with errors.Is while the
// message still names the violated precondition.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks failures caused by missing or malformed caller input.
	// These are the caller's fault and must never be retried automatically.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks failures where a referenced entity or permission name
	// does not resolve to a row.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks mutations rejected because they would violate an
	// invariant (a guard error), not because the input was malformed.
	ErrConflict = errors.New("conflict")

	// ErrStore marks failures of the underlying store itself: unreachable,
	// rejected statement, broken transaction.
	ErrStore = errors.New("store failure")
)

// Store tags err as a store-level failure while keeping the original error
// in the chain. Returns nil if err is nil.
func Store(err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrStore, err)
}
