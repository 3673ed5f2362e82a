// Package handler holds the pieces shared by all API handlers: the error
// class to HTTP status mapping and the mutation outcome metrics.
package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/roleboard/roleboard/internal/apperr"
)

const (
	// APIPath is the base path of the JSON API route group.
	APIPath = "/api"

	// ErrNilACDFatalLogMsg is used if the app, cfg or db pointer is nil at Init.
	ErrNilACDFatalLogMsg = "app, cfg or db is nil"
)

// StatusFor maps an error to the HTTP status of its error class.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, apperr.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, apperr.ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, apperr.ErrStore):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// Error writes the failure as JSON under the status of its error class. The
// message carries the violated precondition unmodified, so the caller can
// tell a guard rejection from malformed input.
func Error(c *fiber.Ctx, err error) error {
	return c.Status(StatusFor(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}
