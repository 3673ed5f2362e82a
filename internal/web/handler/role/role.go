// Package role provides the JSON API handlers for role management.
package role

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/roleboard/roleboard/internal/apperr"
	"github.com/roleboard/roleboard/internal/config"
	rolectl "github.com/roleboard/roleboard/internal/db/controller/role"
	"github.com/roleboard/roleboard/internal/fallback"
	"github.com/roleboard/roleboard/internal/notify"
	"github.com/roleboard/roleboard/internal/web/handler"
)

// Path is the base path for role management.
const Path = handler.APIPath + "/roles"

// Service provides the role API handlers.
type Service struct {
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
	notify    notify.Func
}

// Handler is the exported instance.
var Handler = Service{} //nolint:gochecknoglobals

// roleInput is the request body for creating and updating roles.
type roleInput struct {
	Name        string   `json:"name"        validate:"required,max=100"`
	Description string   `json:"description" validate:"required,max=255"`
	Color       string   `json:"color"       validate:"max=30"`
	Permissions []string `json:"permissions"`
}

// toggleInput is the request body for the permission toggle.
type toggleInput struct {
	Permission string `json:"permission" validate:"required,max=100"`
}

// Init registers routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, notifier notify.Func) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db
	s.validator = validator.New()
	s.notify = notifier

	app.Get(Path, s.List)
	app.Post(Path, s.Create)
	app.Put(Path+"/:id", s.Update)
	app.Delete(Path+"/:id", s.Delete)
	app.Post(Path+"/:id/permissions/toggle", s.TogglePermission)
	app.Get(Path+"/:id/users", s.UsersByRole)
}

// List returns every role with its live permission names and user count.
// On a store failure with the fallback policy enabled it serves the fixed
// degraded dataset instead.
func (s *Service) List(c *fiber.Ctx) error {
	views, err := rolectl.List(s.db)
	if err != nil {
		if errors.Is(err, apperr.ErrStore) && s.cfg.Fallback.Enabled {
			log.Warn().Err(err).Msg("serving fallback role dataset")
			s.notify("roles loaded from offline fallback", notify.SeverityWarning)

			return c.JSON(fallback.Roles())
		}

		return handler.Error(c, err)
	}

	return c.JSON(views)
}

// Create creates a role with its permission links.
func (s *Service) Create(c *fiber.Ctx) error {
	var in roleInput
	if err := c.BodyParser(&in); err != nil {
		return handler.Error(c, errors.Wrap(apperr.ErrValidation, "invalid request body"))
	}

	if err := s.validator.Struct(in); err != nil {
		return handler.Error(c, fmt.Errorf("%w: %s", apperr.ErrValidation, err))
	}

	role, err := rolectl.Create(s.db, in.Name, in.Description, in.Color, in.Permissions)
	handler.CountMutation("role", "create", err)

	if err != nil {
		s.notify("failed to create role: "+err.Error(), notify.SeverityError)

		return handler.Error(c, err)
	}

	s.notify(fmt.Sprintf("role %q created", role.Name), notify.SeveritySuccess)

	return c.Status(fiber.StatusCreated).JSON(role)
}

// Update updates a role's scalar fields and replaces its permission set.
func (s *Service) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return handler.Error(c, errors.Wrap(apperr.ErrValidation, "invalid role id"))
	}

	var in roleInput
	if err := c.BodyParser(&in); err != nil {
		return handler.Error(c, errors.Wrap(apperr.ErrValidation, "invalid request body"))
	}

	if err := s.validator.Struct(in); err != nil {
		return handler.Error(c, fmt.Errorf("%w: %s", apperr.ErrValidation, err))
	}

	role, err := rolectl.Update(s.db, uint(id), in.Name, in.Description, in.Color, in.Permissions)
	handler.CountMutation("role", "update", err)

	if err != nil {
		s.notify("failed to update role: "+err.Error(), notify.SeverityError)

		return handler.Error(c, err)
	}

	s.notify(fmt.Sprintf("role %q updated", role.Name), notify.SeveritySuccess)

	return c.JSON(role)
}

// Delete removes a role unless it still has users assigned.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return handler.Error(c, errors.Wrap(apperr.ErrValidation, "invalid role id"))
	}

	err = rolectl.Delete(s.db, uint(id))
	handler.CountMutation("role", "delete", err)

	if err != nil {
		s.notify("failed to delete role: "+err.Error(), notify.SeverityError)

		return handler.Error(c, err)
	}

	s.notify("role deleted", notify.SeveritySuccess)

	return c.SendStatus(fiber.StatusNoContent)
}

// TogglePermission flips one permission link on a role.
func (s *Service) TogglePermission(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return handler.Error(c, errors.Wrap(apperr.ErrValidation, "invalid role id"))
	}

	var in toggleInput
	if err := c.BodyParser(&in); err != nil {
		return handler.Error(c, errors.Wrap(apperr.ErrValidation, "invalid request body"))
	}

	if err := s.validator.Struct(in); err != nil {
		return handler.Error(c, fmt.Errorf("%w: %s", apperr.ErrValidation, err))
	}

	added, err := rolectl.TogglePermission(s.db, uint(id), in.Permission)
	handler.CountMutation("role", "toggle_permission", err)

	if err != nil {
		s.notify("failed to toggle permission: "+err.Error(), notify.SeverityError)

		return handler.Error(c, err)
	}

	if added {
		s.notify(fmt.Sprintf("permission %q added", in.Permission), notify.SeveritySuccess)
	} else {
		s.notify(fmt.Sprintf("permission %q removed", in.Permission), notify.SeveritySuccess)
	}

	return c.JSON(fiber.Map{"added": added})
}

// UsersByRole lists the users assigned to a role.
func (s *Service) UsersByRole(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return handler.Error(c, errors.Wrap(apperr.ErrValidation, "invalid role id"))
	}

	members, err := rolectl.UsersByRole(s.db, uint(id))
	if err != nil {
		return handler.Error(c, err)
	}

	return c.JSON(members)
}
