// Package user provides the JSON API handlers for user management.
package user

import (
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/roleboard/roleboard/internal/apperr"
	"github.com/roleboard/roleboard/internal/config"
	userctl "github.com/roleboard/roleboard/internal/db/controller/user"
	"github.com/roleboard/roleboard/internal/db/models"
	"github.com/roleboard/roleboard/internal/fallback"
	"github.com/roleboard/roleboard/internal/notify"
	"github.com/roleboard/roleboard/internal/web/handler"
)

// Path is the base path for user management.
const Path = handler.APIPath + "/users"

// Service provides the user API handlers.
type Service struct {
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
	notify    notify.Func
}

// Handler is the exported instance.
var Handler = Service{} //nolint:gochecknoglobals

// userInput is the request body for creating and updating users. RoleID is
// optional: zero means "leave role links alone" on update and "no role" on
// create.
type userInput struct {
	Name      string `json:"name"       validate:"required,max=100"`
	Email     string `json:"email"      validate:"required,email,max=255"`
	Phone     string `json:"phone"      validate:"max=50"`
	Status    string `json:"status"     validate:"omitempty,oneof=Active Inactive"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,url,max=512"`
	RoleID    uint   `json:"role_id"`
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
	app.Post(Path+"/:id/status/toggle", s.ToggleStatus)
}

// List returns every user with its live role set. On a store failure with
// the fallback policy enabled it serves the fixed degraded dataset instead.
func (s *Service) List(c *fiber.Ctx) error {
	views, err := userctl.List(s.db)
	if err != nil {
		if errors.Is(err, apperr.ErrStore) && s.cfg.Fallback.Enabled {
			log.Warn().Err(err).Msg("serving fallback user dataset")
			s.notify("users loaded from offline fallback", notify.SeverityWarning)

			return c.JSON(fallback.Users())
		}

		return handler.Error(c, err)
	}

	return c.JSON(views)
}

// Create creates a user, optionally assigning one role.
func (s *Service) Create(c *fiber.Ctx) error {
	var in userInput
	if err := c.BodyParser(&in); err != nil {
		return handler.Error(c, errors.Wrap(apperr.ErrValidation, "invalid request body"))
	}

	if err := s.validator.Struct(in); err != nil {
		return handler.Error(c, fmt.Errorf("%w: %s", apperr.ErrValidation, err))
	}

	created, err := userctl.Create(s.db, userctl.Input{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Status:    models.UserStatus(in.Status),
		AvatarURL: in.AvatarURL,
	}, in.RoleID)
	handler.CountMutation("user", "create", err)

	if err != nil {
		s.notify("failed to create user: "+err.Error(), notify.SeverityError)

		return handler.Error(c, err)
	}

	s.notify(fmt.Sprintf("user %q created", created.Name), notify.SeveritySuccess)

	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update updates a user's scalar fields and, when role_id is non-zero,
// replaces all role links with the single new assignment.
func (s *Service) Update(c *fiber.Ctx) error {
	id, err := parseUserID(c)
	if err != nil {
		return handler.Error(c, err)
	}

	var in userInput
	if err := c.BodyParser(&in); err != nil {
		return handler.Error(c, errors.Wrap(apperr.ErrValidation, "invalid request body"))
	}

	if err := s.validator.Struct(in); err != nil {
		return handler.Error(c, fmt.Errorf("%w: %s", apperr.ErrValidation, err))
	}

	updated, err := userctl.Update(s.db, id, userctl.Input{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Status:    models.UserStatus(in.Status),
		AvatarURL: in.AvatarURL,
	}, in.RoleID)
	handler.CountMutation("user", "update", err)

	if err != nil {
		s.notify("failed to update user: "+err.Error(), notify.SeverityError)

		return handler.Error(c, err)
	}

	s.notify(fmt.Sprintf("user %q updated", updated.Name), notify.SeveritySuccess)

	return c.JSON(updated)
}

// Delete removes a user and all of its role links.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := parseUserID(c)
	if err != nil {
		return handler.Error(c, err)
	}

	err = userctl.Delete(s.db, id)
	handler.CountMutation("user", "delete", err)

	if err != nil {
		s.notify("failed to delete user: "+err.Error(), notify.SeverityError)

		return handler.Error(c, err)
	}

	s.notify("user deleted", notify.SeveritySuccess)

	return c.SendStatus(fiber.StatusNoContent)
}

// ToggleStatus flips the user between Active and Inactive.
func (s *Service) ToggleStatus(c *fiber.Ctx) error {
	id, err := parseUserID(c)
	if err != nil {
		return handler.Error(c, err)
	}

	toggled, err := userctl.ToggleStatus(s.db, id)
	handler.CountMutation("user", "toggle_status", err)

	if err != nil {
		s.notify("failed to toggle user status: "+err.Error(), notify.SeverityError)

		return handler.Error(c, err)
	}

	s.notify(fmt.Sprintf("user %q is now %s", toggled.Name, toggled.Status), notify.SeveritySuccess)

	return c.JSON(toggled)
}

// parseUserID reads the :id route parameter.
func parseUserID(c *fiber.Ctx) (uint64, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.Wrap(apperr.ErrValidation, "invalid user id")
	}

	return id, nil
}
