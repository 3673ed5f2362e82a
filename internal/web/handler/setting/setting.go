// Package setting provides the JSON API handlers for application settings.
package setting

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/roleboard/roleboard/internal/apperr"
	"github.com/roleboard/roleboard/internal/config"
	settingctl "github.com/roleboard/roleboard/internal/db/controller/setting"
	"github.com/roleboard/roleboard/internal/notify"
	"github.com/roleboard/roleboard/internal/web/handler"
)

// Path is the base path for settings management.
const Path = handler.APIPath + "/settings"

// Service provides the setting API handlers.
type Service struct {
	cfg    *config.Config
	db     *gorm.DB
	notify notify.Func
}

// Handler is the exported instance.
var Handler = Service{} //nolint:gochecknoglobals

// valueInput is the request body for setting a value.
type valueInput struct {
	Value string `json:"value"`
}

// Init registers routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, notifier notify.Func) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db
	s.notify = notifier

	app.Get(Path, s.List)
	app.Get(Path+"/:name", s.Get)
	app.Put(Path+"/:name", s.Set)
}

// List returns all settings.
func (s *Service) List(c *fiber.Ctx) error {
	settings, err := settingctl.GetAll(s.db)
	if err != nil {
		return handler.Error(c, err)
	}

	return c.JSON(settings)
}

// Get returns a single setting by name.
func (s *Service) Get(c *fiber.Ctx) error {
	setting, err := settingctl.Get(s.db, c.Params("name"))
	if err != nil {
		return handler.Error(c, err)
	}

	return c.JSON(setting)
}

// Set creates or updates a setting by name.
func (s *Service) Set(c *fiber.Ctx) error {
	var in valueInput
	if err := c.BodyParser(&in); err != nil {
		return handler.Error(c, errors.Wrap(apperr.ErrValidation, "invalid request body"))
	}

	setting, err := settingctl.Set(s.db, c.Params("name"), in.Value)
	if err != nil {
		s.notify("failed to save setting: "+err.Error(), notify.SeverityError)

		return handler.Error(c, err)
	}

	s.notify("setting saved", notify.SeveritySuccess)

	return c.JSON(setting)
}
