// Package permission provides the read-only JSON API for the permission
// reference set.
package permission

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/roleboard/roleboard/internal/apperr"
	"github.com/roleboard/roleboard/internal/config"
	permissionctl "github.com/roleboard/roleboard/internal/db/controller/permission"
	"github.com/roleboard/roleboard/internal/fallback"
	"github.com/roleboard/roleboard/internal/notify"
	"github.com/roleboard/roleboard/internal/web/handler"
)

// Path is the base path for the permission reference set.
const Path = handler.APIPath + "/permissions"

// Service provides the permission API handler.
type Service struct {
	cfg    *config.Config
	db     *gorm.DB
	notify notify.Func
}

// Handler is the exported instance.
var Handler = Service{} //nolint:gochecknoglobals

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
}

// List returns the fixed permission reference set ordered by category. On a
// store failure with the fallback policy enabled it serves the fixed
// degraded dataset instead.
func (s *Service) List(c *fiber.Ctx) error {
	permissions, err := permissionctl.List(s.db)
	if err != nil {
		if errors.Is(err, apperr.ErrStore) && s.cfg.Fallback.Enabled {
			log.Warn().Err(err).Msg("serving fallback permission dataset")
			s.notify("permissions loaded from offline fallback", notify.SeverityWarning)

			return c.JSON(fallback.Permissions())
		}

		return handler.Error(c, err)
	}

	return c.JSON(permissions)
}
