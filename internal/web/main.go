// Package web implements the HTTP surface of the dashboard backend.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/roleboard/roleboard/internal/config"
	accesslog "github.com/roleboard/roleboard/internal/logger/adapter/fiber"
	"github.com/roleboard/roleboard/internal/notify"
	permissionhandler "github.com/roleboard/roleboard/internal/web/handler/permission"
	rolehandler "github.com/roleboard/roleboard/internal/web/handler/role"
	settinghandler "github.com/roleboard/roleboard/internal/web/handler/setting"
	userhandler "github.com/roleboard/roleboard/internal/web/handler/user"
)

// CheckAlivePath is probed by load balancers; it flips to 503 during drain.
const CheckAlivePath = "/checkalive"

// Service represents the web service.
type Service struct {
	App   *fiber.App
	cfg   *config.Config
	db    *gorm.DB
	alive atomic.Bool
}

// Start starts the web service on the given address and blocks until the
// server stops.
func (s *Service) Start(addr string) error {
	s.alive.Store(true)

	if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err //nolint:wrapcheck
	}

	return nil
}

// WaitShutdown waits for SIGINT/SIGTERM and drains the service: checkalive
// turns 503 for the configured window so load balancers remove the instance,
// then the http server stops.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	log.Info().Msgf(
		"graceful shutdown: return 503 for %d seconds to let the LB remove this instance from active targets",
		s.cfg.Webserver.ShutDownTime,
	)

	s.alive.Store(false)
	time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)

	log.Info().Msg("stopping http server ...")

	if err := s.App.Shutdown(); err != nil {
		log.Error().Err(err).Msg("http server shutdown failed")
	}
}

// New creates a new web service with the given configuration, store and
// notification collaborator.
func New(cfg *config.Config, db *gorm.DB, notifier notify.Func) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	if notifier == nil {
		notifier = notify.Discard
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
		},
	)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New())
	}

	app.Use(accesslog.New(accesslog.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	service := &Service{
		cfg: cfg,
		App: app,
		db:  db,
	}

	app.Get(CheckAlivePath, func(c *fiber.Ctx) error {
		if !service.alive.Load() {
			return c.SendStatus(fiber.StatusServiceUnavailable)
		}

		return c.SendStatus(fiber.StatusOK)
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// init handlers (they register their own routes)
	rolehandler.Handler.Init(app, cfg, db, notifier)
	userhandler.Handler.Init(app, cfg, db, notifier)
	permissionhandler.Handler.Init(app, cfg, db, notifier)
	settinghandler.Handler.Init(app, cfg, db, notifier)

	return service
}
