// Package daemon wires the store, identity provisioning and web service
// together and runs them.
package daemon

import (
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/roleboard/roleboard/internal/config"
	"github.com/roleboard/roleboard/internal/db/dsn"
	"github.com/roleboard/roleboard/internal/db/models"
	"github.com/roleboard/roleboard/internal/identity"
	"github.com/roleboard/roleboard/internal/notify"
	"github.com/roleboard/roleboard/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	webService *web.Service
	cfg        *config.Config
}

// Start starts the Daemon's web service and blocks until it stops.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start(d.cfg.Webserver.Addr())
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	db := OpenDB(cfg)

	if err := Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
		return nil
	}

	if err := SeedPermissions(db); err != nil {
		log.Fatal().Err(err).Msg("failed to seed permission reference set")
		return nil
	}

	installationID, err := identity.NewProvisioner(db).InstallationID()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to provision installation identity")
		return nil
	}

	log.Info().Str("installation_id", installationID).Msg("installation identity provisioned")

	return &Daemon{
		cfg:        cfg,
		webService: web.New(cfg, db, notify.Zerolog()),
	}
}

// OpenDB opens the configured database engine.
func OpenDB(cfg *config.Config) *gorm.DB {
	var dialector gorm.Dialector

	switch cfg.DB.GormEngine {
	case config.EnginePostgres:
		dialector = gormpostgres.Open(dsn.Create(cfg))
	case config.EngineSQLite:
		dialector = sqlite.Open(dsn.Create(cfg))
	default:
		dialector = gormmysql.Open(dsn.Create(cfg))
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Str("engine", cfg.DB.GormEngine).Msg("failed to connect database")
		return nil
	}

	return db
}

// Migrate creates or updates the schema for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate( //nolint:wrapcheck
		&models.User{},
		&models.Role{},
		&models.Permission{},
		&models.UserRole{},
		&models.RolePermission{},
		&models.Setting{},
	)
}
