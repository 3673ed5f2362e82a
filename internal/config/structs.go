package config

import (
	"fmt"

	"github.com/roleboard/roleboard/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	Title     string
	DB        DB
	Log       logger.Log
	Webserver Webserver
	Fallback  Fallback
}

// Webserver implements webserver settings.
type Webserver struct {
	Domain         string // domain name for the webserver
	Port           int    // listening port for the webserver
	ShutDownTime   int    // wait time for shutdown in seconds
	URL            string // base url for the webserver
	DisableRecover bool   // disable recover middleware
}

// Addr returns the listen address for the webserver.
func (w Webserver) Addr() string {
	return fmt.Sprintf(":%d", w.Port)
}

// Fallback controls the degraded-mode read policy: when enabled, list
// endpoints serve a fixed dataset instead of failing while the store is
// unreachable. Mutations are never affected.
type Fallback struct {
	Enabled bool
}
