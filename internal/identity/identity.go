// Package identity provisions the stable installation identifier.
// The identifier lives in the settings store, never in ambient local state;
// the Provisioner is created once at daemon startup and injected into
// whatever needs it.
package identity

import (
	"gorm.io/gorm"

	"github.com/pkg/errors"

	"github.com/roleboard/roleboard/internal/db/controller/setting"
	"github.com/roleboard/roleboard/internal/uniuri"
)

// SettingName is the reserved settings key holding the installation identifier.
const SettingName = "installation_id"

// idLen gives ~190 bits of entropy, enough to treat the ID as globally unique.
const idLen = 32

// Provisioner reads or creates the installation identifier.
type Provisioner struct {
	db *gorm.DB
}

// NewProvisioner creates a Provisioner backed by the given store.
func NewProvisioner(db *gorm.DB) *Provisioner {
	return &Provisioner{db: db}
}

// InstallationID returns the installation identifier, generating and
// persisting a fresh one on first call.
func (p *Provisioner) InstallationID() (string, error) {
	s, err := setting.Get(p.db, SettingName)
	if err == nil {
		return s.Value, nil
	}

	if !errors.Is(err, setting.ErrSettingNotFound) {
		return "", err
	}

	s, err = setting.Set(p.db, SettingName, uniuri.NewLen(idLen))
	if err != nil {
		return "", errors.Wrap(err, "failed to provision installation id")
	}

	return s.Value, nil
}
