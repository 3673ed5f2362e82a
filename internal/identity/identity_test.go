package identity

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/roleboard/roleboard/internal/db/controller/setting"
	"github.com/roleboard/roleboard/internal/db/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Setting{}))

	return db
}

func TestInstallationID(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	p := NewProvisioner(db)

	id, err := p.InstallationID()
	require.NoError(t, err)
	assert.Len(t, id, idLen)

	// A second call returns the persisted identifier, not a fresh one.
	again, err := p.InstallationID()
	require.NoError(t, err)
	assert.Equal(t, id, again)

	stored, err := setting.Get(db, SettingName)
	require.NoError(t, err)
	assert.Equal(t, id, stored.Value)
}

func TestInstallationIDExisting(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)

	_, err := setting.Set(db, SettingName, "preprovisioned")
	require.NoError(t, err)

	id, err := NewProvisioner(db).InstallationID()
	require.NoError(t, err)
	assert.Equal(t, "preprovisioned", id)
}
