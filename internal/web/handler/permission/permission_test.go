package permission

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/roleboard/roleboard/internal/config"
	"github.com/roleboard/roleboard/internal/db/models"
	"github.com/roleboard/roleboard/internal/fallback"
	"github.com/roleboard/roleboard/internal/notify"
)

func setupTestApp(t *testing.T, migrate, fallbackEnabled bool) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	if migrate {
		require.NoError(t, db.AutoMigrate(&models.Permission{}))

		permissions := []models.Permission{
			{Name: "View Analytics", Description: "Access analytics and reports", Category: "Analytics"},
			{Name: "Create Users", Description: "Add new users to the system", Category: "User Management"},
		}
		require.NoError(t, db.Create(&permissions).Error)
	}

	app := fiber.New()
	cfg := &config.Config{Fallback: config.Fallback{Enabled: fallbackEnabled}}

	s := Service{}
	s.Init(app, cfg, db, notify.Discard)

	return app
}

func get(t *testing.T, app *fiber.App) *http.Response {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, Path, nil))
	require.NoError(t, err)

	return resp
}

func decode(t *testing.T, resp *http.Response) []models.Permission {
	t.Helper()

	defer resp.Body.Close()

	var out []models.Permission
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	return out
}

func TestList(t *testing.T) {
	t.Parallel()

	app := setupTestApp(t, true, false)

	resp := get(t, app)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	permissions := decode(t, resp)
	require.Len(t, permissions, 2)
	assert.Equal(t, "View Analytics", permissions[0].Name)
	assert.Equal(t, "Create Users", permissions[1].Name)
}

func TestListFallbackEnabled(t *testing.T) {
	t.Parallel()

	// Unmigrated store: the projection fails with a store-class error and
	// the fixed dataset is served instead.
	app := setupTestApp(t, false, true)

	resp := get(t, app)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, fallback.Permissions(), decode(t, resp))
}

func TestListFallbackDisabled(t *testing.T) {
	t.Parallel()

	app := setupTestApp(t, false, false)

	resp := get(t, app)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
}
