package permission

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/roleboard/roleboard/internal/apperr"
	"github.com/roleboard/roleboard/internal/db/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Permission{}))

	permissions := []models.Permission{
		{Name: "Manage Roles", Description: "Create and modify user roles", Category: "Role Management"},
		{Name: "Create Users", Description: "Add new users to the system", Category: "User Management"},
		{Name: "View Analytics", Description: "Access analytics and reports", Category: "Analytics"},
		{Name: "Edit Users", Description: "Modify existing user information", Category: "User Management"},
	}
	require.NoError(t, db.Create(&permissions).Error)

	return db
}

func TestList(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)

	permissions, err := List(db)
	require.NoError(t, err)
	require.Len(t, permissions, 4)

	// Grouped by category, insertion order within a category.
	assert.Equal(t, "View Analytics", permissions[0].Name)
	assert.Equal(t, "Manage Roles", permissions[1].Name)
	assert.Equal(t, "Create Users", permissions[2].Name)
	assert.Equal(t, "Edit Users", permissions[3].Name)
}

func TestByName(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)

	perm, err := ByName(db, "Create Users")
	require.NoError(t, err)
	assert.Equal(t, "User Management", perm.Category)

	_, err = ByName(db, "No Such Permission")
	require.ErrorIs(t, err, ErrPermissionNotFound)
	require.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = ByName(db, "")
	require.ErrorIs(t, err, ErrNameEmpty)
}

func TestIDsByName(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)

	// Resolution preserves the requested order, not the store order.
	ids, err := IDsByName(db, []string{"View Analytics", "Create Users"})
	require.NoError(t, err)
	require.Len(t, ids, 2)

	first, err := ByName(db, "View Analytics")
	require.NoError(t, err)
	second, err := ByName(db, "Create Users")
	require.NoError(t, err)
	assert.Equal(t, []uint{first.ID, second.ID}, ids)

	// One miss fails the whole lookup.
	_, err = IDsByName(db, []string{"Create Users", "No Such Permission"})
	require.ErrorIs(t, err, ErrPermissionNotFound)

	ids, err = IDsByName(db, nil)
	require.NoError(t, err)
	assert.Nil(t, ids)
}

func TestNilDB(t *testing.T) {
	t.Parallel()

	_, err := List(nil)
	require.ErrorIs(t, err, ErrDBNil)

	_, err = ByName(nil, "Create Users")
	require.ErrorIs(t, err, ErrDBNil)

	_, err = IDsByName(nil, []string{"Create Users"})
	require.ErrorIs(t, err, ErrDBNil)
}
