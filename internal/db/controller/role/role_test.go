package role

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/roleboard/roleboard/internal/apperr"
	"github.com/roleboard/roleboard/internal/db/controller/permission"
	"github.com/roleboard/roleboard/internal/db/controller/user"
	"github.com/roleboard/roleboard/internal/db/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Permission{},
		&models.UserRole{},
		&models.RolePermission{},
	))

	permissions := []models.Permission{
		{Name: "Create Users", Description: "Add new users to the system", Category: "User Management"},
		{Name: "Edit Users", Description: "Modify existing user information", Category: "User Management"},
		{Name: "View Users", Description: "View user information and profiles", Category: "User Management"},
		{Name: "Manage Roles", Description: "Create and modify user roles", Category: "Role Management"},
		{Name: "View Analytics", Description: "Access analytics and reports", Category: "Analytics"},
		{Name: "Export Data", Description: "Export system data", Category: "Data Management"},
	}
	require.NoError(t, db.Create(&permissions).Error)

	return db
}

func permissionNames(t *testing.T, db *gorm.DB, roleID uint) []string {
	t.Helper()

	names := make([]string, 0)
	require.NoError(t, db.Table("role_permissions").
		Joins("JOIN permissions ON permissions.id = role_permissions.permission_id").
		Where("role_permissions.role_id = ?", roleID).
		Order("role_permissions.id ASC").
		Pluck("permissions.name", &names).Error)

	return names
}

func TestCreate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		roleName        string
		description     string
		color           string
		permissions     []string
		wantErr         error
		wantPermissions []string
	}{
		{
			name:            "role with permissions",
			roleName:        "Support",
			description:     "Customer support access",
			color:           "green",
			permissions:     []string{"View Users", "Edit Users"},
			wantPermissions: []string{"View Users", "Edit Users"},
		},
		{
			name:            "role without permissions",
			roleName:        "Viewer",
			description:     "Read only access",
			color:           "gray",
			wantPermissions: []string{},
		},
		{
			name:        "empty name",
			description: "desc",
			wantErr:     ErrNameEmpty,
		},
		{
			name:     "empty description",
			roleName: "Support",
			wantErr:  ErrDescriptionEmpty,
		},
		{
			name:        "unknown permission name",
			roleName:    "Support",
			description: "Customer support access",
			permissions: []string{"View Users", "No Such Permission"},
			wantErr:     permission.ErrPermissionNotFound,
		},
		{
			name:        "duplicate permission name",
			roleName:    "Support",
			description: "Customer support access",
			permissions: []string{"View Users", "View Users"},
			wantErr:     ErrDuplicatePermission,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db := setupTestDB(t)

			created, err := Create(db, tt.roleName, tt.description, tt.color, tt.permissions)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				// Nothing may survive a failed create, not even the role row.
				var count int64
				require.NoError(t, db.Model(&models.Role{}).Count(&count).Error)
				assert.Zero(t, count)

				return
			}

			require.NoError(t, err)
			assert.NotZero(t, created.ID)
			assert.True(t, created.IsActive)
			assert.Equal(t, tt.wantPermissions, permissionNames(t, db, created.ID))
		})
	}
}

func TestCreateNilDB(t *testing.T) {
	t.Parallel()

	_, err := Create(nil, "Support", "desc", "green", nil)
	require.ErrorIs(t, err, ErrDBNil)
}

func TestUpdate(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)

	created, err := Create(db, "Support", "Customer support access", "green",
		[]string{"View Users"})
	require.NoError(t, err)

	updated, err := Update(db, created.ID, "Support", "Customer support and analytics", "teal",
		[]string{"View Users", "View Analytics"})
	require.NoError(t, err)
	assert.Equal(t, "Customer support and analytics", updated.Description)
	assert.Equal(t, "teal", updated.Color)
	assert.Equal(t, []string{"View Users", "View Analytics"}, permissionNames(t, db, created.ID))

	// Replacement is idempotent: the same list twice yields the same state.
	_, err = Update(db, created.ID, "Support", "Customer support and analytics", "teal",
		[]string{"View Users", "View Analytics"})
	require.NoError(t, err)
	assert.Equal(t, []string{"View Users", "View Analytics"}, permissionNames(t, db, created.ID))

	var linkCount int64
	require.NoError(t, db.Model(&models.RolePermission{}).
		Where("role_id = ?", created.ID).Count(&linkCount).Error)
	assert.EqualValues(t, 2, linkCount)
}

func TestUpdateNotFound(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)

	_, err := Update(db, 9999, "Ghost", "does not exist", "red", nil)
	require.ErrorIs(t, err, ErrRoleNotFound)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdateRollsBackOnUnknownPermission(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)

	created, err := Create(db, "Support", "Customer support access", "green",
		[]string{"View Users"})
	require.NoError(t, err)

	_, err = Update(db, created.ID, "Support", "changed description", "red",
		[]string{"No Such Permission"})
	require.ErrorIs(t, err, permission.ErrPermissionNotFound)

	// The whole mutation rolled back: scalars and links are untouched.
	var reread models.Role
	require.NoError(t, db.First(&reread, created.ID).Error)
	assert.Equal(t, "Customer support access", reread.Description)
	assert.Equal(t, "green", reread.Color)
	assert.Equal(t, []string{"View Users"}, permissionNames(t, db, created.ID))
}

func TestUpdateRejectsDuplicatePermissions(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)

	created, err := Create(db, "Support", "Customer support access", "green",
		[]string{"View Users"})
	require.NoError(t, err)

	// A malformed list is the caller's fault, not a store failure.
	_, err = Update(db, created.ID, "Support", "Customer support access", "green",
		[]string{"Edit Users", "Edit Users"})
	require.ErrorIs(t, err, ErrDuplicatePermission)
	require.ErrorIs(t, err, apperr.ErrValidation)

	// And the rejected mutation rolled back in full.
	assert.Equal(t, []string{"View Users"}, permissionNames(t, db, created.ID))
}

func TestDelete(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)

	created, err := Create(db, "Support", "Customer support access", "green",
		[]string{"View Users", "Edit Users"})
	require.NoError(t, err)

	require.NoError(t, Delete(db, created.ID))

	var roleCount, linkCount int64
	require.NoError(t, db.Model(&models.Role{}).Count(&roleCount).Error)
	require.NoError(t, db.Model(&models.RolePermission{}).Count(&linkCount).Error)
	assert.Zero(t, roleCount)
	assert.Zero(t, linkCount)
}

func TestDeleteNotFound(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)

	require.ErrorIs(t, Delete(db, 9999), ErrRoleNotFound)
}

func TestDeleteGuardedByUsers(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)

	created, err := Create(db, "Support", "Customer support access", "green",
		[]string{"View Users"})
	require.NoError(t, err)

	u := models.User{Name: "Dana", Email: "dana@example.com", Status: models.UserStatusActive}
	require.NoError(t, db.Create(&u).Error)
	require.NoError(t, db.Create(&models.UserRole{UserID: u.ID, RoleID: created.ID}).Error)

	err = Delete(db, created.ID)
	require.ErrorIs(t, err, ErrRoleHasUsers)
	require.ErrorIs(t, err, apperr.ErrConflict)
	assert.Contains(t, err.Error(), "1 active users")

	// The guard leaves everything in place.
	var roleCount, linkCount int64
	require.NoError(t, db.Model(&models.Role{}).Count(&roleCount).Error)
	require.NoError(t, db.Model(&models.RolePermission{}).Count(&linkCount).Error)
	assert.EqualValues(t, 1, roleCount)
	assert.EqualValues(t, 1, linkCount)

	// Reassigning the user away unblocks deletion.
	require.NoError(t, db.Where("user_id = ?", u.ID).Delete(&models.UserRole{}).Error)
	require.NoError(t, Delete(db, created.ID))
}

func TestTogglePermission(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)

	created, err := Create(db, "Admin", "Administrative access", "blue",
		[]string{"Create Users", "Edit Users"})
	require.NoError(t, err)

	// Absent becomes present.
	added, err := TogglePermission(db, created.ID, "Export Data")
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, []string{"Create Users", "Edit Users", "Export Data"}, permissionNames(t, db, created.ID))

	// Present becomes absent. Two toggles are an involution.
	added, err = TogglePermission(db, created.ID, "Export Data")
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, []string{"Create Users", "Edit Users"}, permissionNames(t, db, created.ID))
}

func TestTogglePermissionErrors(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)

	created, err := Create(db, "Admin", "Administrative access", "blue", nil)
	require.NoError(t, err)

	_, err = TogglePermission(db, 9999, "Export Data")
	require.ErrorIs(t, err, ErrRoleNotFound)

	_, err = TogglePermission(db, created.ID, "No Such Permission")
	require.ErrorIs(t, err, apperr.ErrNotFound)

	// A failed toggle changes nothing.
	assert.Equal(t, []string{}, permissionNames(t, db, created.ID))
}

func TestRoleLifecycleWithAssignedUser(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)

	support, err := Create(db, "Support", "Customer support access", "green",
		[]string{"View Users"})
	require.NoError(t, err)

	dana, err := user.Create(db, user.Input{Name: "Dana", Email: "dana@example.com"}, support.ID)
	require.NoError(t, err)

	members, err := UsersByRole(db, support.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "Dana", members[0].Name)

	require.ErrorIs(t, Delete(db, support.ID), ErrRoleHasUsers)

	// Deleting the user releases the guard.
	require.NoError(t, user.Delete(db, dana.ID))
	require.NoError(t, Delete(db, support.ID))
}

func TestList(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)

	first, err := Create(db, "Admin", "Administrative access", "blue",
		[]string{"Create Users", "Edit Users"})
	require.NoError(t, err)

	second, err := Create(db, "Manager", "Management level access", "purple",
		[]string{"View Users"})
	require.NoError(t, err)

	u := models.User{Name: "Dana", Email: "dana@example.com", Status: models.UserStatusActive}
	require.NoError(t, db.Create(&u).Error)
	require.NoError(t, db.Create(&models.UserRole{UserID: u.ID, RoleID: first.ID}).Error)

	views, err := List(db)
	require.NoError(t, err)
	require.Len(t, views, 2)

	// Most recently created first.
	assert.Equal(t, second.ID, views[0].ID)
	assert.Equal(t, first.ID, views[1].ID)

	assert.Equal(t, []string{"View Users"}, views[0].Permissions)
	assert.Zero(t, views[0].UserCount)

	assert.Equal(t, []string{"Create Users", "Edit Users"}, views[1].Permissions)
	assert.EqualValues(t, 1, views[1].UserCount)
}

func TestUsersByRole(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)

	created, err := Create(db, "Support", "Customer support access", "green", nil)
	require.NoError(t, err)

	alice := models.User{Name: "Alice Johnson", Email: "alice@example.com", Status: models.UserStatusActive}
	bob := models.User{Name: "Bob Smith", Email: "bob@example.com", Status: models.UserStatusInactive}
	require.NoError(t, db.Create(&alice).Error)
	require.NoError(t, db.Create(&bob).Error)
	require.NoError(t, db.Create(&models.UserRole{UserID: alice.ID, RoleID: created.ID}).Error)
	require.NoError(t, db.Create(&models.UserRole{UserID: bob.ID, RoleID: created.ID}).Error)

	members, err := UsersByRole(db, created.ID)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "Alice Johnson", members[0].Name)
	assert.Equal(t, models.UserStatusActive, members[0].Status)
	assert.Equal(t, "Bob Smith", members[1].Name)
	assert.Equal(t, models.UserStatusInactive, members[1].Status)

	_, err = UsersByRole(db, 9999)
	require.ErrorIs(t, err, ErrRoleNotFound)
}
