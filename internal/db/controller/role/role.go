// Package role implements the role side of the mutation protocol: role
// creation, scalar updates with full permission replacement, guarded
// deletion, and the single-permission toggle. Every multi-step mutation runs
// inside one store transaction, so a failure mid-sequence rolls the graph
// back instead of leaving it partially updated.
package role

import (
	"gorm.io/gorm"

	"github.com/pkg/errors"

	"github.com/roleboard/roleboard/internal/apperr"
	"github.com/roleboard/roleboard/internal/db/controller/permission"
	"github.com/roleboard/roleboard/internal/db/models"
)

const roleIDQueryPattern = "role_id = ?"

// Create creates a role and links it to the named permissions. The role is
// created active with no users attached. Fails with a validation error when
// name or description is empty, and with a not-found error when any
// permission name does not resolve; in that case no row is written at all.
func Create(db *gorm.DB, name, description, color string, permissionNames []string) (*models.Role, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if name == "" {
		return nil, ErrNameEmpty
	}
	if description == "" {
		return nil, ErrDescriptionEmpty
	}

	role := &models.Role{
		Name:        name,
		Description: description,
		Color:       color,
		IsActive:    true,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(role).Error; err != nil {
			return apperr.Store(err)
		}

		return linkPermissions(tx, role.ID, permissionNames)
	})
	if err != nil {
		return nil, err
	}

	return role, nil
}

// Update updates a role's scalar fields and fully replaces its permission
// set: all existing links are deleted, then one link per named permission is
// inserted. Calling Update twice with the same list yields the same end
// state. Fails with a not-found error when roleID does not exist.
func Update(db *gorm.DB, roleID uint, name, description, color string, permissionNames []string) (*models.Role, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if name == "" {
		return nil, ErrNameEmpty
	}
	if description == "" {
		return nil, ErrDescriptionEmpty
	}

	var role models.Role

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&role, roleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.Wrapf(ErrRoleNotFound, "role %d", roleID)
			}

			return apperr.Store(err)
		}

		role.Name = name
		role.Description = description
		role.Color = color

		if err := tx.Save(&role).Error; err != nil {
			return apperr.Store(err)
		}

		if err := tx.Where(roleIDQueryPattern, roleID).
			Delete(&models.RolePermission{}).Error; err != nil {
			return apperr.Store(err)
		}

		return linkPermissions(tx, roleID, permissionNames)
	})
	if err != nil {
		return nil, err
	}

	return &role, nil
}

// Delete removes a role and its permission links. Deletion is guarded: a
// role that still has user assignments is rejected with a conflict error
// naming the live user count, and nothing is mutated. Fails with a not-found
// error when roleID does not exist.
func Delete(db *gorm.DB, roleID uint) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var role models.Role
		if err := tx.First(&role, roleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.Wrapf(ErrRoleNotFound, "role %d", roleID)
			}

			return apperr.Store(err)
		}

		var userCount int64
		if err := tx.Model(&models.UserRole{}).
			Where(roleIDQueryPattern, roleID).
			Count(&userCount).Error; err != nil {
			return apperr.Store(err)
		}

		if userCount > 0 {
			return errors.Wrapf(ErrRoleHasUsers, "cannot delete role %q: %d active users", role.Name, userCount)
		}

		if err := tx.Where(roleIDQueryPattern, roleID).
			Delete(&models.RolePermission{}).Error; err != nil {
			return apperr.Store(err)
		}

		if err := tx.Delete(&models.Role{}, roleID).Error; err != nil {
			return apperr.Store(err)
		}

		return nil
	})
}

// TogglePermission flips the link between a role and the named permission:
// present becomes absent, absent becomes present. Exactly one toggle per
// call, never both, never a duplicate insert. Returns true when the
// permission was added and false when it was removed.
func TogglePermission(db *gorm.DB, roleID uint, permissionName string) (bool, error) {
	if db == nil {
		return false, ErrDBNil
	}

	var added bool

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Role{}, roleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.Wrapf(ErrRoleNotFound, "role %d", roleID)
			}

			return apperr.Store(err)
		}

		perm, err := permission.ByName(tx, permissionName)
		if err != nil {
			return err
		}

		var link models.RolePermission
		result := tx.Where("role_id = ? AND permission_id = ?", roleID, perm.ID).First(&link)

		switch {
		case result.Error == nil:
			if err := tx.Delete(&models.RolePermission{}, link.ID).Error; err != nil {
				return apperr.Store(err)
			}

			added = false
		case errors.Is(result.Error, gorm.ErrRecordNotFound):
			if err := tx.Create(&models.RolePermission{RoleID: roleID, PermissionID: perm.ID}).Error; err != nil {
				return apperr.Store(err)
			}

			added = true
		default:
			return apperr.Store(result.Error)
		}

		return nil
	})
	if err != nil {
		return false, err
	}

	return added, nil
}

// linkPermissions resolves names and inserts one link per permission,
// preserving the caller's order so projections read the links back in
// insertion order. A list naming the same permission twice is rejected as a
// validation error before it can trip the unique link index.
func linkPermissions(tx *gorm.DB, roleID uint, permissionNames []string) error {
	seen := make(map[string]struct{}, len(permissionNames))
	for _, name := range permissionNames {
		if _, ok := seen[name]; ok {
			return errors.Wrapf(ErrDuplicatePermission, "permission %q listed twice", name)
		}

		seen[name] = struct{}{}
	}

	ids, err := permission.IDsByName(tx, permissionNames)
	if err != nil {
		return err
	}

	for _, permissionID := range ids {
		link := models.RolePermission{RoleID: roleID, PermissionID: permissionID}
		if err := tx.Create(&link).Error; err != nil {
			return apperr.Store(err)
		}
	}

	return nil
}
