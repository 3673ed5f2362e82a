// Package permission provides read access to the fixed permission reference
// set. Permissions are seeded at startup and never mutated by the protocol;
// other controllers resolve human-readable permission names to identifiers
// through this package.
package permission

import (
	"gorm.io/gorm"

	"github.com/pkg/errors"

	"github.com/roleboard/roleboard/internal/apperr"
	"github.com/roleboard/roleboard/internal/db/models"
)

// List retrieves the full permission reference set, ordered by category.
func List(db *gorm.DB) ([]models.Permission, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var permissions []models.Permission
	if err := db.Order("category ASC, id ASC").Find(&permissions).Error; err != nil {
		return nil, apperr.Store(err)
	}

	return permissions, nil
}

// ByName resolves a single permission by its unique name.
func ByName(db *gorm.DB, name string) (*models.Permission, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if name == "" {
		return nil, ErrNameEmpty
	}

	var perm models.Permission
	result := db.Where("name = ?", name).First(&perm)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.Wrapf(ErrPermissionNotFound, "permission %q", name)
		}

		return nil, apperr.Store(result.Error)
	}

	return &perm, nil
}

// IDsByName resolves a list of permission names to their identifiers,
// preserving the requested order. Every name must resolve; a single miss
// fails the whole lookup so multi-step mutations can roll back cleanly.
func IDsByName(db *gorm.DB, names []string) ([]uint, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if len(names) == 0 {
		return nil, nil
	}

	var permissions []models.Permission
	if err := db.Where("name IN ?", names).Find(&permissions).Error; err != nil {
		return nil, apperr.Store(err)
	}

	byName := make(map[string]uint, len(permissions))
	for _, p := range permissions {
		byName[p.Name] = p.ID
	}

	ids := make([]uint, 0, len(names))

	for _, name := range names {
		id, ok := byName[name]
		if !ok {
			return nil, errors.Wrapf(ErrPermissionNotFound, "permission %q", name)
		}

		ids = append(ids, id)
	}

	return ids, nil
}
