// Package setting provides the named application-setting store backing the
// settings page and identity provisioning.
package setting

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/pkg/errors"

	"github.com/roleboard/roleboard/internal/apperr"
	"github.com/roleboard/roleboard/internal/db/models"
)

const nameQueryPattern = "name = ?"

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")

	// ErrNameEmpty is returned when a setting operation is attempted with an empty name.
	ErrNameEmpty = fmt.Errorf("%w: setting name cannot be empty", apperr.ErrValidation)

	// ErrSettingNotFound is returned when a setting name does not resolve.
	ErrSettingNotFound = fmt.Errorf("setting %w", apperr.ErrNotFound)
)

// Get retrieves a setting by its name.
func Get(db *gorm.DB, name string) (*models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if name == "" {
		return nil, ErrNameEmpty
	}

	var setting models.Setting
	result := db.Where(nameQueryPattern, name).First(&setting)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.Wrapf(ErrSettingNotFound, "setting %q", name)
		}

		return nil, apperr.Store(result.Error)
	}

	return &setting, nil
}

// GetAll retrieves all settings, ordered by name.
func GetAll(db *gorm.DB) ([]models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var settings []models.Setting
	if err := db.Order("name ASC").Find(&settings).Error; err != nil {
		return nil, apperr.Store(err)
	}

	return settings, nil
}

// Set creates or updates a setting by name (upsert operation). The lookup
// and the write share one transaction, so two concurrent Sets on a new name
// serialize instead of racing into the unique-name index.
func Set(db *gorm.DB, name, value string) (*models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if name == "" {
		return nil, ErrNameEmpty
	}

	var setting models.Setting

	err := db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where(nameQueryPattern, name).First(&setting)

		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			setting = models.Setting{Name: name, Value: value}
			if err := tx.Create(&setting).Error; err != nil {
				return apperr.Store(err)
			}

			return nil
		}

		if result.Error != nil {
			return apperr.Store(result.Error)
		}

		setting.Value = value
		if err := tx.Save(&setting).Error; err != nil {
			return apperr.Store(err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &setting, nil
}

// Delete removes a setting by name.
func Delete(db *gorm.DB, name string) error {
	if db == nil {
		return ErrDBNil
	}
	if name == "" {
		return ErrNameEmpty
	}

	result := db.Where(nameQueryPattern, name).Delete(&models.Setting{})
	if result.Error != nil {
		return apperr.Store(result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.Wrapf(ErrSettingNotFound, "setting %q", name)
	}

	return nil
}
