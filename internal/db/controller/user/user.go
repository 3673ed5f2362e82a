// Package user implements the user side of the mutation protocol: account
// creation with optional role assignment, scalar updates with single-role
// replacement, cascading deletion, and the atomic status toggle. Multi-step
// mutations run inside one store transaction.
package user

import (
	"gorm.io/gorm"

	"github.com/pkg/errors"

	"github.com/roleboard/roleboard/internal/apperr"
	"github.com/roleboard/roleboard/internal/db/models"
)

const (
	userIDQueryPattern = "user_id = ?"

	// defaultAvatarURL is assigned when a caller creates a user without an avatar.
	defaultAvatarURL = "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=50&h=50&fit=crop&crop=face"
)

// Input carries the scalar user fields for create and update operations.
// Status defaults to Active and AvatarURL to a stock image when left empty
// on create.
type Input struct {
	Name      string
	Email     string
	Phone     string
	Status    models.UserStatus
	AvatarURL string
}

// Create creates a user and, when roleID is non-zero, assigns that single
// role. Fails with a validation error on missing name or email, and with a
// not-found error when roleID does not resolve; the user row is rolled back
// in that case.
func Create(db *gorm.DB, in Input, roleID uint) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if in.Name == "" {
		return nil, ErrNameEmpty
	}
	if in.Email == "" {
		return nil, ErrEmailEmpty
	}

	if in.Status == "" {
		in.Status = models.UserStatusActive
	}

	if in.AvatarURL == "" {
		in.AvatarURL = defaultAvatarURL
	}

	user := &models.User{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Status:    in.Status,
		AvatarURL: in.AvatarURL,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return apperr.Store(err)
		}

		if roleID == 0 {
			return nil
		}

		return assignRole(tx, user.ID, roleID)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Update updates a user's scalar fields. When roleID is non-zero it also
// replaces all existing role links with a single link to roleID, giving
// single-role-at-a-time semantics even though the schema permits multiple.
// A zero roleID leaves the links untouched.
func Update(db *gorm.DB, userID uint64, in Input, roleID uint) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if in.Name == "" {
		return nil, ErrNameEmpty
	}
	if in.Email == "" {
		return nil, ErrEmailEmpty
	}

	var user models.User

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.Wrapf(ErrUserNotFound, "user %d", userID)
			}

			return apperr.Store(err)
		}

		user.Name = in.Name
		user.Email = in.Email
		user.Phone = in.Phone

		if in.Status != "" {
			user.Status = in.Status
		}

		if in.AvatarURL != "" {
			user.AvatarURL = in.AvatarURL
		}

		if err := tx.Save(&user).Error; err != nil {
			return apperr.Store(err)
		}

		if roleID == 0 {
			return nil
		}

		if err := tx.Where(userIDQueryPattern, userID).
			Delete(&models.UserRole{}).Error; err != nil {
			return apperr.Store(err)
		}

		return assignRole(tx, userID, roleID)
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// Delete removes a user: first all of its role links, then the user row
// itself, in one transaction. Fails with a not-found error when userID does
// not exist.
func Delete(db *gorm.DB, userID uint64) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.User{}, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.Wrapf(ErrUserNotFound, "user %d", userID)
			}

			return apperr.Store(err)
		}

		if err := tx.Where(userIDQueryPattern, userID).
			Delete(&models.UserRole{}).Error; err != nil {
			return apperr.Store(err)
		}

		if err := tx.Delete(&models.User{}, userID).Error; err != nil {
			return apperr.Store(err)
		}

		return nil
	})
}

// ToggleStatus flips a user between Active and Inactive with a single
// conditional update issued to the store, so two concurrent toggles cannot
// both apply the same stale flip. Returns the user after the toggle. Fails
// with a not-found error when userID does not exist.
func ToggleStatus(db *gorm.DB, userID uint64) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	result := db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("status", gorm.Expr(
			"CASE WHEN status = ? THEN ? ELSE ? END",
			models.UserStatusActive, models.UserStatusInactive, models.UserStatusActive,
		))
	if result.Error != nil {
		return nil, apperr.Store(result.Error)
	}

	if result.RowsAffected == 0 {
		return nil, errors.Wrapf(ErrUserNotFound, "user %d", userID)
	}

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return nil, apperr.Store(err)
	}

	return &user, nil
}

// assignRole inserts a single user-role link, verifying the role exists.
func assignRole(tx *gorm.DB, userID uint64, roleID uint) error {
	if err := tx.First(&models.Role{}, roleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.Wrapf(ErrRoleNotFound, "role %d", roleID)
		}

		return apperr.Store(err)
	}

	link := models.UserRole{UserID: userID, RoleID: roleID}
	if err := tx.Create(&link).Error; err != nil {
		return apperr.Store(err)
	}

	return nil
}
