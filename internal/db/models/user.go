package models

import "time"

// UserStatus represents the activation state of a user account.
// Inactive users stay in the system but are flagged as disabled in every
// projection; the dashboard toggles between the two states.
type UserStatus string

const (
	// UserStatusActive indicates the user account is active.
	UserStatusActive UserStatus = "Active"
	// UserStatusInactive indicates the user account has been deactivated.
	UserStatusInactive UserStatus = "Inactive"
)

// Toggled returns the complementary status.
func (s UserStatus) Toggled() UserStatus {
	if s == UserStatusActive {
		return UserStatusInactive
	}

	return UserStatusActive
}

// User represents a managed account in the dashboard.
// Users hold zero or more roles through the UserRole junction table;
// deleting a user must first tear down those links (cascade).
type User struct {
	// ID is the unique identifier for the user.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// Name is the user's display name.
	Name string `gorm:"size:100;not null" json:"name"`
	// Email is the user's contact address.
	Email string `gorm:"size:255;not null" json:"email"`
	// Phone is the user's phone number, free-form.
	Phone string `gorm:"size:50" json:"phone"`
	// Status indicates whether the account is Active or Inactive.
	Status UserStatus `gorm:"type:varchar(20);not null;default:'Active'" json:"status"`
	// AvatarURL points to the user's avatar image. A default is assigned
	// at creation time when the caller supplies none.
	AvatarURL string `gorm:"size:512;column:avatar_url" json:"avatar_url"`
	// CreatedAt is the timestamp when the user was created (managed by GORM).
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is the timestamp when the user was last updated (managed by GORM).
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the database table name for the User model.
// This overrides GORM's default pluralized table naming.
func (User) TableName() string {
	return "users"
}
