package models

import "time"

// UserRole represents the many-to-many relationship between users and roles.
// A user may hold multiple roles and a role may be held by multiple users,
// though the dashboard assigns one role per user (reassignment replaces all
// existing links). Deleting a user or a role removes its links first.
type UserRole struct {
	// ID is the surrogate key; its ascending order is the link insertion order.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// UserID is the ID of the user in this assignment.
	UserID uint64 `gorm:"column:user_id;not null;uniqueIndex:idx_user_role" json:"user_id"`
	// RoleID is the ID of the role in this assignment.
	RoleID uint `gorm:"column:role_id;not null;uniqueIndex:idx_user_role" json:"role_id"`
	// User is the associated user (loaded via foreign key).
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	// Role is the associated role (loaded via foreign key).
	Role Role `gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE" json:"-"`
	// CreatedAt is the timestamp when the role was assigned (managed by GORM).
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the database table name for the UserRole model.
// This overrides GORM's default pluralized table naming.
func (UserRole) TableName() string {
	return "user_roles"
}
