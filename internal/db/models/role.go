package models

import "time"

// Role represents a role in the role-based access control (RBAC) system.
// Roles are named collections of permissions that users receive through
// UserRole links. A role that still has users attached must not be deleted.
type Role struct {
	// ID is the unique identifier for the role.
	ID uint `gorm:"primaryKey" json:"id"`
	// Name is the unique name of the role (e.g., "Admin", "Manager").
	Name string `gorm:"unique;size:100;not null" json:"name"`
	// Description provides a human-readable description of the role's purpose.
	Description string `gorm:"size:255;not null" json:"description"`
	// Color is the display color tag the dashboard renders the role with.
	Color string `gorm:"size:30" json:"color"`
	// IsActive indicates whether the role is currently enabled.
	IsActive bool `gorm:"default:true" json:"is_active"`
	// CreatedAt is the timestamp when the role was created (managed by GORM).
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is the timestamp when the role was last updated (managed by GORM).
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the database table name for the Role model.
// This overrides GORM's default pluralized table naming.
func (Role) TableName() string {
	return "roles"
}
