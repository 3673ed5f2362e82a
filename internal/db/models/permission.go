package models

// Permission represents a specific permission in the authorization system.
// Permissions form a fixed reference set seeded at startup; this application
// never creates or deletes them through the mutation protocol. The unique
// Name doubles as the external reference key in several operations.
type Permission struct {
	// ID is the unique identifier for the permission.
	ID uint `gorm:"primaryKey" json:"id"`
	// Name is the unique, human-readable permission name (e.g., "Export Data").
	Name string `gorm:"unique;size:100;not null" json:"name"`
	// Description provides a human-readable explanation of what this permission grants.
	Description string `gorm:"size:255" json:"description"`
	// Category groups related permissions for display (e.g., "User Management").
	Category string `gorm:"size:100;not null" json:"category"`
}

// TableName specifies the database table name for the Permission model.
// This overrides GORM's default pluralized table naming.
func (Permission) TableName() string {
	return "permissions"
}
