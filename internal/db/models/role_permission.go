package models

// RolePermission represents the many-to-many relationship between roles and
// permissions. The surrogate ID preserves insertion order: role projections
// list permission names in the order their links were created, not
// alphabetically. The (role_id, permission_id) pair is unique, so a toggle
// can never produce a duplicate link.
type RolePermission struct {
	// ID is the surrogate key; its ascending order is the link insertion order.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// RoleID is the ID of the role in this mapping.
	RoleID uint `gorm:"column:role_id;not null;uniqueIndex:idx_role_permission" json:"role_id"`
	// PermissionID is the ID of the permission in this mapping.
	PermissionID uint `gorm:"column:permission_id;not null;uniqueIndex:idx_role_permission" json:"permission_id"`
	// Role is the associated role (loaded via foreign key).
	Role Role `gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE" json:"-"`
	// Permission is the associated permission (loaded via foreign key).
	Permission Permission `gorm:"foreignKey:PermissionID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the database table name for the RolePermission model.
// This overrides GORM's default pluralized table naming.
func (RolePermission) TableName() string {
	return "role_permissions"
}
