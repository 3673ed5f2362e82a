// Package fallback holds the fixed degraded-mode dataset. When a projection
// fails with a store error and the fallback policy is enabled, the web layer
// serves these views instead of propagating the failure, keeping the
// dashboard usable while the store is unreachable. Mutations never fall
// back.
package fallback

import (
	"github.com/roleboard/roleboard/internal/db/controller/role"
	"github.com/roleboard/roleboard/internal/db/controller/user"
	"github.com/roleboard/roleboard/internal/db/models"
)

// Roles returns the degraded-mode role views.
func Roles() []role.View {
	return []role.View{
		{
			ID:          1,
			Name:        "Super Admin",
			Description: "Full system access with all permissions",
			Color:       "red",
			IsActive:    true,
			UserCount:   2,
			Permissions: []string{"Create Users", "Delete Users", "Manage Roles", "System Settings", "View Analytics", "Export Data"},
		},
		{
			ID:          2,
			Name:        "Admin",
			Description: "Administrative access with most permissions",
			Color:       "blue",
			IsActive:    true,
			UserCount:   5,
			Permissions: []string{"Create Users", "Edit Users", "View Analytics", "Manage Content", "Export Data"},
		},
		{
			ID:          3,
			Name:        "Manager",
			Description: "Management level access for team oversight",
			Color:       "purple",
			IsActive:    true,
			UserCount:   12,
			Permissions: []string{"View Users", "Edit Users", "View Analytics", "Manage Content"},
		},
	}
}

// Users returns the degraded-mode user views.
func Users() []user.View {
	return []user.View{
		{
			ID:        1,
			Name:      "Alice Johnson",
			Email:     "alice@example.com",
			Phone:     "+1 (555) 123-4567",
			Status:    models.UserStatusActive,
			AvatarURL: "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=50&h=50&fit=crop&crop=face",
			Roles:     []user.RoleRef{{ID: 2, Name: "Admin", Color: "blue"}},
		},
		{
			ID:        2,
			Name:      "Bob Smith",
			Email:     "bob@example.com",
			Phone:     "+1 (555) 234-5678",
			Status:    models.UserStatusActive,
			AvatarURL: "https://images.unsplash.com/photo-1599566150163-29194dcaad36?w=50&h=50&fit=crop&crop=face",
			Roles:     []user.RoleRef{{ID: 3, Name: "Manager", Color: "purple"}},
		},
	}
}

// Permissions returns the degraded-mode permission reference set.
func Permissions() []models.Permission {
	return []models.Permission{
		{ID: 6, Name: "System Settings", Description: "Access system configuration", Category: "Administration"},
		{ID: 7, Name: "View Analytics", Description: "Access analytics and reports", Category: "Analytics"},
		{ID: 8, Name: "Export Data", Description: "Export system data", Category: "Data Management"},
		{ID: 5, Name: "Manage Roles", Description: "Create and modify user roles", Category: "Role Management"},
		{ID: 1, Name: "Create Users", Description: "Add new users to the system", Category: "User Management"},
		{ID: 2, Name: "Edit Users", Description: "Modify existing user information", Category: "User Management"},
		{ID: 3, Name: "Delete Users", Description: "Remove users from the system", Category: "User Management"},
		{ID: 4, Name: "View Users", Description: "View user information and profiles", Category: "User Management"},
	}
}
