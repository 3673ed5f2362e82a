package daemon

import (
	"gorm.io/gorm"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/roleboard/roleboard/internal/db/controller/role"
	"github.com/roleboard/roleboard/internal/db/controller/user"
	"github.com/roleboard/roleboard/internal/db/models"
)

// referencePermissions is the fixed permission reference set. It is seeded
// once and never mutated by the protocol; roles reference these rows by name.
var referencePermissions = []models.Permission{ //nolint:gochecknoglobals
	{Name: "Create Users", Description: "Add new users to the system", Category: "User Management"},
	{Name: "Edit Users", Description: "Modify existing user information", Category: "User Management"},
	{Name: "Delete Users", Description: "Remove users from the system", Category: "User Management"},
	{Name: "View Users", Description: "View user information and profiles", Category: "User Management"},
	{Name: "Manage Roles", Description: "Create and modify user roles", Category: "Role Management"},
	{Name: "System Settings", Description: "Access system configuration", Category: "Administration"},
	{Name: "View Analytics", Description: "Access analytics and reports", Category: "Analytics"},
	{Name: "Export Data", Description: "Export system data", Category: "Data Management"},
}

// SeedPermissions inserts any reference permission that is not present yet.
// Safe to run on every start.
func SeedPermissions(db *gorm.DB) error {
	for _, perm := range referencePermissions {
		p := perm
		if err := db.Where("name = ?", p.Name).FirstOrCreate(&p).Error; err != nil {
			return errors.Wrapf(err, "failed to seed permission %q", perm.Name)
		}
	}

	return nil
}

// SeedDemo creates the demo roles and users when the store holds no roles
// yet. Used by the seed command and by dev mode.
func SeedDemo(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Role{}).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to count roles")
	}

	if count > 0 {
		log.Info().Msg("store already has roles, skipping demo seed")
		return nil
	}

	admin, err := role.Create(db, "Admin", "Administrative access with most permissions", "blue",
		[]string{"Create Users", "Edit Users", "View Analytics", "Export Data"})
	if err != nil {
		return err
	}

	manager, err := role.Create(db, "Manager", "Management level access for team oversight", "purple",
		[]string{"View Users", "Edit Users", "View Analytics"})
	if err != nil {
		return err
	}

	if _, err := user.Create(db, user.Input{
		Name:  "Alice Johnson",
		Email: "alice@example.com",
		Phone: "+1 (555) 123-4567",
	}, admin.ID); err != nil {
		return err
	}

	if _, err := user.Create(db, user.Input{
		Name:  "Bob Smith",
		Email: "bob@example.com",
		Phone: "+1 (555) 234-5678",
	}, manager.ID); err != nil {
		return err
	}

	log.Info().Msg("demo roles and users seeded")

	return nil
}
