package role

import (
	"time"

	"gorm.io/gorm"

	"github.com/pkg/errors"

	"github.com/roleboard/roleboard/internal/apperr"
	"github.com/roleboard/roleboard/internal/db/models"
)

// View is the flattened read model of a role: the role's scalar fields plus
// its live permission-name list and user count. Views are recomputed from
// the association tables on every read; nothing is cached, so the counts can
// never drift from the links.
type View struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	IsActive    bool      `json:"is_active"`
	UserCount   int64     `json:"userCount"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Member is the projection of a user assigned to a role, limited to identity
// and status fields.
type Member struct {
	ID        uint64            `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	AvatarURL string            `json:"avatar_url"`
	Status    models.UserStatus `json:"status"`
}

// rolePermissionName carries one joined (role, permission name) pair.
type rolePermissionName struct {
	RoleID uint
	Name   string
}

// userCountRow carries one aggregated user count per role.
type userCountRow struct {
	RoleID uint
	Count  int64
}

// List returns every role joined with its live permission names and user
// count. Roles are ordered most-recently-created first; permission names
// within a role follow the insertion order of their links.
func List(db *gorm.DB) ([]View, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var roles []models.Role
	if err := db.Order("created_at DESC, id DESC").Find(&roles).Error; err != nil {
		return nil, apperr.Store(err)
	}

	var permissionNames []rolePermissionName
	if err := db.Table("role_permissions").
		Select("role_permissions.role_id AS role_id, permissions.name AS name").
		Joins("JOIN permissions ON permissions.id = role_permissions.permission_id").
		Order("role_permissions.id ASC").
		Scan(&permissionNames).Error; err != nil {
		return nil, apperr.Store(err)
	}

	var counts []userCountRow
	if err := db.Table("user_roles").
		Select("role_id, COUNT(*) AS count").
		Group("role_id").
		Scan(&counts).Error; err != nil {
		return nil, apperr.Store(err)
	}

	namesByRole := make(map[uint][]string, len(roles))
	for _, pn := range permissionNames {
		namesByRole[pn.RoleID] = append(namesByRole[pn.RoleID], pn.Name)
	}

	countByRole := make(map[uint]int64, len(counts))
	for _, c := range counts {
		countByRole[c.RoleID] = c.Count
	}

	views := make([]View, 0, len(roles))

	for _, r := range roles {
		names := namesByRole[r.ID]
		if names == nil {
			names = []string{}
		}

		views = append(views, View{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			Color:       r.Color,
			IsActive:    r.IsActive,
			UserCount:   countByRole[r.ID],
			Permissions: names,
			CreatedAt:   r.CreatedAt,
			UpdatedAt:   r.UpdatedAt,
		})
	}

	return views, nil
}

// UsersByRole returns every user assigned to the role, projecting identity
// and status fields only. Fails with a not-found error when roleID does not
// exist.
func UsersByRole(db *gorm.DB, roleID uint) ([]Member, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if err := db.First(&models.Role{}, roleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrapf(ErrRoleNotFound, "role %d", roleID)
		}

		return nil, apperr.Store(err)
	}

	members := make([]Member, 0)

	if err := db.Table("users").
		Select("users.id, users.name, users.email, users.avatar_url, users.status").
		Joins("JOIN user_roles ON user_roles.user_id = users.id").
		Where("user_roles.role_id = ?", roleID).
		Order("user_roles.id ASC").
		Scan(&members).Error; err != nil {
		return nil, apperr.Store(err)
	}

	return members, nil
}
