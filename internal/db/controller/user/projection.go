package user

import (
	"time"

	"gorm.io/gorm"

	"github.com/roleboard/roleboard/internal/apperr"
	"github.com/roleboard/roleboard/internal/db/models"
)

// RoleRef is the slim role reference embedded in a user view.
type RoleRef struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// View is the flattened read model of a user: scalar fields plus the live
// set of assigned roles, recomputed from user_roles on every read.
type View struct {
	ID        uint64            `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone"`
	Status    models.UserStatus `json:"status"`
	AvatarURL string            `json:"avatar_url"`
	Roles     []RoleRef         `json:"roles"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// userRoleRow carries one joined (user, role) pair.
type userRoleRow struct {
	UserID uint64
	ID     uint
	Name   string
	Color  string
}

// List returns every user joined with its live role set, ordered
// most-recently-created first. Role references within a user follow the
// insertion order of their links.
func List(db *gorm.DB) ([]View, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var users []models.User
	if err := db.Order("created_at DESC, id DESC").Find(&users).Error; err != nil {
		return nil, apperr.Store(err)
	}

	var links []userRoleRow
	if err := db.Table("user_roles").
		Select("user_roles.user_id AS user_id, roles.id AS id, roles.name AS name, roles.color AS color").
		Joins("JOIN roles ON roles.id = user_roles.role_id").
		Order("user_roles.id ASC").
		Scan(&links).Error; err != nil {
		return nil, apperr.Store(err)
	}

	rolesByUser := make(map[uint64][]RoleRef, len(users))
	for _, l := range links {
		rolesByUser[l.UserID] = append(rolesByUser[l.UserID], RoleRef{ID: l.ID, Name: l.Name, Color: l.Color})
	}

	views := make([]View, 0, len(users))

	for _, u := range users {
		roles := rolesByUser[u.ID]
		if roles == nil {
			roles = []RoleRef{}
		}

		views = append(views, View{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Phone:     u.Phone,
			Status:    u.Status,
			AvatarURL: u.AvatarURL,
			Roles:     roles,
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		})
	}

	return views, nil
}
