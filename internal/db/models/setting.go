// Package models contains database model definitions.
package models

import "time"

// Setting represents a named application setting stored in the database.
// The settings page persists its values here, and identity provisioning
// keeps the installation identifier under a reserved name.
type Setting struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"unique;size:100;not null" json:"name"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the database table name for the Setting model.
func (Setting) TableName() string {
	return "settings"
}
