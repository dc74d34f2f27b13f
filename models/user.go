package models

import "time"

type UserRole string

const (
	RoleUser   UserRole = "USER"
	RoleEditor UserRole = "EDITOR"
	RoleAdmin  UserRole = "ADMIN"
)

// Valid reports whether r is one of the assignable roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleUser, RoleEditor, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Email     string    `json:"email,omitempty" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Name      string    `json:"name" gorm:"not null"`
	Role      UserRole  `json:"role,omitempty" gorm:"type:varchar(16);not null;default:'USER'"`
	Image     string    `json:"image"`
	Bio       string    `json:"bio,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}
