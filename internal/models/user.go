package models

import (
	"time"
)

// User is the local profile of an identity-provider account. Credentials
// live with the provider; this table only carries display data and role.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AuthID    string    `gorm:"column:auth_id;size:64;uniqueIndex" json:"auth_id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	FullName  string    `gorm:"column:full_name" json:"full_name"`
	Role      string    `gorm:"default:user" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "tb_usuarios"
}

// Role constants
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// IsAdmin returns true if user has admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CurrentUser is the /me payload
type CurrentUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name"`
}
