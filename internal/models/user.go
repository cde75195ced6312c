package models

import "time"

// Role is the access level of a user account.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents a platform account.
type User struct {
	ID             string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name           string    `json:"name" gorm:"type:varchar(100);not null"`
	Email          string    `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	Password       string    `json:"-" gorm:"type:varchar(255);not null"` // bcrypt hash, never serialized
	Role           Role      `json:"role" gorm:"type:varchar(16);default:user"`
	GoogleID       *string   `json:"googleId,omitempty" gorm:"uniqueIndex;type:varchar(255)"`
	ProfilePicture string    `json:"profilePicture,omitempty" gorm:"type:varchar(512)"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
