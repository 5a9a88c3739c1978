package models

import (
	"time"
)

// User roles. Closed set; authorization checks compare against these and
// nothing else.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User rows are owned by the identity service. This backend only reads them
// to populate author fields on posts, comments and complaints.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:50;not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Role      string    `gorm:"size:20;default:'user';not null" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
