// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Role values for User.Role.
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// User represents a registered author. The identifier is caller-supplied.
//
// Password is stored and compared as plain text and is included in JSON
// responses. This is a known security defect kept for wire compatibility;
// hardening it means touching exactly one call site (service.passwordsMatch).
type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Password  string    `gorm:"not null" json:"password"`
	Nickname  *string   `gorm:"size:20;index" json:"nickname"`
	Role      string    `gorm:"size:20;default:member" json:"role"`
	CreatedAt time.Time `gorm:"<-:create" json:"created_at"`
	Posts     []Post    `gorm:"foreignKey:AuthorID" json:"posts,omitempty"`
	Comments  []Comment `gorm:"foreignKey:AuthorID" json:"comments,omitempty"`
}
