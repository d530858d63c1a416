// Package models contains data structures for the application's domain models.
package models

import (
	"strings"
	"time"
)

// User represents an account in the Qenea application. Email is the login
// identifier; username is unique case-insensitively.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	FirstName string    `gorm:"size:25" json:"first_name"`
	LastName  string    `gorm:"size:25" json:"last_name"`
	Password  string    `gorm:"not null" json:"-"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	// IsSuperuser marks staff accounts that may mutate content they do not own.
	IsSuperuser bool      `gorm:"not null;default:false" json:"is_superuser"`
	JoinedAt    time.Time `gorm:"autoCreateTime" json:"joined_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Profile *Profile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"profile,omitempty"`
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// NormalizeUsername lowercases a username for case-insensitive comparison.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
