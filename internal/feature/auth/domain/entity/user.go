// Package entity defines the domain entities for the auth feature.
package entity

import (
	"strings"
	"time"
)

// User represents a registered user.
// The normalized email is the natural key; a user is never modified or deleted after registration.
type User struct {
	// Email is the lower-cased email address and primary key.
	Email string `gorm:"primaryKey;size:255"`

	// Name is the display name given at registration.
	Name string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the user registered.
	CreatedAt time.Time
}

// TableName returns the table name for GORM.
func (User) TableName() string {
	return "users"
}

// NormalizeEmail returns the canonical form of an email used as the user key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
