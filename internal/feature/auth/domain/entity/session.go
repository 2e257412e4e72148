package entity

import "time"

// Session represents a logged-in user.
// It carries a snapshot of the user record so that requests do not need a user lookup.
type Session struct {
	ID        string    // Session token (64-character hex string)
	UserEmail string    // Normalized email of the logged-in user
	UserName  string    // Display name at login time
	CreatedAt time.Time // Login time
	ExpiresAt time.Time // Session expiration time
}

// IsExpired returns true if the session has passed its expiration time.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// User returns the user snapshot stored in the session.
func (s *Session) User() User {
	return User{Email: s.UserEmail, Name: s.UserName}
}
