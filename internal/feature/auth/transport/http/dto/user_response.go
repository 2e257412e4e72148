package dto

import (
	"time"

	"skillroots/internal/feature/auth/domain/entity"
	"skillroots/internal/feature/auth/usecase"
)

// UserRes is the public view of a user.
type UserRes struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginRes is returned by /login.
type LoginRes struct {
	Token     string    `json:"token"`
	User      UserRes   `json:"user"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// NewUserRes converts an entity.User to its response form.
func NewUserRes(u entity.User) UserRes {
	return UserRes{Name: u.Name, Email: u.Email}
}

// NewLoginRes converts a login result to its response form.
func NewLoginRes(r *usecase.LoginResult) LoginRes {
	return LoginRes{
		Token:     r.Token,
		User:      NewUserRes(r.User),
		ExpiresAt: r.ExpiresAt,
	}
}
