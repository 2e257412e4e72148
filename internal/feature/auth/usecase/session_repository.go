package usecase

import (
	"context"

	"skillroots/internal/feature/auth/domain/entity"
)

// SessionRepository abstracts the persistence layer for login sessions.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SessionRepository interface {
	// Create persists a new session.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID retrieves a session by its token.
	FindByID(ctx context.Context, id string) (*entity.Session, error)

	// Delete removes a session. Deleting an unknown session returns ErrSessionNotFound.
	Delete(ctx context.Context, id string) error
}
