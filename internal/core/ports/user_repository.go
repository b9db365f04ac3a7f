package ports

import (
	"context"
	"time"

	"github.com/unicampus/campus-portal/internal/core/domain"
)

// UserRepository persists registered (non-demo) users.
type UserRepository interface {
	// Create returns domain.ErrUserExists when the email is already registered.
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Delete(ctx context.Context, id string) error
}

// TokenRevoker tracks logged-out session tokens until they expire.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// DirectoryPublisher receives user directory changes.
type DirectoryPublisher interface {
	Publish(event domain.DirectoryEvent)
}
