package ports

import (
	"context"
	"time"

	"github.com/unicampus/campus-portal/internal/core/domain"
)

// RegisterInput carries the fields of a new registration.
type RegisterInput struct {
	Name       string
	Email      string
	Password   string
	Role       string
	Department string
	Year       string
	RollNumber string
	EmployeeID string
}

// Session is an established session identity and its bearer token.
type Session struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	User      domain.Identity `json:"user"`
}

// TokenClaims is the verified content of a session token.
type TokenClaims struct {
	domain.Identity
	TokenID   string
	ExpiresAt time.Time
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*Session, error)
	Login(ctx context.Context, email, password string) (*Session, error)
	Logout(ctx context.Context, claims TokenClaims) error
	ChangePassword(ctx context.Context, who domain.Identity, newPassword string) error
}

// UserDirectory is the admin view over registered users.
type UserDirectory interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	DeleteUser(ctx context.Context, id string) error
	Subscribe() (<-chan domain.DirectoryEvent, func())
}
