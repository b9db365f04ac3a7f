package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/unicampus/campus-portal/internal/core/domain"
	"github.com/unicampus/campus-portal/internal/core/ports"
)

// AuthService implements registration, login, logout and password changes.
type AuthService struct {
	repo      ports.UserRepository
	revoker   ports.TokenRevoker
	publisher ports.DirectoryPublisher
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
	now       func() time.Time
}

func NewAuthService(
	repo ports.UserRepository,
	revoker ports.TokenRevoker,
	publisher ports.DirectoryPublisher,
	jwtSecret string,
	tokenTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		repo:      repo,
		revoker:   revoker,
		publisher: publisher,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
		now:       time.Now,
	}
}

// Register stores a new user and signs them in.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.Session, error) {
	email := domain.NormalizeEmail(in.Email)
	name := strings.TrimSpace(in.Name)
	role := strings.TrimSpace(in.Role)
	if role == "" {
		role = domain.RoleStudent
	}

	switch {
	case name == "":
		return nil, domain.NewValidationError("name", "this field is required")
	case email == "":
		return nil, domain.NewValidationError("email", "this field is required")
	case !domain.ValidRole(role):
		return nil, domain.NewValidationError("role", "invalid role")
	case role == domain.RoleAdmin:
		return nil, domain.NewValidationError("role", "admin accounts cannot be self-registered")
	}

	if _, ok := demoAccount(email); ok {
		return nil, domain.ErrUserExists
	}
	if err := checkPassword(in.Password, name, email); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Department:   strings.TrimSpace(in.Department),
		Year:         strings.TrimSpace(in.Year),
		RollNumber:   strings.TrimSpace(in.RollNumber),
		EmployeeID:   strings.TrimSpace(in.EmployeeID),
		CreatedAt:    s.now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user registered")
	s.publish(domain.UserRegistered, *user)

	return s.issue(user.Identity())
}

// Login checks the demo accounts first, then registered users. Every
// failure is reported as domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.Session, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if demo, ok := demoAccount(email); ok {
		if subtle.ConstantTimeCompare([]byte(demo.Password), []byte(password)) != 1 {
			return nil, domain.ErrInvalidCredentials
		}
		return s.issue(demo.User.Identity())
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issue(user.Identity())
}

// Logout revokes the session token for the rest of its lifetime.
func (s *AuthService) Logout(ctx context.Context, claims ports.TokenClaims) error {
	ttl := claims.ExpiresAt.Sub(s.now())
	if ttl <= 0 || claims.TokenID == "" {
		return nil
	}
	if err := s.revoker.Revoke(ctx, claims.TokenID, ttl); err != nil {
		return err
	}
	s.log.Info().Str("user_id", claims.UserID).Msg("session revoked")
	return nil
}

// ChangePassword persists a new password for a registered user.
func (s *AuthService) ChangePassword(ctx context.Context, who domain.Identity, newPassword string) error {
	if who.Builtin {
		return domain.ErrBuiltinAccount
	}

	user, err := s.repo.FindByID(ctx, who.UserID)
	if err != nil {
		return err
	}
	if err := checkPassword(newPassword, user.Name, user.Email); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return err
	}

	s.log.Info().Str("user_id", user.ID).Msg("password changed")
	s.publish(domain.UserPasswordChanged, *user)
	return nil
}

func (s *AuthService) issue(id domain.Identity) (*ports.Session, error) {
	now := s.now()
	exp := now.Add(s.tokenTTL)

	claims := jwt.MapClaims{
		"sub":     id.UserID,
		"name":    id.Name,
		"email":   id.Email,
		"role":    id.Role,
		"builtin": id.Builtin,
		"jti":     uuid.NewString(),
		"iat":     now.Unix(),
		"exp":     exp.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}
	return &ports.Session{Token: signed, ExpiresAt: time.Unix(exp.Unix(), 0).UTC(), User: id}, nil
}

func (s *AuthService) publish(t domain.DirectoryEventType, u domain.User) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(domain.DirectoryEvent{Type: t, User: u, At: s.now().UTC()})
}

func demoAccount(email string) (domain.DemoAccount, bool) {
	for _, d := range domain.DemoAccounts {
		if d.User.Email == email {
			return d, true
		}
	}
	return domain.DemoAccount{}, false
}
