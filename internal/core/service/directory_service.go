package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/unicampus/campus-portal/internal/core/domain"
	"github.com/unicampus/campus-portal/internal/core/ports"
)

// DirectoryHub fans directory events out to subscribers.
type DirectoryHub interface {
	ports.DirectoryPublisher
	Subscribe() (<-chan domain.DirectoryEvent, func())
}

// DirectoryService is the admin view of registered users.
type DirectoryService struct {
	repo ports.UserRepository
	hub  DirectoryHub
	log  zerolog.Logger
}

func NewDirectoryService(repo ports.UserRepository, hub DirectoryHub, log zerolog.Logger) *DirectoryService {
	return &DirectoryService{repo: repo, hub: hub, log: log}
}

func (s *DirectoryService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

// DeleteUser removes a registered user. Demo accounts are not in the directory.
func (s *DirectoryService) DeleteUser(ctx context.Context, id string) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("user_id", id).Msg("user deleted")
	s.hub.Publish(domain.DirectoryEvent{Type: domain.UserDeleted, User: *user, At: time.Now().UTC()})
	return nil
}

// Subscribe streams directory changes until the returned cancel func is called.
func (s *DirectoryService) Subscribe() (<-chan domain.DirectoryEvent, func()) {
	return s.hub.Subscribe()
}
