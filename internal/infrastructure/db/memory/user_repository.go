package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/unicampus/campus-portal/internal/core/domain"
)

// UserRepository keeps registered users in process memory.
type UserRepository struct {
	mu    sync.RWMutex
	table map[string]domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{table: make(map[string]domain.User)}
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.table {
		if u.Email == user.Email {
			return domain.ErrUserExists
		}
	}
	r.table[user.ID] = *user
	return nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.table {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if u, ok := r.table[id]; ok {
		return &u, nil
	}
	return nil, domain.ErrUserNotFound
}

// List returns users in registration order.
func (r *UserRepository) List(_ context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]domain.User, 0, len(r.table))
	for _, u := range r.table {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.Before(users[j].CreatedAt) })
	return users, nil
}

func (r *UserRepository) UpdatePassword(_ context.Context, id, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.table[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	r.table[id] = u
	return nil
}

func (r *UserRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.table[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.table, id)
	return nil
}
