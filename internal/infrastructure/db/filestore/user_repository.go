// Package filestore persists registered users as a single flat JSON array on disk.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/unicampus/campus-portal/internal/core/domain"
)

// fileUser is the on-disk layout of one registered user. Password holds a bcrypt hash.
type fileUser struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Department string    `json:"department,omitempty"`
	Year       string    `json:"year,omitempty"`
	RollNumber string    `json:"rollNumber,omitempty"`
	EmployeeID string    `json:"employeeId,omitempty"`
	Password   string    `json:"password"`
	CreatedAt  time.Time `json:"createdAt"`
}

// UserRepository reads the whole file on every call and rewrites it
// atomically (temp file + rename) on every change.
type UserRepository struct {
	path string
	mu   sync.Mutex
}

func NewUserRepository(path string) *UserRepository {
	return &UserRepository{path: path}
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.Email == user.Email {
			return domain.ErrUserExists
		}
	}
	return r.save(append(users, toFile(*user)))
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	return r.find(func(u fileUser) bool { return u.Email == email })
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	return r.find(func(u fileUser) bool { return u.ID == id })
}

func (r *UserRepository) List(_ context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return nil, err
	}
	out := make([]domain.User, 0, len(users))
	for _, u := range users {
		out = append(out, fromFile(u))
	}
	return out, nil
}

func (r *UserRepository) UpdatePassword(_ context.Context, id, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == id {
			users[i].Password = passwordHash
			return r.save(users)
		}
	}
	return domain.ErrUserNotFound
}

func (r *UserRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == id {
			return r.save(append(users[:i], users[i+1:]...))
		}
	}
	return domain.ErrUserNotFound
}

func (r *UserRepository) find(match func(fileUser) bool) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if match(u) {
			du := fromFile(u)
			return &du, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// load returns the stored users; a missing file is an empty directory.
func (r *UserRepository) load() ([]fileUser, error) {
	b, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []fileUser{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read users file: %w", err)
	}
	if len(b) == 0 {
		return []fileUser{}, nil
	}

	var users []fileUser
	if err := json.Unmarshal(b, &users); err != nil {
		return nil, fmt.Errorf("decode users file: %w", err)
	}
	return users, nil
}

func (r *UserRepository) save(users []fileUser) error {
	b, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("encode users file: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create users dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".users-*.json")
	if err != nil {
		return fmt.Errorf("create temp users file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("write users file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close users file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("replace users file: %w", err)
	}
	return nil
}

func toFile(u domain.User) fileUser {
	return fileUser{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		Department: u.Department,
		Year:       u.Year,
		RollNumber: u.RollNumber,
		EmployeeID: u.EmployeeID,
		Password:   u.PasswordHash,
		CreatedAt:  u.CreatedAt,
	}
}

func fromFile(u fileUser) domain.User {
	return domain.User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		Department:   u.Department,
		Year:         u.Year,
		RollNumber:   u.RollNumber,
		EmployeeID:   u.EmployeeID,
		PasswordHash: u.Password,
		CreatedAt:    u.CreatedAt,
	}
}
