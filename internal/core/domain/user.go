package domain

import (
	"strings"
	"time"
)

const (
	RoleStudent   = "student"
	RoleFaculty   = "faculty"
	RoleStaff     = "staff"
	RoleAdmin     = "admin"
	RoleTransport = "transport"
)

// Roles lists every role a user can hold.
var Roles = []string{RoleStudent, RoleFaculty, RoleStaff, RoleAdmin, RoleTransport}

// ValidRole reports whether role is one of Roles.
func ValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// User models a registered portal account.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Department   string    `json:"department,omitempty"`
	Year         string    `json:"year,omitempty"`
	RollNumber   string    `json:"roll_number,omitempty"`
	EmployeeID   string    `json:"employee_id,omitempty"`
	Builtin      bool      `json:"builtin,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the session identity carried by an authenticated request.
type Identity struct {
	UserID  string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Builtin bool   `json:"builtin,omitempty"`
}

func (u User) Identity() Identity {
	return Identity{UserID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, Builtin: u.Builtin}
}

// DemoAccount is a built-in identity that is always available and never persisted.
type DemoAccount struct {
	User     User
	Password string
}

// DemoAccounts are checked before registered users on login.
var DemoAccounts = []DemoAccount{
	{User: User{ID: "1", Name: "Demo Student", Email: "demo@university.edu", Role: RoleStudent, Builtin: true}, Password: "password"},
	{User: User{ID: "2", Name: "Admin User", Email: "admin@university.edu", Role: RoleAdmin, Builtin: true}, Password: "admin123"},
	{User: User{ID: "3", Name: "Dr. Sarah Johnson", Email: "faculty@university.edu", Role: RoleFaculty, Builtin: true}, Password: "faculty123"},
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// DirectoryEventType names a change in the registered user directory.
type DirectoryEventType string

const (
	UserRegistered      DirectoryEventType = "user_registered"
	UserDeleted         DirectoryEventType = "user_deleted"
	UserPasswordChanged DirectoryEventType = "user_password_changed"
)

// DirectoryEvent is published whenever the registered user directory changes.
type DirectoryEvent struct {
	Type DirectoryEventType `json:"type"`
	User User               `json:"user"`
	At   time.Time          `json:"at"`
}
