package models

import (
	"strings"
	"time"
)

// Role is the authorization level of a user.
type Role string

const (
	// RoleAdmin may manage equipment, users, assignments and criteria.
	RoleAdmin Role = "admin"
	// RoleOperator records measurements for the equipment assigned to it.
	RoleOperator Role = "operator"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleOperator
}

// User is a person who can sign in to the suite with a 4-digit PIN.
// Records are created on seed or by an admin and are never deleted;
// the only mutation is a PIN reset.
type User struct {
	// UserID is the unique, upper-cased login identifier.
	UserID string `json:"user_id"`

	// Nome is the display name.
	Nome string `json:"nome"`

	// Role gates the admin-only operations.
	Role Role `json:"role"`

	// PinSalt is the base64 encoded per-user random salt.
	// Never leaves the process.
	PinSalt string `json:"-"`

	// PinHash is the base64 encoded PBKDF2 output for the user's PIN.
	// Never leaves the process.
	PinHash string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// Identity returns the session identity of the user.
func (u User) Identity() Identity {
	return Identity{UserID: u.UserID, Nome: u.Nome, Role: u.Role}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// NormalizeID trims surrounding whitespace and upper-cases a user or
// equipment identifier.
func NormalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// Identity is the authenticated principal held by a session.
type Identity struct {
	UserID string `json:"user_id"`
	Nome   string `json:"nome"`
	Role   Role   `json:"role"`
}

// IsAdmin reports whether the identity may run admin-only operations.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// IsZero reports whether the identity is anonymous.
func (i Identity) IsZero() bool {
	return i.UserID == ""
}

// Default admin account seeded into an empty store.
const (
	SeedAdminID   = "RANIERI"
	SeedAdminNome = "Ranieri"
	SeedAdminPIN  = "2308"
)
