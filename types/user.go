package types

import (
	"fmt"
	"time"
)

// Role is the authorization level of a user. It is a closed enumeration;
// every Role held by the system is one of the constants below.
type Role string

const (
	// RoleClient is the default role assigned at registration.
	RoleClient Role = "client"

	// RoleStaff marks restaurant employees who manage orders and menus.
	RoleStaff Role = "staff"

	// RoleAdmin has full access, including user administration.
	RoleAdmin Role = "admin"
)

// DefaultRole is assigned when registration does not name a role.
const DefaultRole = RoleClient

// ParseRole converts an external string into a Role. It is the only
// conversion path from untrusted input; anything outside the enumeration
// is an error, never a silent default.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleClient, RoleStaff, RoleAdmin:
		return Role(s), nil
	default:
		return "", fmt.Errorf("invalid role %q", s)
	}
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// User represents an account in the system.
// It contains identity, role, and audit metadata.
type User struct {
	// ID is the unique identifier of the user.
	ID int `json:"id" db:"id"`

	// Name is the user's display or full name.
	Name string `json:"name" db:"name"`

	// Email is the user's email address. It is unique and acts as the
	// login principal and token subject.
	Email string `json:"email" db:"email"`

	// Role indicates the user's authorization level within the system.
	Role Role `json:"role" db:"role"`

	// PasswordHash stores the hashed representation of the user's password.
	// This field is never exposed in API responses.
	PasswordHash string `json:"-" db:"password_hash"`

	// IsActive indicates whether the account is enabled.
	IsActive bool `json:"is_active" db:"is_active"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// UpdatedAt is the timestamp of the most recent update to the user account.
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
