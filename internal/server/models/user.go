// Package models holds the records persisted by the credential store.
package models

import "time"

// Role is the authorization level of a user.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
	RoleUser      Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleModerator, RoleUser:
		return true
	default:
		return false
	}
}

type User struct {
	ID              string
	Name            string
	Email           string
	EmailVerifiedAt *time.Time
	PasswordHash    string
	Role            Role
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Verified reports whether the user has confirmed their email address.
func (u *User) Verified() bool {
	return u.EmailVerifiedAt != nil
}
