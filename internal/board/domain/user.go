package domain

import "time"

// Role is the access level attached to a user. Admins are provisioned
// out-of-band at startup; no API operation promotes a user.
type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleMember || r == RoleAdmin
}

// IsAdmin reports whether the role grants moderation rights.
func (r Role) IsAdmin() bool { return r == RoleAdmin }

type User struct {
	ID           int64
	Username     string // unique, immutable after registration
	PasswordHash string // argon2id encoded, never the plaintext
	Profile      string // free text, mutable by the owner only
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
