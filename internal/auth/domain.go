package auth

import "time"

// Role separates administrators from partner portal users.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RolePartner Role = "PARTNER"
)

// User is an application account. The password is stored only as a bcrypt
// hash and never leaves the service.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	PartnerID    string    `json:"partner_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the request-scoped caller identity carried through the
// request context after token verification. It replaces any notion of a
// global logged-in-user singleton.
type Identity struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	PartnerID string `json:"partner_id,omitempty"`
}

// IsAdmin reports whether the caller holds the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
