package domain

import "time"

// Role is the closed set of roles a user can hold.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole maps a raw string onto the Role enum. Empty input falls back to
// RoleUser, matching the registration default.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	case "":
		return RoleUser, nil
	default:
		return "", ErrUnknownRole
	}
}

// Identity is the resolved actor for a single request, reconstructed from a
// verified session token. It is never persisted and never shared across
// requests.
type Identity struct {
	ID   string
	Role Role
}

// User is the persisted account entity. PasswordHash is excluded from JSON so
// it can never leak through a handler response.
type User struct {
	ID           string    `json:"id"`
	Pseudo       string    `json:"pseudo"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Author is the display-safe projection of a User attached to projets and
// reviews in API responses.
type Author struct {
	ID     string `json:"id"`
	Pseudo string `json:"pseudo"`
	Email  string `json:"email"`
}

// DisplayAuthor returns the display-safe projection of u.
func (u *User) DisplayAuthor() Author {
	return Author{ID: u.ID, Pseudo: u.Pseudo, Email: u.Email}
}
