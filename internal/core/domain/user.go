package domain

import "strings"

const (
	RoleAdmin  = "admin"
	RoleNormal = "normal"
)

// User is the account attached to a console session, as returned by the
// login endpoint.
type User struct {
	ID        ID     `json:"id,omitempty"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role"`
}

// IsAdmin reports whether the role grants access to mutations. The
// comparison is case-insensitive.
func (u *User) IsAdmin() bool {
	return u != nil && strings.ToLower(u.Role) == RoleAdmin
}

// DisplayName prefers the person's name and falls back to the login.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if name := strings.TrimSpace(u.FirstName + " " + u.LastName); name != "" {
		return name
	}
	if u.Username != "" {
		return u.Username
	}
	return u.Email
}
