package entity

import "github.com/adiwira/kasirpos/internal/domain/enum"

// User is an operator account. PasswordHash is a bcrypt hash with a
// per-credential salt; the plain password is never stored.
type User struct {
	Username     string    `json:"username"`
	PasswordHash string    `json:"passwordHash"`
	Role         enum.Role `json:"role"`
}

// Session identifies the currently signed-in operator
type Session struct {
	Username string    `json:"username"`
	Role     enum.Role `json:"role"`
}

// IsAdmin reports whether the session belongs to an admin account
func (s *Session) IsAdmin() bool {
	return s.Role == enum.RoleAdmin
}
