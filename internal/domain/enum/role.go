package enum

// Role represents the access level of a user session
type Role string

const (
	RoleAdmin Role = "admin"
	RoleKasir Role = "kasir"
	RoleGuest Role = "guest"
)

// Valid reports whether the role is one of the accepted values
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleKasir, RoleGuest:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
