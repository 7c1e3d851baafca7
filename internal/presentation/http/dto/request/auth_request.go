package request

// LoginRequest is the credential payload for operator sign-in
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CreateUserRequest adds an operator account
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required"`
}

// UpdatePasswordRequest replaces an account password
type UpdatePasswordRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}
