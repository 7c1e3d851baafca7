package handler

import (
	"github.com/adiwira/kasirpos/internal/application/service"
	"github.com/adiwira/kasirpos/internal/domain/enum"
	"github.com/adiwira/kasirpos/internal/presentation/http/dto/request"
	"github.com/adiwira/kasirpos/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles sign-in and account management HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login signs an operator in with username and password
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	session, token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", gin.H{
		"session": session,
		"token":   token,
	})
}

// LoginGuest opens a read-only guest session
func (h *AuthHandler) LoginGuest(c *gin.Context) {
	session, token, err := h.authService.LoginGuest(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Guest login successful", gin.H{
		"session": session,
		"token":   token,
	})
}

// Logout closes the current session
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Logged out", nil)
}

// Me returns the persisted session for the signed-in operator
func (h *AuthHandler) Me(c *gin.Context) {
	session, err := h.authService.CurrentSession(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if session == nil {
		response.Unauthorized(c, "No active session")
		return
	}
	response.OK(c, "Session retrieved successfully", session)
}

// ListUsers returns all operator accounts
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users := h.authService.ListUsers(c.Request.Context())
	response.OK(c, "Users retrieved successfully", users)
}

// CreateUser adds an operator account
func (h *AuthHandler) CreateUser(c *gin.Context) {
	var req request.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	err := h.authService.CreateUser(c.Request.Context(), req.Username, req.Password, enum.Role(req.Role))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "User created successfully", nil)
}

// UpdatePassword replaces an account's password
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	var req request.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	err := h.authService.UpdatePassword(c.Request.Context(), c.Param("username"), req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Password updated successfully", nil)
}

// DeleteUser removes an operator account
func (h *AuthHandler) DeleteUser(c *gin.Context) {
	if err := h.authService.DeleteUser(c.Request.Context(), c.Param("username")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
