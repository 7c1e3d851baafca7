package service

import (
	"context"
	"strings"
	"sync"

	"github.com/adiwira/kasirpos/internal/domain/entity"
	"github.com/adiwira/kasirpos/internal/domain/enum"
	"github.com/adiwira/kasirpos/internal/domain/repository"
	"github.com/adiwira/kasirpos/pkg/apperror"
	"github.com/adiwira/kasirpos/pkg/utils"
)

// AuthService handles operator sign-in and account management. Accounts live
// in a single persisted document; there is one active session per terminal.
type AuthService struct {
	mu          sync.Mutex
	users       []entity.User
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	jwtManager  *utils.JWTManager
}

func NewAuthService(ctx context.Context, userRepo repository.UserRepository, sessionRepo repository.SessionRepository, jwtManager *utils.JWTManager) (*AuthService, error) {
	users, err := userRepo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &AuthService{
		users:       users,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		jwtManager:  jwtManager,
	}, nil
}

// Login checks the credentials and opens a session for the account.
func (s *AuthService) Login(ctx context.Context, username, password string) (*entity.Session, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(username)
	if idx < 0 {
		return nil, "", apperror.ErrInvalidCredentials
	}
	user := s.users[idx]
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", apperror.ErrInvalidCredentials
	}

	return s.openSession(ctx, user.Username, user.Role)
}

// LoginGuest opens a read-only guest session without credentials.
func (s *AuthService) LoginGuest(ctx context.Context) (*entity.Session, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.openSession(ctx, "guest", enum.RoleGuest)
}

// Logout closes the current session.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.sessionRepo.Clear(ctx)
}

// CurrentSession returns the persisted session, or nil when signed out.
func (s *AuthService) CurrentSession(ctx context.Context) (*entity.Session, error) {
	return s.sessionRepo.Load(ctx)
}

// ListUsers returns all accounts with password hashes blanked.
func (s *AuthService) ListUsers(ctx context.Context) []entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.User, len(s.users))
	copy(out, s.users)
	for i := range out {
		out[i].PasswordHash = ""
	}
	return out
}

// CreateUser adds an operator account. Usernames are unique
// case-insensitively and guest is not a storable role.
func (s *AuthService) CreateUser(ctx context.Context, username, password string, role enum.Role) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return apperror.NewBadRequestError("username and password are required")
	}
	if role != enum.RoleAdmin && role != enum.RoleKasir {
		return apperror.NewBadRequestError("role must be admin or kasir")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(username) >= 0 {
		return apperror.NewAppError(409, "Username already exists")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	s.users = append(s.users, entity.User{Username: username, PasswordHash: hash, Role: role})
	if err := s.userRepo.Save(ctx, s.users); err != nil {
		s.users = s.users[:len(s.users)-1]
		return err
	}
	return nil
}

// UpdatePassword replaces an account's password hash.
func (s *AuthService) UpdatePassword(ctx context.Context, username, password string) error {
	if password == "" {
		return apperror.NewBadRequestError("password is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(username)
	if idx < 0 {
		return apperror.NewNotFoundError("User")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	prev := s.users[idx].PasswordHash
	s.users[idx].PasswordHash = hash
	if err := s.userRepo.Save(ctx, s.users); err != nil {
		s.users[idx].PasswordHash = prev
		return err
	}
	return nil
}

// DeleteUser removes an account. The built-in admin account and the last
// remaining admin cannot be deleted.
func (s *AuthService) DeleteUser(ctx context.Context, username string) error {
	if strings.EqualFold(username, "admin") {
		return apperror.NewBadRequestError("the built-in admin account cannot be deleted")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(username)
	if idx < 0 {
		return apperror.NewNotFoundError("User")
	}
	if s.users[idx].Role == enum.RoleAdmin && s.countAdmins() == 1 {
		return apperror.NewBadRequestError("cannot delete the last admin account")
	}

	prev := s.users
	s.users = append(append([]entity.User{}, s.users[:idx]...), s.users[idx+1:]...)
	if err := s.userRepo.Save(ctx, s.users); err != nil {
		s.users = prev
		return err
	}
	return nil
}

// ReplaceAll swaps the full account list, used by backup restore.
func (s *AuthService) ReplaceAll(ctx context.Context, users []entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.users
	if users == nil {
		users = []entity.User{}
	}
	s.users = users
	if err := s.userRepo.Save(ctx, s.users); err != nil {
		s.users = prev
		return err
	}
	return nil
}

// Users returns a copy of the accounts including hashes, used by backup.
func (s *AuthService) Users(ctx context.Context) []entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *AuthService) openSession(ctx context.Context, username string, role enum.Role) (*entity.Session, string, error) {
	session := &entity.Session{Username: username, Role: role}
	if err := s.sessionRepo.Save(ctx, session); err != nil {
		return nil, "", err
	}

	token, err := s.jwtManager.GenerateAccessToken(username, role.String())
	if err != nil {
		return nil, "", err
	}
	return session, token, nil
}

func (s *AuthService) indexOf(username string) int {
	for i, u := range s.users {
		if strings.EqualFold(u.Username, username) {
			return i
		}
	}
	return -1
}

func (s *AuthService) countAdmins() int {
	n := 0
	for _, u := range s.users {
		if u.Role == enum.RoleAdmin {
			n++
		}
	}
	return n
}
