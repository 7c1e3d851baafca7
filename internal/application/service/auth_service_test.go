package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adiwira/kasirpos/internal/domain/entity"
	"github.com/adiwira/kasirpos/internal/domain/enum"
	infraRepo "github.com/adiwira/kasirpos/internal/infrastructure/repository"
	"github.com/adiwira/kasirpos/pkg/apperror"
	"github.com/adiwira/kasirpos/pkg/utils"
)

func newTestAuth(t *testing.T) (*AuthService, *infraRepo.MemoryStore) {
	t.Helper()
	ctx := context.Background()

	store := infraRepo.NewMemoryStore()
	hash, err := utils.HashPassword("admin123")
	require.NoError(t, err)
	seed := []entity.User{{Username: "admin", PasswordHash: hash, Role: enum.RoleAdmin}}
	require.NoError(t, store.Put(ctx, infraRepo.KeyUsers, seed))

	jwtManager := utils.NewJWTManager("test-secret", time.Hour)
	auth, err := NewAuthService(ctx, infraRepo.NewUserRepository(store), infraRepo.NewSessionRepository(store), jwtManager)
	require.NoError(t, err)
	return auth, store
}

func TestLoginSuccess(t *testing.T) {
	ctx := context.Background()
	auth, _ := newTestAuth(t)

	session, token, err := auth.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin", session.Username)
	assert.Equal(t, enum.RoleAdmin, session.Role)
	assert.NotEmpty(t, token)

	current, err := auth.CurrentSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "admin", current.Username)
}

func TestLoginWrongPassword(t *testing.T) {
	auth, _ := newTestAuth(t)

	_, _, err := auth.Login(context.Background(), "admin", "wrong")
	assert.Equal(t, apperror.ErrInvalidCredentials, err)
}

func TestLoginUnknownUser(t *testing.T) {
	auth, _ := newTestAuth(t)

	_, _, err := auth.Login(context.Background(), "ghost", "admin123")
	assert.Equal(t, apperror.ErrInvalidCredentials, err)
}

func TestLoginGuest(t *testing.T) {
	ctx := context.Background()
	auth, _ := newTestAuth(t)

	session, token, err := auth.LoginGuest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "guest", session.Username)
	assert.Equal(t, enum.RoleGuest, session.Role)
	assert.NotEmpty(t, token)
}

func TestLogoutClearsSession(t *testing.T) {
	ctx := context.Background()
	auth, _ := newTestAuth(t)

	_, _, err := auth.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	require.NoError(t, auth.Logout(ctx))

	session, err := auth.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestCreateUserAndLogin(t *testing.T) {
	ctx := context.Background()
	auth, _ := newTestAuth(t)

	require.NoError(t, auth.CreateUser(ctx, "budi", "rahasia", enum.RoleKasir))

	session, _, err := auth.Login(ctx, "budi", "rahasia")
	require.NoError(t, err)
	assert.Equal(t, enum.RoleKasir, session.Role)
}

func TestCreateUserDuplicateRefused(t *testing.T) {
	auth, _ := newTestAuth(t)

	err := auth.CreateUser(context.Background(), "Admin", "whatever", enum.RoleKasir)
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestCreateUserGuestRoleRefused(t *testing.T) {
	auth, _ := newTestAuth(t)

	err := auth.CreateUser(context.Background(), "tamu", "whatever", enum.RoleGuest)
	assert.Error(t, err)
}

func TestUpdatePassword(t *testing.T) {
	ctx := context.Background()
	auth, _ := newTestAuth(t)

	require.NoError(t, auth.UpdatePassword(ctx, "admin", "newpass"))

	_, _, err := auth.Login(ctx, "admin", "admin123")
	assert.Equal(t, apperror.ErrInvalidCredentials, err)
	_, _, err = auth.Login(ctx, "admin", "newpass")
	assert.NoError(t, err)
}

func TestDeleteBuiltInAdminRefused(t *testing.T) {
	auth, _ := newTestAuth(t)

	err := auth.DeleteUser(context.Background(), "admin")
	assert.Error(t, err)
	assert.Len(t, auth.ListUsers(context.Background()), 1)
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	auth, _ := newTestAuth(t)

	require.NoError(t, auth.CreateUser(ctx, "budi", "rahasia", enum.RoleKasir))
	require.NoError(t, auth.DeleteUser(ctx, "budi"))

	_, _, err := auth.Login(ctx, "budi", "rahasia")
	assert.Equal(t, apperror.ErrInvalidCredentials, err)
}

func TestListUsersHidesHashes(t *testing.T) {
	auth, _ := newTestAuth(t)

	users := auth.ListUsers(context.Background())
	require.Len(t, users, 1)
	assert.Empty(t, users[0].PasswordHash)
}
