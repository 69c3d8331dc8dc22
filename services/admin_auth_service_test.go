package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/durable-fastener/durable-cms-backend/models"
)

func TestJWTRoundTrip(t *testing.T) {
	j, err := NewJWTService("secret")
	require.NoError(t, err)

	token, err := j.GenerateAdminJWT("admin-1", "ops@durable.test", models.AdminRoleEditor)
	require.NoError(t, err)

	claims, err := j.VerifyAdminJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.AdminID)
	assert.Equal(t, models.AdminRoleEditor, claims.Role)

	other, err := NewJWTService("another-secret")
	require.NoError(t, err)
	_, err = other.VerifyAdminJWT(token)
	assert.Error(t, err)

	j.now = func() time.Time { return time.Now().Add(AdminTokenTTL + time.Hour) }
	_, err = j.VerifyAdminJWT(token)
	assert.Error(t, err)

	_, err = NewJWTService("")
	assert.Error(t, err)
}

func TestAdminLoginAndAuthenticate(t *testing.T) {
	s := newTestServices(t, nil, nil)

	admin, err := s.Auth.CreateAdmin(ctx(), " Ops@Durable.test ", "Ops", "correct-horse", models.AdminRoleSuperAdmin)
	require.NoError(t, err)
	assert.Equal(t, "ops@durable.test", admin.Email)

	_, err = s.Auth.Login(ctx(), "ops@durable.test", "wrong-password", "127.0.0.1", "test")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = s.Auth.Login(ctx(), "nobody@durable.test", "correct-horse", "127.0.0.1", "test")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	resp, err := s.Auth.Login(ctx(), "OPS@durable.test", "correct-horse", "127.0.0.1", "test")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, resp.Admin.ID)
	require.NotNil(t, resp.Admin.LastLoginAt)

	got, err := s.Auth.Authenticate(ctx(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, got.ID)

	active, err := s.Sessions.CountActiveSessions(ctx())
	require.NoError(t, err)
	assert.EqualValues(t, 1, active)

	require.NoError(t, s.Auth.Logout(ctx(), admin.ID))
	_, err = s.Auth.Authenticate(ctx(), resp.Token)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestSuspendedAdminCannotLogin(t *testing.T) {
	s := newTestServices(t, nil, nil)

	admin, err := s.Auth.CreateAdmin(ctx(), "ops@durable.test", "Ops", "correct-horse", models.AdminRoleEditor)
	require.NoError(t, err)
	require.NoError(t, s.Auth.db.Model(admin).Update("status", models.AdminStatusSuspended).Error)

	_, err = s.Auth.Login(ctx(), "ops@durable.test", "correct-horse", "", "")
	assert.ErrorIs(t, err, ErrAdminSuspended)
}

func TestCreateAdminValidates(t *testing.T) {
	s := newTestServices(t, nil, nil)

	_, err := s.Auth.CreateAdmin(ctx(), "ops@durable.test", "Ops", "short", models.AdminRoleEditor)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
