package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tilemart/tilemart/internal/models"
	"github.com/tilemart/tilemart/internal/xe"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	db := newTestDB(t)
	return NewAuthService(zap.NewNop(), db, "test-secret"), db
}

func bootstrapSuperAdmin(t *testing.T, s *AuthService) *LoginResponse {
	t.Helper()

	ctx := context.Background()
	require.NoError(t, s.BootstrapAdmin(ctx, "admin@tilemart.co.kr", "changeme123", "대표관리자"))

	resp, err := s.Login(ctx, LoginRequest{
		Email:    "admin@tilemart.co.kr",
		Password: "changeme123",
	}, "127.0.0.1")
	require.NoError(t, err)
	return resp
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	s, _ := newAuthService(t)
	ctx := context.Background()
	bootstrapSuperAdmin(t, s)

	_, unknownErr := s.Login(ctx, LoginRequest{
		Email:    "nobody@tilemart.co.kr",
		Password: "changeme123",
	}, "127.0.0.1")
	_, wrongErr := s.Login(ctx, LoginRequest{
		Email:    "admin@tilemart.co.kr",
		Password: "wrong-password",
	}, "127.0.0.1")

	assert.ErrorIs(t, unknownErr, xe.ErrIncorrectPassword)
	assert.ErrorIs(t, wrongErr, xe.ErrIncorrectPassword)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestLoginRejectsInactiveAdmin(t *testing.T) {
	s, db := newAuthService(t)
	ctx := context.Background()
	bootstrapSuperAdmin(t, s)

	require.NoError(t, db.Model(&models.Admin{}).
		Where("email = ?", "admin@tilemart.co.kr").
		Update("is_active", false).Error)

	_, err := s.Login(ctx, LoginRequest{
		Email:    "admin@tilemart.co.kr",
		Password: "changeme123",
	}, "127.0.0.1")
	assert.ErrorIs(t, err, xe.ErrIncorrectPassword)
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	s, _ := newAuthService(t)
	resp := bootstrapSuperAdmin(t, s)

	claims, err := s.VerifyToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.Admin.ID, claims.AdminID)
	assert.Equal(t, "admin@tilemart.co.kr", claims.Email)
	assert.Equal(t, models.RoleSuperAdmin, claims.Role)
	assert.True(t, claims.IsSuperAdmin())
}

func TestVerifyTokenRejectsTamperedAndForeignTokens(t *testing.T) {
	s, _ := newAuthService(t)
	resp := bootstrapSuperAdmin(t, s)

	_, err := s.VerifyToken(resp.Token + "x")
	assert.ErrorIs(t, err, xe.ErrInvalidToken)

	_, err = s.VerifyToken("not-a-token")
	assert.ErrorIs(t, err, xe.ErrInvalidToken)

	// 다른 비밀키로 서명된 토큰
	other := NewAuthService(zap.NewNop(), newTestDB(t), "other-secret")
	_, err = other.VerifyToken(resp.Token)
	assert.ErrorIs(t, err, xe.ErrInvalidToken)
}

func TestAdminManagementRequiresSuperAdmin(t *testing.T) {
	s, db := newAuthService(t)
	ctx := context.Background()
	bootstrapSuperAdmin(t, s)

	editor := seedAdmin(t, db, "편집자", models.RoleEditor)
	claims := testClaims(editor.ID, editor.Role)

	_, err := s.ListAdmins(ctx, claims)
	assert.ErrorIs(t, err, xe.ErrPermissionDenied)

	_, err = s.CreateAdmin(ctx, claims, CreateAdminRequest{
		Email:    "new@tilemart.co.kr",
		Password: "password123",
		Name:     "신규",
		Role:     models.RoleEditor,
	})
	assert.ErrorIs(t, err, xe.ErrPermissionDenied)

	assert.ErrorIs(t, s.ResetPassword(ctx, claims, editor.ID, "password123"), xe.ErrPermissionDenied)
	assert.ErrorIs(t, s.ToggleActive(ctx, claims, editor.ID, false), xe.ErrPermissionDenied)
}

func TestCreateAdminDuplicateEmail(t *testing.T) {
	s, _ := newAuthService(t)
	ctx := context.Background()
	resp := bootstrapSuperAdmin(t, s)
	claims := testClaims(resp.Admin.ID, resp.Admin.Role)

	_, err := s.CreateAdmin(ctx, claims, CreateAdminRequest{
		Email:    "admin@tilemart.co.kr",
		Password: "password123",
		Name:     "중복",
		Role:     models.RoleAdmin,
	})
	assert.ErrorIs(t, err, xe.ErrEmailAlreadyUsed)
}

func TestCreateAdminAndLogin(t *testing.T) {
	s, _ := newAuthService(t)
	ctx := context.Background()
	resp := bootstrapSuperAdmin(t, s)
	claims := testClaims(resp.Admin.ID, resp.Admin.Role)

	id, err := s.CreateAdmin(ctx, claims, CreateAdminRequest{
		Email:    "editor@tilemart.co.kr",
		Password: "password123",
		Name:     "편집자",
		Role:     models.RoleEditor,
	})
	require.NoError(t, err)

	login, err := s.Login(ctx, LoginRequest{
		Email:    "editor@tilemart.co.kr",
		Password: "password123",
	}, "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, id, login.Admin.ID)
	assert.Equal(t, models.RoleEditor, login.Admin.Role)
}

func TestResetPasswordReplacesHash(t *testing.T) {
	s, _ := newAuthService(t)
	ctx := context.Background()
	resp := bootstrapSuperAdmin(t, s)
	claims := testClaims(resp.Admin.ID, resp.Admin.Role)

	require.NoError(t, s.ResetPassword(ctx, claims, resp.Admin.ID, "new-password-1"))

	_, err := s.Login(ctx, LoginRequest{
		Email:    "admin@tilemart.co.kr",
		Password: "changeme123",
	}, "127.0.0.1")
	assert.ErrorIs(t, err, xe.ErrIncorrectPassword)

	_, err = s.Login(ctx, LoginRequest{
		Email:    "admin@tilemart.co.kr",
		Password: "new-password-1",
	}, "127.0.0.1")
	assert.NoError(t, err)
}

func TestNeedsBootstrap(t *testing.T) {
	s, _ := newAuthService(t)
	ctx := context.Background()

	needs, err := s.NeedsBootstrap(ctx)
	require.NoError(t, err)
	assert.True(t, needs)

	bootstrapSuperAdmin(t, s)

	needs, err = s.NeedsBootstrap(ctx)
	require.NoError(t, err)
	assert.False(t, needs)
}
