package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tilemart/tilemart/internal/models"
	"github.com/tilemart/tilemart/internal/service"
	"github.com/tilemart/tilemart/pkg/nostd"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newGuardEnv(t *testing.T) (*service.AuthService, *gorm.DB) {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.Admin{}))

	return service.NewAuthService(zap.NewNop(), db, "test-secret"), db
}

func loginToken(t *testing.T, auth *service.AuthService, email, password string) string {
	t.Helper()

	resp, err := auth.Login(context.Background(), service.LoginRequest{
		Email:    email,
		Password: password,
	}, "127.0.0.1")
	require.NoError(t, err)
	return resp.Token
}

func newGuardedEcho(auth *service.AuthService) *echo.Echo {
	e := echo.New()
	e.Use(SessionGuard(GuardConfig{AuthService: auth, Logger: zap.NewNop()}))

	pageOK := func(c echo.Context) error { return c.String(http.StatusOK, "page") }
	e.GET("/", pageOK)
	e.GET("/admin", pageOK)
	e.GET("/admin/login", pageOK)
	e.GET("/admin/consultations", pageOK)
	e.GET("/admin/users", pageOK)
	return e
}

func request(e *echo.Echo, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: nostd.SessionCookie, Value: token})
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSessionGuardRedirectsAnonymousToLogin(t *testing.T) {
	auth, _ := newGuardEnv(t)
	e := newGuardedEcho(auth)

	for _, path := range []string{"/admin", "/admin/consultations", "/admin/users"} {
		rec := request(e, path, "")
		assert.Equal(t, http.StatusFound, rec.Code, path)
		assert.Equal(t, "/admin/login", rec.Header().Get("Location"), path)
	}

	// 로그인 페이지와 공개 페이지는 그대로 통과
	assert.Equal(t, http.StatusOK, request(e, "/admin/login", "").Code)
	assert.Equal(t, http.StatusOK, request(e, "/", "").Code)
}

func TestSessionGuardClearsBadCookie(t *testing.T) {
	auth, _ := newGuardEnv(t)
	e := newGuardedEcho(auth)

	rec := request(e, "/admin", "garbage-token")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, nostd.SessionCookie, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestSessionGuardLoggedInFlow(t *testing.T) {
	auth, _ := newGuardEnv(t)
	ctx := context.Background()
	require.NoError(t, auth.BootstrapAdmin(ctx, "admin@tilemart.co.kr", "changeme123", "대표관리자"))
	token := loginToken(t, auth, "admin@tilemart.co.kr", "changeme123")

	e := newGuardedEcho(auth)

	assert.Equal(t, http.StatusOK, request(e, "/admin", token).Code)
	assert.Equal(t, http.StatusOK, request(e, "/admin/users", token).Code)

	// 로그인 상태에서 로그인 페이지는 대시보드로 보낸다
	rec := request(e, "/admin/login", token)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin", rec.Header().Get("Location"))
}

func TestSessionGuardUsersPageRequiresSuperAdmin(t *testing.T) {
	auth, _ := newGuardEnv(t)
	ctx := context.Background()
	require.NoError(t, auth.BootstrapAdmin(ctx, "admin@tilemart.co.kr", "changeme123", "대표관리자"))

	super := testSessionClaims(t, auth, "admin@tilemart.co.kr", "changeme123")
	_, err := auth.CreateAdmin(ctx, super, service.CreateAdminRequest{
		Email:    "editor@tilemart.co.kr",
		Password: "password123",
		Name:     "편집자",
		Role:     models.RoleEditor,
	})
	require.NoError(t, err)
	editorToken := loginToken(t, auth, "editor@tilemart.co.kr", "password123")

	e := newGuardedEcho(auth)

	assert.Equal(t, http.StatusOK, request(e, "/admin", editorToken).Code)

	rec := request(e, "/admin/users", editorToken)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin", rec.Header().Get("Location"))
}

func testSessionClaims(t *testing.T, auth *service.AuthService, email, password string) *service.SessionClaims {
	t.Helper()

	claims, err := auth.VerifyToken(loginToken(t, auth, email, password))
	require.NoError(t, err)
	return claims
}

func TestRequireSessionReturns401(t *testing.T) {
	auth, _ := newGuardEnv(t)
	ctx := context.Background()
	require.NoError(t, auth.BootstrapAdmin(ctx, "admin@tilemart.co.kr", "changeme123", "대표관리자"))
	token := loginToken(t, auth, "admin@tilemart.co.kr", "changeme123")

	e := echo.New()
	api := e.Group("/api/admin", RequireSession(GuardConfig{AuthService: auth, Logger: zap.NewNop()}))
	api.GET("/me", func(c echo.Context) error {
		claims := GetClaims(c)
		require.NotNil(t, claims)
		return c.String(http.StatusOK, claims.Email)
	})

	rec := request(e, "/api/admin/me", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "인증이 필요합니다")

	rec = request(e, "/api/admin/me", token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin@tilemart.co.kr", rec.Body.String())
}

func TestRequireSessionAcceptsBearerHeader(t *testing.T) {
	auth, _ := newGuardEnv(t)
	ctx := context.Background()
	require.NoError(t, auth.BootstrapAdmin(ctx, "admin@tilemart.co.kr", "changeme123", "대표관리자"))
	token := loginToken(t, auth, "admin@tilemart.co.kr", "changeme123")

	e := echo.New()
	api := e.Group("/api/admin", RequireSession(GuardConfig{AuthService: auth, Logger: zap.NewNop()}))
	api.GET("/me", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	req := httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
