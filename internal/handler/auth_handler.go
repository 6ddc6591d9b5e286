package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/tilemart/tilemart/internal/middleware"
	"github.com/tilemart/tilemart/internal/service"
	"github.com/tilemart/tilemart/internal/xe"
	"github.com/tilemart/tilemart/pkg/nostd"
	"go.uber.org/zap"
)

// 세션 쿠키 유효기간(초). 토큰 유효기간과 같다.
const sessionCookieMaxAge = 24 * 60 * 60

// AuthHandler 인증 처리기
type AuthHandler struct {
	logger      *zap.Logger
	authService *service.AuthService
}

// NewAuthHandler 인증 처리기 생성
func NewAuthHandler(logger *zap.Logger, authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		logger:      logger,
		authService: authService,
	}
}

// Login 관리자 로그인
// POST /api/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req service.LoginRequest
	if err := c.Bind(&req); err != nil {
		return xe.ErrInvalidParams
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, "이메일과 비밀번호를 입력해 주세요.")
	}

	resp, err := h.authService.Login(ctx, req, c.RealIP())
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     nostd.SessionCookie,
		Value:    resp.Token,
		Path:     "/",
		MaxAge:   sessionCookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return ok(c, resp.Admin)
}

// Logout 로그아웃. 쿠키를 만료시킨다.
// POST /api/auth/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     nostd.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Unix(0, 0),
	})
	return ok(c, nil)
}

// Me 현재 세션 관리자 조회
// GET /api/admin/me
func (h *AuthHandler) Me(c echo.Context) error {
	ctx := c.Request().Context()

	claims := middleware.GetClaims(c)
	if claims == nil {
		return xe.ErrInvalidToken
	}

	admin, err := h.authService.GetCurrentAdmin(ctx, claims.AdminID)
	if err != nil {
		h.logger.Error("failed to get current admin", zap.Error(err))
		return err
	}
	return ok(c, admin)
}

// RegisterRoutes 공개 라우트 등록
func (h *AuthHandler) RegisterRoutes(g *echo.Group) {
	auth := g.Group("/auth")
	auth.POST("/login", h.Login)
	auth.POST("/logout", h.Logout)
}

// RegisterProtectedRoutes 인증 라우트 등록
func (h *AuthHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.GET("/me", h.Me)
}
