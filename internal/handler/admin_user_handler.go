package handler

import (
	"github.com/go-orz/orz"
	"github.com/labstack/echo/v4"
	"github.com/tilemart/tilemart/internal/middleware"
	"github.com/tilemart/tilemart/internal/models"
	"github.com/tilemart/tilemart/internal/service"
	"github.com/tilemart/tilemart/internal/xe"
	"go.uber.org/zap"
)

// AdminUserHandler 관리자 계정 관리 처리기. 최고관리자 전용.
type AdminUserHandler struct {
	logger      *zap.Logger
	authService *service.AuthService
}

// NewAdminUserHandler 관리자 계정 처리기 생성
func NewAdminUserHandler(logger *zap.Logger, authService *service.AuthService) *AdminUserHandler {
	return &AdminUserHandler{
		logger:      logger,
		authService: authService,
	}
}

// List 관리자 목록
// GET /api/admin/users
func (h *AdminUserHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	claims := middleware.GetClaims(c)
	admins, err := h.authService.ListAdmins(ctx, claims)
	if err != nil {
		return err
	}
	return ok(c, admins)
}

// Create 관리자 생성
// POST /api/admin/users
func (h *AdminUserHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req service.CreateAdminRequest
	if err := c.Bind(&req); err != nil {
		return xe.ErrInvalidParams
	}
	if err := c.Validate(&req); err != nil {
		return xe.ErrInvalidParams
	}

	claims := middleware.GetClaims(c)
	id, err := h.authService.CreateAdmin(ctx, claims, req)
	if err != nil {
		return err
	}
	return ok(c, orz.Map{"admin_id": id})
}

// Update 관리자 프로필 수정
// PUT /api/admin/users/:id
func (h *AdminUserHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Name  string           `json:"name" validate:"required"`
		Email string           `json:"email" validate:"required"`
		Role  models.AdminRole `json:"role" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return xe.ErrInvalidParams
	}
	if err := c.Validate(&req); err != nil {
		return xe.ErrInvalidParams
	}

	claims := middleware.GetClaims(c)
	if err := h.authService.UpdateAdmin(ctx, claims, c.Param("id"), req.Name, req.Role, req.Email); err != nil {
		return err
	}
	return ok(c, nil)
}

// ResetPassword 비밀번호 재설정
// PUT /api/admin/users/:id/password
func (h *AdminUserHandler) ResetPassword(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Password string `json:"password" validate:"required,min=8"`
	}
	if err := c.Bind(&req); err != nil {
		return xe.ErrInvalidParams
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, 400, "비밀번호는 8자 이상이어야 합니다.")
	}

	claims := middleware.GetClaims(c)
	if err := h.authService.ResetPassword(ctx, claims, c.Param("id"), req.Password); err != nil {
		return err
	}
	return ok(c, nil)
}

// ToggleActive 관리자 활성/비활성 전환
// PUT /api/admin/users/:id/active
func (h *AdminUserHandler) ToggleActive(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Active bool `json:"active"`
	}
	if err := c.Bind(&req); err != nil {
		return xe.ErrInvalidParams
	}

	claims := middleware.GetClaims(c)
	if err := h.authService.ToggleActive(ctx, claims, c.Param("id"), req.Active); err != nil {
		return err
	}
	return ok(c, nil)
}

// RegisterRoutes 관리자 계정 라우트 등록
func (h *AdminUserHandler) RegisterRoutes(g *echo.Group) {
	users := g.Group("/users", middleware.RequireSuperAdmin())
	users.GET("", h.List)
	users.POST("", h.Create)
	users.PUT("/:id", h.Update)
	users.PUT("/:id/password", h.ResetPassword)
	users.PUT("/:id/active", h.ToggleActive)
}
