package handler

import (
	"github.com/go-orz/orz"
	"github.com/labstack/echo/v4"
	"github.com/tilemart/tilemart/internal/middleware"
	"github.com/tilemart/tilemart/internal/service"
	"github.com/tilemart/tilemart/internal/xe"
	"go.uber.org/zap"
)

// CatalogHandler 서비스/태그/사이트 설정 관리 처리기
type CatalogHandler struct {
	logger         *zap.Logger
	catalogService *service.CatalogService
}

// NewCatalogHandler 카탈로그 처리기 생성
func NewCatalogHandler(logger *zap.Logger, catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		logger:         logger,
		catalogService: catalogService,
	}
}

// ListServices 서비스 목록
// GET /api/admin/services
func (h *CatalogHandler) ListServices(c echo.Context) error {
	ctx := c.Request().Context()

	services, err := h.catalogService.ListServices(ctx)
	if err != nil {
		return err
	}
	return ok(c, services)
}

// GetService 서비스 상세
// GET /api/admin/services/:id
func (h *CatalogHandler) GetService(c echo.Context) error {
	ctx := c.Request().Context()

	detail, err := h.catalogService.GetService(ctx, c.Param("id"))
	if err != nil {
		return err
	}
	return ok(c, detail)
}

// CreateService 서비스 등록
// POST /api/admin/services
func (h *CatalogHandler) CreateService(c echo.Context) error {
	ctx := c.Request().Context()

	var req service.ServiceRequest
	if err := c.Bind(&req); err != nil {
		return xe.ErrInvalidParams
	}
	if err := c.Validate(&req); err != nil {
		return xe.ErrInvalidParams
	}

	claims := middleware.GetClaims(c)
	id, err := h.catalogService.CreateService(ctx, claims, req)
	if err != nil {
		return err
	}
	return ok(c, orz.Map{"service_id": id})
}

// UpdateService 서비스 수정
// PUT /api/admin/services/:id
func (h *CatalogHandler) UpdateService(c echo.Context) error {
	ctx := c.Request().Context()

	var req service.ServiceRequest
	if err := c.Bind(&req); err != nil {
		return xe.ErrInvalidParams
	}
	if err := c.Validate(&req); err != nil {
		return xe.ErrInvalidParams
	}

	claims := middleware.GetClaims(c)
	if err := h.catalogService.UpdateService(ctx, claims, c.Param("id"), req); err != nil {
		return err
	}
	return ok(c, nil)
}

// DeleteService 서비스 삭제
// DELETE /api/admin/services/:id
func (h *CatalogHandler) DeleteService(c echo.Context) error {
	ctx := c.Request().Context()

	claims := middleware.GetClaims(c)
	if err := h.catalogService.DeleteService(ctx, claims, c.Param("id")); err != nil {
		return err
	}
	return ok(c, nil)
}

// ToggleServiceActive 서비스 노출 여부 전환
// PUT /api/admin/services/:id/active
func (h *CatalogHandler) ToggleServiceActive(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Active bool `json:"active"`
	}
	if err := c.Bind(&req); err != nil {
		return xe.ErrInvalidParams
	}

	claims := middleware.GetClaims(c)
	if err := h.catalogService.ToggleServiceActive(ctx, claims, c.Param("id"), req.Active); err != nil {
		return err
	}
	return ok(c, nil)
}

// TagRequest 태그 등록/수정 요청
type TagRequest struct {
	Name string `json:"name" validate:"required"`
	Slug string `json:"slug" validate:"required"`
}

// ListTags 태그 목록
// GET /api/admin/tags
func (h *CatalogHandler) ListTags(c echo.Context) error {
	ctx := c.Request().Context()

	tags, err := h.catalogService.ListTags(ctx)
	if err != nil {
		return err
	}
	return ok(c, tags)
}

// CreateTag 태그 생성
// POST /api/admin/tags
func (h *CatalogHandler) CreateTag(c echo.Context) error {
	ctx := c.Request().Context()

	var req TagRequest
	if err := c.Bind(&req); err != nil {
		return xe.ErrInvalidParams
	}
	if err := c.Validate(&req); err != nil {
		return xe.ErrInvalidParams
	}

	claims := middleware.GetClaims(c)
	id, err := h.catalogService.CreateTag(ctx, claims, req.Name, req.Slug)
	if err != nil {
		return err
	}
	return ok(c, orz.Map{"tag_id": id})
}

// UpdateTag 태그 수정
// PUT /api/admin/tags/:id
func (h *CatalogHandler) UpdateTag(c echo.Context) error {
	ctx := c.Request().Context()

	var req TagRequest
	if err := c.Bind(&req); err != nil {
		return xe.ErrInvalidParams
	}
	if err := c.Validate(&req); err != nil {
		return xe.ErrInvalidParams
	}

	claims := middleware.GetClaims(c)
	if err := h.catalogService.UpdateTag(ctx, claims, c.Param("id"), req.Name, req.Slug); err != nil {
		return err
	}
	return ok(c, nil)
}

// DeleteTag 태그 삭제
// DELETE /api/admin/tags/:id
func (h *CatalogHandler) DeleteTag(c echo.Context) error {
	ctx := c.Request().Context()

	claims := middleware.GetClaims(c)
	if err := h.catalogService.DeleteTag(ctx, claims, c.Param("id")); err != nil {
		return err
	}
	return ok(c, nil)
}

// ListSettings 사이트 설정 조회
// GET /api/admin/settings
func (h *CatalogHandler) ListSettings(c echo.Context) error {
	ctx := c.Request().Context()

	settings, err := h.catalogService.ListSettings(ctx)
	if err != nil {
		return err
	}
	return ok(c, settings)
}

// UpdateSettings 사이트 설정 일괄 갱신
// PUT /api/admin/settings
func (h *CatalogHandler) UpdateSettings(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Settings []service.SettingUpdate `json:"settings" validate:"required,dive"`
	}
	if err := c.Bind(&req); err != nil {
		return xe.ErrInvalidParams
	}
	if err := c.Validate(&req); err != nil {
		return xe.ErrInvalidParams
	}

	claims := middleware.GetClaims(c)
	if err := h.catalogService.UpdateSettings(ctx, claims, req.Settings); err != nil {
		return err
	}
	return ok(c, nil)
}

// RegisterRoutes 카탈로그 라우트 등록
func (h *CatalogHandler) RegisterRoutes(g *echo.Group) {
	services := g.Group("/services")
	services.GET("", h.ListServices)
	services.GET("/:id", h.GetService)
	services.POST("", h.CreateService)
	services.PUT("/:id", h.UpdateService)
	services.DELETE("/:id", h.DeleteService)
	services.PUT("/:id/active", h.ToggleServiceActive)

	tags := g.Group("/tags")
	tags.GET("", h.ListTags)
	tags.POST("", h.CreateTag)
	tags.PUT("/:id", h.UpdateTag)
	tags.DELETE("/:id", h.DeleteTag)

	settings := g.Group("/settings")
	settings.GET("", h.ListSettings)
	settings.PUT("", h.UpdateSettings)
}
