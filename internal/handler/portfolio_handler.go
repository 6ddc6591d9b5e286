package handler

import (
	"github.com/go-orz/orz"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"
	"github.com/tilemart/tilemart/internal/middleware"
	"github.com/tilemart/tilemart/internal/service"
	"github.com/tilemart/tilemart/internal/xe"
	"go.uber.org/zap"
)

// PortfolioHandler 시공사례 관리 처리기
type PortfolioHandler struct {
	logger           *zap.Logger
	portfolioService *service.PortfolioService
}

// NewPortfolioHandler 시공사례 처리기 생성
func NewPortfolioHandler(logger *zap.Logger, portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		logger:           logger,
		portfolioService: portfolioService,
	}
}

// List 시공사례 목록
// GET /api/admin/portfolios
func (h *PortfolioHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	page, err := h.portfolioService.FindPage(ctx, service.PortfolioQuery{
		Page:      cast.ToInt(c.QueryParam("page")),
		Search:    c.QueryParam("search"),
		ServiceID: c.QueryParam("service_id"),
	})
	if err != nil {
		return err
	}
	return ok(c, page)
}

// Get 시공사례 상세
// GET /api/admin/portfolios/:id
func (h *PortfolioHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	detail, err := h.portfolioService.Get(ctx, c.Param("id"))
	if err != nil {
		return err
	}
	return ok(c, detail)
}

// Create 시공사례 등록
// POST /api/admin/portfolios
func (h *PortfolioHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req service.PortfolioRequest
	if err := c.Bind(&req); err != nil {
		return xe.ErrInvalidParams
	}
	if err := c.Validate(&req); err != nil {
		return xe.ErrInvalidParams
	}

	claims := middleware.GetClaims(c)
	id, err := h.portfolioService.Create(ctx, claims, req)
	if err != nil {
		return err
	}
	return ok(c, orz.Map{"portfolio_id": id})
}

// Update 시공사례 수정
// PUT /api/admin/portfolios/:id
func (h *PortfolioHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()

	var req service.PortfolioRequest
	if err := c.Bind(&req); err != nil {
		return xe.ErrInvalidParams
	}
	if err := c.Validate(&req); err != nil {
		return xe.ErrInvalidParams
	}

	claims := middleware.GetClaims(c)
	if err := h.portfolioService.Update(ctx, claims, c.Param("id"), req); err != nil {
		return err
	}
	return ok(c, nil)
}

// Delete 시공사례 삭제
// DELETE /api/admin/portfolios/:id
func (h *PortfolioHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	claims := middleware.GetClaims(c)
	if err := h.portfolioService.Delete(ctx, claims, c.Param("id")); err != nil {
		return err
	}
	return ok(c, nil)
}

// ToggleFeatured 대표 여부 전환
// PUT /api/admin/portfolios/:id/featured
func (h *PortfolioHandler) ToggleFeatured(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Featured bool `json:"featured"`
	}
	if err := c.Bind(&req); err != nil {
		return xe.ErrInvalidParams
	}

	claims := middleware.GetClaims(c)
	if err := h.portfolioService.ToggleFeatured(ctx, claims, c.Param("id"), req.Featured); err != nil {
		return err
	}
	return ok(c, nil)
}

// ToggleActive 노출 여부 전환
// PUT /api/admin/portfolios/:id/active
func (h *PortfolioHandler) ToggleActive(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Active bool `json:"active"`
	}
	if err := c.Bind(&req); err != nil {
		return xe.ErrInvalidParams
	}

	claims := middleware.GetClaims(c)
	if err := h.portfolioService.ToggleActive(ctx, claims, c.Param("id"), req.Active); err != nil {
		return err
	}
	return ok(c, nil)
}

// RegisterRoutes 시공사례 라우트 등록
func (h *PortfolioHandler) RegisterRoutes(g *echo.Group) {
	portfolios := g.Group("/portfolios")
	portfolios.GET("", h.List)
	portfolios.GET("/:id", h.Get)
	portfolios.POST("", h.Create)
	portfolios.PUT("/:id", h.Update)
	portfolios.DELETE("/:id", h.Delete)
	portfolios.PUT("/:id/featured", h.ToggleFeatured)
	portfolios.PUT("/:id/active", h.ToggleActive)
}
