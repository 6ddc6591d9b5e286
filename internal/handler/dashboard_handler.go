package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/tilemart/tilemart/internal/service"
	"go.uber.org/zap"
)

// DashboardHandler 대시보드 처리기
type DashboardHandler struct {
	logger           *zap.Logger
	dashboardService *service.DashboardService
}

// NewDashboardHandler 대시보드 처리기 생성
func NewDashboardHandler(logger *zap.Logger, dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		logger:           logger,
		dashboardService: dashboardService,
	}
}

// Stats 대시보드 요약 조회
// GET /api/admin/dashboard
func (h *DashboardHandler) Stats(c echo.Context) error {
	ctx := c.Request().Context()

	stats, err := h.dashboardService.GetStats(ctx)
	if err != nil {
		return err
	}
	return ok(c, stats)
}

// RegisterRoutes 대시보드 라우트 등록
func (h *DashboardHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/dashboard", h.Stats)
}
