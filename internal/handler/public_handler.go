package handler

import (
	"net/http"

	"github.com/go-orz/orz"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"
	"github.com/tilemart/tilemart/internal/service"
	"github.com/tilemart/tilemart/internal/xe"
	"go.uber.org/zap"
)

// PublicHandler 공개 페이지용 처리기. 인증 없이 호출된다.
type PublicHandler struct {
	logger              *zap.Logger
	portfolioService    *service.PortfolioService
	catalogService      *service.CatalogService
	consultationService *service.ConsultationService
}

// NewPublicHandler 공개 처리기 생성
func NewPublicHandler(
	logger *zap.Logger,
	portfolioService *service.PortfolioService,
	catalogService *service.CatalogService,
	consultationService *service.ConsultationService,
) *PublicHandler {
	return &PublicHandler{
		logger:              logger,
		portfolioService:    portfolioService,
		catalogService:      catalogService,
		consultationService: consultationService,
	}
}

// Health 상태 확인
// GET /health
func (h *PublicHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, orz.Map{"status": "ok"})
}

// ListPortfolios 공개 시공사례 목록
// GET /api/portfolios
func (h *PublicHandler) ListPortfolios(c echo.Context) error {
	ctx := c.Request().Context()

	portfolios, err := h.portfolioService.FindPublic(ctx)
	if err != nil {
		return err
	}
	return ok(c, portfolios)
}

// FeaturedPortfolios 히어로 슬라이더용 대표 시공사례
// GET /api/portfolios/featured
func (h *PublicHandler) FeaturedPortfolios(c echo.Context) error {
	ctx := c.Request().Context()

	portfolios, err := h.portfolioService.FindFeatured(ctx)
	if err != nil {
		return err
	}
	return ok(c, portfolios)
}

// GetPortfolio 공개 시공사례 상세
// GET /api/portfolios/:id
func (h *PublicHandler) GetPortfolio(c echo.Context) error {
	ctx := c.Request().Context()

	detail, err := h.portfolioService.GetPublic(ctx, c.Param("id"))
	if err != nil {
		return err
	}
	return ok(c, detail)
}

// AdjacentPortfolios 상세 페이지 이동용 이전/다음
// GET /api/portfolios/:id/adjacent
func (h *PublicHandler) AdjacentPortfolios(c echo.Context) error {
	ctx := c.Request().Context()

	adjacent, err := h.portfolioService.FindAdjacent(ctx, c.Param("id"))
	if err != nil {
		return err
	}
	return ok(c, adjacent)
}

// RelatedPortfolios 서비스별 관련 시공사례
// GET /api/portfolios/related?service_id=&limit=
func (h *PublicHandler) RelatedPortfolios(c echo.Context) error {
	ctx := c.Request().Context()

	serviceID := c.QueryParam("service_id")
	if serviceID == "" {
		return xe.ErrInvalidParams
	}
	limit := cast.ToInt(c.QueryParam("limit"))

	portfolios, err := h.portfolioService.FindRelated(ctx, serviceID, limit)
	if err != nil {
		return err
	}
	return ok(c, portfolios)
}

// ListServices 공개 서비스 목록
// GET /api/services
func (h *PublicHandler) ListServices(c echo.Context) error {
	ctx := c.Request().Context()

	services, err := h.catalogService.ListActiveServices(ctx)
	if err != nil {
		return err
	}
	return ok(c, services)
}

// GetServiceBySlug 공개 서비스 상세
// GET /api/services/:slug
func (h *PublicHandler) GetServiceBySlug(c echo.Context) error {
	ctx := c.Request().Context()

	detail, err := h.catalogService.GetServiceBySlug(ctx, c.Param("slug"))
	if err != nil {
		return err
	}
	return ok(c, detail)
}

// ListTags 공개 태그 목록
// GET /api/tags
func (h *PublicHandler) ListTags(c echo.Context) error {
	ctx := c.Request().Context()

	tags, err := h.catalogService.ListTags(ctx)
	if err != nil {
		return err
	}
	return ok(c, tags)
}

// ListSettings 공개 사이트 설정
// GET /api/settings
func (h *PublicHandler) ListSettings(c echo.Context) error {
	ctx := c.Request().Context()

	settings, err := h.catalogService.ListSettings(ctx)
	if err != nil {
		return err
	}
	return ok(c, settings)
}

// CreateConsultation 상담 신청 접수
// POST /api/consultations
func (h *PublicHandler) CreateConsultation(c echo.Context) error {
	ctx := c.Request().Context()

	var req service.CreateConsultationRequest
	if err := c.Bind(&req); err != nil {
		return xe.ErrInvalidParams
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, "이름, 연락처, 공간 유형을 입력해 주세요.")
	}

	id, err := h.consultationService.Create(ctx, req)
	if err != nil {
		return err
	}

	h.logger.Info("consultation received",
		zap.String("consultation_id", id),
		zap.String("remote_ip", c.RealIP()))
	return ok(c, orz.Map{"consultation_id": id})
}

// RegisterRoutes 공개 라우트 등록
func (h *PublicHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/portfolios", h.ListPortfolios)
	g.GET("/portfolios/featured", h.FeaturedPortfolios)
	g.GET("/portfolios/related", h.RelatedPortfolios)
	g.GET("/portfolios/:id", h.GetPortfolio)
	g.GET("/portfolios/:id/adjacent", h.AdjacentPortfolios)
	g.GET("/services", h.ListServices)
	g.GET("/services/:slug", h.GetServiceBySlug)
	g.GET("/tags", h.ListTags)
	g.GET("/settings", h.ListSettings)
	g.POST("/consultations", h.CreateConsultation)
}
