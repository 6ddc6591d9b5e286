package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"
	"github.com/tilemart/tilemart/internal/middleware"
	"github.com/tilemart/tilemart/internal/models"
	"github.com/tilemart/tilemart/internal/service"
	"github.com/tilemart/tilemart/internal/xe"
	"go.uber.org/zap"
)

// ConsultationHandler 상담 관리 처리기
type ConsultationHandler struct {
	logger              *zap.Logger
	consultationService *service.ConsultationService
}

// NewConsultationHandler 상담 처리기 생성
func NewConsultationHandler(logger *zap.Logger, consultationService *service.ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{
		logger:              logger,
		consultationService: consultationService,
	}
}

// List 상담 목록
// GET /api/admin/consultations
func (h *ConsultationHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	page, err := h.consultationService.FindPage(ctx, service.ConsultationQuery{
		Page:       cast.ToInt(c.QueryParam("page")),
		Status:     models.ConsultationStatus(c.QueryParam("status")),
		Search:     c.QueryParam("search"),
		AssignedTo: c.QueryParam("assigned_to"),
	})
	if err != nil {
		return err
	}
	return ok(c, page)
}

// Get 상담 상세 + 이력
// GET /api/admin/consultations/:id
func (h *ConsultationHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	detail, err := h.consultationService.GetWithLogs(ctx, c.Param("id"))
	if err != nil {
		return err
	}
	return ok(c, detail)
}

// ChangeStatus 상태 변경
// PUT /api/admin/consultations/:id/status
func (h *ConsultationHandler) ChangeStatus(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Status models.ConsultationStatus `json:"status" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return xe.ErrInvalidParams
	}
	if err := c.Validate(&req); err != nil {
		return xe.ErrInvalidParams
	}

	claims := middleware.GetClaims(c)
	if err := h.consultationService.ChangeStatus(ctx, claims, c.Param("id"), req.Status); err != nil {
		return err
	}
	return ok(c, nil)
}

// AddNote 메모 추가
// POST /api/admin/consultations/:id/notes
func (h *ConsultationHandler) AddNote(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Note string `json:"note" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return xe.ErrInvalidParams
	}
	if err := c.Validate(&req); err != nil {
		return xe.ErrInvalidParams
	}

	claims := middleware.GetClaims(c)
	if err := h.consultationService.AddNote(ctx, claims, c.Param("id"), req.Note); err != nil {
		return err
	}
	return ok(c, nil)
}

// Assign 담당자 배정. admin_id가 비어 있으면 미배정 처리한다.
// PUT /api/admin/consultations/:id/assign
func (h *ConsultationHandler) Assign(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		AdminID string `json:"admin_id"`
	}
	if err := c.Bind(&req); err != nil {
		return xe.ErrInvalidParams
	}

	claims := middleware.GetClaims(c)
	if err := h.consultationService.Assign(ctx, claims, c.Param("id"), req.AdminID); err != nil {
		return err
	}
	return ok(c, nil)
}

// Delete 상담 삭제
// DELETE /api/admin/consultations/:id
func (h *ConsultationHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	claims := middleware.GetClaims(c)
	if err := h.consultationService.Delete(ctx, claims, c.Param("id")); err != nil {
		return err
	}

	h.logger.Info("consultation deleted",
		zap.String("consultation_id", c.Param("id")),
		zap.String("by", claims.AdminID))
	return ok(c, nil)
}

// Assignees 배정 가능한 관리자 목록
// GET /api/admin/consultations/assignees
func (h *ConsultationHandler) Assignees(c echo.Context) error {
	ctx := c.Request().Context()

	admins, err := h.consultationService.ActiveAdmins(ctx)
	if err != nil {
		return err
	}

	type assignee struct {
		ID   string `json:"admin_id"`
		Name string `json:"name"`
	}
	items := make([]assignee, 0, len(admins))
	for _, admin := range admins {
		items = append(items, assignee{ID: admin.ID, Name: admin.Name})
	}
	return ok(c, items)
}

// RegisterRoutes 상담 라우트 등록
func (h *ConsultationHandler) RegisterRoutes(g *echo.Group) {
	consultations := g.Group("/consultations")
	consultations.GET("", h.List)
	consultations.GET("/assignees", h.Assignees)
	consultations.GET("/:id", h.Get)
	consultations.PUT("/:id/status", h.ChangeStatus)
	consultations.POST("/:id/notes", h.AddNote)
	consultations.PUT("/:id/assign", h.Assign)
	consultations.DELETE("/:id", h.Delete)
}
