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

// CustomerHandler 고객 관리 처리기
type CustomerHandler struct {
	logger          *zap.Logger
	customerService *service.CustomerService
}

// NewCustomerHandler 고객 처리기 생성
func NewCustomerHandler(logger *zap.Logger, customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		logger:          logger,
		customerService: customerService,
	}
}

// List 고객 목록
// GET /api/admin/customers
func (h *CustomerHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	page, err := h.customerService.FindPage(ctx, service.CustomerQuery{
		Page:   cast.ToInt(c.QueryParam("page")),
		Search: c.QueryParam("search"),
	})
	if err != nil {
		return err
	}
	return ok(c, page)
}

// Get 고객 상세
// GET /api/admin/customers/:id
func (h *CustomerHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	customer, err := h.customerService.Get(ctx, c.Param("id"))
	if err != nil {
		return err
	}
	return ok(c, customer)
}

// Create 고객 등록
// POST /api/admin/customers
func (h *CustomerHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req service.CustomerRequest
	if err := c.Bind(&req); err != nil {
		return xe.ErrInvalidParams
	}
	if err := c.Validate(&req); err != nil {
		return xe.ErrInvalidParams
	}

	claims := middleware.GetClaims(c)
	id, err := h.customerService.Create(ctx, claims, req)
	if err != nil {
		return err
	}
	return ok(c, orz.Map{"customer_id": id})
}

// Update 고객 수정
// PUT /api/admin/customers/:id
func (h *CustomerHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()

	var req service.CustomerRequest
	if err := c.Bind(&req); err != nil {
		return xe.ErrInvalidParams
	}
	if err := c.Validate(&req); err != nil {
		return xe.ErrInvalidParams
	}

	claims := middleware.GetClaims(c)
	if err := h.customerService.Update(ctx, claims, c.Param("id"), req); err != nil {
		return err
	}
	return ok(c, nil)
}

// Delete 고객 삭제
// DELETE /api/admin/customers/:id
func (h *CustomerHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	claims := middleware.GetClaims(c)
	if err := h.customerService.Delete(ctx, claims, c.Param("id")); err != nil {
		return err
	}
	return ok(c, nil)
}

// RegisterRoutes 고객 라우트 등록
func (h *CustomerHandler) RegisterRoutes(g *echo.Group) {
	customers := g.Group("/customers")
	customers.GET("", h.List)
	customers.GET("/:id", h.Get)
	customers.POST("", h.Create)
	customers.PUT("/:id", h.Update)
	customers.DELETE("/:id", h.Delete)
}
