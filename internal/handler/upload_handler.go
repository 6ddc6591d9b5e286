package handler

import (
	"github.com/go-orz/orz"
	"github.com/labstack/echo/v4"
	"github.com/tilemart/tilemart/internal/service"
	"github.com/tilemart/tilemart/internal/xe"
	"go.uber.org/zap"
)

// UploadHandler 이미지 업로드 처리기
type UploadHandler struct {
	logger  *zap.Logger
	storage service.Storage
}

// NewUploadHandler 업로드 처리기 생성
func NewUploadHandler(logger *zap.Logger, storage service.Storage) *UploadHandler {
	return &UploadHandler{
		logger:  logger,
		storage: storage,
	}
}

// Upload 이미지 업로드. multipart의 file 필드를 받고 folder로 분류한다.
// POST /api/admin/uploads
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return xe.ErrInvalidUpload
	}

	src, err := fileHeader.Open()
	if err != nil {
		return xe.ErrInvalidUpload
	}
	defer src.Close()

	folder := c.FormValue("folder")
	url, err := h.storage.Put(folder, fileHeader.Filename, fileHeader.Size, src)
	if err != nil {
		return err
	}

	return ok(c, orz.Map{"url": url})
}

// RegisterRoutes 업로드 라우트 등록
func (h *UploadHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/uploads", h.Upload)
}
