package internal

import (
	"errors"
	"net/http"

	"github.com/go-orz/orz"
	"github.com/labstack/echo/v4"
	"github.com/tilemart/tilemart/internal/xe"
	"go.uber.org/zap"
)

// WithErrorHandler 핸들러에서 올라온 오류를 응답 포맷으로 변환한다.
// 예상 가능한 업무 오류는 메시지를 그대로 노출하고, 그 외는 500으로 감춘다.
func WithErrorHandler(logger *zap.Logger) func(next echo.HandlerFunc) echo.HandlerFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := next(c); err != nil {
				var he *echo.HTTPError
				if errors.As(err, &he) {
					return c.JSON(he.Code, orz.Map{
						"success": false,
						"error":   err.Error(),
					})
				}

				var oe *orz.Error
				if errors.As(err, &oe) {
					var code = http.StatusBadRequest
					if errors.Is(err, xe.ErrInvalidToken) {
						code = http.StatusUnauthorized
					}
					if errors.Is(err, xe.ErrPermissionDenied) {
						code = http.StatusForbidden
					}
					return c.JSON(code, orz.Map{
						"success": false,
						"error":   oe.Error(),
					})
				}

				logger.Sugar().Error("api", zap.Error(err))

				return c.JSON(http.StatusInternalServerError, orz.Map{
					"success": false,
					"error":   "서버 오류가 발생했습니다.",
				})
			}
			return nil
		}
	}
}
