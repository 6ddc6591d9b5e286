package handler

import (
	"net/http"

	"github.com/go-orz/orz"
	"github.com/labstack/echo/v4"
)

// ok 성공 응답 공통 포맷
func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, orz.Map{
		"success": true,
		"data":    data,
	})
}

// fail 실패 응답 공통 포맷. 예상 가능한 실패는 본문으로 전달한다.
func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, orz.Map{
		"success": false,
		"error":   message,
	})
}
