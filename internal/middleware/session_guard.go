package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/tilemart/tilemart/internal/service"
	"github.com/tilemart/tilemart/pkg/nostd"
	"go.uber.org/zap"
)

// ClaimsKey echo context에 세션 클레임을 저장하는 키
const ClaimsKey = "session_claims"

// GetClaims context에서 세션 클레임을 꺼낸다. 없으면 nil.
func GetClaims(c echo.Context) *service.SessionClaims {
	claims, _ := c.Get(ClaimsKey).(*service.SessionClaims)
	return claims
}

// GuardConfig 세션 가드 설정
type GuardConfig struct {
	AuthService *service.AuthService
	Logger      *zap.Logger
}

// SessionGuard 관리자 페이지 가드.
// 로그인 페이지는 세션이 있으면 /admin으로, 나머지 관리자 페이지는 세션이 없으면
// /admin/login으로 보낸다. 검증에 실패한 쿠키는 지워서 재돌입 루프를 막는다.
// /admin/users는 최고관리자만 접근할 수 있다.
func SessionGuard(config GuardConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			if path != "/admin" && !strings.HasPrefix(path, "/admin/") {
				return next(c)
			}

			claims := verify(c, config)
			isLoginPage := path == "/admin/login"

			if claims == nil {
				if isLoginPage {
					return next(c)
				}
				clearSessionCookie(c)
				return c.Redirect(http.StatusFound, "/admin/login")
			}

			if isLoginPage {
				return c.Redirect(http.StatusFound, "/admin")
			}
			if strings.HasPrefix(path, "/admin/users") && !claims.IsSuperAdmin() {
				config.Logger.Warn("user management denied",
					zap.String("admin_id", claims.AdminID),
					zap.String("path", path))
				return c.Redirect(http.StatusFound, "/admin")
			}

			c.Set(ClaimsKey, claims)
			return next(c)
		}
	}
}

// RequireSession 관리자 API 가드. 유효한 세션이 없으면 401을 돌려준다.
func RequireSession(config GuardConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := verify(c, config)
			if claims == nil {
				config.Logger.Warn("unauthorized api request",
					zap.String("path", c.Request().URL.Path),
					zap.String("remote_ip", c.RealIP()))
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"success": false,
					"error":   "인증이 필요합니다.",
				})
			}

			c.Set(ClaimsKey, claims)
			return next(c)
		}
	}
}

// RequireSuperAdmin 최고관리자 전용 API 가드. RequireSession 뒤에 걸어야 한다.
func RequireSuperAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := GetClaims(c)
			if !claims.IsSuperAdmin() {
				return c.JSON(http.StatusForbidden, map[string]interface{}{
					"success": false,
					"error":   "권한이 없습니다.",
				})
			}
			return next(c)
		}
	}
}

func verify(c echo.Context, config GuardConfig) *service.SessionClaims {
	token := nostd.GetToken(c)
	if token == "" {
		return nil
	}
	claims, err := config.AuthService.VerifyToken(token)
	if err != nil {
		return nil
	}
	return claims
}

func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     nostd.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
