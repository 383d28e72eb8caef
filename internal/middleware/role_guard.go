package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// JWTのroleクレームに入ってくる値
const (
	RoleCustomer = "USER"
	RoleAdmin    = "ADMIN"
)

// RequireRole はAuthJWTがcontextへ保存したroleを検査する。
// フルフィルメント系（ステータス更新・履歴・ゾーン閲覧）はRoleAdminだけ通す。
func RequireRole(required string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(CtxUserRoleKey).(string)
			if !ok || role == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			if role != required {
				return c.JSON(http.StatusForbidden, errorJSON("forbidden"))
			}

			return next(c)
		}
	}
}
