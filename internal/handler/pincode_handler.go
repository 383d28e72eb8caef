package handler

import (
	"net/http"

	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/pincode"

	"github.com/labstack/echo/v4"
)

// 住所フォームの自動補完用。認証不要。
type PincodeHandler struct {
	resolver *pincode.Resolver
}

func NewPincodeHandler(resolver *pincode.Resolver) *PincodeHandler {
	return &PincodeHandler{resolver: resolver}
}

func (h *PincodeHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/pincode/:code", h.lookup)
}

func (h *PincodeHandler) lookup(c echo.Context) error {
	code := c.Param("code")

	loc, err := h.resolver.Resolve(c.Request().Context(), code)
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "pincode not found"})
	}

	return c.JSON(http.StatusOK, loc)
}
