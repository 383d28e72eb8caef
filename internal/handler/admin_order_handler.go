package handler

import (
	"net/http"
	"strconv"

	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/config"
	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/middleware"
	repo "github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/repository"
	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 管理側: 配送ステータス更新とゾーン設定の閲覧
type AdminOrderHandler struct {
	uc    *usecase.OrderStatusUsecase
	zones repo.ZoneRepository
}

func NewAdminOrderHandler(uc *usecase.OrderStatusUsecase, zones repo.ZoneRepository) *AdminOrderHandler {
	return &AdminOrderHandler{uc: uc, zones: zones}
}

func (h *AdminOrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/admin")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.RequireRole(middleware.RoleAdmin))

	g.PATCH("/orders/:id/status", h.updateStatus)
	g.GET("/orders/:id/history", h.history)
	g.GET("/zones", h.listZones)
}

func (h *AdminOrderHandler) updateStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req usecase.UpdateStatusInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.UpdateStatus(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminOrderHandler) history(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.History(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminOrderHandler) listZones(c echo.Context) error {
	zones, err := h.zones.ListZones(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "db error"})
	}
	return c.JSON(http.StatusOK, zones)
}
