package handler

import (
	"net/http"

	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/config"
	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/middleware"
	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/usecase"

	"github.com/labstack/echo/v4"
)

type CheckoutHandler struct {
	uc *usecase.CheckoutUsecase
}

func NewCheckoutHandler(uc *usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

type CheckoutRequest struct {
	Address usecase.CheckoutAddressInput `json:"address"`
}

func (h *CheckoutHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/checkout")
	g.Use(middleware.AuthJWT(cfg))

	g.POST("", h.create)
}

func (h *CheckoutHandler) create(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.PlaceOrder(c.Request().Context(), userID, usecase.PlaceOrderInput{
		Address: req.Address,
	})
	if err != nil {
		if he, ok := usecase.AsHTTPError(err); ok && he.Status == http.StatusPaymentRequired {
			middleware.CheckoutResults.WithLabelValues("payment_failed").Inc()
			//決済失敗。注文は残っているので再試行できる。
			return c.JSON(he.Status, map[string]interface{}{
				"error":     he.Message,
				"order":     out,
				"retryable": true,
			})
		}
		middleware.CheckoutResults.WithLabelValues("rejected").Inc()
		return writeError(c, err)
	}

	middleware.CheckoutResults.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, out)
}
