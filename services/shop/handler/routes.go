package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/montirku/montirku/internal/pkg/middleware"
	"github.com/montirku/montirku/internal/pkg/models"
	"github.com/montirku/montirku/services/shop"
	httpHandler "github.com/montirku/montirku/services/shop/handler/http"
)

// Handler combines all handlers for the shop service
type Handler struct {
	shopHTTP *httpHandler.ShopHandler
}

// NewHandler creates a new combined handler
func NewHandler(shopUC shop.ShopUC) *Handler {
	return &Handler{
		shopHTTP: httpHandler.NewShopHandler(shopUC),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, jwtConfig models.JWTConfig) {
	e.GET("/products", h.shopHTTP.ListProducts)
	e.GET("/products/:productID", h.shopHTTP.GetProduct)

	orders := e.Group("/orders", middleware.JWTAuthMiddleware(jwtConfig))
	orders.POST("/checkout", h.shopHTTP.Checkout)
	orders.GET("", h.shopHTTP.ListOrders)
	orders.GET("/:orderID", h.shopHTTP.GetOrder)
	orders.POST("/:orderID/payment", h.shopHTTP.ConfirmPayment)
}
