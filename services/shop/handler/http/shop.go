package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/montirku/montirku/internal/pkg/middleware"
	"github.com/montirku/montirku/internal/pkg/models"
	"github.com/montirku/montirku/internal/utils"
	"github.com/montirku/montirku/services/shop"
)

// ShopHandler handles HTTP requests for the parts shop
type ShopHandler struct {
	shopUC shop.ShopUC
}

// NewShopHandler creates a new shop HTTP handler
func NewShopHandler(shopUC shop.ShopUC) *ShopHandler {
	return &ShopHandler{
		shopUC: shopUC,
	}
}

// ListProducts handles GET /products
func (h *ShopHandler) ListProducts(c echo.Context) error {
	products, err := h.shopUC.ListProducts(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	if products == nil {
		products = []*models.Product{}
	}
	return utils.SuccessResponse(c, http.StatusOK, "products found", products)
}

// GetProduct handles GET /products/:productID
func (h *ShopHandler) GetProduct(c echo.Context) error {
	product, err := h.shopUC.GetProduct(c.Request().Context(), c.Param("productID"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "product found", product)
}

// CheckoutBody is the request body for creating an order
type CheckoutBody struct {
	Items []models.CartLine `json:"items"`
}

// Checkout handles POST /orders/checkout
func (h *ShopHandler) Checkout(c echo.Context) error {
	identity := middleware.IdentityFromContext(c)
	if identity == nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var body CheckoutBody
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	order, paymentOrder, err := h.shopUC.Checkout(c.Request().Context(), identity.ID, body.Items)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "order created", echo.Map{
		"order":         order,
		"payment_order": paymentOrder,
	})
}

// ConfirmPaymentBody is the gateway callback payload
type ConfirmPaymentBody struct {
	PaymentID string `json:"payment_id"`
	Signature string `json:"signature"`
}

// ConfirmPayment handles POST /orders/:orderID/payment
func (h *ShopHandler) ConfirmPayment(c echo.Context) error {
	identity := middleware.IdentityFromContext(c)
	if identity == nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var body ConfirmPaymentBody
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	orderID := c.Param("orderID")

	// The order must belong to the caller before its payment can be confirmed
	if _, err := h.shopUC.GetOrder(c.Request().Context(), orderID, identity.ID); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	if err := h.shopUC.ConfirmPayment(c.Request().Context(), orderID, body.PaymentID, body.Signature); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	order, err := h.shopUC.GetOrder(c.Request().Context(), orderID, identity.ID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "payment confirmed", order)
}

// GetOrder handles GET /orders/:orderID
func (h *ShopHandler) GetOrder(c echo.Context) error {
	identity := middleware.IdentityFromContext(c)
	if identity == nil {
		return utils.UnauthorizedResponse(c, "")
	}

	order, err := h.shopUC.GetOrder(c.Request().Context(), c.Param("orderID"), identity.ID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "order found", order)
}

// ListOrders handles GET /orders
func (h *ShopHandler) ListOrders(c echo.Context) error {
	identity := middleware.IdentityFromContext(c)
	if identity == nil {
		return utils.UnauthorizedResponse(c, "")
	}

	orders, err := h.shopUC.ListOrders(c.Request().Context(), identity.ID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	if orders == nil {
		orders = []*models.Order{}
	}
	return utils.SuccessResponse(c, http.StatusOK, "orders found", orders)
}
