package shop

import (
	"context"

	"github.com/montirku/montirku/internal/pkg/models"
)

// ShopUC defines the interface for shop business logic
type ShopUC interface {
	ListProducts(ctx context.Context, category string) ([]*models.Product, error)
	GetProduct(ctx context.Context, productID string) (*models.Product, error)

	// Checkout turns cart lines into an order plus a payment order for the
	// gateway
	Checkout(ctx context.Context, userID string, lines []models.CartLine) (*models.Order, *models.PaymentOrder, error)

	// ConfirmPayment verifies the gateway callback and marks the order paid
	ConfirmPayment(ctx context.Context, orderID, paymentID, signature string) error

	GetOrder(ctx context.Context, orderID, userID string) (*models.Order, error)
	ListOrders(ctx context.Context, userID string) ([]*models.Order, error)
}
