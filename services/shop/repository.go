package shop

import (
	"context"

	"github.com/montirku/montirku/internal/pkg/models"
)

// ShopRepo defines the interface for shop data access
type ShopRepo interface {
	ListProducts(ctx context.Context, category string) ([]*models.Product, error)
	GetProduct(ctx context.Context, productID string) (*models.Product, error)

	// CreateOrder inserts the order and its items in one transaction and
	// decrements stock; it fails the whole order when any line is short
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrder(ctx context.Context, orderID string) (*models.Order, error)
	ListOrdersByUser(ctx context.Context, userID string) ([]*models.Order, error)
	MarkOrderPaid(ctx context.Context, orderID string) error
}
