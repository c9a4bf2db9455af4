package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/montirku/montirku/internal/pkg/errs"
	"github.com/montirku/montirku/internal/pkg/logger"
	"github.com/montirku/montirku/internal/pkg/models"
)

// ListProducts retrieves the catalog, optionally filtered by category
func (uc *ShopUC) ListProducts(ctx context.Context, category string) ([]*models.Product, error) {
	return uc.shopRepo.ListProducts(ctx, category)
}

// GetProduct retrieves one product by ID
func (uc *ShopUC) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	if productID == "" {
		return nil, errs.Validation("product ID is required")
	}
	return uc.shopRepo.GetProduct(ctx, productID)
}

// Checkout prices the cart against the current catalog, persists the order
// and returns the payment order to complete it with. Prices come from the
// store, never from the client.
func (uc *ShopUC) Checkout(ctx context.Context, userID string, lines []models.CartLine) (*models.Order, *models.PaymentOrder, error) {
	if userID == "" {
		return nil, nil, errs.Validation("user ID is required")
	}
	if len(lines) == 0 {
		return nil, nil, errs.Validation("cart is empty")
	}

	now := models.Now()
	order := &models.Order{
		ID:        uuid.New().String(),
		UserID:    userID,
		Status:    models.OrderStatusCreated,
		Currency:  uc.cfg.Shop.Currency,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, nil, errs.Validation("quantity must be positive")
		}

		product, err := uc.shopRepo.GetProduct(ctx, line.ProductID)
		if err != nil {
			return nil, nil, err
		}

		order.Items = append(order.Items, models.OrderItem{
			ID:        uuid.New().String(),
			OrderID:   order.ID,
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  line.Quantity,
		})
		order.Total += product.Price * int64(line.Quantity)
	}

	if err := uc.shopRepo.CreateOrder(ctx, order); err != nil {
		return nil, nil, err
	}

	paymentOrder, err := uc.paymentGW.CreatePaymentOrder(ctx, order)
	if err != nil {
		return nil, nil, errs.Transient("failed to create payment order", err)
	}

	logger.Info("Order created",
		logger.String("order_id", order.ID),
		logger.String("user_id", userID),
		logger.Int64("total", order.Total))

	return order, paymentOrder, nil
}

// ConfirmPayment verifies the gateway callback and marks the order paid
func (uc *ShopUC) ConfirmPayment(ctx context.Context, orderID, paymentID, signature string) error {
	if orderID == "" || paymentID == "" || signature == "" {
		return errs.Validation("order ID, payment ID and signature are required")
	}

	if err := uc.paymentGW.VerifySignature(orderID, paymentID, signature); err != nil {
		return err
	}

	if err := uc.shopRepo.MarkOrderPaid(ctx, orderID); err != nil {
		return err
	}

	logger.Info("Order paid",
		logger.String("order_id", orderID),
		logger.String("payment_id", paymentID))

	return nil
}

// GetOrder retrieves an order, restricted to its owner
func (uc *ShopUC) GetOrder(ctx context.Context, orderID, userID string) (*models.Order, error) {
	if orderID == "" {
		return nil, errs.Validation("order ID is required")
	}

	order, err := uc.shopRepo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, errs.Authorization("not your order")
	}

	return order, nil
}

// ListOrders retrieves a user's orders, newest first
func (uc *ShopUC) ListOrders(ctx context.Context, userID string) ([]*models.Order, error) {
	if userID == "" {
		return nil, errs.Validation("user ID is required")
	}
	return uc.shopRepo.ListOrdersByUser(ctx, userID)
}
