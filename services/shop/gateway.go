package shop

import (
	"context"

	"github.com/montirku/montirku/internal/pkg/models"
)

// PaymentGW defines the interface for the payment gateway
type PaymentGW interface {
	// CreatePaymentOrder registers the order with the gateway and returns
	// its payment order reference
	CreatePaymentOrder(ctx context.Context, order *models.Order) (*models.PaymentOrder, error)

	// VerifySignature checks the gateway's callback signature for an order
	VerifySignature(orderID, paymentID, signature string) error
}
