package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"

	"github.com/montirku/montirku/internal/pkg/errs"
	"github.com/montirku/montirku/internal/pkg/models"
)

// PaymentGW implements an order-and-signature payment flow: a payment order
// is issued per shop order and the confirmation callback must carry an HMAC
// of "<payment order id>|<payment id>" under the shared secret
type PaymentGW struct {
	keyID     string
	keySecret string

	// issued maps shop order IDs to payment order IDs for verification
	issued map[string]string
}

// NewPaymentGW creates a new payment gateway client
func NewPaymentGW(keyID, keySecret string) *PaymentGW {
	return &PaymentGW{
		keyID:     keyID,
		keySecret: keySecret,
		issued:    make(map[string]string),
	}
}

// CreatePaymentOrder registers the order and returns its payment reference
func (g *PaymentGW) CreatePaymentOrder(_ context.Context, order *models.Order) (*models.PaymentOrder, error) {
	paymentOrderID := "order_" + uuid.New().String()
	g.issued[order.ID] = paymentOrderID

	return &models.PaymentOrder{
		ID:       paymentOrderID,
		OrderID:  order.ID,
		Amount:   order.Total,
		Currency: order.Currency,
		Receipt:  fmt.Sprintf("rcpt_%s", order.ID),
	}, nil
}

// VerifySignature checks the callback signature for an order
func (g *PaymentGW) VerifySignature(orderID, paymentID, signature string) error {
	paymentOrderID, ok := g.issued[orderID]
	if !ok {
		return errs.NotFoundf("no payment order issued for %s", orderID)
	}

	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(paymentOrderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return errs.Authorization("payment signature mismatch")
	}

	return nil
}
