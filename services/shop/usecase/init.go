package usecase

import (
	"github.com/montirku/montirku/internal/pkg/models"
	"github.com/montirku/montirku/services/shop"
)

// ShopUC implements the shop use case interface
type ShopUC struct {
	cfg       *models.Config
	shopRepo  shop.ShopRepo
	paymentGW shop.PaymentGW
}

// NewShopUC creates a new shop use case
func NewShopUC(
	cfg *models.Config,
	shopRepo shop.ShopRepo,
	paymentGW shop.PaymentGW,
) *ShopUC {
	return &ShopUC{
		cfg:       cfg,
		shopRepo:  shopRepo,
		paymentGW: paymentGW,
	}
}
