package usecase

import (
	"github.com/montirku/montirku/internal/pkg/models"
	"github.com/montirku/montirku/services/identity"
)

// IdentityUC implements the account use case interface
type IdentityUC struct {
	cfg           *models.Config
	identityRepo  identity.IdentityRepo
	identityCache identity.IdentityCache
}

// NewIdentityUC creates a new account use case
func NewIdentityUC(
	cfg *models.Config,
	identityRepo identity.IdentityRepo,
	identityCache identity.IdentityCache,
) *IdentityUC {
	return &IdentityUC{
		cfg:           cfg,
		identityRepo:  identityRepo,
		identityCache: identityCache,
	}
}
