package usecase

import (
	"github.com/montirku/montirku/internal/pkg/models"
	"github.com/montirku/montirku/services/request"
)

// RequestUC implements the service request use case interface
type RequestUC struct {
	cfg         *models.Config
	requestRepo request.RequestRepo
	requestGW   request.RequestGW
}

// NewRequestUC creates a new service request use case
func NewRequestUC(
	cfg *models.Config,
	requestRepo request.RequestRepo,
	requestGW request.RequestGW,
) *RequestUC {
	return &RequestUC{
		cfg:         cfg,
		requestRepo: requestRepo,
		requestGW:   requestGW,
	}
}
