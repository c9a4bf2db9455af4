package request

import (
	"context"

	"github.com/montirku/montirku/internal/pkg/models"
)

// RequestRepo defines the interface for service request data access
type RequestRepo interface {
	CreateRequest(ctx context.Context, req *models.ServiceRequest) error
	GetRequest(ctx context.Context, requestID string) (*models.ServiceRequest, error)

	// UpdateStatus applies a status change only when the stored status still
	// equals from. Returns false without error when another writer got there
	// first.
	UpdateStatus(ctx context.Context, requestID string, from models.RequestStatus, update models.StatusUpdate) (bool, error)

	ListByRequester(ctx context.Context, requesterID string) ([]*models.ServiceRequest, error)
	ListByMechanic(ctx context.Context, mechanicID string) ([]*models.ServiceRequest, error)
}
