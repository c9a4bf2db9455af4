package request

import (
	"context"

	"github.com/montirku/montirku/internal/pkg/models"
)

// RequestUC defines the interface for service request business logic
type RequestUC interface {
	CreateRequest(ctx context.Context, req *models.ServiceRequest) (*models.ServiceRequest, error)
	GetRequest(ctx context.Context, requestID string, actor *models.Identity) (*models.ServiceRequest, error)
	Transition(ctx context.Context, transition models.TransitionRequest) (*models.ServiceRequest, error)
	ListByRequester(ctx context.Context, requesterID string) ([]*models.ServiceRequest, error)
	ListByMechanic(ctx context.Context, mechanicID string) ([]*models.ServiceRequest, error)
}
