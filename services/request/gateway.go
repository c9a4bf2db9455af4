package request

import (
	"context"

	"github.com/montirku/montirku/internal/pkg/models"
)

// RequestGW defines the interface for outbound request notifications
type RequestGW interface {
	// NotifyNewRequest informs the assigned mechanic about a fresh request
	NotifyNewRequest(ctx context.Context, req *models.ServiceRequest) error

	// NotifyStatusChange informs the counterparty about a status transition
	NotifyStatusChange(ctx context.Context, req *models.ServiceRequest, update models.StatusUpdate) error
}
