package gateway

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/montirku/montirku/internal/pkg/constants"
	"github.com/montirku/montirku/internal/pkg/database"
	"github.com/montirku/montirku/internal/pkg/errs"
	natspkg "github.com/montirku/montirku/internal/pkg/nats"
	"github.com/montirku/montirku/internal/pkg/models"
)

// RequestGW delivers request notifications: each one is persisted to the
// notifications collection for the in-app feed and published to NATS for
// live listeners
type RequestGW struct {
	collection *mongo.Collection
	natsClient *natspkg.Client
}

// NewRequestGW creates a new request notification gateway
func NewRequestGW(mongoClient *database.MongoClient, natsClient *natspkg.Client) *RequestGW {
	return &RequestGW{
		collection: mongoClient.Collection(constants.CollectionNotifications),
		natsClient: natsClient,
	}
}

// NotifyNewRequest informs the assigned mechanic about a fresh request
func (g *RequestGW) NotifyNewRequest(ctx context.Context, req *models.ServiceRequest) error {
	notification := &models.Notification{
		ID:      uuid.New().String(),
		UserID:  req.MechanicID,
		Title:   "New service request",
		Message: fmt.Sprintf("%s needs %s assistance", req.RequesterName, req.ServiceType),
		Type:    models.NotificationTypeServiceRequest,
		Metadata: map[string]string{
			"request_id":   req.ID,
			"service_type": string(req.ServiceType),
		},
		CreatedAt: models.Now(),
	}

	return g.deliver(ctx, notification)
}

// NotifyStatusChange informs the counterparty about a status transition.
// A cancellation goes to the mechanic; every other transition is driven by
// the mechanic and goes to the requester.
func (g *RequestGW) NotifyStatusChange(ctx context.Context, req *models.ServiceRequest, update models.StatusUpdate) error {
	recipientID := req.RequesterID
	if update.Status == models.RequestStatusCancelled {
		recipientID = req.MechanicID
	}

	notification := &models.Notification{
		ID:      uuid.New().String(),
		UserID:  recipientID,
		Title:   "Request status updated",
		Message: fmt.Sprintf("Your service request is now %s", update.Status),
		Type:    models.NotificationTypeStatusUpdate,
		Metadata: map[string]string{
			"request_id": req.ID,
			"status":     string(update.Status),
		},
		CreatedAt: models.Now(),
	}

	return g.deliver(ctx, notification)
}

func (g *RequestGW) deliver(ctx context.Context, notification *models.Notification) error {
	if _, err := g.collection.InsertOne(ctx, notification); err != nil {
		return errs.Transient("failed to store notification", err)
	}

	subject := fmt.Sprintf(constants.SubjectNotifications, notification.UserID)
	if err := g.natsClient.PublishJSON(subject, notification); err != nil {
		return errs.Transient("failed to publish notification", err)
	}

	return nil
}
