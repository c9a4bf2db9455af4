package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/montirku/montirku/internal/pkg/constants"
	"github.com/montirku/montirku/internal/pkg/database"
	"github.com/montirku/montirku/internal/pkg/errs"
	"github.com/montirku/montirku/internal/pkg/models"
)

// RequestRepo implements the service request repository against MongoDB
type RequestRepo struct {
	cfg        *models.Config
	collection *mongo.Collection
}

// NewRequestRepository creates a new service request repository
func NewRequestRepository(cfg *models.Config, mongoClient *database.MongoClient) *RequestRepo {
	return &RequestRepo{
		cfg:        cfg,
		collection: mongoClient.Collection(constants.CollectionServiceRequests),
	}
}

// CreateRequest inserts a new service request document
func (r *RequestRepo) CreateRequest(ctx context.Context, req *models.ServiceRequest) error {
	if _, err := r.collection.InsertOne(ctx, req); err != nil {
		return errs.Transient("failed to insert service request", err)
	}
	return nil
}

// GetRequest retrieves a service request by ID
func (r *RequestRepo) GetRequest(ctx context.Context, requestID string) (*models.ServiceRequest, error) {
	var req models.ServiceRequest
	err := r.collection.FindOne(ctx, bson.M{"_id": requestID}).Decode(&req)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NotFoundf("service request %s not found", requestID)
		}
		return nil, errs.Transient("failed to find service request", err)
	}
	return &req, nil
}

// UpdateStatus applies a status change with an optimistic precondition on
// the current status. The filter matches only when the document still holds
// the expected from status, so concurrent transitions resolve to exactly one
// winner without a lock.
func (r *RequestRepo) UpdateStatus(ctx context.Context, requestID string, from models.RequestStatus, update models.StatusUpdate) (bool, error) {
	filter := bson.M{"_id": requestID, "status": from}
	change := bson.M{
		"$set": bson.M{
			"status":     update.Status,
			"updated_at": update.Timestamp,
		},
		"$push": bson.M{"status_history": update},
	}

	result, err := r.collection.UpdateOne(ctx, filter, change)
	if err != nil {
		return false, errs.Transient("failed to update request status", err)
	}

	return result.MatchedCount == 1, nil
}

// ListByRequester retrieves a customer's requests, newest first
func (r *RequestRepo) ListByRequester(ctx context.Context, requesterID string) ([]*models.ServiceRequest, error) {
	return r.list(ctx, bson.M{"requester_id": requesterID})
}

// ListByMechanic retrieves a mechanic's assigned requests, newest first
func (r *RequestRepo) ListByMechanic(ctx context.Context, mechanicID string) ([]*models.ServiceRequest, error) {
	return r.list(ctx, bson.M{"mechanic_id": mechanicID})
}

func (r *RequestRepo) list(ctx context.Context, filter bson.M) ([]*models.ServiceRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, errs.Transient("failed to find service requests", err)
	}
	defer cursor.Close(ctx)

	var requests []*models.ServiceRequest
	for cursor.Next(ctx) {
		var req models.ServiceRequest
		if err := cursor.Decode(&req); err != nil {
			return nil, errs.Transient("failed to decode service request", err)
		}
		requests = append(requests, &req)
	}
	if err := cursor.Err(); err != nil {
		return nil, errs.Transient("cursor error", err)
	}

	return requests, nil
}
