package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/montirku/montirku/internal/pkg/errs"
	"github.com/montirku/montirku/internal/pkg/logger"
	"github.com/montirku/montirku/internal/pkg/models"
)

// CreateRequest validates and stores a new service request in the pending
// state and notifies the assigned mechanic
func (uc *RequestUC) CreateRequest(ctx context.Context, req *models.ServiceRequest) (*models.ServiceRequest, error) {
	if req.RequesterID == "" {
		return nil, errs.Validation("requester ID is required")
	}
	if req.MechanicID == "" {
		return nil, errs.Validation("mechanic ID is required")
	}
	if !req.Location.Valid() {
		return nil, errs.Validation("coordinates out of range")
	}
	if !req.ServiceType.Valid() {
		return nil, errs.Validationf("unknown service type: %s", req.ServiceType)
	}

	now := models.Now()
	req.ID = uuid.New().String()
	req.Status = models.RequestStatusPending
	req.StatusHistory = []models.StatusUpdate{{
		Status:    models.RequestStatusPending,
		Timestamp: now,
	}}
	req.CreatedAt = now
	req.UpdatedAt = now

	if err := uc.requestRepo.CreateRequest(ctx, req); err != nil {
		return nil, err
	}

	// Notification delivery is best effort; the request stands either way
	if err := uc.requestGW.NotifyNewRequest(ctx, req); err != nil {
		logger.Warn("Failed to notify mechanic about new request",
			logger.String("request_id", req.ID),
			logger.String("mechanic_id", req.MechanicID),
			logger.Err(err))
	}

	logger.Info("Service request created",
		logger.String("request_id", req.ID),
		logger.String("requester_id", req.RequesterID),
		logger.String("mechanic_id", req.MechanicID),
		logger.String("service_type", string(req.ServiceType)))

	return req, nil
}

// GetRequest retrieves a request, restricted to its two participants and
// admins
func (uc *RequestUC) GetRequest(ctx context.Context, requestID string, actor *models.Identity) (*models.ServiceRequest, error) {
	if requestID == "" {
		return nil, errs.Validation("request ID is required")
	}

	req, err := uc.requestRepo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if actor != nil && actor.Role != models.RoleAdmin &&
		actor.ID != req.RequesterID && actor.ID != req.MechanicID {
		return nil, errs.Authorization("not a participant of this request")
	}

	return req, nil
}

// Transition applies one status change to a request. Authorization depends
// on the actor: admins may apply any transition, the assigned mechanic
// drives the request forward and may cancel, and the requester may only
// cancel, only before the mechanic has arrived.
func (uc *RequestUC) Transition(ctx context.Context, transition models.TransitionRequest) (*models.ServiceRequest, error) {
	if transition.RequestID == "" {
		return nil, errs.Validation("request ID is required")
	}
	if transition.ActorID == "" {
		return nil, errs.Validation("actor ID is required")
	}
	if !transition.NewStatus.Valid() {
		return nil, errs.Validationf("unknown status: %s", transition.NewStatus)
	}

	req, err := uc.requestRepo.GetRequest(ctx, transition.RequestID)
	if err != nil {
		return nil, err
	}

	if err := authorizeTransition(req, transition); err != nil {
		return nil, err
	}

	if req.Status == transition.NewStatus {
		return nil, errs.InvalidTransitionf("request is already %s", req.Status)
	}
	if !req.Status.CanTransitionTo(transition.NewStatus) {
		if req.Status.Terminal() {
			return nil, errs.InvalidTransitionf("request is already %s and cannot change", req.Status)
		}
		return nil, errs.InvalidTransitionf("cannot move from %s to %s", req.Status, transition.NewStatus)
	}

	update := models.StatusUpdate{
		Status:    transition.NewStatus,
		Timestamp: models.Now(),
		Notes:     transition.Notes,
	}

	applied, err := uc.requestRepo.UpdateStatus(ctx, req.ID, req.Status, update)
	if err != nil {
		return nil, err
	}
	if !applied {
		// Lost the race against a concurrent transition; report the state
		// that actually won
		current, err := uc.requestRepo.GetRequest(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		return nil, errs.InvalidTransitionf("request is now %s", current.Status)
	}

	updated, err := uc.requestRepo.GetRequest(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := uc.requestGW.NotifyStatusChange(ctx, updated, update); err != nil {
		logger.Warn("Failed to notify about status change",
			logger.String("request_id", updated.ID),
			logger.String("status", string(update.Status)),
			logger.Err(err))
	}

	logger.Info("Service request transitioned",
		logger.String("request_id", updated.ID),
		logger.String("from", string(req.Status)),
		logger.String("to", string(update.Status)),
		logger.String("actor_id", transition.ActorID))

	return updated, nil
}

// authorizeTransition enforces who may request which target status
func authorizeTransition(req *models.ServiceRequest, transition models.TransitionRequest) error {
	if transition.ActorRole == models.RoleAdmin {
		return nil
	}

	if transition.NewStatus == models.RequestStatusCancelled {
		if transition.ActorID != req.RequesterID && transition.ActorID != req.MechanicID {
			return errs.Authorization("only the requester or the assigned mechanic may cancel")
		}
		return nil
	}

	if transition.ActorID != req.MechanicID {
		return errs.Authorizationf("only the assigned mechanic may set %s", transition.NewStatus)
	}
	return nil
}

// ListByRequester retrieves a customer's requests, newest first
func (uc *RequestUC) ListByRequester(ctx context.Context, requesterID string) ([]*models.ServiceRequest, error) {
	if requesterID == "" {
		return nil, errs.Validation("requester ID is required")
	}
	return uc.requestRepo.ListByRequester(ctx, requesterID)
}

// ListByMechanic retrieves a mechanic's assigned requests, newest first
func (uc *RequestUC) ListByMechanic(ctx context.Context, mechanicID string) ([]*models.ServiceRequest, error) {
	if mechanicID == "" {
		return nil, errs.Validation("mechanic ID is required")
	}
	return uc.requestRepo.ListByMechanic(ctx, mechanicID)
}
