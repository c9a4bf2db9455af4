package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/montirku/montirku/internal/pkg/errs"
	"github.com/montirku/montirku/internal/pkg/models"
	"github.com/montirku/montirku/services/request/mocks"
)

const (
	testRequesterID = "u-requester"
	testMechanicID  = "m-mechanic"
	testRequestID   = "r-1"
)

func pendingRequest() *models.ServiceRequest {
	now := models.Now()
	return &models.ServiceRequest{
		ID:            testRequestID,
		RequesterID:   testRequesterID,
		RequesterName: "Budi Santoso",
		MechanicID:    testMechanicID,
		Location:      models.Location{Latitude: 28.6139, Longitude: 77.2090},
		ServiceType:   models.ServiceTypeTowing,
		Status:        models.RequestStatusPending,
		StatusHistory: []models.StatusUpdate{{Status: models.RequestStatusPending, Timestamp: now}},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func requestWithStatus(status models.RequestStatus) *models.ServiceRequest {
	req := pendingRequest()
	req.Status = status
	req.StatusHistory = append(req.StatusHistory, models.StatusUpdate{Status: status, Timestamp: models.Now()})
	return req
}

func newUC(t *testing.T) (*RequestUC, *mocks.MockRequestRepo, *mocks.MockRequestGW, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRequestRepo(ctrl)
	gw := mocks.NewMockRequestGW(ctrl)
	uc := NewRequestUC(&models.Config{}, repo, gw)
	return uc, repo, gw, ctrl
}

func TestCreateRequest(t *testing.T) {
	uc, repo, gw, ctrl := newUC(t)
	defer ctrl.Finish()

	ctx := context.Background()

	repo.EXPECT().CreateRequest(ctx, gomock.Any()).Return(nil)
	gw.EXPECT().NotifyNewRequest(ctx, gomock.Any()).Return(nil)

	req := &models.ServiceRequest{
		RequesterID:   testRequesterID,
		RequesterName: "Budi Santoso",
		MechanicID:    testMechanicID,
		Location:      models.Location{Latitude: 28.6139, Longitude: 77.2090},
		ServiceType:   models.ServiceTypeBattery,
		Description:   "dead battery near the toll gate",
	}

	created, err := uc.CreateRequest(ctx, req)
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.RequestStatusPending, created.Status)
	require.Len(t, created.StatusHistory, 1)
	assert.Equal(t, models.RequestStatusPending, created.StatusHistory[0].Status)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
}

func TestCreateRequest_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		req  *models.ServiceRequest
	}{
		{"missing requester", &models.ServiceRequest{MechanicID: testMechanicID, ServiceType: models.ServiceTypeTowing}},
		{"missing mechanic", &models.ServiceRequest{RequesterID: testRequesterID, ServiceType: models.ServiceTypeTowing}},
		{"bad coordinates", &models.ServiceRequest{
			RequesterID: testRequesterID, MechanicID: testMechanicID,
			Location: models.Location{Latitude: 95}, ServiceType: models.ServiceTypeTowing,
		}},
		{"bad service type", &models.ServiceRequest{
			RequesterID: testRequesterID, MechanicID: testMechanicID,
			ServiceType: models.ServiceType("welding"),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, _, ctrl := newUC(t)
			defer ctrl.Finish()

			_, err := uc.CreateRequest(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, errs.IsValidation(err))
		})
	}
}

func TestCreateRequest_NotificationFailureIsSwallowed(t *testing.T) {
	uc, repo, gw, ctrl := newUC(t)
	defer ctrl.Finish()

	ctx := context.Background()

	repo.EXPECT().CreateRequest(ctx, gomock.Any()).Return(nil)
	gw.EXPECT().NotifyNewRequest(ctx, gomock.Any()).Return(errors.New("nats down"))

	req := &models.ServiceRequest{
		RequesterID: testRequesterID,
		MechanicID:  testMechanicID,
		Location:    models.Location{Latitude: 28.6139, Longitude: 77.2090},
		ServiceType: models.ServiceTypeTowing,
	}

	created, err := uc.CreateRequest(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusPending, created.Status)
}

func TestTransition_HappyPath(t *testing.T) {
	tests := []struct {
		name      string
		current   models.RequestStatus
		target    models.RequestStatus
		actorID   string
		actorRole string
	}{
		{"mechanic accepts pending", models.RequestStatusPending, models.RequestStatusAccepted, testMechanicID, models.RoleMechanic},
		{"mechanic reaches accepted", models.RequestStatusAccepted, models.RequestStatusReached, testMechanicID, models.RoleMechanic},
		{"mechanic completes reached", models.RequestStatusReached, models.RequestStatusCompleted, testMechanicID, models.RoleMechanic},
		{"requester cancels pending", models.RequestStatusPending, models.RequestStatusCancelled, testRequesterID, models.RoleUser},
		{"requester cancels accepted", models.RequestStatusAccepted, models.RequestStatusCancelled, testRequesterID, models.RoleUser},
		{"mechanic cancels pending", models.RequestStatusPending, models.RequestStatusCancelled, testMechanicID, models.RoleMechanic},
		{"mechanic cancels accepted", models.RequestStatusAccepted, models.RequestStatusCancelled, testMechanicID, models.RoleMechanic},
		{"admin accepts pending", models.RequestStatusPending, models.RequestStatusAccepted, "u-admin", models.RoleAdmin},
		{"admin completes reached", models.RequestStatusReached, models.RequestStatusCompleted, "u-admin", models.RoleAdmin},
		{"admin cancels accepted", models.RequestStatusAccepted, models.RequestStatusCancelled, "u-admin", models.RoleAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo, gw, ctrl := newUC(t)
			defer ctrl.Finish()

			ctx := context.Background()
			before := requestWithStatus(tt.current)
			after := requestWithStatus(tt.target)

			repo.EXPECT().GetRequest(ctx, testRequestID).Return(before, nil)
			repo.EXPECT().UpdateStatus(ctx, testRequestID, tt.current, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, _ models.RequestStatus, update models.StatusUpdate) (bool, error) {
					assert.Equal(t, tt.target, update.Status)
					assert.False(t, update.Timestamp.IsZero())
					return true, nil
				})
			repo.EXPECT().GetRequest(ctx, testRequestID).Return(after, nil)
			gw.EXPECT().NotifyStatusChange(ctx, after, gomock.Any()).Return(nil)

			updated, err := uc.Transition(ctx, models.TransitionRequest{
				RequestID: testRequestID,
				ActorID:   tt.actorID,
				ActorRole: tt.actorRole,
				NewStatus: tt.target,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.target, updated.Status)
		})
	}
}

func TestTransition_InvalidTransitions(t *testing.T) {
	tests := []struct {
		name    string
		current models.RequestStatus
		target  models.RequestStatus
		actorID string
	}{
		{"skip ahead pending to reached", models.RequestStatusPending, models.RequestStatusReached, testMechanicID},
		{"skip ahead pending to completed", models.RequestStatusPending, models.RequestStatusCompleted, testMechanicID},
		{"skip ahead accepted to completed", models.RequestStatusAccepted, models.RequestStatusCompleted, testMechanicID},
		{"cancel after reached", models.RequestStatusReached, models.RequestStatusCancelled, testRequesterID},
		{"completed is terminal", models.RequestStatusCompleted, models.RequestStatusCancelled, testRequesterID},
		{"cancelled is terminal", models.RequestStatusCancelled, models.RequestStatusAccepted, testMechanicID},
		{"repeat accepted", models.RequestStatusAccepted, models.RequestStatusAccepted, testMechanicID},
		{"cannot return to pending", models.RequestStatusAccepted, models.RequestStatusPending, testMechanicID},
		{"repeat pending", models.RequestStatusPending, models.RequestStatusPending, testMechanicID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo, _, ctrl := newUC(t)
			defer ctrl.Finish()

			ctx := context.Background()
			repo.EXPECT().GetRequest(ctx, testRequestID).Return(requestWithStatus(tt.current), nil)

			_, err := uc.Transition(ctx, models.TransitionRequest{
				RequestID: testRequestID,
				ActorID:   tt.actorID,
				NewStatus: tt.target,
			})
			require.Error(t, err)
			assert.True(t, errs.IsInvalidTransition(err), "expected invalid transition, got: %v", err)
		})
	}
}

func TestTransition_AuthorizationErrors(t *testing.T) {
	tests := []struct {
		name    string
		current models.RequestStatus
		target  models.RequestStatus
		actorID string
	}{
		{"requester cannot accept", models.RequestStatusPending, models.RequestStatusAccepted, testRequesterID},
		{"requester cannot complete", models.RequestStatusReached, models.RequestStatusCompleted, testRequesterID},
		{"requester cannot reset to pending", models.RequestStatusAccepted, models.RequestStatusPending, testRequesterID},
		{"stranger cannot accept", models.RequestStatusPending, models.RequestStatusAccepted, "u-stranger"},
		{"stranger cannot cancel", models.RequestStatusPending, models.RequestStatusCancelled, "u-stranger"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo, _, ctrl := newUC(t)
			defer ctrl.Finish()

			ctx := context.Background()
			repo.EXPECT().GetRequest(ctx, testRequestID).Return(requestWithStatus(tt.current), nil)

			_, err := uc.Transition(ctx, models.TransitionRequest{
				RequestID: testRequestID,
				ActorID:   tt.actorID,
				NewStatus: tt.target,
			})
			require.Error(t, err)
			assert.True(t, errs.IsAuthorization(err), "expected authorization error, got: %v", err)
		})
	}
}

func TestTransition_ValidationErrors(t *testing.T) {
	uc, _, _, ctrl := newUC(t)
	defer ctrl.Finish()

	ctx := context.Background()

	_, err := uc.Transition(ctx, models.TransitionRequest{ActorID: testMechanicID, NewStatus: models.RequestStatusAccepted})
	assert.True(t, errs.IsValidation(err))

	_, err = uc.Transition(ctx, models.TransitionRequest{RequestID: testRequestID, NewStatus: models.RequestStatusAccepted})
	assert.True(t, errs.IsValidation(err))

	_, err = uc.Transition(ctx, models.TransitionRequest{RequestID: testRequestID, ActorID: testMechanicID, NewStatus: "driving"})
	assert.True(t, errs.IsValidation(err))
}

func TestTransition_NotFound(t *testing.T) {
	uc, repo, _, ctrl := newUC(t)
	defer ctrl.Finish()

	ctx := context.Background()
	repo.EXPECT().GetRequest(ctx, "r-missing").Return(nil, errs.NotFoundf("service request %s not found", "r-missing")).Times(2)

	_, err := uc.Transition(ctx, models.TransitionRequest{
		RequestID: "r-missing",
		ActorID:   testMechanicID,
		NewStatus: models.RequestStatusAccepted,
	})
	assert.True(t, errs.IsNotFound(err))

	// A pending target is classified after the request lookup, so a missing
	// request still surfaces as not found
	_, err = uc.Transition(ctx, models.TransitionRequest{
		RequestID: "r-missing",
		ActorID:   testMechanicID,
		NewStatus: models.RequestStatusPending,
	})
	assert.True(t, errs.IsNotFound(err))
}

func TestTransition_LostRace(t *testing.T) {
	uc, repo, _, ctrl := newUC(t)
	defer ctrl.Finish()

	ctx := context.Background()

	// The requester cancels between this actor's read and write: the
	// conditional update matches nothing and the loser sees the new state
	repo.EXPECT().GetRequest(ctx, testRequestID).Return(pendingRequest(), nil)
	repo.EXPECT().UpdateStatus(ctx, testRequestID, models.RequestStatusPending, gomock.Any()).Return(false, nil)
	repo.EXPECT().GetRequest(ctx, testRequestID).Return(requestWithStatus(models.RequestStatusCancelled), nil)

	_, err := uc.Transition(ctx, models.TransitionRequest{
		RequestID: testRequestID,
		ActorID:   testMechanicID,
		NewStatus: models.RequestStatusAccepted,
	})
	require.Error(t, err)
	assert.True(t, errs.IsInvalidTransition(err))
	assert.Contains(t, err.Error(), "cancelled")
}

func TestTransition_NotificationFailureIsSwallowed(t *testing.T) {
	uc, repo, gw, ctrl := newUC(t)
	defer ctrl.Finish()

	ctx := context.Background()
	after := requestWithStatus(models.RequestStatusAccepted)

	repo.EXPECT().GetRequest(ctx, testRequestID).Return(pendingRequest(), nil)
	repo.EXPECT().UpdateStatus(ctx, testRequestID, models.RequestStatusPending, gomock.Any()).Return(true, nil)
	repo.EXPECT().GetRequest(ctx, testRequestID).Return(after, nil)
	gw.EXPECT().NotifyStatusChange(ctx, after, gomock.Any()).Return(errors.New("nats down"))

	updated, err := uc.Transition(ctx, models.TransitionRequest{
		RequestID: testRequestID,
		ActorID:   testMechanicID,
		NewStatus: models.RequestStatusAccepted,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusAccepted, updated.Status)
}

func TestGetRequest_Authorization(t *testing.T) {
	tests := []struct {
		name      string
		actor     *models.Identity
		expectErr bool
	}{
		{"requester may view", &models.Identity{ID: testRequesterID, Role: models.RoleUser}, false},
		{"mechanic may view", &models.Identity{ID: testMechanicID, Role: models.RoleMechanic}, false},
		{"admin may view", &models.Identity{ID: "u-admin", Role: models.RoleAdmin}, false},
		{"stranger may not view", &models.Identity{ID: "u-stranger", Role: models.RoleUser}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo, _, ctrl := newUC(t)
			defer ctrl.Finish()

			ctx := context.Background()
			repo.EXPECT().GetRequest(ctx, testRequestID).Return(pendingRequest(), nil)

			_, err := uc.GetRequest(ctx, testRequestID, tt.actor)
			if tt.expectErr {
				assert.True(t, errs.IsAuthorization(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestListRequests(t *testing.T) {
	uc, repo, _, ctrl := newUC(t)
	defer ctrl.Finish()

	ctx := context.Background()
	expected := []*models.ServiceRequest{pendingRequest()}

	repo.EXPECT().ListByRequester(ctx, testRequesterID).Return(expected, nil)
	result, err := uc.ListByRequester(ctx, testRequesterID)
	require.NoError(t, err)
	assert.Equal(t, expected, result)

	repo.EXPECT().ListByMechanic(ctx, testMechanicID).Return(expected, nil)
	result, err = uc.ListByMechanic(ctx, testMechanicID)
	require.NoError(t, err)
	assert.Equal(t, expected, result)

	_, err = uc.ListByRequester(ctx, "")
	assert.True(t, errs.IsValidation(err))

	_, err = uc.ListByMechanic(ctx, "")
	assert.True(t, errs.IsValidation(err))
}

// lifecycleRepo holds one request in memory and applies conditional status
// updates the way the document store does, so full lifecycles can be walked
// without mock choreography
type lifecycleRepo struct {
	req *models.ServiceRequest
}

func (r *lifecycleRepo) CreateRequest(_ context.Context, req *models.ServiceRequest) error {
	stored := *req
	r.req = &stored
	return nil
}

func (r *lifecycleRepo) GetRequest(_ context.Context, requestID string) (*models.ServiceRequest, error) {
	if r.req == nil || r.req.ID != requestID {
		return nil, errs.NotFoundf("service request %s not found", requestID)
	}
	copied := *r.req
	return &copied, nil
}

func (r *lifecycleRepo) UpdateStatus(_ context.Context, requestID string, from models.RequestStatus, update models.StatusUpdate) (bool, error) {
	if r.req == nil || r.req.ID != requestID || r.req.Status != from {
		return false, nil
	}
	r.req.Status = update.Status
	r.req.UpdatedAt = update.Timestamp
	r.req.StatusHistory = append(r.req.StatusHistory, update)
	return true, nil
}

func (r *lifecycleRepo) ListByRequester(context.Context, string) ([]*models.ServiceRequest, error) {
	return nil, nil
}

func (r *lifecycleRepo) ListByMechanic(context.Context, string) ([]*models.ServiceRequest, error) {
	return nil, nil
}

type noopRequestGW struct{}

func (noopRequestGW) NotifyNewRequest(context.Context, *models.ServiceRequest) error {
	return nil
}

func (noopRequestGW) NotifyStatusChange(context.Context, *models.ServiceRequest, models.StatusUpdate) error {
	return nil
}

func TestTransition_FullLifecycleHistory(t *testing.T) {
	ctx := context.Background()
	repo := &lifecycleRepo{}
	uc := NewRequestUC(&models.Config{}, repo, noopRequestGW{})

	created, err := uc.CreateRequest(ctx, &models.ServiceRequest{
		RequesterID: testRequesterID,
		MechanicID:  testMechanicID,
		Location:    models.Location{Latitude: 28.6139, Longitude: 77.2090},
		ServiceType: models.ServiceTypeTowing,
	})
	require.NoError(t, err)

	steps := []models.RequestStatus{
		models.RequestStatusAccepted,
		models.RequestStatusReached,
		models.RequestStatusCompleted,
	}
	for _, target := range steps {
		_, err := uc.Transition(ctx, models.TransitionRequest{
			RequestID: created.ID,
			ActorID:   testMechanicID,
			ActorRole: models.RoleMechanic,
			NewStatus: target,
		})
		require.NoError(t, err)
	}

	final, err := repo.GetRequest(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusCompleted, final.Status)

	// One history entry per state, in the order the request moved through
	// them, with non-decreasing timestamps
	require.Len(t, final.StatusHistory, len(steps)+1)
	expected := append([]models.RequestStatus{models.RequestStatusPending}, steps...)
	for i, entry := range final.StatusHistory {
		assert.Equal(t, expected[i], entry.Status)
		if i > 0 {
			assert.False(t, entry.Timestamp.Before(final.StatusHistory[i-1].Timestamp))
		}
	}
}
