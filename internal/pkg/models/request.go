package models

import "time"

// RequestStatus represents the lifecycle state of a service request
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusAccepted  RequestStatus = "accepted"
	RequestStatusReached   RequestStatus = "reached"
	RequestStatusCompleted RequestStatus = "completed"
	RequestStatusCancelled RequestStatus = "cancelled"
)

// Valid reports whether the status is one of the known lifecycle states
func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusPending, RequestStatusAccepted, RequestStatusReached,
		RequestStatusCompleted, RequestStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are accepted from s
func (s RequestStatus) Terminal() bool {
	return s == RequestStatusCompleted || s == RequestStatusCancelled
}

// CanTransitionTo reports whether target is a direct successor of s in the
// lifecycle graph. The graph is linear (pending, accepted, reached,
// completed) with cancellation allowed from pending and accepted only.
// Self-loops are not permitted.
func (s RequestStatus) CanTransitionTo(target RequestStatus) bool {
	switch s {
	case RequestStatusPending:
		return target == RequestStatusAccepted || target == RequestStatusCancelled
	case RequestStatusAccepted:
		return target == RequestStatusReached || target == RequestStatusCancelled
	case RequestStatusReached:
		return target == RequestStatusCompleted
	case RequestStatusCompleted, RequestStatusCancelled:
		return false
	}
	return false
}

// ServiceType enumerates the roadside assistance categories
type ServiceType string

const (
	ServiceTypeTowing  ServiceType = "towing"
	ServiceTypeBattery ServiceType = "battery"
	ServiceTypeTire    ServiceType = "tire"
	ServiceTypeFuel    ServiceType = "fuel"
	ServiceTypeLockout ServiceType = "lockout"
	ServiceTypeRepairs ServiceType = "repairs"
	ServiceTypeOther   ServiceType = "other"
)

// Valid reports whether the service type is a known category
func (t ServiceType) Valid() bool {
	switch t {
	case ServiceTypeTowing, ServiceTypeBattery, ServiceTypeTire,
		ServiceTypeFuel, ServiceTypeLockout, ServiceTypeRepairs, ServiceTypeOther:
		return true
	}
	return false
}

// VehicleDetails describes the customer's vehicle
type VehicleDetails struct {
	Make  string `json:"make" bson:"make"`
	Model string `json:"model" bson:"model"`
	Year  string `json:"year" bson:"year"`
}

// StatusUpdate is one immutable entry of a request's status history
type StatusUpdate struct {
	Status    RequestStatus `json:"status" bson:"status"`
	Timestamp time.Time     `json:"timestamp" bson:"timestamp"`
	Notes     string        `json:"notes,omitempty" bson:"notes,omitempty"`
}

// ServiceRequest is a customer-initiated roadside assistance record. The
// status history is append-only; the last entry always mirrors Status.
type ServiceRequest struct {
	ID             string         `json:"id" bson:"_id"`
	RequesterID    string         `json:"requester_id" bson:"requester_id"`
	RequesterName  string         `json:"requester_name" bson:"requester_name"`
	RequesterPhone string         `json:"requester_phone,omitempty" bson:"requester_phone,omitempty"`
	MechanicID     string         `json:"mechanic_id" bson:"mechanic_id"`
	Location       Location       `json:"location" bson:"location"`
	Address        string         `json:"address" bson:"address"`
	VehicleDetails VehicleDetails `json:"vehicle_details" bson:"vehicle_details"`
	ServiceType    ServiceType    `json:"service_type" bson:"service_type"`
	Description    string         `json:"description" bson:"description"`
	Status         RequestStatus  `json:"status" bson:"status"`
	StatusHistory  []StatusUpdate `json:"status_history" bson:"status_history"`
	CreatedAt      time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at" bson:"updated_at"`
}

// TransitionRequest carries one status transition attempt
type TransitionRequest struct {
	RequestID string        `json:"request_id"`
	ActorID   string        `json:"actor_id"`
	ActorRole string        `json:"actor_role"`
	NewStatus RequestStatus `json:"new_status"`
	Notes     string        `json:"notes,omitempty"`
}
