package models

import "time"

// Notification types emitted by the request workflow
const (
	NotificationTypeServiceRequest = "service_request"
	NotificationTypeStatusUpdate   = "status_update"
)

// Notification is a best-effort message addressed to one user. Delivery
// failures are logged and swallowed; they never fail the triggering
// operation.
type Notification struct {
	ID        string            `json:"id" bson:"_id"`
	UserID    string            `json:"user_id" bson:"user_id"`
	Title     string            `json:"title" bson:"title"`
	Message   string            `json:"message" bson:"message"`
	Type      string            `json:"type" bson:"type"`
	Metadata  map[string]string `json:"metadata,omitempty" bson:"metadata,omitempty"`
	Read      bool              `json:"read" bson:"read"`
	CreatedAt time.Time         `json:"created_at" bson:"created_at"`
}
