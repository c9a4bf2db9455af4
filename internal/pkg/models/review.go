package models

import "time"

// Review is an immutable rating record for a mechanic
type Review struct {
	ID         string    `json:"id" bson:"_id"`
	UserID     string    `json:"user_id" bson:"user_id"`
	UserName   string    `json:"user_name" bson:"user_name"`
	MechanicID string    `json:"mechanic_id" bson:"mechanic_id"`
	Rating     int       `json:"rating" bson:"rating"`
	Review     string    `json:"review,omitempty" bson:"review,omitempty"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}
