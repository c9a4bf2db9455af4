package models

import (
	"sort"
	"strings"
	"time"
)

// ChatMessage is one message inside a two-party chat room
type ChatMessage struct {
	ID         string    `json:"id" bson:"_id"`
	RoomID     string    `json:"room_id" bson:"room_id"`
	SenderID   string    `json:"sender_id" bson:"sender_id"`
	SenderName string    `json:"sender_name" bson:"sender_name"`
	Message    string    `json:"message" bson:"message"`
	Timestamp  time.Time `json:"timestamp" bson:"timestamp"`
}

// ChatRoomID derives the deterministic room identifier for a pair of users:
// both IDs sorted lexicographically and joined with an underscore, so either
// party computes the same room.
func ChatRoomID(userA, userB string) string {
	ids := []string{userA, userB}
	sort.Strings(ids)
	return strings.Join(ids, "_")
}
