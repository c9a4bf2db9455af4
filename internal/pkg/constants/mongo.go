package constants

// Mongo collection names
const (
	CollectionUsers           = "users"
	CollectionServiceRequests = "serviceRequests"
	CollectionReviews         = "reviews"
	CollectionNotifications   = "notifications"
	CollectionChats           = "chats"
)
