package constants

// NATS subjects
const (
	// SubjectNotifications carries best-effort user notifications
	// (format: user ID)
	SubjectNotifications = "notifications.%s"

	// SubjectChatRoom carries chat messages for one room (format: room ID)
	SubjectChatRoom = "chat.%s"
)
