package notification

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	SendUserPushNotification(userID, title, body string, data map[string]string) error
}
