package notification

import (
	"context"
	"fmt"
	"time"

	userRepo "teampulse/database/repository/user"
	"teampulse/utils"

	"firebase.google.com/go/v4/messaging"
)

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Users userRepo.UserRepository
}

// SendUserPushNotification looks up a user's FCM token and sends a push.
// Users who never registered a device token are skipped silently.
func (s *DefaultNotificationService) SendUserPushNotification(userID, title, body string, data map[string]string) error {
	u, err := s.Users.GetByID(userID)
	if err != nil {
		return fmt.Errorf("could not find user %s: %w", userID, err)
	}
	if u.FCMToken == "" {
		return nil
	}

	msg := &messaging.Message{
		Token: u.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send FCM message to user %s: %w", userID, err)
	}
	return nil
}
