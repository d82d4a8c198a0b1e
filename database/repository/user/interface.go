package userRepo

import "teampulse/models"

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address, nil when none exists.
	GetByEmail(email string) (*models.User, error)
	// GetByTokenHash retrieves the user holding the given session token hash.
	GetByTokenHash(tokenHash string) (*models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Update modifies an existing user record.
	Update(user *models.User) error
	// SetTokenHash stores the session token hash for a user ("" revokes it).
	SetTokenHash(id, tokenHash string) error
	// SetFCMToken stores the push-notification token for a user.
	SetFCMToken(id, fcmToken string) error
	// Delete removes a user record by its ID.
	Delete(id string) error
}
