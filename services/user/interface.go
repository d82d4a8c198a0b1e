package user

import "teampulse/models"

// UserService defines account management and authentication.
type UserService interface {
	// RegisterUser creates an account and returns a signed session token.
	RegisterUser(req models.RegisterUserRequest) (*models.AuthResponse, error)
	// AuthenticateUser verifies credentials and returns a fresh session token.
	AuthenticateUser(email, password string) (*models.AuthResponse, error)
	// GetUserByID retrieves a user by ID.
	GetUserByID(id string) (*models.User, error)
	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(email string) (*models.User, error)
	// UpdateFCMToken stores the push token for the user's device.
	UpdateFCMToken(id, fcmToken string) error
	// RevokeAuthToken invalidates the user's current session token.
	RevokeAuthToken(id string) error
	// DeleteUser removes the account.
	DeleteUser(id string) error
}
