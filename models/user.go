package models

import "time"

// User represents a platform user.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	FCMToken     string    `bson:"fcmToken,omitempty" json:"-"`
	TeamIDs      []string  `bson:"teamIds,omitempty" json:"teamIds,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// RegisterUserRequest is the signup payload.
type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// AuthRequest is the login payload.
type AuthRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned on successful registration or login.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
