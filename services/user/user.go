package user

import (
	"context"
	"fmt"
	"time"

	userRepo "teampulse/database/repository/user"
	"teampulse/models"
	"teampulse/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// sessionTTL is how long an issued token stays valid.
const sessionTTL = 72 * time.Hour

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// RegisterUser creates an account and signs the user in.
func (s *DefaultUserService) RegisterUser(req models.RegisterUserRequest) (*models.AuthResponse, error) {
	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		utils.GetLogger().Error("RegisterUser: failed to check email", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueToken(u)
}

// AuthenticateUser verifies credentials and issues a fresh token, replacing
// any previous session.
func (s *DefaultUserService) AuthenticateUser(email, password string) (*models.AuthResponse, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("AuthenticateUser: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if u == nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	return s.issueToken(u)
}

// issueToken generates a JWT, stores its hash on the user record and caches
// the hash for fast middleware lookups.
func (s *DefaultUserService) issueToken(u *models.User) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(u.ID, u.Email, sessionTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.SetTokenHash(u.ID, tokenHash); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}
	u.TokenHash = tokenHash

	ctx := context.Background()
	cacheKey := utils.AuthCachePrefix + tokenHash
	if err := utils.GetAuthCacheClient().Set(ctx, cacheKey, u.ID, utils.AuthCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("Failed to cache session token", zap.Error(err))
	}

	return &models.AuthResponse{User: *u, Token: token}, nil
}

// GetUserByID retrieves a user by ID.
func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	return s.Repo.GetByID(id)
}

// GetUserByEmail retrieves a user by email.
func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("user with email %s not found", email)
	}
	return u, nil
}

// UpdateFCMToken stores the push token for the user's device.
func (s *DefaultUserService) UpdateFCMToken(id, fcmToken string) error {
	return s.Repo.SetFCMToken(id, fcmToken)
}

// RevokeAuthToken invalidates the user's current session token.
func (s *DefaultUserService) RevokeAuthToken(id string) error {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if u.TokenHash != "" {
		ctx := context.Background()
		if err := utils.GetAuthCacheClient().Del(ctx, utils.AuthCachePrefix+u.TokenHash).Err(); err != nil {
			utils.GetLogger().Warn("Failed to evict session cache", zap.Error(err))
		}
	}
	return s.Repo.SetTokenHash(id, "")
}

// DeleteUser removes the account.
func (s *DefaultUserService) DeleteUser(id string) error {
	if err := s.RevokeAuthToken(id); err != nil {
		utils.GetLogger().Warn("DeleteUser: failed to revoke session", zap.String("id", id), zap.Error(err))
	}
	return s.Repo.Delete(id)
}
