package middleware

import (
	"context"
	"net/http"
	"strings"

	userRepo "teampulse/database/repository/user"
	"teampulse/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// JWTAuthUserMiddleware authenticates requests with a Bearer token. A valid
// token must match the hash stored for the user, checked against the auth
// cache first and the database on a miss.
func JWTAuthUserMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
		}()

		logger := utils.GetLogger()
		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + computedHash

		// Auth cache hit avoids the database round trip.
		if authCache := utils.GetAuthCacheClient(); authCache != nil {
			cachedID, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil {
				if cachedID == userID {
					_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
					c.Set("userID", userID)
					c.Next()
					return
				}
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
				return
			} else if err != redis.Nil {
				logger.Warn("Auth cache lookup failed, falling back to DB", zap.Error(err))
			}
		}

		usr, err := users.GetByTokenHash(computedHash)
		if err != nil || usr == nil || usr.ID != userID {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or user not found"})
			return
		}

		if authCache := utils.GetAuthCacheClient(); authCache != nil {
			_ = authCache.Set(ctx, cacheKey, userID, utils.AuthCacheTTL).Err()
		}

		c.Set("userID", userID)
		c.Next()
	}
}
