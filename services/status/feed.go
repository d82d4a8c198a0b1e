package status

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"teampulse/models"
	"teampulse/utils"

	"github.com/go-redis/redis/v8"
)

// RedisStatusFeed publishes snapshot replacements on a Redis pub/sub channel
// and caches the latest snapshot per user so dashboard reads stay cheap.
type RedisStatusFeed struct {
	Client *redis.Client
}

// NewRedisStatusFeed creates a feed publisher backed by the given client.
func NewRedisStatusFeed(client *redis.Client) *RedisStatusFeed {
	return &RedisStatusFeed{Client: client}
}

// PublishSnapshot caches the snapshot and notifies subscribers. Subscribers
// apply updates as whole-snapshot replacements, last-write-wins per user.
func (f *RedisStatusFeed) PublishSnapshot(snapshot *models.StatusSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal status snapshot: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	cacheKey := utils.StatusCachePrefix + snapshot.UserID
	if err := f.Client.Set(ctx, cacheKey, data, utils.StatusCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache status snapshot: %w", err)
	}
	if err := f.Client.Publish(ctx, utils.StatusFeedChannel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish status snapshot: %w", err)
	}
	return nil
}

// GetCachedSnapshot returns the cached snapshot for a user, nil on cache miss.
func (f *RedisStatusFeed) GetCachedSnapshot(userID string) (*models.StatusSnapshot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := f.Client.Get(ctx, utils.StatusCachePrefix+userID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached status: %w", err)
	}

	var snapshot models.StatusSnapshot
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached status: %w", err)
	}
	return &snapshot, nil
}
