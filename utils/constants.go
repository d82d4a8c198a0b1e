// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// StatusCachePrefix is the prefix used for cached status snapshots.
const StatusCachePrefix = "status:"

// StatusCacheTTL is the time-to-live for cached status snapshots.
const StatusCacheTTL = 24 * time.Hour

// StatusFeedChannel is the Redis pub/sub channel carrying snapshot replacements.
const StatusFeedChannel = "status:feed"
