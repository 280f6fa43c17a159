package utils

import (
	"context"
	"time"

	"TaskerGo/config"
)

var ctx = context.Background()

const revokedKeyPrefix = "session:revoked:"

// RevokeSession marks a session token id as revoked until the token
// would have expired anyway. Without redis configured, logout falls back
// to cookie clearing only.
func RevokeSession(jti string, expiresAt time.Time) error {
	if config.RedisClient == nil {
		return nil
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return config.RedisClient.Set(ctx, revokedKeyPrefix+jti, "1", ttl).Err()
}

// IsSessionRevoked reports whether a session token id was revoked.
func IsSessionRevoked(jti string) bool {
	if config.RedisClient == nil {
		return false
	}
	n, err := config.RedisClient.Exists(ctx, revokedKeyPrefix+jti).Result()
	if err != nil {
		// Fail open when the revocation store is unreachable.
		config.Logger.Warnw("session revocation check failed", "error", err)
		return false
	}
	return n > 0
}
