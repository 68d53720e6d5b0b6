// File: utils/auth_session.go
package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AuthCachePrefix prefixes every cached auth-token hash key.
const AuthCachePrefix = "auth:"

// StoreAuthToken caches the hash of a freshly issued token for the account.
// Middleware compares incoming token hashes against this entry, so revoking
// the entry invalidates the token before its JWT expiry.
func StoreAuthToken(accountID, token string, ttl time.Duration) error {
	client := GetAuthCacheClient()
	if client == nil {
		return fmt.Errorf("auth cache client not initialized")
	}
	key := AuthCachePrefix + accountID
	if err := client.Set(context.Background(), key, HashToken(token), ttl).Err(); err != nil {
		GetLogger().Error("Failed to cache auth token", zap.Error(err))
		return fmt.Errorf("failed to store auth token: %w", err)
	}
	return nil
}

// CheckAuthToken reports whether the token is the account's current one.
func CheckAuthToken(accountID, token string) (bool, error) {
	client := GetAuthCacheClient()
	if client == nil {
		return false, fmt.Errorf("auth cache client not initialized")
	}
	key := AuthCachePrefix + accountID
	stored, err := client.Get(context.Background(), key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up auth token: %w", err)
	}
	return stored == HashToken(token), nil
}

// RevokeAuthToken drops the cached token hash, signing the account out everywhere.
func RevokeAuthToken(accountID string) error {
	client := GetAuthCacheClient()
	if client == nil {
		return fmt.Errorf("auth cache client not initialized")
	}
	return client.Del(context.Background(), AuthCachePrefix+accountID).Err()
}

// SaveSession stores a JSON-encoded flow session (registration, tutor
// application) under the given key with the given TTL.
func SaveSession(key string, session interface{}, ttl time.Duration) error {
	client := GetAuthCacheClient()
	if client == nil {
		return fmt.Errorf("auth cache client not initialized")
	}
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := client.Set(context.Background(), key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// GetSession loads a flow session into dest. Returns redis.Nil via the wrapped
// error when the session is missing or expired.
func GetSession(key string, dest interface{}) error {
	client := GetAuthCacheClient()
	if client == nil {
		return fmt.Errorf("auth cache client not initialized")
	}
	data, err := client.Get(context.Background(), key).Bytes()
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to decode session: %w", err)
	}
	return nil
}

// DeleteSession removes a flow session.
func DeleteSession(key string) error {
	client := GetAuthCacheClient()
	if client == nil {
		return fmt.Errorf("auth cache client not initialized")
	}
	return client.Del(context.Background(), key).Err()
}
