// File: internal/service/refresh.go
package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"course-market/internal/cache"

	"github.com/redis/go-redis/v9"
)

var (
	randRead      = rand.Read
	jsonMarshal   = json.Marshal
	jsonUnmarshal = json.Unmarshal
)

// RefreshTokenData is the session record stored in Redis per refresh token.
type RefreshTokenData struct {
	ID   int  `json:"id"`
	Role Role `json:"role"`
}

func refreshKey(role Role, token string) string {
	return fmt.Sprintf("refresh:%s:%s", role, token)
}

// IssueRefreshToken mints an opaque refresh token and stores its session data
// in the cache under a role-namespaced key for ttl.
func IssueRefreshToken(ctx context.Context, c cache.Cache, id int, role Role, ttl time.Duration) (string, error) {
	buf := make([]byte, 32)
	if _, err := randRead(buf); err != nil {
		return "", err
	}
	token := base64.RawURLEncoding.EncodeToString(buf)

	data, err := jsonMarshal(RefreshTokenData{ID: id, Role: role})
	if err != nil {
		return "", err
	}
	if err := c.Set(ctx, refreshKey(role, token), data, ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// ValidateRefreshToken looks the token up in the role's namespace and returns
// the bound session data. Unknown or expired tokens fail.
func ValidateRefreshToken(ctx context.Context, c cache.Cache, role Role, token string) (*RefreshTokenData, error) {
	raw, err := c.Get(ctx, refreshKey(role, token)).Result()
	if err == redis.Nil {
		return nil, fmt.Errorf("refresh token not found")
	}
	if err != nil {
		return nil, err
	}

	data := &RefreshTokenData{}
	if err := jsonUnmarshal([]byte(raw), data); err != nil {
		return nil, err
	}
	return data, nil
}

// RevokeRefreshToken removes the token's session record; used for rotation
// after a successful refresh.
func RevokeRefreshToken(ctx context.Context, c cache.Cache, role Role, token string) error {
	return c.Del(ctx, refreshKey(role, token)).Err()
}
