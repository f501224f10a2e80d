// File: internal/service/authentication.go
package service

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role names one of the two independent principal classes. Each role has its
// own credential table and its own token signing key, so an admin token can
// never verify as a user token or vice versa.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
)

// CustomClaims is the JWT payload bound to an access token.
type CustomClaims struct {
	ID   int  `json:"id"`
	Role Role `json:"role"`
	jwt.RegisteredClaims
}

func secretEnv(role Role) string {
	switch role {
	case RoleAdmin:
		return "ADMIN_JWT_SECRET"
	case RoleUser:
		return "USER_JWT_SECRET"
	}
	return ""
}

func secretForRole(role Role) ([]byte, error) {
	env := secretEnv(role)
	if env == "" {
		return nil, fmt.Errorf("unknown role %q", role)
	}
	secret := os.Getenv(env)
	if secret == "" {
		return nil, fmt.Errorf("%s not set", env)
	}
	return []byte(secret), nil
}

// IssueAccessToken signs a time-limited HS256 JWT for the given principal
// with the role's own key.
func IssueAccessToken(id int, role Role, ttl time.Duration) (string, error) {
	secret, err := secretForRole(role)
	if err != nil {
		return "", err
	}

	now := timeNow()
	claims := CustomClaims{
		ID:   id,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(id),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// VerifyAccessToken validates signature and expiry under the given role's key
// and returns the bound claims. The role claim must match as well; the
// disjoint keys are the real boundary, the claim check is just an early exit.
func VerifyAccessToken(tokenString string, role Role) (*CustomClaims, error) {
	secret, err := secretForRole(role)
	if err != nil {
		return nil, err
	}

	token, err := parseWithClaims(tokenString, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.Role != role {
		return nil, fmt.Errorf("token role mismatch")
	}

	return claims, nil
}
