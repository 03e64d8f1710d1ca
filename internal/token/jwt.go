package token

import (
	"fmt"
	"time"

	"github.com/dtroode/sociable-server/internal/model"
	"github.com/golang-jwt/jwt/v5"
)

// Claims represents session token claims carrying the user identity.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
}

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey string
	ttl       time.Duration
}

// DefaultTTL is the session token lifetime used when none is configured.
const DefaultTTL = 7 * 24 * time.Hour

// NewJWT creates a new JWT token manager with the provided secret key and
// token lifetime. The secret is explicit here; nothing is read from the
// environment.
func NewJWT(secretKey string, ttl time.Duration) model.TokenManager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &JWT{secretKey: secretKey, ttl: ttl}
}

// Generate creates a signed session token for the user.
func (j *JWT) Generate(userID int64, email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
		UserID: userID,
		Email:  email,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, nil
}

// Parse validates signature and expiry and extracts the session payload.
// Tokens missing the user id or email claims are rejected.
func (j *JWT) Parse(tokenString string) (model.TokenPayload, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return model.TokenPayload{}, fmt.Errorf("failed to parse session token: %w", err)
	}
	if !token.Valid {
		return model.TokenPayload{}, fmt.Errorf("session token is invalid")
	}
	if claims.UserID <= 0 {
		return model.TokenPayload{}, fmt.Errorf("session token is missing user id")
	}
	if claims.Email == "" {
		return model.TokenPayload{}, fmt.Errorf("session token is missing email")
	}

	return model.TokenPayload{UserID: claims.UserID, Email: claims.Email}, nil
}
