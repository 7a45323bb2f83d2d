package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	audienceAccess = "api"
	audienceState  = "drive-connect"

	// StateTTL bounds how long an OAuth consent round trip may take.
	StateTTL = 10 * time.Minute
)

// JWTManager issues and validates HS256 tokens: API access tokens and the
// signed state parameter of the Drive OAuth flow.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
	now       func() time.Time
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
		now:       time.Now,
	}
}

// GenerateAccessToken creates a signed access token with the user ID as subject.
func (m *JWTManager) GenerateAccessToken(userID uuid.UUID) (string, error) {
	return m.sign(userID, audienceAccess, m.accessTTL)
}

// ValidateAccessToken parses and validates an access token and returns the user ID.
func (m *JWTManager) ValidateAccessToken(tokenString string) (uuid.UUID, error) {
	return m.parse(tokenString, audienceAccess)
}

// GenerateStateToken signs the OAuth state for userID.
func (m *JWTManager) GenerateStateToken(userID uuid.UUID) (string, error) {
	return m.sign(userID, audienceState, StateTTL)
}

// ValidateStateToken returns the user the OAuth state was issued to.
// Access tokens are rejected.
func (m *JWTManager) ValidateStateToken(state string) (uuid.UUID, error) {
	return m.parse(state, audienceState)
}

func (m *JWTManager) sign(userID uuid.UUID, audience string, ttl time.Duration) (string, error) {
	now := m.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		Issuer:    m.issuer,
		Audience:  jwt.ClaimStrings{audience},
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

func (m *JWTManager) parse(tokenString, audience string) (uuid.UUID, error) {
	if tokenString == "" {
		return uuid.Nil, errors.New("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithAudience(audience),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return uuid.Nil, errors.New("invalid token claims")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid subject UUID: %w", err)
	}

	return userID, nil
}
