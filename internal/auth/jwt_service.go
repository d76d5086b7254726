package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	apperrors "pcosrisk/internal/errors"
)

const (
	// AccessTokenExpiry is the default lifetime of an access token.
	AccessTokenExpiry = 30 * time.Minute
	// TokenType is reported to clients alongside the access token.
	TokenType = "bearer"
)

// JWTService issues and verifies HS256 bearer tokens binding a subject.
type JWTService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService creates a JWT service. A zero ttl selects AccessTokenExpiry.
func NewJWTService(secret string, ttl time.Duration) *JWTService {
	if ttl == 0 {
		ttl = AccessTokenExpiry
	}
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// DefaultTTL returns the lifetime used by GenerateAccessToken.
func (s *JWTService) DefaultTTL() time.Duration {
	return s.ttl
}

// GenerateAccessToken issues a token for subject with the default lifetime.
func (s *JWTService) GenerateAccessToken(subject string) (string, error) {
	return s.Issue(subject, s.ttl)
}

// Issue signs a token for subject that expires ttl from now. A ttl of zero
// yields a token that is already expired.
func (s *JWTService) Issue(subject string, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", errors.New("subject required")
	}
	now := s.now()
	claims := &jwt.RegisteredClaims{
		ID:        generateTokenID(),
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify validates the signature and expiry of tokenString and returns its
// subject. Every failure is reported as ErrAuthFailure.
func (s *JWTService) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return "", apperrors.ErrAuthFailure
	}

	// exp has second precision; a token is dead once its expiry is reached
	if !s.now().Before(claims.ExpiresAt.Time) {
		return "", apperrors.ErrAuthFailure
	}
	if claims.Subject == "" {
		return "", apperrors.ErrAuthFailure
	}
	return claims.Subject, nil
}

// generateTokenID generates a unique token ID (jti).
func generateTokenID() string {
	return uuid.New().String()
}
