// Package auth provides concrete implementations for authentication-related
// domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"bookmark/config"
	"bookmark/internal/domain/service"
	"bookmark/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using
// the JWT standard. The payload is integrity-protected, not encrypted; it must
// never carry the password or other secrets.
type jwtService struct {
	secret []byte        // Secret key for signing session tokens, immutable after startup.
	ttl    time.Duration // Fixed validity window for issued tokens.
}

// sessionClaims is the signed token payload: subject ID, subject email,
// issued-at and expiry.
type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// NewJWTService is the constructor for jwtService.
// Rotating the configured secret invalidates all outstanding tokens.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Session.Secret == "" {
		return nil, errors.New("session secret must be provided")
	}

	ttl := cfg.Session.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &jwtService{
		secret: []byte(cfg.Session.Secret),
		ttl:    ttl,
	}, nil
}

// Issue produces a signed HS256 token with expiry now + TTL.
func (s *jwtService) Issue(userID uuid.UUID, email string) (string, error) {
	now := time.Now()
	claims := &sessionClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Verify checks the token's signature and expiry and extracts the identity.
// The claimed identity is never trusted before signature verification passes.
func (s *jwtService) Verify(tokenString string) (*service.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, classifyTokenError(err)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return nil, service.ErrTokenMalformed
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, service.ErrTokenMalformed
	}

	return &service.Identity{UserID: userID, Email: claims.Email}, nil
}

// TTL returns the fixed validity window of issued tokens.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}

// classifyTokenError maps jwt/v5 sentinels onto the domain token error
// taxonomy. Anything unrecognized is treated as malformed.
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return service.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return service.ErrTokenSignatureInvalid
	default:
		return service.ErrTokenMalformed
	}
}
