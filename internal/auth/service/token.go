package service

import (
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v4"

	"github.com/gdk/monitoring/internal/auth/model"
)

// Claims carried by every access token. Role is informational only: no
// endpoint restricts by role, any valid token suffices.
type Claims struct {
	Role string `json:"role"`
	gojwt.RegisteredClaims
}

// TokenService issues and verifies HS256-signed, expiring bearer tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration

	// now is swappable so tests can issue already-expired tokens.
	now func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token carrying the subject and role claims, expiring after
// the configured ttl.
func (s *TokenService) Issue(subject, role string) (string, error) {
	now := s.now()
	claims := Claims{
		Role: role,
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify validates signature and expiry and returns the subject and role.
// Every failure mode maps to model.ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (subject, role string, err error) {
	var claims Claims
	token, err := gojwt.ParseWithClaims(tokenString, &claims, func(t *gojwt.Token) (any, error) {
		if _, ok := t.Method.(*gojwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", "", model.ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", "", model.ErrInvalidToken
	}
	return claims.Subject, claims.Role, nil
}
