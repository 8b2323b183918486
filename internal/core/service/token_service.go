package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/useraccounts/user-management/internal/core/domain"
)

// JWTTokenService issues and validates HS256-signed bearer tokens. Access
// and refresh tokens are signed with distinct secrets and carry distinct
// TTLs, so one kind never validates as the other.
type JWTTokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewJWTTokenService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *JWTTokenService {
	if accessTTL <= 0 {
		accessTTL = 30 * time.Minute
	}
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &JWTTokenService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (s *JWTTokenService) IssueAccess(subject string) (string, error) {
	return s.issue(subject, s.accessSecret, s.accessTTL)
}

func (s *JWTTokenService) IssueRefresh(subject string) (string, error) {
	return s.issue(subject, s.refreshSecret, s.refreshTTL)
}

func (s *JWTTokenService) ValidateAccess(token string) (string, error) {
	return s.validate(token, s.accessSecret)
}

func (s *JWTTokenService) ValidateRefresh(token string) (string, error) {
	return s.validate(token, s.refreshSecret)
}

func (s *JWTTokenService) issue(subject string, secret []byte, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret)
}

// validate verifies the signature and expiry (wall clock, no leeway) and
// returns the embedded subject.
func (s *JWTTokenService) validate(token string, secret []byte) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenInvalid
	}
	if !tkn.Valid {
		return "", domain.ErrTokenInvalid
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return "", domain.ErrTokenInvalid
	}
	return subject, nil
}
