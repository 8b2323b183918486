package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/useraccounts/user-management/internal/core/domain"
)

func TestJWTTokenService_AccessRoundTrip(t *testing.T) {
	svc := NewJWTTokenService("access-secret", "refresh-secret", time.Hour, time.Hour)

	token, err := svc.IssueAccess("alice@example.com")
	if err != nil {
		t.Fatalf("IssueAccess returned error: %v", err)
	}

	subject, err := svc.ValidateAccess(token)
	if err != nil {
		t.Fatalf("ValidateAccess returned error: %v", err)
	}
	if subject != "alice@example.com" {
		t.Fatalf("unexpected subject: %s", subject)
	}
}

func TestJWTTokenService_RefreshRoundTrip(t *testing.T) {
	svc := NewJWTTokenService("access-secret", "refresh-secret", time.Hour, time.Hour)

	token, err := svc.IssueRefresh("bob@example.com")
	if err != nil {
		t.Fatalf("IssueRefresh returned error: %v", err)
	}
	if subject, err := svc.ValidateRefresh(token); err != nil || subject != "bob@example.com" {
		t.Fatalf("ValidateRefresh: subject=%q err=%v", subject, err)
	}
}

func TestJWTTokenService_DistinctSecrets(t *testing.T) {
	svc := NewJWTTokenService("access-secret", "refresh-secret", time.Hour, time.Hour)

	access, _ := svc.IssueAccess("carol@example.com")
	if _, err := svc.ValidateRefresh(access); err != domain.ErrTokenInvalid {
		t.Fatalf("access token must not validate as refresh: got %v", err)
	}

	refresh, _ := svc.IssueRefresh("carol@example.com")
	if _, err := svc.ValidateAccess(refresh); err != domain.ErrTokenInvalid {
		t.Fatalf("refresh token must not validate as access: got %v", err)
	}
}

func TestJWTTokenService_Expired(t *testing.T) {
	// The constructor coerces non-positive TTLs; build directly to issue a
	// token that is already past its expiry.
	svc := &JWTTokenService{
		accessSecret: []byte("access-secret"),
		accessTTL:    -time.Minute,
	}

	token, err := svc.IssueAccess("dave@example.com")
	if err != nil {
		t.Fatalf("IssueAccess returned error: %v", err)
	}
	if _, err := svc.ValidateAccess(token); err != domain.ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestJWTTokenService_NotYetExpired(t *testing.T) {
	svc := NewJWTTokenService("access-secret", "refresh-secret", 2*time.Second, time.Hour)

	token, _ := svc.IssueAccess("dave@example.com")
	if _, err := svc.ValidateAccess(token); err != nil {
		t.Fatalf("token should still be valid before its TTL: %v", err)
	}
}

func TestJWTTokenService_Malformed(t *testing.T) {
	svc := NewJWTTokenService("access-secret", "refresh-secret", time.Hour, time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.ValidateAccess(token); err != domain.ErrTokenInvalid {
			t.Fatalf("ValidateAccess(%q): expected ErrTokenInvalid, got %v", token, err)
		}
	}
}

func TestJWTTokenService_WrongSigningMethod(t *testing.T) {
	svc := NewJWTTokenService("access-secret", "refresh-secret", time.Hour, time.Hour)

	// HS512 signed with the right secret must still be rejected.
	claims := jwt.MapClaims{"sub": "eve@example.com", "exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("access-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.ValidateAccess(token); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid for HS512 token, got %v", err)
	}
}

func TestJWTTokenService_MissingSubject(t *testing.T) {
	svc := NewJWTTokenService("access-secret", "refresh-secret", time.Hour, time.Hour)

	claims := jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("access-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.ValidateAccess(token); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid for missing subject, got %v", err)
	}
}
