package config

import (
	"context"
	"strings"
	"testing"
	"time"
)

func setRequiredSecrets(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_ACCESS_SECRET", "access-secret")
	t.Setenv("JWT_REFRESH_SECRET", "refresh-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredSecrets(t)

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "8080" || cfg.Env != "development" {
		t.Fatalf("unexpected defaults: port=%q env=%q", cfg.Port, cfg.Env)
	}
	if cfg.Auth.Algorithm != "HS256" {
		t.Fatalf("expected HS256 default, got %q", cfg.Auth.Algorithm)
	}
	if cfg.Auth.AccessTTL() != 30*time.Minute {
		t.Fatalf("unexpected access ttl: %v", cfg.Auth.AccessTTL())
	}
	if cfg.Redis.PingTimeout() != 5*time.Second {
		t.Fatalf("unexpected ping timeout: %v", cfg.Redis.PingTimeout())
	}
}

func TestLoad_MissingSecrets(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "")
	t.Setenv("JWT_REFRESH_SECRET", "")

	if _, err := Load(context.Background()); err == nil {
		t.Fatalf("expected error without signing secrets")
	}
}

func TestLoad_UnsupportedAlgorithm(t *testing.T) {
	setRequiredSecrets(t)
	t.Setenv("JWT_ALGORITHM", "RS256")

	_, err := Load(context.Background())
	if err == nil {
		t.Fatalf("expected error for RS256")
	}
	if !strings.Contains(err.Error(), "JWT_ALGORITHM") {
		t.Fatalf("error should name the offending variable: %v", err)
	}
}
