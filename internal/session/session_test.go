package session_test

import (
	"errors"
	"testing"

	"aoc_companion/internal/models"
	"aoc_companion/internal/session"
)

func newService(t *testing.T) *session.Service {
	t.Helper()
	t.Setenv(session.EnvSession, "")
	return session.NewService(session.NewFileSecretStore(t.TempDir()))
}

func TestTokenMissing(t *testing.T) {
	svc := newService(t)

	if _, err := svc.Token(); !errors.Is(err, models.ErrMissingSession) {
		t.Fatalf("expected ErrMissingSession, got %v", err)
	}
	if svc.HasToken() {
		t.Fatal("HasToken should be false with no token")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newService(t)

	if err := svc.SetToken("  s3cret\n"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}
	token, err := svc.Token()
	if err != nil {
		t.Fatalf("Token: %v", err)
	}
	if token != "s3cret" {
		t.Fatalf("expected trimmed token, got %q", token)
	}

	if err := svc.ClearToken(); err != nil {
		t.Fatalf("ClearToken: %v", err)
	}
	if svc.HasToken() {
		t.Fatal("token should be gone after clear")
	}
}

func TestSetTokenRejectsEmpty(t *testing.T) {
	svc := newService(t)
	if err := svc.SetToken("   "); err == nil {
		t.Fatal("expected error for blank token")
	}
}

func TestEnvOverridesStoredToken(t *testing.T) {
	svc := session.NewService(session.NewFileSecretStore(t.TempDir()))
	if err := svc.SetToken("stored"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}

	t.Setenv(session.EnvSession, "from-env")
	token, err := svc.Token()
	if err != nil {
		t.Fatalf("Token: %v", err)
	}
	if token != "from-env" {
		t.Fatalf("env token should win, got %q", token)
	}
}

func TestClearMissingTokenIsNoop(t *testing.T) {
	svc := newService(t)
	if err := svc.ClearToken(); err != nil {
		t.Fatalf("ClearToken on empty store: %v", err)
	}
}
