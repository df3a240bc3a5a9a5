package service

import (
	"strings"
	"testing"
	"time"

	"github.com/gdk/monitoring/internal/auth/model"
)

func TestIssueAndVerify(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, err := svc.Issue("alice", "user")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	subject, role, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if subject != "alice" || role != "user" {
		t.Errorf("Verify() = (%q, %q), want (alice, user)", subject, role)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := svc.Issue("alice", "user")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	// verification runs at real time, two hours past expiry
	svc.now = time.Now
	if _, _, err := svc.Verify(token); err != model.ErrInvalidToken {
		t.Fatalf("Verify() expired token error = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	good, err := svc.Issue("alice", "admin")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	parts := strings.Split(good, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	tests := []struct {
		name  string
		token string
	}{
		{"malformed", "not-a-token"},
		{"empty", ""},
		{"tampered_payload", tampered},
		{"signature_stripped", parts[0] + "." + parts[1] + "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := svc.Verify(tt.token); err != model.ErrInvalidToken {
				t.Errorf("Verify(%q) error = %v, want ErrInvalidToken", tt.name, err)
			}
		})
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue("alice", "user")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if _, _, err := verifier.Verify(token); err != model.ErrInvalidToken {
		t.Fatalf("Verify() with wrong secret error = %v, want ErrInvalidToken", err)
	}
}
