package auth_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rasahub/rasahub/internal/auth"
)

const testSecret = "test-secret-do-not-use"

func TestIssueAndVerify(t *testing.T) {
	m := auth.NewManager(testSecret, 30*time.Minute)

	token, err := m.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	email, err := m.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}

	if email != "alice@example.com" {
		t.Fatalf("got email %q, want alice@example.com", email)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	// Negative TTL yields a token that is already past its expiry.
	m := auth.NewManager(testSecret, -time.Minute)

	token, err := m.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	_, err = m.Verify(token)
	if !errors.Is(err, auth.ErrTokenExpired) {
		t.Fatalf("got err %v, want ErrTokenExpired", err)
	}
}

func TestVerifyTamperedToken(t *testing.T) {
	m := auth.NewManager(testSecret, 30*time.Minute)

	token, err := m.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	// Flip a byte in the signature segment.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", token)
	}

	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = m.Verify(tampered)
	if !errors.Is(err, auth.ErrTokenInvalid) {
		t.Fatalf("got err %v, want ErrTokenInvalid", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := auth.NewManager(testSecret, 30*time.Minute)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "not_a_jwt", token: "hello world"},
		{name: "wrong_secret", token: mustIssue(t, auth.NewManager("other-secret", 30*time.Minute))},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Verify(tt.token)
			if !errors.Is(err, auth.ErrTokenInvalid) {
				t.Fatalf("got err %v, want ErrTokenInvalid", err)
			}
		})
	}
}

func mustIssue(t *testing.T, m *auth.Manager) string {
	t.Helper()

	token, err := m.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	return token
}
