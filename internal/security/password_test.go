package security_test

import (
	"testing"

	"github.com/rasahub/rasahub/internal/security"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := security.HashPassword("pw123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	if hash == "pw123" {
		t.Fatal("hash must not equal the plaintext")
	}

	if err := security.CheckPassword(hash, "pw123"); err != nil {
		t.Fatalf("check with correct password failed: %v", err)
	}

	if err := security.CheckPassword(hash, "wrong"); err == nil {
		t.Fatal("check with wrong password should fail")
	}
}
