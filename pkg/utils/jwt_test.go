package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTokenRoundTrip(t *testing.T) {
	id := uuid.New()

	token, err := CreateToken("test-secret", id, "volunteer", "Vera Volunteer")
	if err != nil {
		t.Fatalf("create token: %v", err)
	}

	claims, err := ValidateToken("test-secret", token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if claims.AccountID != id.String() {
		t.Fatalf("expected account id %s got %s", id, claims.AccountID)
	}
	if claims.Role != "volunteer" || claims.FullName != "Vera Volunteer" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < TokenTTL-time.Minute || ttl > TokenTTL {
		t.Fatalf("expected roughly one day of validity, got %s", ttl)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := CreateToken("test-secret", uuid.New(), "user", "Uma User")
	if err != nil {
		t.Fatalf("create token: %v", err)
	}

	if _, err := ValidateToken("another-secret", token); err == nil {
		t.Fatal("expected validation to fail with the wrong secret")
	}
}

func TestTokenGarbage(t *testing.T) {
	if _, err := ValidateToken("test-secret", "not-a-token"); err == nil {
		t.Fatal("expected validation to fail for garbage input")
	}
}
