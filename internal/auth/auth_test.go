package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !CheckPasswordHash("s3cret-password", hash) {
		t.Fatal("expected matching password to verify")
	}
	if CheckPasswordHash("wrong-password", hash) {
		t.Fatal("expected non-matching password to fail")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken(secret, "ext-123", "user@example.com", true, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseToken(secret, token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Subject != "ext-123" {
		t.Errorf("expected subject ext-123, got %s", claims.Subject)
	}
	if claims.Email != "user@example.com" {
		t.Errorf("expected email user@example.com, got %s", claims.Email)
	}
	if !claims.IsAdmin {
		t.Error("expected admin claim to survive the round trip")
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken([]byte("secret-a"), "ext-123", "user@example.com", false, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ParseToken([]byte("secret-b"), token); err == nil {
		t.Fatal("expected token signed with another secret to fail")
	}
}

func TestParseTokenRejectsUnsignedToken(t *testing.T) {
	secret := []byte("test-secret")

	claims := &Claims{
		Email: "user@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "ext-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("signing with none: %v", err)
	}

	if _, err := ParseToken(secret, token); err == nil {
		t.Fatal("expected token with alg=none to fail")
	}
}

func TestParseExpiredToken(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken(secret, "ext-123", "user@example.com", false, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ParseToken(secret, token); err == nil {
		t.Fatal("expected expired token to fail")
	}
}
