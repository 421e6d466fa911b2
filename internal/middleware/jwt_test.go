// jwt_test.go — Unit tests for JWT generation and parsing.
//
// Token round-trips are security-critical: if signing or validation
// breaks, every authenticated route breaks with it.
package middleware

import (
	"testing"
	"time"

	"github.com/cosmos-reader/cosmos-reader-api/internal/models"
)

const testSecret = "test-secret-not-for-production"

func testUser() *models.User {
	return &models.User{
		ID:    "11111111-2222-3333-4444-555555555555",
		Email: "reader@example.com",
		Name:  "Reader",
	}
}

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT(testUser(), testSecret)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	claims, err := ParseJWT(token, testSecret)
	if err != nil {
		t.Fatalf("ParseJWT failed: %v", err)
	}

	if claims.UserID != testUser().ID {
		t.Errorf("UserID = %q, want %q", claims.UserID, testUser().ID)
	}
	if claims.Email != testUser().Email {
		t.Errorf("Email = %q, want %q", claims.Email, testUser().Email)
	}
	if claims.Subject != testUser().ID {
		t.Errorf("Subject = %q, want %q", claims.Subject, testUser().ID)
	}
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT(testUser(), testSecret)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	if _, err := ParseJWT(token, "a-different-secret"); err == nil {
		t.Fatal("ParseJWT accepted a token signed with another secret")
	}
}

func TestParseJWTRejectsGarbage(t *testing.T) {
	for _, token := range []string{"", "not.a.jwt", "abc"} {
		if _, err := ParseJWT(token, testSecret); err == nil {
			t.Errorf("ParseJWT accepted %q", token)
		}
	}
}

func TestTokenExpiryIsSet(t *testing.T) {
	token, err := GenerateJWT(testUser(), testSecret)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	claims, err := ParseJWT(token, testSecret)
	if err != nil {
		t.Fatalf("ParseJWT failed: %v", err)
	}

	if claims.ExpiresAt == nil {
		t.Fatal("token has no expiry")
	}
	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining <= 0 || remaining > TokenLifetime {
		t.Errorf("token expiry %v out of expected range (0, %v]", remaining, TokenLifetime)
	}
}
