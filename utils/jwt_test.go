package utils

import (
	"os"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

// Tokens are signed with the JWT_SECRET environment variable; that
// env var is the single source of truth for the signing key.
func TestGenerateJWTSignedWithEnvSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	tokenString, err := GenerateJWT(42, "a@example.com")
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token does not verify against JWT_SECRET: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("unexpected claims type")
	}
	if id, _ := claims["userId"].(float64); uint(id) != 42 {
		t.Errorf("userId claim = %v, want 42", claims["userId"])
	}
	if email, _ := claims["email"].(string); email != "a@example.com" {
		t.Errorf("email claim = %q, want a@example.com", email)
	}

	// A different key must not verify.
	_, err = jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	})
	if err == nil {
		t.Error("token verified with the wrong secret")
	}
}
