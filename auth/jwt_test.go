package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var testKey = []byte("test-signing-key")

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(testKey)
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func TestFromToken_ValidToken(t *testing.T) {
	now := time.Now()
	tokenString := signToken(t, jwt.MapClaims{
		"sub":   "alice",
		"iss":   "opkit",
		"aud":   "endpoint",
		"roles": []any{"admin", "operator"},
		"iat":   float64(now.Unix()),
		"exp":   float64(now.Add(time.Hour).Unix()),
	})

	cfg := TokenConfig{
		Key:        testKey,
		Issuer:     "opkit",
		Audience:   "endpoint",
		RolesClaim: "roles",
	}

	id, err := FromToken(cfg, tokenString)
	if err != nil {
		t.Fatalf("FromToken failed: %v", err)
	}

	if id.Principal != "alice" {
		t.Errorf("Principal = %q, want %q", id.Principal, "alice")
	}
	if !id.HasRole("admin") || !id.HasRole("operator") {
		t.Errorf("Roles = %v, want admin and operator", id.Roles)
	}
	if id.IsExpired() {
		t.Error("identity should not be expired")
	}
	if id.Claims["iss"] != "opkit" {
		t.Errorf("Claims[iss] = %v, want opkit", id.Claims["iss"])
	}
}

func TestFromToken_CustomPrincipalClaim(t *testing.T) {
	tokenString := signToken(t, jwt.MapClaims{
		"email": "alice@example.com",
		"exp":   float64(time.Now().Add(time.Hour).Unix()),
	})

	cfg := TokenConfig{Key: testKey, PrincipalClaim: "email"}
	id, err := FromToken(cfg, tokenString)
	if err != nil {
		t.Fatalf("FromToken failed: %v", err)
	}
	if id.Principal != "alice@example.com" {
		t.Errorf("Principal = %q, want email claim", id.Principal)
	}
}

func TestFromToken_Failures(t *testing.T) {
	valid := signToken(t, jwt.MapClaims{
		"sub": "alice",
		"iss": "opkit",
		"exp": float64(time.Now().Add(time.Hour).Unix()),
	})
	expired := signToken(t, jwt.MapClaims{
		"sub": "alice",
		"exp": float64(time.Now().Add(-time.Hour).Unix()),
	})

	tests := []struct {
		name    string
		cfg     TokenConfig
		token   string
		wantErr error
	}{
		{"malformed token", TokenConfig{Key: testKey}, "not-a-token", ErrTokenMalformed},
		{"expired token", TokenConfig{Key: testKey}, expired, ErrTokenExpired},
		{"wrong key", TokenConfig{Key: []byte("other-key")}, valid, ErrTokenInvalid},
		{"wrong issuer", TokenConfig{Key: testKey, Issuer: "someone-else"}, valid, ErrTokenInvalid},
		{"missing audience", TokenConfig{Key: testKey, Audience: "endpoint"}, valid, ErrTokenInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromToken(tt.cfg, tt.token)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("FromToken error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
