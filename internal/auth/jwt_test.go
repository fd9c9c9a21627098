package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mmynk/splitledger/internal/models"
)

const testSecret = "test-secret-0123456789abcdef"

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager(testSecret, time.Hour)
	user := &models.User{ID: "u1", Email: "alice@example.com"}

	token, err := m.Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.UserID != "u1" || claims.Subject != "u1" {
		t.Errorf("user claims = %s/%s, want u1/u1", claims.UserID, claims.Subject)
	}
	if claims.Email != "alice@example.com" {
		t.Errorf("email claim = %s, want alice@example.com", claims.Email)
	}
	if claims.Issuer != tokenIssuer {
		t.Errorf("issuer = %s, want %s", claims.Issuer, tokenIssuer)
	}
}

func TestJWTValidateRejects(t *testing.T) {
	m := NewJWTManager(testSecret, time.Hour)
	user := &models.User{ID: "u1", Email: "alice@example.com"}

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name:  "garbage",
			token: func(t *testing.T) string { return "not.a.token" },
		},
		{
			name: "wrong key",
			token: func(t *testing.T) string {
				other := NewJWTManager("some-other-secret-for-testing", time.Hour)
				return mustGenerate(t, other, user)
			},
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				expired := NewJWTManager(testSecret, -time.Hour)
				return mustGenerate(t, expired, user)
			},
		},
		{
			name: "missing issuer",
			token: func(t *testing.T) string {
				// Right key, but not minted by this service.
				tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
					Subject:   "u1",
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				})
				signed, err := tok.SignedString([]byte(testSecret))
				if err != nil {
					t.Fatalf("sign failed: %v", err)
				}
				return signed
			},
		},
		{
			name: "disallowed signing method",
			token: func(t *testing.T) string {
				tok := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
					Issuer:    tokenIssuer,
					Subject:   "u1",
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				})
				signed, err := tok.SignedString([]byte(testSecret))
				if err != nil {
					t.Fatalf("sign failed: %v", err)
				}
				return signed
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Validate(tt.token(t))
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("Validate error = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func mustGenerate(t *testing.T, m *JWTManager, user *models.User) string {
	t.Helper()

	token, err := m.Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return token
}
