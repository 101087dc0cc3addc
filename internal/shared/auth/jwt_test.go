package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func staffClaims(exp time.Time) Claims {
	return Claims{
		Roles: []string{"staff"},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "staff-1",
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
}

func TestValidateAcceptsSignedToken(t *testing.T) {
	validator := NewJWTValidator(testSecret)
	token := signToken(t, testSecret, staffClaims(time.Now().Add(time.Hour)))

	claims, err := validator.Validate(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.RegisteredClaims.Subject != "staff-1" {
		t.Fatalf("expected the subject back, got %q", claims.RegisteredClaims.Subject)
	}
	if !claims.HasRole("STAFF") {
		t.Fatal("expected the role check to be case-insensitive")
	}
	if claims.HasRole("admin") {
		t.Fatal("did not expect an unlisted role")
	}
}

func TestValidateRejections(t *testing.T) {
	validator := NewJWTValidator(testSecret)

	cases := []struct {
		name     string
		token    string
		expected error
	}{
		{name: "empty token", token: "", expected: ErrMissingToken},
		{name: "garbage token", token: "not.a.jwt", expected: ErrInvalidToken},
		{name: "wrong secret", token: signToken(t, "other-secret", staffClaims(time.Now().Add(time.Hour))), expected: ErrInvalidToken},
		{name: "expired", token: signToken(t, testSecret, staffClaims(time.Now().Add(-time.Hour))), expected: ErrInvalidToken},
		{
			name: "missing subject",
			token: signToken(t, testSecret, Claims{
				Roles:            []string{"staff"},
				RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
			}),
			expected: ErrInvalidToken,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := validator.Validate(tc.token); !errors.Is(err, tc.expected) {
				t.Fatalf("expected %v, got %v", tc.expected, err)
			}
		})
	}
}

func TestValidateWithoutSecret(t *testing.T) {
	validator := NewJWTValidator("")
	token := signToken(t, testSecret, staffClaims(time.Now().Add(time.Hour)))
	if _, err := validator.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected %v, got %v", ErrInvalidToken, err)
	}
}
