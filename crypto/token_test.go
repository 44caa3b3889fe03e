// SPDX-License-Identifier: GPL-3.0-only

package crypto

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewTokenIssuerRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := NewTokenIssuer(); err == nil {
		t.Error("NewTokenIssuer should fail without JWT_SECRET")
	}
}

func TestNewTokenIssuerExpiryConfig(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key")
	t.Setenv("JWT_EXPIRES_IN", "12h")
	ti, err := NewTokenIssuer()
	if err != nil {
		t.Fatalf("NewTokenIssuer failed: %v", err)
	}
	if ti.ttl != 12*time.Hour {
		t.Errorf("Expected ttl 12h, got %v", ti.ttl)
	}

	t.Setenv("JWT_EXPIRES_IN", "not-a-duration")
	if _, err := NewTokenIssuer(); err == nil {
		t.Error("NewTokenIssuer should reject an unparseable JWT_EXPIRES_IN")
	}
}

func TestIssueAndParse(t *testing.T) {
	ti := &TokenIssuer{secret: []byte("test-secret-key"), ttl: time.Hour}

	token, err := ti.Issue(42, "MU-400001-3210", "rohan@example.com")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	claims, err := ti.Parse(token)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if claims.UID != 42 {
		t.Errorf("Expected uid 42, got %d", claims.UID)
	}
	if claims.UserID != "MU-400001-3210" {
		t.Errorf("Expected user_id MU-400001-3210, got %s", claims.UserID)
	}
	if claims.Email != "rohan@example.com" {
		t.Errorf("Expected email rohan@example.com, got %s", claims.Email)
	}
}

func TestParseExpiredToken(t *testing.T) {
	ti := &TokenIssuer{secret: []byte("test-secret-key"), ttl: -time.Hour}

	token, err := ti.Issue(1, "MU-400001-3210", "rohan@example.com")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	_, err = ti.Parse(token)
	if err == nil {
		t.Fatal("Parse should fail for an expired token")
	}
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("Expected jwt.ErrTokenExpired, got %v", err)
	}
	if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Error("Expired token should not be reported as a signature failure")
	}
}

func TestParseTamperedToken(t *testing.T) {
	ti := &TokenIssuer{secret: []byte("test-secret-key"), ttl: time.Hour}
	other := &TokenIssuer{secret: []byte("a-different-secret"), ttl: time.Hour}

	token, err := other.Issue(1, "MU-400001-3210", "rohan@example.com")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	_, err = ti.Parse(token)
	if err == nil {
		t.Fatal("Parse should fail for a token signed with another key")
	}
	if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Errorf("Expected jwt.ErrTokenSignatureInvalid, got %v", err)
	}
	if errors.Is(err, jwt.ErrTokenExpired) {
		t.Error("Tampered token should not be reported as expired")
	}
}

func TestParseExpiry(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"7d", 7 * 24 * time.Hour},
		{"1d", 24 * time.Hour},
		{"36h", 36 * time.Hour},
		{"30m", 30 * time.Minute},
	}
	for _, tc := range cases {
		got, err := ParseExpiry(tc.in)
		if err != nil {
			t.Errorf("ParseExpiry(%q) failed: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseExpiry(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	if _, err := ParseExpiry("xd"); err == nil {
		t.Error("ParseExpiry should reject a non-numeric day count")
	}
}
