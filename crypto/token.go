// SPDX-License-Identifier: GPL-3.0-only

package crypto

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"nidhi-server/commons"

	"github.com/golang-jwt/jwt/v5"
)

const DefaultTokenTTL = 7 * 24 * time.Hour

// AuthClaims binds the surrogate id, the human-readable user identifier and
// the email of an account into a signed, time-bounded token.
type AuthClaims struct {
	UID    uint   `json:"uid"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer reads JWT_SECRET and JWT_EXPIRES_IN. A missing secret is an
// error: callers must treat it as fatal at startup, no token can ever be
// issued without it.
func NewTokenIssuer() (*TokenIssuer, error) {
	secret := commons.GetEnv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET environment variable is required")
	}
	ttl := DefaultTokenTTL
	if v := commons.GetEnv("JWT_EXPIRES_IN"); v != "" {
		parsed, err := ParseExpiry(v)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRES_IN: %w", err)
		}
		ttl = parsed
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}, nil
}

func (ti *TokenIssuer) Issue(id uint, userID, email string) (string, error) {
	now := time.Now()
	claims := AuthClaims{
		UID:    id,
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ti.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(ti.secret)
}

// Parse verifies the signature and expiry of a token and returns its claims.
// Expired tokens fail with jwt.ErrTokenExpired, tampered ones with
// jwt.ErrTokenSignatureInvalid.
func (ti *TokenIssuer) Parse(tokenString string) (*AuthClaims, error) {
	claims := &AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return ti.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}

// ParseExpiry accepts Go duration strings plus a day suffix, e.g. "7d".
func ParseExpiry(s string) (time.Duration, error) {
	if strings.HasSuffix(s, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(s, "d"))
		if err != nil {
			return 0, fmt.Errorf("invalid day duration %q", s)
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}
	return time.ParseDuration(s)
}
