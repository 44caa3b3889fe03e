// SPDX-License-Identifier: GPL-3.0-only

package middlewares

import (
	"errors"
	"strings"

	"nidhi-server/apperr"
	"nidhi-server/crypto"
	"nidhi-server/models"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const userContextKey = "user"

// Authenticate extracts the bearer token, validates signature and expiry and
// loads the claimed account into the request context. A missing token is
// rejected distinctly from an invalid or expired one.
func Authenticate(db *gorm.DB, tokens *crypto.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			logger := c.Logger()

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				logger.Error("Authorization header missing or invalid.")
				return apperr.New(apperr.Unauthenticated, "Bearer token is required")
			}

			claims, err := tokens.Parse(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				logger.Error("Token validation failed: ", err)
				return apperr.New(apperr.Unauthenticated, "Invalid or expired authentication token")
			}

			var user models.User
			if err := db.Where("id = ?", claims.UID).First(&user).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					logger.Error("Token references an unknown account.")
					return apperr.New(apperr.Unauthenticated, "Invalid or expired authentication token")
				}
				logger.Errorf("Failed to load authenticated user: %v", err)
				return apperr.New(apperr.Internal, "Internal server error")
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// AuthenticatedUser returns the account the middleware attached to the
// request context.
func AuthenticatedUser(c echo.Context) (*models.User, error) {
	user, ok := c.Get(userContextKey).(models.User)
	if !ok {
		return nil, errors.New("no authenticated user found")
	}
	return &user, nil
}
