// SPDX-License-Identifier: GPL-3.0-only

package routes

import (
	"nidhi-server/commons"
	"nidhi-server/crypto"
	"nidhi-server/handlers"
	"nidhi-server/middlewares"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

func Register(e *echo.Echo, h *handlers.Handler, db *gorm.DB, tokens *crypto.TokenIssuer) {
	commons.Logger.Debug("Registering routes")

	auth := middlewares.Authenticate(db, tokens)

	users := e.Group("/api/users")
	users.POST("/register", h.RegisterHandler)
	users.POST("/login", h.LoginHandler)
	users.GET("/profile", h.GetProfileHandler, auth)
	users.POST("/bank-details", h.AddBankDetailsHandler, auth)
	users.PUT("/bank-details", h.UpdateBankDetailsHandler, auth)

	e.GET("/health", handlers.HealthHandler)

	commons.Logger.Info("Routes registered successfully")
}
