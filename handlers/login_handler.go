// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"errors"
	"net/http"

	"nidhi-server/apperr"
	"nidhi-server/crypto"
	"nidhi-server/events"
	"nidhi-server/models"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// invalidCredentialsMessage is shared by the unknown-email and wrong-password
// paths so responses do not reveal which emails are registered.
const invalidCredentialsMessage = "Invalid email or password"

// LoginHandler godoc
// @Summary      Login a user
// @Description  Authenticates a user by email and password and returns a bearer token.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        loginRequest  body  LoginRequest  true  "Login request payload"
// @Success      200 {object} AuthResponse      "Login successful"
// @Failure      400 {object} GenericResponse   "Bad request, missing required fields"
// @Failure      401 {object} GenericResponse   "Invalid credentials or inactive account"
// @Failure      500 {object} GenericResponse   "Internal server error"
// @Router       /api/users/login [post]
func (h *Handler) LoginHandler(c echo.Context) error {
	logger := c.Logger()

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid login request payload: ", err)
		return echo.ErrBadRequest
	}

	if err := validateLogin(&req); err != nil {
		logger.Error("Login validation failed: ", err)
		return err
	}

	var user models.User
	if err := h.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error("User not found.")
			return apperr.New(apperr.InvalidCredentials, invalidCredentialsMessage)
		}
		logger.Errorf("Failed to find user: %v", err)
		return echo.ErrInternalServerError
	}

	if !user.IsActive {
		logger.Error("Account is inactive.")
		return apperr.New(apperr.InactiveAccount, "User account is inactive")
	}

	if err := crypto.NewCrypto().VerifyPassword(req.Password, user.Password); err != nil {
		logger.Error("Password verification failed.")
		return apperr.New(apperr.InvalidCredentials, invalidCredentialsMessage)
	}

	token, err := h.Tokens.Issue(user.ID, user.UserID, user.Email)
	if err != nil {
		logger.Errorf("Failed to issue token: %v", err)
		return echo.ErrInternalServerError
	}

	h.recordEvent(c, &user, models.Login, events.AccountLogin, "account login")

	return c.JSON(http.StatusOK, AuthResponse{
		Message: "Login successful",
		User: UserSummary{
			ID:          user.ID,
			UserID:      user.UserID,
			FullName:    user.FullName,
			Email:       user.Email,
			PhoneNumber: user.PhoneNumber,
		},
		Token: token,
	})
}
