// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"errors"
	"net/http"

	"nidhi-server/apperr"
	"nidhi-server/crypto"
	"nidhi-server/events"
	"nidhi-server/identity"
	"nidhi-server/models"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// RegisterHandler godoc
// @Summary      Register a new user
// @Description  Creates a new account with KYC details, derives a unique user ID and returns a bearer token.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        registerRequest  body  RegisterRequest  true  "Registration request payload"
// @Success      201 {object} AuthResponse      "User registered successfully"
// @Failure      400 {object} GenericResponse   "Validation failure or duplicate field"
// @Failure      409 {object} GenericResponse   "Registration lost a uniqueness race, retryable"
// @Failure      500 {object} GenericResponse   "Internal server error"
// @Router       /api/users/register [post]
func (h *Handler) RegisterHandler(c echo.Context) error {
	logger := c.Logger()

	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid register request payload: ", err)
		return echo.ErrBadRequest
	}

	dateOfBirth, err := validateRegistration(&req)
	if err != nil {
		logger.Error("Registration validation failed: ", err)
		return err
	}

	// Uniqueness checks in contract order: the first failing field wins.
	checks := []struct {
		query   string
		value   string
		message string
	}{
		{"email = ?", req.Email, "Email already registered"},
		{"phone_number = ?", req.PhoneNumber, "Phone number already registered"},
		{"aadhar_number = ?", req.AadharNumber, "Aadhar number already registered"},
		{"pan_number = ?", req.PANNumber, "PAN number already registered"},
	}
	for _, check := range checks {
		taken, err := h.userExists(check.query, check.value)
		if err != nil {
			logger.Errorf("Uniqueness check failed: %v", err)
			return echo.ErrInternalServerError
		}
		if taken {
			logger.Error(check.message)
			return apperr.New(apperr.Duplicate, check.message)
		}
	}

	if req.ReferralID != nil && *req.ReferralID != "" {
		referrerExists, err := h.userExists("user_id = ?", *req.ReferralID)
		if err != nil {
			logger.Errorf("Referrer lookup failed: %v", err)
			return echo.ErrInternalServerError
		}
		if !referrerExists {
			logger.Error("Invalid referral ID.")
			return apperr.New(apperr.Validation, "Invalid referral ID")
		}
	}

	base := identity.GenerateUserID(req.City, req.Pincode, req.PhoneNumber)
	userID, err := identity.NewRegistrar(h.DB).Resolve(base)
	if err != nil {
		logger.Errorf("Failed to resolve unique user ID: %v", err)
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			return appErr
		}
		return echo.ErrInternalServerError
	}

	hash, err := crypto.NewCrypto().HashPassword(req.Password)
	if err != nil {
		logger.Errorf("Failed to hash password: %v", err)
		return echo.ErrInternalServerError
	}

	user := models.User{
		UserID:          userID,
		FullName:        req.FullName,
		FatherName:      req.FatherName,
		City:            req.City,
		State:           req.State,
		CurrentAddress:  req.CurrentAddress,
		Pincode:         req.Pincode,
		PhoneNumber:     req.PhoneNumber,
		Email:           req.Email,
		AadharNumber:    req.AadharNumber,
		PANNumber:       req.PANNumber,
		DateOfBirth:     dateOfBirth,
		ReferralID:      req.ReferralID,
		NomineeName:     req.NomineeName,
		NomineeRelation: req.NomineeRelation,
		Password:        hash,
		IsActive:        true,
	}

	if err := h.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// The pre-checks and the insert are separate calls: a concurrent
			// registration can win the race in between. The storage unique
			// constraint is the backstop; the client may simply retry.
			logger.Errorf("Registration lost a uniqueness race: %v", err)
			return apperr.New(apperr.Conflict, "Registration conflicts with a concurrent request, please retry")
		}
		logger.Errorf("Failed to create user: %v", err)
		return echo.ErrInternalServerError
	}

	token, err := h.Tokens.Issue(user.ID, user.UserID, user.Email)
	if err != nil {
		logger.Errorf("Failed to issue token: %v", err)
		return echo.ErrInternalServerError
	}

	h.recordEvent(c, &user, models.Registration, events.AccountRegistered, "account registered")

	logger.Infof("User registered successfully: %s", user.UserID)
	return c.JSON(http.StatusCreated, AuthResponse{
		Message: "User registered successfully",
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
