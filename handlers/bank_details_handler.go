// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"errors"
	"net/http"

	"nidhi-server/apperr"
	"nidhi-server/events"
	"nidhi-server/middlewares"
	"nidhi-server/models"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// AddBankDetailsHandler godoc
// @Summary      Add bank details
// @Description  Creates the bank-account record for the authenticated user. Fails if one already exists.
// @Tags         bank-details
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token for authentication"  default(Bearer <your_token_here>)
// @Param        bankDetailsRequest  body  BankDetailsRequest  true  "Bank details payload"
// @Success      201 {object} BankDetailsResponse  "Bank details added successfully"
// @Failure      400 {object} GenericResponse      "Validation failure or record already exists"
// @Failure      401 {object} GenericResponse      "Unauthorized, missing or invalid token"
// @Failure      404 {object} GenericResponse      "Account not found"
// @Failure      500 {object} GenericResponse      "Internal server error"
// @Router       /api/users/bank-details [post]
func (h *Handler) AddBankDetailsHandler(c echo.Context) error {
	logger := c.Logger()

	user, err := middlewares.AuthenticatedUser(c)
	if err != nil {
		logger.Error("Failed to get authenticated user: ", err)
		return echo.ErrUnauthorized
	}

	var req BankDetailsRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid bank details payload: ", err)
		return echo.ErrBadRequest
	}
	if err := validateBankDetails(&req); err != nil {
		logger.Error("Bank details validation failed: ", err)
		return err
	}

	// Defensive: the auth middleware already loaded the account, but the row
	// can disappear between then and now.
	exists, err := h.userExists("id = ?", user.ID)
	if err != nil {
		logger.Errorf("User lookup failed: %v", err)
		return echo.ErrInternalServerError
	}
	if !exists {
		return apperr.New(apperr.NotFound, "User not found")
	}

	var existing models.BankDetails
	err = h.DB.Where("user_id = ?", user.ID).First(&existing).Error
	if err == nil {
		logger.Error("Bank details already exist.")
		return apperr.New(apperr.Duplicate, "Bank details already exist. Use update endpoint instead.")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Errorf("Failed to check existing bank details: %v", err)
		return echo.ErrInternalServerError
	}

	details := models.BankDetails{
		BankName:          req.BankName,
		AccountHolderName: req.AccountHolderName,
		IFSC:              req.IFSC,
		BranchName:        req.BranchName,
		AccountNumber:     req.AccountNumber,
		UserID:            user.ID,
	}
	if err := h.DB.Create(&details).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			logger.Errorf("Concurrent bank details creation: %v", err)
			return apperr.New(apperr.Duplicate, "Bank details already exist. Use update endpoint instead.")
		}
		logger.Errorf("Failed to create bank details: %v", err)
		return echo.ErrInternalServerError
	}

	h.recordEvent(c, user, models.BankDetailsEdit, events.BankDetailsAdded, "bank details added")

	logger.Info("Bank details added successfully")
	return c.JSON(http.StatusCreated, bankDetailsResponse(&details))
}

// UpdateBankDetailsHandler godoc
// @Summary      Update bank details
// @Description  Overwrites the existing bank-account record for the authenticated user. Fails if none exists.
// @Tags         bank-details
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token for authentication"  default(Bearer <your_token_here>)
// @Param        bankDetailsRequest  body  BankDetailsRequest  true  "Bank details payload"
// @Success      200 {object} BankDetailsResponse  "Bank details updated successfully"
// @Failure      400 {object} GenericResponse      "Validation failure"
// @Failure      401 {object} GenericResponse      "Unauthorized, missing or invalid token"
// @Failure      404 {object} GenericResponse      "Account or bank details not found"
// @Failure      500 {object} GenericResponse      "Internal server error"
// @Router       /api/users/bank-details [put]
func (h *Handler) UpdateBankDetailsHandler(c echo.Context) error {
	logger := c.Logger()

	user, err := middlewares.AuthenticatedUser(c)
	if err != nil {
		logger.Error("Failed to get authenticated user: ", err)
		return echo.ErrUnauthorized
	}

	var req BankDetailsRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid bank details payload: ", err)
		return echo.ErrBadRequest
	}
	if err := validateBankDetails(&req); err != nil {
		logger.Error("Bank details validation failed: ", err)
		return err
	}

	exists, err := h.userExists("id = ?", user.ID)
	if err != nil {
		logger.Errorf("User lookup failed: %v", err)
		return echo.ErrInternalServerError
	}
	if !exists {
		return apperr.New(apperr.NotFound, "User not found")
	}

	var details models.BankDetails
	if err := h.DB.Where("user_id = ?", user.ID).First(&details).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error("No bank details to update.")
			return apperr.New(apperr.NotFound, "Bank details not found. Use add endpoint instead.")
		}
		logger.Errorf("Failed to fetch bank details: %v", err)
		return echo.ErrInternalServerError
	}

	details.BankName = req.BankName
	details.AccountHolderName = req.AccountHolderName
	details.IFSC = req.IFSC
	details.BranchName = req.BranchName
	details.AccountNumber = req.AccountNumber
	if err := h.DB.Save(&details).Error; err != nil {
		logger.Errorf("Failed to update bank details: %v", err)
		return echo.ErrInternalServerError
	}

	h.recordEvent(c, user, models.BankDetailsEdit, events.BankDetailsUpdated, "bank details updated")

	logger.Info("Bank details updated successfully")
	return c.JSON(http.StatusOK, bankDetailsResponse(&details))
}
