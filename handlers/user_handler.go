// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"errors"
	"net/http"

	"nidhi-server/middlewares"
	"nidhi-server/models"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// GetProfileHandler godoc
// @Summary      Get user profile
// @Description  Retrieves the authenticated user's full profile with bank details (null until added).
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token for authentication"  default(Bearer <your_token_here>)
// @Success      200 {object} ProfileResponse   "Profile retrieved successfully"
// @Failure      401 {object} GenericResponse   "Unauthorized, missing or invalid token"
// @Failure      500 {object} GenericResponse   "Internal server error"
// @Router       /api/users/profile [get]
func (h *Handler) GetProfileHandler(c echo.Context) error {
	logger := c.Logger()

	user, err := middlewares.AuthenticatedUser(c)
	if err != nil {
		logger.Error("Failed to get authenticated user: ", err)
		return echo.ErrUnauthorized
	}

	var bankDetails *BankDetailsResponse
	var details models.BankDetails
	if err := h.DB.Where("user_id = ?", user.ID).First(&details).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Errorf("Failed to fetch bank details: %v", err)
			return echo.ErrInternalServerError
		}
	} else {
		bankDetails = bankDetailsResponse(&details)
	}

	return c.JSON(http.StatusOK, ProfileResponse{
		Message:         "Profile retrieved successfully",
		ID:              user.ID,
		UserID:          user.UserID,
		FullName:        user.FullName,
		FatherName:      user.FatherName,
		City:            user.City,
		State:           user.State,
		CurrentAddress:  user.CurrentAddress,
		Pincode:         user.Pincode,
		PhoneNumber:     user.PhoneNumber,
		Email:           user.Email,
		AadharNumber:    user.AadharNumber,
		PANNumber:       user.PANNumber,
		DateOfBirth:     user.DateOfBirth,
		ReferralID:      user.ReferralID,
		NomineeName:     user.NomineeName,
		NomineeRelation: user.NomineeRelation,
		IsActive:        user.IsActive,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
		BankDetails:     bankDetails,
	})
}

// HealthHandler godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200 {object} GenericResponse "Server is running"
// @Router       /health [get]
func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, GenericResponse{Message: "Server is running"})
}
