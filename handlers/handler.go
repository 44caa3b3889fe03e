// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"errors"

	"nidhi-server/events"
	"nidhi-server/models"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// Handler carries the process-scoped dependencies of every route: the
// persistence handle, the token issuer and the event publisher. Constructed
// once in main, never a package global.
type Handler struct {
	DB     *gorm.DB
	Tokens TokenIssuer
	Events *events.Publisher
}

// TokenIssuer is the slice of the credential authority the handlers need.
type TokenIssuer interface {
	Issue(id uint, userID, email string) (string, error)
}

func New(db *gorm.DB, tokens TokenIssuer, publisher *events.Publisher) *Handler {
	return &Handler{DB: db, Tokens: tokens, Events: publisher}
}

// userExists reports whether any account matches the query, mapping
// record-not-found to false and passing transient errors through.
func (h *Handler) userExists(query string, args ...any) (bool, error) {
	err := h.DB.Where(query, args...).First(&models.User{}).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// recordEvent writes a best-effort audit row and publishes the matching
// AMQP event. Neither failure aborts the request.
func (h *Handler) recordEvent(c echo.Context, user *models.User, category models.EventCategory, routingKey, description string) {
	desc := description
	entry := models.EventLog{
		Category:    category,
		Status:      models.EventOK,
		Description: &desc,
		UserID:      user.ID,
	}
	if err := h.DB.Create(&entry).Error; err != nil {
		c.Logger().Error("Failed to record event log: ", err)
	}
	h.Events.Publish(c.Request().Context(), routingKey, events.Event{
		Type:   routingKey,
		UserID: user.UserID,
		Email:  user.Email,
	})
}

func bankDetailsResponse(details *models.BankDetails) *BankDetailsResponse {
	return &BankDetailsResponse{
		ID:                details.ID,
		BankName:          details.BankName,
		AccountHolderName: details.AccountHolderName,
		IFSC:              details.IFSC,
		BranchName:        details.BranchName,
		AccountNumber:     details.AccountNumber,
		UserID:            details.UserID,
		CreatedAt:         details.CreatedAt,
		UpdatedAt:         details.UpdatedAt,
	}
}
