// SPDX-License-Identifier: GPL-3.0-only

// Package identity derives the human-readable account identifier from
// profile fields and resolves it to a value no existing account holds.
package identity

import (
	"errors"
	"fmt"
	"strings"

	"nidhi-server/apperr"
	"nidhi-server/models"

	"gorm.io/gorm"
)

// maxResolveAttempts bounds the collision-suffix loop so a pathological
// identifier cluster fails loudly instead of spinning.
const maxResolveAttempts = 1000

// GenerateUserID concatenates the first two characters of the city
// (uppercased), the pincode and the last four digits of the phone number.
// Deterministic and non-cryptographic: two registrants sharing all three
// parts collide, which Resolve handles.
func GenerateUserID(city, pincode, phoneNumber string) string {
	cityInitials := strings.ToUpper(string([]rune(city)[:2]))
	lastFourDigits := phoneNumber[len(phoneNumber)-4:]
	return fmt.Sprintf("%s-%s-%s", cityInitials, pincode, lastFourDigits)
}

type Registrar struct {
	db *gorm.DB
}

func NewRegistrar(db *gorm.DB) *Registrar {
	return &Registrar{db: db}
}

// Resolve returns the first identifier derived from base that no stored
// account holds, appending "-1", "-2", ... on collisions. Two concurrent
// registrations can both pass this check before either insert lands; the
// unique constraint on users.user_id is the final backstop and the losing
// insert surfaces as a retryable conflict.
func (r *Registrar) Resolve(base string) (string, error) {
	userID := base
	for attempt := 1; attempt <= maxResolveAttempts; attempt++ {
		err := r.db.Where("user_id = ?", userID).First(&models.User{}).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return userID, nil
		}
		if err != nil {
			return "", err
		}
		userID = fmt.Sprintf("%s-%d", base, attempt)
	}
	return "", apperr.New(apperr.Exhausted, "identifier space exhausted")
}
