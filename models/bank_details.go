// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"
)

// BankDetails is the single bank-account record of a user. The unique index
// on UserID enforces the zero-or-one relationship.
type BankDetails struct {
	ID                uint   `gorm:"primaryKey"`
	BankName          string `gorm:"not null;size:100"`
	AccountHolderName string `gorm:"not null;size:100"`
	IFSC              string `gorm:"not null;size:11"`
	BranchName        string `gorm:"not null;size:100"`
	AccountNumber     string `gorm:"not null;size:18"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	UserID            uint `gorm:"not null;uniqueIndex"`
	User              User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func init() {
	AllModels = append(AllModels, &BankDetails{})
}
