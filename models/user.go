// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"gorm.io/gorm"
)

var AllModels []any

// User holds the KYC profile captured at registration. UserID is the derived
// human-readable identifier and is immutable once assigned; ID is the
// storage-assigned surrogate key.
type User struct {
	ID              uint      `gorm:"primaryKey"`
	UserID          string    `gorm:"not null;uniqueIndex;size:32"`
	FullName        string    `gorm:"not null;size:100"`
	FatherName      string    `gorm:"not null;size:100"`
	City            string    `gorm:"not null;size:50"`
	State           string    `gorm:"not null;size:50"`
	CurrentAddress  string    `gorm:"not null;size:200"`
	Pincode         string    `gorm:"not null;size:6"`
	PhoneNumber     string    `gorm:"not null;uniqueIndex;size:10"`
	Email           string    `gorm:"not null;uniqueIndex;size:255"`
	AadharNumber    string    `gorm:"not null;uniqueIndex;size:12"`
	PANNumber       string    `gorm:"column:pan_number;not null;uniqueIndex;size:10"`
	DateOfBirth     time.Time `gorm:"not null"`
	ReferralID      *string   `gorm:"default:null;size:32"`
	NomineeName     *string   `gorm:"default:null;size:100"`
	NomineeRelation *string   `gorm:"default:null;size:50"`
	Password        string    `gorm:"not null"`
	IsActive        bool      `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func init() {
	AllModels = append(AllModels, &User{})
}
