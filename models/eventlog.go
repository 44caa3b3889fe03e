// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventStatus string
type EventCategory string

const (
	EventOK     EventStatus = "OK"
	EventFailed EventStatus = "FAILED"
)

const (
	Registration    EventCategory = "REGISTRATION"
	Login           EventCategory = "LOGIN"
	BankDetailsEdit EventCategory = "BANK_DETAILS"
)

// EventLog is a best-effort audit row for account-lifecycle events.
type EventLog struct {
	ID          uint          `gorm:"primaryKey"`
	EID         uuid.UUID     `gorm:"type:uuid;not null;"`
	Category    EventCategory `gorm:"size:32;not null"`
	Status      EventStatus   `gorm:"size:32;not null"`
	Description *string       `gorm:"type:text;default:null;"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	UserID      uint
	User        User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (eventLog *EventLog) BeforeCreate(tx *gorm.DB) (err error) {
	eventLog.EID = uuid.New()
	return
}

func init() {
	AllModels = append(AllModels, &EventLog{})
}
