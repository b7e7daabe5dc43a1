// bizpulse/models/reminder_log.go
package models

import "gorm.io/gorm"

// ReminderLog records every payment reminder sent for a deal.
type ReminderLog struct {
	gorm.Model
	DealID string `json:"dealId" gorm:"index;not null"`
	Method string `json:"method"`
}
