// bizpulse/models/deal.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DealStatusPending = "Pending"
	DealStatusPaid    = "Paid"
)

// Deal is a single receivable tracked against a customer. The primary
// key is a UUID because it doubles as the unguessable token in the
// public payment link. "Overdue" is never stored: a Pending deal is
// overdue purely as a function of DueDate versus the current time.
type Deal struct {
	ID          string         `json:"id" gorm:"type:uuid;primaryKey"`
	CustomerID  uint           `json:"customerId" gorm:"index;not null"`
	Customer    *Customer      `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Description string         `json:"description" gorm:"not null"`
	Amount      float64        `json:"amount"`
	DueDate     time.Time      `json:"dueDate"`
	Status      string         `json:"status" gorm:"default:'Pending'"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (d *Deal) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
