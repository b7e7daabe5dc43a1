// bizpulse/models/customer.go
package models

import "gorm.io/gorm"

// Customer is a client of a business owner. Email and PhoneNumber are
// both optional, but at least one must be present at creation; the
// handler enforces that, not the model.
type Customer struct {
	gorm.Model
	OwnerID     uint   `json:"ownerId" gorm:"index;not null"`
	Name        string `json:"name" gorm:"not null"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`

	Deals []Deal `json:"deals,omitempty" gorm:"foreignKey:CustomerID"`
}
