// bizpulse/models/profile.go
package models

import "gorm.io/gorm"

// BusinessOwnerProfile stores the public and payment details of a
// business owner, kept separate from the account credentials.
type BusinessOwnerProfile struct {
	gorm.Model
	UserID       uint   `json:"userId" gorm:"uniqueIndex;not null"`
	FullName     string `json:"fullName"`
	BusinessName string `json:"businessName"`
	UpiID        string `json:"upiId"`

	Customers []Customer `json:"customers,omitempty" gorm:"foreignKey:OwnerID"`
}
