// bizpulse/models/user.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// User is a registered business owner account.
type User struct {
	gorm.Model
	Login        string     `json:"login" gorm:"uniqueIndex;not null"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null"`
	FullName     string     `json:"fullName"`
	PasswordHash string     `json:"-" gorm:"not null"`
	LastLoginAt  *time.Time `json:"lastLoginAt"`

	Profile *BusinessOwnerProfile `json:"profile,omitempty" gorm:"foreignKey:UserID"`
}

// AfterCreate creates the business profile that every account owns.
// Registration never has to remember to do this separately.
func (u *User) AfterCreate(tx *gorm.DB) error {
	return tx.Create(&BusinessOwnerProfile{UserID: u.ID}).Error
}
