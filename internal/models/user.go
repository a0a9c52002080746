// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered account. Points are the currency of the
// rating economy: +1 for rating someone else's photo, -1 when one of your
// photos is rated, -1 for toggling a photo's visibility.
type User struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	Email            string         `gorm:"unique;not null" json:"email"`
	Password         string         `gorm:"not null" json:"-"`
	Points           int            `gorm:"not null;default:0" json:"points"`
	ResetToken       *string        `gorm:"index" json:"-"`
	ResetTokenExpiry *time.Time     `json:"-"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
	Photos           []Photo        `gorm:"foreignKey:OwnerID" json:"photos,omitempty"`
}
