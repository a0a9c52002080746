package models

import (
	"time"

	"gorm.io/gorm"
)

// Demographic filter values. FilterAny matches every query value.
const (
	FilterAny = "any"

	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"

	AgeBucket18To25 = "18-25"
	AgeBucket26To35 = "26-35"
	AgeBucket36To50 = "36-50"
	AgeBucket50Plus = "50+"
)

// ValidGender reports whether g is one of the rater gender values.
func ValidGender(g string) bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

// ValidAgeBucket reports whether a is one of the rater age buckets.
func ValidAgeBucket(a string) bool {
	return a == AgeBucket18To25 || a == AgeBucket26To35 || a == AgeBucket36To50 || a == AgeBucket50Plus
}

// ValidGenderFilter reports whether g is a valid photo targeting value.
func ValidGenderFilter(g string) bool {
	return g == FilterAny || ValidGender(g)
}

// ValidAgeFilter reports whether a is a valid photo targeting value.
func ValidAgeFilter(a string) bool {
	return a == FilterAny || ValidAgeBucket(a)
}

// Photo is an uploaded image with visibility and targeting state.
// IsActive gates eligibility to be shown to raters; the owner reference is
// immutable after creation.
type Photo struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	OwnerID      uint           `gorm:"not null;index" json:"ownerId"`
	Owner        User           `gorm:"foreignKey:OwnerID" json:"-"`
	ImageURL     string         `gorm:"not null" json:"imageUrl"`
	IsActive     bool           `gorm:"not null;default:true" json:"isActive"`
	GenderFilter string         `gorm:"not null;default:'any'" json:"genderFilter"`
	AgeFilter    string         `gorm:"not null;default:'any'" json:"ageFilter"`
	Ratings      []Rating       `gorm:"foreignKey:PhotoID" json:"-"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// Rating is a single user's score for a photo. Append-only: there is no
// edit or delete path. The composite unique index enforces one rating per
// user per photo at the schema level.
type Rating struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PhotoID   uint      `gorm:"not null;uniqueIndex:idx_photo_rater" json:"photoId"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_photo_rater" json:"userId"`
	Gender    string    `gorm:"not null" json:"gender"`
	Age       string    `gorm:"not null" json:"age"`
	Score     int       `gorm:"not null" json:"score"`
	CreatedAt time.Time `json:"createdAt"`
}
