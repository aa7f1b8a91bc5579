package entities

import (
	"encoding/json"
	"time"
)

type Review struct {
	ReviewID   uint      `gorm:"primaryKey;column:review_id" json:"review_id"`
	PropertyID uint      `gorm:"not null;index" json:"property_id"`
	GuestID    uint      `gorm:"not null;index" json:"guest_id"`
	Rating     int       `gorm:"not null" json:"rating"`
	Comment    *string   `gorm:"type:text" json:"comment"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	Property Property `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Guest    User     `gorm:"foreignKey:GuestID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Review) TableName() string { return "reviews" }

// ReviewSummary is a review as listed under a property.
type ReviewSummary struct {
	ReviewID       uint      `gorm:"column:review_id" json:"review_id"`
	Comment        *string   `gorm:"column:comment" json:"comment"`
	Rating         int       `gorm:"column:rating" json:"rating"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
	GuestFirstName string    `gorm:"column:guest_first_name" json:"-"`
	GuestSurname   string    `gorm:"column:guest_surname" json:"-"`
	GuestAvatar    string    `gorm:"column:guest_avatar" json:"guest_avatar"`
	Guest          string    `gorm:"-" json:"guest"`
}

// NoRatings is written in place of an average when a property has no reviews.
const NoRatings = "No Ratings"

// AverageRating is a mean rating that may be absent.
type AverageRating struct {
	Value float64
	Valid bool
}

func (a AverageRating) MarshalJSON() ([]byte, error) {
	if !a.Valid {
		return json.Marshal(NoRatings)
	}
	return json.Marshal(a.Value)
}

// RatingSummary is the aggregate of all ratings stored for one property.
type RatingSummary struct {
	PropertyID uint
	Count      int64
	Average    AverageRating
}

type PropertyReviews struct {
	Reviews       []ReviewSummary `json:"reviews"`
	AverageRating AverageRating   `json:"average_rating"`
}

// NewReview carries the fields accepted when posting a review.
type NewReview struct {
	GuestID *int    `json:"guest_id" binding:"required"`
	Rating  *int    `json:"rating" binding:"required"`
	Comment *string `json:"comment"`
}
