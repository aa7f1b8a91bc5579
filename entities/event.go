package entities

import "time"

type EventType string

const (
	EventFavouriteAdded   EventType = "favourite_added"
	EventFavouriteRemoved EventType = "favourite_removed"
	EventReviewAdded      EventType = "review_added"
	EventReviewDeleted    EventType = "review_deleted"
)

// Event is pushed to live feed subscribers after a favourite or review changes.
type Event struct {
	ID             string         `json:"id"`
	Type           EventType      `json:"type"`
	PropertyID     uint           `json:"property_id"`
	UserID         uint           `json:"user_id,omitempty"`
	FavouriteCount *int64         `json:"favourite_count,omitempty"`
	AverageRating  *AverageRating `json:"average_rating,omitempty"`
	Timestamp      time.Time      `json:"timestamp"`
}
