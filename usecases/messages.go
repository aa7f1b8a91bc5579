package usecases

import (
	"time"

	"rental-server/entities"

	"github.com/google/uuid"
)

const (
	msgBadRequest        = "Bad Request"
	msgPropertyNotFound  = "Property not found"
	msgUserNotFound      = "User not found"
	msgGuestNotFound     = "Guest not found"
	msgReviewNotFound    = "Review not found"
	msgAlreadyFavourited = "Already favourited."
)

// EventPublisher receives activity events once a change is committed.
type EventPublisher interface {
	Publish(event entities.Event)
}

func newEvent(kind entities.EventType, propertyID, userID uint) entities.Event {
	return entities.Event{
		ID:         uuid.NewString(),
		Type:       kind,
		PropertyID: propertyID,
		UserID:     userID,
		Timestamp:  time.Now().UTC(),
	}
}

func publish(events EventPublisher, event entities.Event) {
	if events != nil {
		events.Publish(event)
	}
}
