package services

import "time"

type EventAction string

const (
	EventCreated      EventAction = "created"
	EventUpdated      EventAction = "updated"
	EventDeleted      EventAction = "deleted"
	EventToggled      EventAction = "toggled"
	EventProfilePhoto EventAction = "profile_photo"
)

const (
	CollectionProjects       = "projects"
	CollectionPortfolioLinks = "portfolio_links"
	CollectionPhotos         = "photos"
	CollectionProfile        = "profile"
)

// Event describes one successful mutation of a collection.
type Event struct {
	Collection string      `json:"collection"`
	Action     EventAction `json:"action"`
	ID         string      `json:"id,omitempty"`
	At         time.Time   `json:"at"`
}

// EventPublisher receives every mutation event. Implementations must not block.
type EventPublisher interface {
	Publish(event Event)
}

type nopPublisher struct{}

func (nopPublisher) Publish(Event) {}

// NopPublisher discards events.
var NopPublisher EventPublisher = nopPublisher{}

func publish(p EventPublisher, collection string, action EventAction, id string) {
	if p == nil {
		return
	}
	p.Publish(Event{
		Collection: collection,
		Action:     action,
		ID:         id,
		At:         time.Now().UTC(),
	})
}
