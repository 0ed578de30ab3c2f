package repository

import (
	"github.com/eventhub/eventhub-backend/internal/models"
)

// UserRepository defines persistence operations for User entities.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	EmailExists(email string) (bool, error)
	Update(user *models.User) error

	// CreatedEventIDs returns the IDs of events the user created. The
	// list is derived from events.created_by_id rather than stored on
	// the user, so it can never drift from the authoritative ownership.
	CreatedEventIDs(userID uint) ([]uint, error)
}

// EventRepository defines persistence operations for Event entities and
// their attendee sets.
type EventRepository interface {
	Create(event *models.Event) error
	GetByID(id uint) (*models.Event, error)
	List(filter models.EventFilter) ([]models.Event, error)
	Update(event *models.Event) error
	Delete(id uint) error

	// RSVP appends userID to the event's attendee set. The checks run
	// in order inside one atomic step: event exists, user not already an
	// attendee, capacity not reached. Violations surface as apperr
	// NotFound, Conflict and Capacity errors respectively.
	RSVP(eventID, userID uint) error

	ListByAttendee(userID uint) ([]models.Event, error)
}
