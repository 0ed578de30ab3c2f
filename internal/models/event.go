package models

import (
	"time"
)

type Event struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"not null"`
	Description  string    `json:"description" gorm:"not null"`
	Date         time.Time `json:"date" gorm:"not null;index"`
	Location     string    `json:"location" gorm:"not null"`
	MaxAttendees int       `json:"max_attendees" gorm:"not null"`
	Image        string    `json:"image,omitempty"`
	CreatedByID  uint      `json:"created_by_id" gorm:"not null;index"`
	CreatedBy    User      `json:"-" gorm:"foreignKey:CreatedByID"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Attendee user IDs in RSVP order, loaded from event_attendees.
	Attendees []uint `json:"attendees" gorm:"-"`
}

// EventAttendee is one RSVP. The composite primary key rules out
// duplicate memberships at the storage level; CreatedAt preserves
// RSVP order.
type EventAttendee struct {
	EventID   uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"index"`
}

// EventFilter narrows List results. Zero-valued fields impose no
// constraint.
type EventFilter struct {
	// Date is the start of the requested day in UTC; matching uses the
	// half-open window [Date, Date+24h).
	Date     *time.Time
	Location string
	// EventType is accepted for forward compatibility but not applied.
	// TODO: filter on it once events carry a type column.
	EventType string
}

type CreateEventRequest struct {
	Title        string `form:"title" validate:"required"`
	Description  string `form:"description" validate:"required"`
	Date         string `form:"date" validate:"required"`
	Location     string `form:"location" validate:"required"`
	MaxAttendees int    `form:"maxAttendees" validate:"required,min=1"`
}

// UpdateEventRequest carries a partial update: zero-valued fields leave
// the stored value unchanged.
type UpdateEventRequest struct {
	Title        string `form:"title"`
	Description  string `form:"description"`
	Date         string `form:"date"`
	Location     string `form:"location"`
	MaxAttendees int    `form:"maxAttendees"`
}

type EventResponse struct {
	ID           uint       `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Date         time.Time  `json:"date"`
	Location     string     `json:"location"`
	MaxAttendees int        `json:"max_attendees"`
	Image        string     `json:"image,omitempty"`
	CreatedBy    UserPublic `json:"created_by"`
	Attendees    []uint     `json:"attendees"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (e *Event) Response() EventResponse {
	attendees := e.Attendees
	if attendees == nil {
		attendees = []uint{}
	}
	return EventResponse{
		ID:           e.ID,
		Title:        e.Title,
		Description:  e.Description,
		Date:         e.Date,
		Location:     e.Location,
		MaxAttendees: e.MaxAttendees,
		Image:        e.Image,
		CreatedBy:    e.CreatedBy.Public(),
		Attendees:    attendees,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

type RSVPResponse struct {
	Message string        `json:"message"`
	Event   EventResponse `json:"event"`
}
