package postgres

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/eventhub/eventhub-backend/internal/apperr"
	"github.com/eventhub/eventhub-backend/internal/models"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

func (r *EventRepository) GetByID(id uint) (*models.Event, error) {
	var event models.Event
	err := r.db.Preload("CreatedBy").First(&event, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Event not found")
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadAttendees(r.db, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) List(filter models.EventFilter) ([]models.Event, error) {
	q := r.db.Preload("CreatedBy")
	if filter.Date != nil {
		start := filter.Date.UTC()
		q = q.Where("date >= ? AND date < ?", start, start.Add(24*time.Hour))
	}
	if filter.Location != "" {
		q = q.Where("location ILIKE ?", "%"+filter.Location+"%")
	}

	var events []models.Event
	if err := q.Find(&events).Error; err != nil {
		return nil, err
	}
	for i := range events {
		if err := r.loadAttendees(r.db, &events[i]); err != nil {
			return nil, err
		}
	}
	return events, nil
}

func (r *EventRepository) Update(event *models.Event) error {
	return r.db.Omit("CreatedBy").Save(event).Error
}

func (r *EventRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&models.EventAttendee{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Event{}, id).Error
	})
}

// RSVP appends userID to the attendee set. The event row is locked for
// the duration of the transaction, so concurrent RSVPs serialize and the
// capacity check cannot be raced past.
func (r *EventRepository) RSVP(eventID, userID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var event models.Event
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&event, eventID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Event not found")
		}
		if err != nil {
			return err
		}

		var existing int64
		if err := tx.Model(&models.EventAttendee{}).
			Where("event_id = ? AND user_id = ?", eventID, userID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return apperr.Conflict("You have already RSVP'd to this event")
		}

		var count int64
		if err := tx.Model(&models.EventAttendee{}).
			Where("event_id = ?", eventID).
			Count(&count).Error; err != nil {
			return err
		}
		if count >= int64(event.MaxAttendees) {
			return apperr.Capacity("Event is full")
		}

		return tx.Create(&models.EventAttendee{EventID: eventID, UserID: userID}).Error
	})
}

func (r *EventRepository) ListByAttendee(userID uint) ([]models.Event, error) {
	var events []models.Event
	err := r.db.Preload("CreatedBy").
		Joins("JOIN event_attendees ON event_attendees.event_id = events.id").
		Where("event_attendees.user_id = ?", userID).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	for i := range events {
		if err := r.loadAttendees(r.db, &events[i]); err != nil {
			return nil, err
		}
	}
	return events, nil
}

func (r *EventRepository) loadAttendees(tx *gorm.DB, event *models.Event) error {
	var ids []uint
	err := tx.Model(&models.EventAttendee{}).
		Where("event_id = ?", event.ID).
		Order("created_at").
		Pluck("user_id", &ids).Error
	if err != nil {
		return err
	}
	event.Attendees = ids
	return nil
}
