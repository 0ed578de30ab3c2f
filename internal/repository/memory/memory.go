// Package memory provides in-memory repository implementations with the
// same semantics as the postgres ones. They back the test suites and are
// handy for running the API without a database.
package memory

import (
	"strings"
	"sync"
	"time"

	"github.com/eventhub/eventhub-backend/internal/apperr"
	"github.com/eventhub/eventhub-backend/internal/models"
)

type Store struct {
	mu        sync.Mutex
	users     map[uint]*models.User
	events    map[uint]*models.Event
	attendees map[uint][]uint // event ID -> attendee user IDs in RSVP order
	nextUser  uint
	nextEvent uint
}

func NewStore() *Store {
	return &Store{
		users:     make(map[uint]*models.User),
		events:    make(map[uint]*models.Event),
		attendees: make(map[uint][]uint),
	}
}

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Create(user *models.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return apperr.Conflict("User already exists")
		}
	}
	s.nextUser++
	user.ID = s.nextUser
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	clone := *user
	s.users[user.ID] = &clone
	return nil
}

func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, apperr.NotFound("User not found")
	}
	clone := *user
	return &clone, nil
}

func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, apperr.NotFound("User not found")
}

func (r *UserRepository) EmailExists(email string) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *UserRepository) Update(user *models.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return apperr.NotFound("User not found")
	}
	user.UpdatedAt = time.Now().UTC()
	clone := *user
	s.users[user.ID] = &clone
	return nil
}

func (r *UserRepository) CreatedEventIDs(userID uint) ([]uint, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.createdEventIDsLocked(userID), nil
}

func (s *Store) createdEventIDsLocked(userID uint) []uint {
	ids := []uint{}
	for id := uint(1); id <= s.nextEvent; id++ {
		if event, ok := s.events[id]; ok && event.CreatedByID == userID {
			ids = append(ids, id)
		}
	}
	return ids
}

type EventRepository struct {
	store *Store
}

func NewEventRepository(store *Store) *EventRepository {
	return &EventRepository{store: store}
}

func (r *EventRepository) Create(event *models.Event) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextEvent++
	event.ID = s.nextEvent
	now := time.Now().UTC()
	event.CreatedAt = now
	event.UpdatedAt = now
	clone := *event
	clone.Attendees = nil
	s.events[event.ID] = &clone
	return nil
}

func (r *EventRepository) GetByID(id uint) (*models.Event, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	event, ok := s.events[id]
	if !ok {
		return nil, apperr.NotFound("Event not found")
	}
	return s.eventViewLocked(event), nil
}

func (r *EventRepository) List(filter models.EventFilter) ([]models.Event, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	events := []models.Event{}
	for id := uint(1); id <= s.nextEvent; id++ {
		event, ok := s.events[id]
		if !ok {
			continue
		}
		if filter.Date != nil {
			start := filter.Date.UTC()
			end := start.Add(24 * time.Hour)
			if event.Date.Before(start) || !event.Date.Before(end) {
				continue
			}
		}
		if filter.Location != "" &&
			!strings.Contains(strings.ToLower(event.Location), strings.ToLower(filter.Location)) {
			continue
		}
		events = append(events, *s.eventViewLocked(event))
	}
	return events, nil
}

func (r *EventRepository) Update(event *models.Event) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[event.ID]; !ok {
		return apperr.NotFound("Event not found")
	}
	event.UpdatedAt = time.Now().UTC()
	clone := *event
	clone.Attendees = nil
	s.events[event.ID] = &clone
	return nil
}

func (r *EventRepository) Delete(id uint) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[id]; !ok {
		return apperr.NotFound("Event not found")
	}
	delete(s.events, id)
	delete(s.attendees, id)
	return nil
}

func (r *EventRepository) RSVP(eventID, userID uint) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	event, ok := s.events[eventID]
	if !ok {
		return apperr.NotFound("Event not found")
	}
	attendees := s.attendees[eventID]
	for _, id := range attendees {
		if id == userID {
			return apperr.Conflict("You have already RSVP'd to this event")
		}
	}
	if len(attendees) >= event.MaxAttendees {
		return apperr.Capacity("Event is full")
	}
	s.attendees[eventID] = append(attendees, userID)
	return nil
}

func (r *EventRepository) ListByAttendee(userID uint) ([]models.Event, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	events := []models.Event{}
	for id := uint(1); id <= s.nextEvent; id++ {
		event, ok := s.events[id]
		if !ok {
			continue
		}
		for _, attendee := range s.attendees[id] {
			if attendee == userID {
				events = append(events, *s.eventViewLocked(event))
				break
			}
		}
	}
	return events, nil
}

// eventViewLocked returns a copy with the creator and attendee list
// joined in, mirroring what the postgres repository preloads.
func (s *Store) eventViewLocked(event *models.Event) *models.Event {
	clone := *event
	if creator, ok := s.users[event.CreatedByID]; ok {
		clone.CreatedBy = *creator
	}
	clone.Attendees = append([]uint{}, s.attendees[event.ID]...)
	return &clone
}
