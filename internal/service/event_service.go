package service

import (
	"mime/multipart"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/eventhub/eventhub-backend/internal/apperr"
	"github.com/eventhub/eventhub-backend/internal/models"
	"github.com/eventhub/eventhub-backend/internal/repository"
	"github.com/eventhub/eventhub-backend/pkg/storage"
	"github.com/eventhub/eventhub-backend/pkg/utils"
)

type EventService struct {
	events  repository.EventRepository
	storage storage.StorageService
	logger  *zap.Logger
}

func NewEventService(events repository.EventRepository, imageStorage storage.StorageService, logger *zap.Logger) *EventService {
	return &EventService{
		events:  events,
		storage: imageStorage,
		logger:  logger,
	}
}

func (s *EventService) CreateEvent(creatorID uint, req models.CreateEventRequest, image *multipart.FileHeader) (*models.EventResponse, error) {
	if req.Title == "" || req.Description == "" || req.Date == "" || req.Location == "" || req.MaxAttendees == 0 {
		return nil, apperr.Validation("Please include all fields")
	}
	if req.MaxAttendees < 1 {
		return nil, apperr.Validation("There must be at least one attendee")
	}

	date, err := parseEventDate(req.Date)
	if err != nil {
		return nil, apperr.Validation("Invalid date format, expected YYYY-MM-DD")
	}

	event := &models.Event{
		Title:        req.Title,
		Description:  req.Description,
		Date:         date,
		Location:     req.Location,
		MaxAttendees: req.MaxAttendees,
		CreatedByID:  creatorID,
	}

	if image != nil {
		path, err := s.storeImage(image)
		if err != nil {
			return nil, err
		}
		event.Image = path
	}

	if err := s.events.Create(event); err != nil {
		return nil, err
	}

	s.logger.Info("event created",
		zap.Uint("event_id", event.ID),
		zap.Uint("creator_id", creatorID),
	)

	// Reload so the creator is joined into the response.
	created, err := s.events.GetByID(event.ID)
	if err != nil {
		return nil, err
	}
	resp := created.Response()
	return &resp, nil
}

func (s *EventService) GetEvent(id uint) (*models.EventResponse, error) {
	event, err := s.events.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := event.Response()
	return &resp, nil
}

func (s *EventService) ListEvents(filter models.EventFilter) ([]models.EventResponse, error) {
	events, err := s.events.List(filter)
	if err != nil {
		return nil, err
	}
	return eventResponses(events), nil
}

// UpdateEvent applies a partial update: empty fields keep their stored
// value. Only the creator may update.
func (s *EventService) UpdateEvent(id, requesterID uint, req models.UpdateEventRequest, image *multipart.FileHeader) (*models.EventResponse, error) {
	event, err := s.events.GetByID(id)
	if err != nil {
		return nil, err
	}
	if event.CreatedByID != requesterID {
		return nil, apperr.Authorization("Not authorized to update this event")
	}

	if req.Title != "" {
		event.Title = req.Title
	}
	if req.Description != "" {
		event.Description = req.Description
	}
	if req.Date != "" {
		date, err := parseEventDate(req.Date)
		if err != nil {
			return nil, apperr.Validation("Invalid date format, expected YYYY-MM-DD")
		}
		event.Date = date
	}
	if req.Location != "" {
		event.Location = req.Location
	}
	if req.MaxAttendees != 0 {
		if req.MaxAttendees < 1 {
			return nil, apperr.Validation("There must be at least one attendee")
		}
		event.MaxAttendees = req.MaxAttendees
	}
	if image != nil {
		path, err := s.storeImage(image)
		if err != nil {
			return nil, err
		}
		event.Image = path
	}

	if err := s.events.Update(event); err != nil {
		return nil, err
	}

	resp := event.Response()
	return &resp, nil
}

// DeleteEvent removes the event and its attendee rows. Only the creator
// may delete; the creator's created_events view shrinks automatically
// since it is derived from ownership.
func (s *EventService) DeleteEvent(id, requesterID uint) error {
	event, err := s.events.GetByID(id)
	if err != nil {
		return err
	}
	if event.CreatedByID != requesterID {
		return apperr.Authorization("Not authorized to delete this event")
	}

	if err := s.events.Delete(id); err != nil {
		return err
	}

	s.logger.Info("event deleted",
		zap.Uint("event_id", id),
		zap.Uint("creator_id", requesterID),
	)
	return nil
}

func (s *EventService) RSVP(id, userID uint) (*models.EventResponse, error) {
	if err := s.events.RSVP(id, userID); err != nil {
		return nil, err
	}

	s.logger.Info("rsvp recorded",
		zap.Uint("event_id", id),
		zap.Uint("user_id", userID),
	)

	return s.GetEvent(id)
}

func (s *EventService) ListUserRSVPs(userID uint) ([]models.EventResponse, error) {
	events, err := s.events.ListByAttendee(userID)
	if err != nil {
		return nil, err
	}
	return eventResponses(events), nil
}

func (s *EventService) storeImage(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	key := utils.GenerateRandomString(16) + filepath.Ext(file.Filename)
	if err := s.storage.Upload(key, src); err != nil {
		return "", err
	}
	return s.storage.URL(key), nil
}

func eventResponses(events []models.Event) []models.EventResponse {
	responses := make([]models.EventResponse, 0, len(events))
	for i := range events {
		responses = append(responses, events[i].Response())
	}
	return responses
}

// parseEventDate accepts a plain day or a full RFC 3339 timestamp.
func parseEventDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
