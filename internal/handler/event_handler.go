package handler

import (
	"mime/multipart"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/eventhub/eventhub-backend/internal/apperr"
	"github.com/eventhub/eventhub-backend/internal/models"
	"github.com/eventhub/eventhub-backend/internal/service"
)

type EventHandler struct {
	eventService *service.EventService
}

func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return fail(c, apperr.Authentication("User not authenticated"))
	}

	var req models.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperr.Validation("Invalid request body"))
	}

	resp, err := h.eventService.CreateEvent(userID, req, formImage(c))
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *EventHandler) GetEvents(c *fiber.Ctx) error {
	filter := models.EventFilter{
		Location:  c.Query("location"),
		EventType: c.Query("eventType"),
	}
	if d := c.Query("date"); d != "" {
		day, err := time.Parse("2006-01-02", d)
		if err != nil {
			return fail(c, apperr.Validation("Invalid date filter, expected YYYY-MM-DD"))
		}
		day = day.UTC()
		filter.Date = &day
	}

	events, err := h.eventService.ListEvents(filter)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(events)
}

func (h *EventHandler) GetEvent(c *fiber.Ctx) error {
	eventID, err := eventIDParam(c)
	if err != nil {
		return fail(c, err)
	}

	event, err := h.eventService.GetEvent(eventID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(event)
}

func (h *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return fail(c, apperr.Authentication("User not authenticated"))
	}
	eventID, err := eventIDParam(c)
	if err != nil {
		return fail(c, err)
	}

	var req models.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperr.Validation("Invalid request body"))
	}

	resp, err := h.eventService.UpdateEvent(eventID, userID, req, formImage(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}

func (h *EventHandler) DeleteEvent(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return fail(c, apperr.Authentication("User not authenticated"))
	}
	eventID, err := eventIDParam(c)
	if err != nil {
		return fail(c, err)
	}

	if err := h.eventService.DeleteEvent(eventID, userID); err != nil {
		return fail(c, err)
	}
	return c.JSON(models.MessageBody{Message: "Event removed"})
}

func (h *EventHandler) RSVP(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return fail(c, apperr.Authentication("User not authenticated"))
	}
	eventID, err := eventIDParam(c)
	if err != nil {
		return fail(c, err)
	}

	event, err := h.eventService.RSVP(eventID, userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.RSVPResponse{
		Message: "RSVP successful",
		Event:   *event,
	})
}

func (h *EventHandler) GetUserRSVPs(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return fail(c, apperr.Authentication("User not authenticated"))
	}

	events, err := h.eventService.ListUserRSVPs(userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(events)
}

func eventIDParam(c *fiber.Ctx) (uint, error) {
	eventID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, apperr.Validation("Invalid event ID")
	}
	return uint(eventID), nil
}

// formImage returns the uploaded image file, or nil when the multipart
// body carries none.
func formImage(c *fiber.Ctx) *multipart.FileHeader {
	file, err := c.FormFile("image")
	if err != nil {
		return nil
	}
	return file
}
