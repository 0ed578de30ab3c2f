package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eventhub/eventhub-backend/internal/apperr"
	"github.com/eventhub/eventhub-backend/internal/models"
	"github.com/eventhub/eventhub-backend/internal/service"
	"github.com/eventhub/eventhub-backend/pkg/utils"
)

type UserHandler struct {
	userService *service.UserService
	validator   *utils.Validator
}

func NewUserHandler(userService *service.UserService, validator *utils.Validator) *UserHandler {
	return &UserHandler{
		userService: userService,
		validator:   validator,
	}
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return fail(c, apperr.Authentication("User not authenticated"))
	}

	profile, err := h.userService.GetProfile(userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(profile)
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return fail(c, apperr.Authentication("User not authenticated"))
	}

	var req models.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperr.Validation("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return fail(c, apperr.Validation(utils.ValidationMessage(err)))
	}

	profile, err := h.userService.UpdateProfile(userID, req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(profile)
}
