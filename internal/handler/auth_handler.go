package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eventhub/eventhub-backend/internal/apperr"
	"github.com/eventhub/eventhub-backend/internal/models"
	"github.com/eventhub/eventhub-backend/internal/service"
	"github.com/eventhub/eventhub-backend/pkg/utils"
)

type AuthHandler struct {
	authService *service.AuthService
	validator   *utils.Validator
}

func NewAuthHandler(authService *service.AuthService, validator *utils.Validator) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperr.Validation("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return fail(c, apperr.Validation(utils.ValidationMessage(err)))
	}

	resp, err := h.authService.Register(req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperr.Validation("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return fail(c, apperr.Validation(utils.ValidationMessage(err)))
	}

	resp, err := h.authService.Login(req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}
