package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eventhub/eventhub-backend/internal/middleware"
	"github.com/eventhub/eventhub-backend/internal/models"
)

// RegisterRoutes mounts the full API surface. Protected routes sit
// behind the auth middleware; /rsvps/user must register before /:id so
// the param route does not shadow it.
func RegisterRoutes(app *fiber.App, authHandler *AuthHandler, eventHandler *EventHandler, userHandler *UserHandler) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	protect := middleware.AuthMiddleware()

	events := api.Group("/events")
	events.Get("/", eventHandler.GetEvents)
	events.Get("/rsvps/user", protect, eventHandler.GetUserRSVPs)
	events.Get("/:id", eventHandler.GetEvent)
	events.Post("/", protect, eventHandler.CreateEvent)
	events.Put("/:id", protect, eventHandler.UpdateEvent)
	events.Delete("/:id", protect, eventHandler.DeleteEvent)
	events.Post("/:id/rsvp", protect, eventHandler.RSVP)

	users := api.Group("/users", protect)
	users.Get("/profile", userHandler.GetProfile)
	users.Put("/profile", userHandler.UpdateProfile)

	// Unmatched routes.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Not found"))
	})
}
