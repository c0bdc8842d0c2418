// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"notekeep/internal/notes/adapters/http/middleware"
	"notekeep/internal/notes/adapters/http/notes"
	"notekeep/internal/notes/ports/api"
	"notekeep/internal/notes/ports/services"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, noteService api.NoteService, tokenService services.TokenService) {
	notesHandler := notes.NewHandler(noteService)

	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	// Маршруты заметок (требуют авторизации).
	noteRoutes := app.Group("/note")
	noteRoutes.Use(middleware.NewAuthMiddleware(tokenService))
	noteRoutes.Get("/", notesHandler.ListNotes)
	noteRoutes.Post("/", notesHandler.CreateNote)
	noteRoutes.Put("/:note_id", notesHandler.UpdateNote)
	noteRoutes.Delete("/:note_id", notesHandler.DeleteNote)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
