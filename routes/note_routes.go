package routes

import (
	"rooftop-server/controllers"

	"github.com/gofiber/fiber/v2"
)

func NoteRoutes(app *fiber.App, noteController *controllers.NoteController, admin ...fiber.Handler) {
	app.Get("/api/notes", noteController.GetNotes)
	app.Get("/api/notes/:id", noteController.GetNoteByID)
	app.Post("/api/notes", withAdmin(admin, noteController.CreateNote)...)
	app.Delete("/api/notes/:id", withAdmin(admin, noteController.DeleteNoteByID)...)
}

// withAdmin prepends the admin middleware chain to a route handler.
func withAdmin(admin []fiber.Handler, handler fiber.Handler) []fiber.Handler {
	chain := make([]fiber.Handler, 0, len(admin)+1)
	chain = append(chain, admin...)
	return append(chain, handler)
}
