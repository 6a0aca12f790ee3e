package routes

import (
	"rooftop-server/controllers"

	"github.com/gofiber/fiber/v2"
)

func UploadRoutes(app *fiber.App, uploadController *controllers.UploadController, admin ...fiber.Handler) {
	app.Post("/api/upload", withAdmin(admin, uploadController.UploadImages)...)
}
