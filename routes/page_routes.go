package routes

import (
	"rooftop-server/controllers"

	"github.com/gofiber/fiber/v2"
)

func PageRoutes(app *fiber.App, pageController *controllers.PageController) {
	app.Get("/rooftop", pageController.RenderFeed)
	app.Get("/rooftop/new", pageController.RenderCompose)
	app.Get("/rooftop/p/:id", pageController.RenderNote)
}
