package main

import (
	"fmt"
	"log"

	"rooftop-server/configs"
	"rooftop-server/controllers"
	middleware "rooftop-server/middlewares"
	"rooftop-server/repository"
	"rooftop-server/routes"

	fiberprometheus "github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg := configs.Load()

	if cfg.ConsulAddress != "" {
		err := configs.RegisterService(
			cfg.ConsulAddress,
			"rooftop-server",
			"rooftop-server",
			"localhost",
			cfg.Port,
			fmt.Sprintf("http://localhost:%d/health", cfg.Port),
		)
		if err != nil {
			log.Printf("Consul service registration failed: %v", err)
		}
	}

	client := configs.ConnectMongo(cfg.MongoURI)
	redisClient := configs.ConnectRedis(cfg.RedisAddr)

	collection := client.Database(cfg.MongoDB).Collection("notes")

	noteRepo := repository.NewNoteRepository(collection)
	noteCache := repository.NewNoteCache(redisClient, cfg.FeedCacheTTL)
	noteController := controllers.NewNoteController(noteRepo, noteCache)
	uploadController := controllers.NewUploadController(cfg.UploadDir)
	pageController := controllers.NewPageController(noteRepo)

	app := fiber.New(fiber.Config{
		// Room for 9 files of 5MiB each plus multipart overhead.
		BodyLimit: 64 * 1024 * 1024,
	})

	p := fiberprometheus.New("rooftop-server")

	p.RegisterAt(app, "/metrics")

	app.Use(p.Middleware)

	app.Use(logger.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
	}))

	app.Use(middleware.SubdomainRewrite("rooftop.", "/rooftop"))

	admin := []fiber.Handler{
		middleware.RateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		middleware.AdminGuard(cfg.AdminToken),
	}

	routes.NoteRoutes(app, noteController, admin...)
	routes.UploadRoutes(app, uploadController, admin...)
	routes.PageRoutes(app, pageController)

	app.Static("/uploads", cfg.UploadDir)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "UP",
		})
	})

	log.Printf("Starting server on port %d...", cfg.Port)
	if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
