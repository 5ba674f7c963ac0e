package main

import (
	"log"
	"time"

	"learnhub/config"
	progressControllers "learnhub/controllers/progress"
	userControllers "learnhub/controllers/user"
	"learnhub/database"
	"learnhub/progress"
	"learnhub/routers/authRoutes"
	"learnhub/routers/courseRoutes"
	"learnhub/routers/progressRoutes"
	"learnhub/routers/userRoutes"
	"learnhub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	config.LoadConfig()
	db := database.ConnectDb(config.AppConfig)

	app := fiber.New(fiber.Config{
		ReadTimeout: 30 * time.Second,
	})

	app.Use(recover.New())
	app.Use(helmet.New())
	app.Use(compress.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.AppConfig.CorsOrigin,
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Tighter limit on auth endpoints, a general one everywhere else
	app.Use("/api/auth", limiter.New(limiter.Config{
		Max:        10,
		Expiration: time.Hour,
	}))
	app.Use("/api", limiter.New(limiter.Config{
		Max:        100,
		Expiration: 15 * time.Minute,
	}))

	// Serve uploaded media from the public folder
	app.Static("/", "./public")

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "OK", "message": "Server is running"})
	})

	// The progress core gets its store handle explicitly
	manager := progress.NewManager(db)

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app, userControllers.NewController(manager))
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupAdminCourseRoutes(app)
	progressRoutes.SetupProgressRoutes(app, progressControllers.NewController(manager))

	scheduler := utils.StartEnrollmentStatsScheduler(db, config.AppConfig.EnrollStatsCron)
	defer scheduler.Stop()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
