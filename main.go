package main

import (
	"log"
	"souk/config"
	"souk/database"
	adminRoutes "souk/routers/adminRoutes"
	authRoutes "souk/routers/authRoutes"
	listingRoutes "souk/routers/listingRoutes"
	siteRoutes "souk/routers/siteRoutes"
	"souk/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	listingRoutes.SetupListingRoutes(app)
	adminRoutes.SetupAdminRoutes(app)
	siteRoutes.SetupSiteRoutes(app)

	// Nightly rating aggregate reconciliation
	reconciler := utils.InitializeRatingReconciler()
	defer reconciler.Stop()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
