package siteRoutes

import (
	siteController "souk/controllers/site"
	"souk/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupSiteRoutes sets up public site routes and the image upload proxy
func SetupSiteRoutes(app *fiber.App) {
	app.Get("/health", siteController.Health)

	siteGroup := app.Group("/site")
	siteGroup.Get("/hero", siteController.GetHeroImage)

	app.Post("/upload/image", middleware.JWTMiddleware, siteController.UploadImage)
}
