package adminRoutes

import (
	adminController "souk/controllers/admin"
	"souk/middleware"
	adminValidator "souk/validators/admin"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up admin moderation and site management routes
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin")

	// Moderation
	adminGroup.Post("/listing/moderate", adminValidator.ModerateListing(), middleware.JWTMiddleware, adminController.ModerateListing)
	adminGroup.Get("/listing/pending", adminValidator.ListPending(), middleware.JWTMiddleware, adminController.ListPendingListings)

	// Site management
	adminGroup.Put("/site/hero", adminValidator.SetHeroImage(), middleware.JWTMiddleware, adminController.SetHeroImage)
	adminGroup.Get("/site/stats", middleware.JWTMiddleware, adminController.GetVisitStats)
}
