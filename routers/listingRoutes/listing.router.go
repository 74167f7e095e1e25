package listingRoutes

import (
	listingController "souk/controllers/listing"
	ratingController "souk/controllers/rating"
	"souk/middleware"
	listingValidator "souk/validators/listing"
	ratingValidator "souk/validators/rating"

	"github.com/gofiber/fiber/v2"
)

// SetupListingRoutes sets up the catalog and rating routes
func SetupListingRoutes(app *fiber.App) {
	listingGroup := app.Group("/listing")

	// Browse (specific routes MUST come before :id routes)
	listingGroup.Get("/list", middleware.VisitCounter, listingValidator.ListListings(), listingController.GetListings)
	listingGroup.Get("/user/:userId", middleware.OptionalJWTMiddleware, listingController.GetListingsByOwner)

	// Listing lifecycle
	listingGroup.Post("/create", listingValidator.CreateListing(), middleware.JWTMiddleware, listingController.CreateListing)
	listingGroup.Patch("/update/:id", listingValidator.UpdateListing(), middleware.JWTMiddleware, listingController.UpdateListing)

	// Ratings
	listingGroup.Post("/:id/rating", ratingValidator.SubmitRating(), middleware.JWTMiddleware, ratingController.SubmitRating)
	listingGroup.Get("/:id/ratings", ratingValidator.ListRatings(), ratingController.GetPublicRatings)

	// Dynamic ID routes (MUST come AFTER specific routes)
	listingGroup.Delete("/:id", middleware.JWTMiddleware, listingController.DeleteListing)
	listingGroup.Get("/:id", middleware.VisitCounter, listingController.GetListing)

	// Rating moderation (listing owner or admin)
	app.Delete("/rating/:id", middleware.JWTMiddleware, ratingController.DeleteRating)
}
