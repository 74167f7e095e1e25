package ratingController

import (
	"errors"
	"souk/database"
	"souk/middleware"
	"souk/models"
	"souk/utils"
	ratingValidator "souk/validators/rating"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var errDuplicateRating = errors.New("duplicate rating")

// SubmitRating records a 1-5 rating for a listing. One rating per
// (listing, user) pair; a second attempt is rejected, never overwritten.
// Insert and aggregate recompute run in one transaction so the listing's
// stats never drift from the rating rows.
func SubmitRating(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	listingId, err := c.ParamsInt("id")
	if err != nil || listingId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid listing ID!", nil)
	}

	reqData, ok := c.Locals("validatedSubmitRating").(*ratingValidator.SubmitRatingRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db.WithContext(c.Context())

	var listing models.Listing
	if err := db.First(&listing, listingId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Listing not found!", nil)
	}

	rating := models.Rating{
		ListingID: listing.ID,
		UserID:    userId,
		Value:     reqData.Value,
		Comment:   reqData.Comment,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var existing models.Rating
		if err := tx.Where("listing_id = ? AND user_id = ?", listing.ID, userId).
			First(&existing).Error; err == nil {
			return errDuplicateRating
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// The unique (listing_id, user_id) index is the backstop for
		// submits racing past the read above.
		if err := tx.Create(&rating).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errDuplicateRating
			}
			return err
		}

		return utils.RecomputeListingRating(tx, listing.ID)
	})
	if errors.Is(err, errDuplicateRating) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already rated this listing!", nil)
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit rating!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Rating submitted!", rating)
}

// GetPublicRatings returns the paginated ratings of a listing with the
// rater's public profile fields
func GetPublicRatings(c *fiber.Ctx) error {
	listingId, err := c.ParamsInt("id")
	if err != nil || listingId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid listing ID!", nil)
	}

	reqData, ok := c.Locals("validatedListRatings").(*ratingValidator.ListRatingsRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db.WithContext(c.Context())
	offset := (reqData.Page - 1) * reqData.Limit

	var total int64
	db.Model(&models.Rating{}).Where("listing_id = ?", listingId).Count(&total)

	var ratings []models.Rating
	if err := db.Where("listing_id = ?", listingId).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, avatar")
		}).
		Order("created_at DESC").
		Offset(offset).
		Limit(reqData.Limit).
		Find(&ratings).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch ratings!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Ratings fetched!", fiber.Map{
		"ratings": ratings,
		"pagination": fiber.Map{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	})
}

// DeleteRating removes a rating. Only the rated listing's owner or an admin
// may do this. The recompute reads the remaining live rows, so concurrent
// deletes on the same listing converge to the correct stats in any order.
func DeleteRating(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)
	role, _ := c.Locals("role").(string)

	ratingId, err := c.ParamsInt("id")
	if err != nil || ratingId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid rating ID!", nil)
	}

	db := database.Database.Db.WithContext(c.Context())

	var rating models.Rating
	if err := db.First(&rating, ratingId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Rating not found!", nil)
	}

	var listing models.Listing
	if err := db.First(&listing, rating.ListingID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Listing not found!", nil)
	}

	if !middleware.IsOwnerOrAdmin(listing.OwnerID, userId, role) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You cannot delete this rating!", nil)
	}

	// Hard delete so the unique (listing_id, user_id) index lets the same
	// user rate again after moderation removed their rating.
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Delete(&rating).Error; err != nil {
			return err
		}
		return utils.RecomputeListingRating(tx, listing.ID)
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete rating!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Rating deleted!", nil)
}
