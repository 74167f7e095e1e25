package listingController

import (
	"souk/database"
	"souk/middleware"
	"souk/models"
	"souk/utils"
	listingValidator "souk/validators/listing"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CreateListing creates a listing owned by the authenticated user. New
// listings always start PENDING and stay out of the public catalog until an
// admin approves them.
func CreateListing(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedCreateListing").(*listingValidator.CreateListingRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	condition := strings.TrimSpace(reqData.Condition)
	if condition == "" {
		condition = models.DefaultCondition
	}
	category := strings.TrimSpace(reqData.Category)
	if category == "" {
		category = models.DefaultCategory
	}

	listing := models.Listing{
		OwnerID:       userId,
		Title:         reqData.Title,
		Description:   reqData.Description,
		Price:         reqData.Price,
		Condition:     condition,
		ContactHandle: reqData.ContactHandle,
		Images:        datatypes.JSONSlice[string](reqData.Images),
		StockQuantity: reqData.StockQuantity,
		Category:      category,
		Variants:      datatypes.JSONSlice[models.Variant](utils.SanitizeVariants(reqData.Variants)),
		Status:        models.ListingStatusPending,
	}

	db := database.Database.Db.WithContext(c.Context())
	if err := db.Create(&listing).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create listing!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Listing created! Pending approval.", listing)
}

// GetListings is the public catalog read path: approved listings only,
// filtered, sorted and paginated.
func GetListings(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedListListings").(*listingValidator.ListListingsRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db.WithContext(c.Context())

	// Fresh chain per query; LOWER/LIKE keeps search portable across
	// postgres and sqlite.
	filtered := func() *gorm.DB {
		q := db.Model(&models.Listing{}).Where("status = ?", models.ListingStatusApproved)
		if reqData.Search != "" {
			s := "%" + strings.ToLower(reqData.Search) + "%"
			q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", s, s)
		}
		if reqData.Category != "" {
			q = q.Where("category = ?", reqData.Category)
		}
		return q
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch listings!", nil)
	}

	var order string
	switch reqData.Sort {
	case listingValidator.SortPriceLow:
		order = "price ASC, created_at DESC"
	case listingValidator.SortPriceHigh:
		order = "price DESC, created_at DESC"
	default:
		order = "created_at DESC"
	}

	offset := (reqData.Page - 1) * reqData.Limit

	var listings []models.Listing
	if err := filtered().
		Order(order).
		Offset(offset).
		Limit(reqData.Limit).
		Find(&listings).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch listings!", nil)
	}

	totalPages := utils.TotalPages(total, reqData.Limit)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Listings fetched!", fiber.Map{
		"items": listings,
		"pagination": fiber.Map{
			"totalItems":  total,
			"totalPages":  totalPages,
			"currentPage": reqData.Page,
			"hasNext":     int64(reqData.Page) < totalPages,
			"hasPrev":     reqData.Page > 1,
		},
	})
}

// GetListing returns a single approved listing with a seller summary. The
// detail view is public-approved-only on purpose: owners and admins see
// their non-approved items through the owner-scoped list instead.
func GetListing(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid listing ID!", nil)
	}

	db := database.Database.Db.WithContext(c.Context())

	var listing models.Listing
	if err := db.
		Where("id = ? AND status = ?", id, models.ListingStatusApproved).
		Preload("Owner", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, shop_name, avatar, cover_image")
		}).
		First(&listing).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Listing not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Listing fetched!", listing)
}

// GetListingsByOwner lists one seller's listings. The owner and admins see
// every status; everyone else sees approved listings only.
func GetListingsByOwner(c *fiber.Ctx) error {
	ownerId, err := c.ParamsInt("userId")
	if err != nil || ownerId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID!", nil)
	}

	db := database.Database.Db.WithContext(c.Context())

	query := db.Where("owner_id = ?", ownerId)

	userId, role, authed := middleware.ActingIdentity(c)
	if !authed || !middleware.IsOwnerOrAdmin(uint(ownerId), userId, role) {
		query = query.Where("status = ?", models.ListingStatusApproved)
	}

	var listings []models.Listing
	if err := query.Order("created_at DESC").Find(&listings).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch listings!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Listings fetched!", fiber.Map{
		"items": listings,
	})
}

// patchUpdates maps whitelisted patch fields to columns through a static
// table. Column names never come from caller input.
func patchUpdates(reqData *listingValidator.UpdateListingRequest) map[string]interface{} {
	updates := make(map[string]interface{})

	if reqData.Title != nil {
		updates["title"] = strings.TrimSpace(*reqData.Title)
	}
	if reqData.Description != nil {
		updates["description"] = *reqData.Description
	}
	if reqData.Price != nil {
		updates["price"] = *reqData.Price
	}
	if reqData.Condition != nil {
		updates["condition"] = *reqData.Condition
	}
	if reqData.ContactHandle != nil {
		updates["contact_handle"] = *reqData.ContactHandle
	}
	if reqData.Images != nil {
		updates["images"] = datatypes.JSONSlice[string](*reqData.Images)
	}
	if reqData.StockQuantity != nil {
		updates["stock_quantity"] = *reqData.StockQuantity
	}
	if reqData.Category != nil {
		updates["category"] = *reqData.Category
	}
	if reqData.Variants != nil {
		updates["variants"] = datatypes.JSONSlice[models.Variant](utils.SanitizeVariants(*reqData.Variants))
	}

	return updates
}

// UpdateListing applies a whitelisted patch to a listing. Owner-only: this
// deliberately does not grant admins patch rights, unlike delete and
// moderation.
func UpdateListing(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid listing ID!", nil)
	}

	reqData, ok := c.Locals("validatedUpdateListing").(*listingValidator.UpdateListingRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db.WithContext(c.Context())

	var listing models.Listing
	if err := db.First(&listing, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Listing not found!", nil)
	}

	if !middleware.IsOwner(listing.OwnerID, userId) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only update your own listings!", nil)
	}

	updates := patchUpdates(reqData)

	if err := db.Model(&listing).Updates(updates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update listing!", nil)
	}

	// Return the full refreshed entity, derived fields included
	if err := db.First(&listing, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch updated listing!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Listing updated!", listing)
}

// DeleteListing removes a listing and all of its ratings. Owner or admin.
func DeleteListing(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)
	role, _ := c.Locals("role").(string)

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid listing ID!", nil)
	}

	db := database.Database.Db.WithContext(c.Context())

	var listing models.Listing
	if err := db.First(&listing, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Listing not found!", nil)
	}

	if !middleware.IsOwnerOrAdmin(listing.OwnerID, userId, role) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You cannot delete this listing!", nil)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("listing_id = ?", listing.ID).Delete(&models.Rating{}).Error; err != nil {
			return err
		}
		return tx.Delete(&listing).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete listing!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Listing deleted!", nil)
}
