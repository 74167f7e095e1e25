package adminController

import (
	"souk/database"
	"souk/middleware"
	"souk/models"
	"souk/utils"
	adminValidator "souk/validators/admin"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func requireAdmin(c *fiber.Ctx) (uint, bool) {
	userId, role, ok := middleware.ActingIdentity(c)
	if !ok || role != models.RoleAdmin {
		return 0, false
	}
	return userId, true
}

// ModerateListing approves or rejects a pending listing and notifies the
// seller of the decision
func ModerateListing(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access Denied! Admin role required.", nil)
	}

	reqData, ok := c.Locals("validatedModerateListing").(*adminValidator.ModerateListingRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db.WithContext(c.Context())

	var listing models.Listing
	if err := db.First(&listing, reqData.ListingID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Listing not found!", nil)
	}

	if reqData.Action == adminValidator.ActionApprove {
		listing.Status = models.ListingStatusApproved
	} else {
		listing.Status = models.ListingStatusRejected
	}

	if err := db.Model(&listing).Update("status", listing.Status).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update listing!", nil)
	}

	go func(ownerID uint, title string, status models.ListingStatus) {
		var owner models.User
		if err := database.Database.Db.First(&owner, ownerID).Error; err != nil {
			return
		}
		_ = utils.SendListingDecisionEmail(owner.Name, owner.Email, title, string(status))
	}(listing.OwnerID, listing.Title, listing.Status)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Listing moderated!", fiber.Map{
		"id":     listing.ID,
		"title":  listing.Title,
		"status": listing.Status,
	})
}

// ListPendingListings lists the moderation queue, oldest first
func ListPendingListings(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access Denied! Admin role required.", nil)
	}

	reqData, ok := c.Locals("validatedListPending").(*adminValidator.ListPendingRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db.WithContext(c.Context())
	offset := (reqData.Page - 1) * reqData.Limit

	var total int64
	db.Model(&models.Listing{}).Where("status = ?", models.ListingStatusPending).Count(&total)

	var listings []models.Listing
	if err := db.Where("status = ?", models.ListingStatusPending).
		Preload("Owner", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, email, shop_name")
		}).
		Order("created_at ASC").
		Offset(offset).
		Limit(reqData.Limit).
		Find(&listings).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch pending listings!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending listings fetched!", fiber.Map{
		"items": listings,
		"pagination": fiber.Map{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	})
}

// SetHeroImage upserts the site hero image setting
func SetHeroImage(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access Denied! Admin role required.", nil)
	}

	reqData, ok := c.Locals("validatedSetHeroImage").(*adminValidator.SetHeroImageRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db.WithContext(c.Context())

	setting := models.Setting{Key: models.SettingHeroImage, Value: reqData.URL}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&setting).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update hero image!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Hero image updated!", setting)
}

// GetVisitStats returns the total and per-day visit counts
func GetVisitStats(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access Denied! Admin role required.", nil)
	}

	db := database.Database.Db.WithContext(c.Context())

	var total int64
	db.Model(&models.Visit{}).Select("COALESCE(SUM(count), 0)").Scan(&total)

	var days []models.Visit
	if err := db.Order("day DESC").Limit(30).Find(&days).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch visit stats!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Visit stats fetched!", fiber.Map{
		"total": total,
		"days":  days,
	})
}
