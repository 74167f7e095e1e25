package siteController

import (
	"io"
	"souk/database"
	"souk/middleware"
	"souk/models"
	"souk/utils"

	"github.com/gofiber/fiber/v2"
)

// GetHeroImage returns the current hero image URL (empty until set)
func GetHeroImage(c *fiber.Ctx) error {
	db := database.Database.Db.WithContext(c.Context())

	var setting models.Setting
	if err := db.Where("key = ?", models.SettingHeroImage).First(&setting).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Hero image fetched!", fiber.Map{"url": ""})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Hero image fetched!", fiber.Map{"url": setting.Value})
}

// Health reports process liveness and store reachability
func Health(c *fiber.Ctx) error {
	sqlDB, err := database.Database.Db.DB()
	if err != nil || sqlDB.PingContext(c.Context()) != nil {
		return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "Database unreachable!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "OK", nil)
}

// UploadImage proxies a multipart image to the external image host and
// returns the hosted URL
func UploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Image file is required!", nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to read image file!", nil)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to read image file!", nil)
	}

	url, err := utils.UploadToImageHost(data, fileHeader.Filename)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to upload image!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Image uploaded!", fiber.Map{"url": url})
}
