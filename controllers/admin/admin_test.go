package adminController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"souk/config"
	listingController "souk/controllers/listing"
	ratingController "souk/controllers/rating"
	"souk/database"
	"souk/models"
	adminValidator "souk/validators/admin"
	listingValidator "souk/validators/listing"
	ratingValidator "souk/validators/rating"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	config.AppConfig = &config.Config{JWTKey: "test-secret-key", SaltRound: 4}
}

func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("failed to connect to test database")
	}

	db.AutoMigrate(&models.User{}, &models.Listing{}, &models.Rating{}, &models.Setting{}, &models.Visit{})

	return db
}

// authAs mocks the JWT middleware with a fixed identity
func authAs(userID uint, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userId", userID)
		c.Locals("role", role)
		return c.Next()
	}
}

func setupAdminApp(userID uint, role string) *fiber.App {
	app := fiber.New()

	app.Post("/admin/listing/moderate", adminValidator.ModerateListing(), authAs(userID, role), ModerateListing)
	app.Get("/admin/listing/pending", adminValidator.ListPending(), authAs(userID, role), ListPendingListings)
	app.Put("/admin/site/hero", adminValidator.SetHeroImage(), authAs(userID, role), SetHeroImage)
	app.Get("/admin/site/stats", authAs(userID, role), GetVisitStats)

	return app
}

func seedUser(t *testing.T, name, email, role string) models.User {
	t.Helper()
	user := models.User{Name: name, Email: email, Password: "hashed", Role: role}
	require.NoError(t, database.Database.Db.Create(&user).Error)
	return user
}

func postJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&parsed)
	return resp.StatusCode, parsed
}

func TestModerateListing(t *testing.T) {
	database.Database.Db = setupTestDB()
	admin := seedUser(t, "admin", "admin@example.com", models.RoleAdmin)
	seller := seedUser(t, "seller", "seller@example.com", models.RoleUser)

	listing := models.Listing{
		OwnerID: seller.ID, Title: "Waiting Room", Price: 10,
		StockQuantity: 1, Status: models.ListingStatusPending,
	}
	require.NoError(t, database.Database.Db.Create(&listing).Error)

	t.Run("non-admin is denied", func(t *testing.T) {
		status, _ := postJSON(t, setupAdminApp(seller.ID, seller.Role), "POST", "/admin/listing/moderate", map[string]any{
			"listingId": listing.ID,
			"action":    adminValidator.ActionApprove,
		})
		assert.Equal(t, fiber.StatusForbidden, status)
	})

	t.Run("invalid action is a validation failure", func(t *testing.T) {
		status, _ := postJSON(t, setupAdminApp(admin.ID, admin.Role), "POST", "/admin/listing/moderate", map[string]any{
			"listingId": listing.ID,
			"action":    "PUBLISH",
		})
		assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	})

	t.Run("missing listing is not found", func(t *testing.T) {
		status, _ := postJSON(t, setupAdminApp(admin.ID, admin.Role), "POST", "/admin/listing/moderate", map[string]any{
			"listingId": 99999,
			"action":    adminValidator.ActionApprove,
		})
		assert.Equal(t, fiber.StatusNotFound, status)
	})

	t.Run("admin approves a pending listing", func(t *testing.T) {
		status, resp := postJSON(t, setupAdminApp(admin.ID, admin.Role), "POST", "/admin/listing/moderate", map[string]any{
			"listingId": listing.ID,
			"action":    adminValidator.ActionApprove,
		})
		require.Equal(t, fiber.StatusOK, status)

		data := resp["data"].(map[string]any)
		assert.Equal(t, string(models.ListingStatusApproved), data["status"])
		assert.Equal(t, "Waiting Room", data["title"])
	})

	t.Run("admin rejects a listing", func(t *testing.T) {
		status, resp := postJSON(t, setupAdminApp(admin.ID, admin.Role), "POST", "/admin/listing/moderate", map[string]any{
			"listingId": listing.ID,
			"action":    adminValidator.ActionReject,
		})
		require.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, string(models.ListingStatusRejected), resp["data"].(map[string]any)["status"])
	})
}

func TestListPendingListings(t *testing.T) {
	database.Database.Db = setupTestDB()
	admin := seedUser(t, "admin", "admin@example.com", models.RoleAdmin)
	seller := seedUser(t, "seller", "seller@example.com", models.RoleUser)

	for i := 0; i < 3; i++ {
		require.NoError(t, database.Database.Db.Create(&models.Listing{
			OwnerID: seller.ID, Title: fmt.Sprintf("Pending %d", i), Price: 10,
			StockQuantity: 1, Status: models.ListingStatusPending,
		}).Error)
	}
	require.NoError(t, database.Database.Db.Create(&models.Listing{
		OwnerID: seller.ID, Title: "Already Live", Price: 10,
		StockQuantity: 1, Status: models.ListingStatusApproved,
	}).Error)

	req := httptest.NewRequest("GET", "/admin/listing/pending", nil)
	resp, err := setupAdminApp(admin.ID, admin.Role).Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var parsed map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))

	data := parsed["data"].(map[string]any)
	items := data["items"].([]any)
	assert.Len(t, items, 3)
	assert.Equal(t, float64(3), data["pagination"].(map[string]any)["total"])
}

func TestSetHeroImage(t *testing.T) {
	database.Database.Db = setupTestDB()
	admin := seedUser(t, "admin", "admin@example.com", models.RoleAdmin)

	status, _ := postJSON(t, setupAdminApp(admin.ID, admin.Role), "PUT", "/admin/site/hero", map[string]any{
		"url": "https://cdn.example.com/hero.jpg",
	})
	require.Equal(t, fiber.StatusOK, status)

	// Upsert replaces the previous value
	status, resp := postJSON(t, setupAdminApp(admin.ID, admin.Role), "PUT", "/admin/site/hero", map[string]any{
		"url": "https://cdn.example.com/hero2.jpg",
	})
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "https://cdn.example.com/hero2.jpg", resp["data"].(map[string]any)["value"])

	var count int64
	database.Database.Db.Model(&models.Setting{}).Where("key = ?", models.SettingHeroImage).Count(&count)
	assert.Equal(t, int64(1), count)
}

// TestListingLifecycleFlow walks the whole moderation and rating story:
// create pending, approve, rate, duplicate-reject, second rater.
func TestListingLifecycleFlow(t *testing.T) {
	database.Database.Db = setupTestDB()
	admin := seedUser(t, "admin", "admin@example.com", models.RoleAdmin)
	seller := seedUser(t, "seller", "seller@example.com", models.RoleUser)
	buyer1 := seedUser(t, "buyer1", "buyer1@example.com", models.RoleUser)
	buyer2 := seedUser(t, "buyer2", "buyer2@example.com", models.RoleUser)

	catalogApp := func(userID uint, role string) *fiber.App {
		app := fiber.New()
		app.Get("/listing/list", listingValidator.ListListings(), listingController.GetListings)
		app.Post("/listing/create", listingValidator.CreateListing(), authAs(userID, role), listingController.CreateListing)
		app.Post("/listing/:id/rating", ratingValidator.SubmitRating(), authAs(userID, role), ratingController.SubmitRating)
		return app
	}

	// Creating with price=0 fails
	status, _ := postJSON(t, catalogApp(seller.ID, seller.Role), "POST", "/listing/create", map[string]any{
		"title": "Bad Deal", "price": 0, "stockQuantity": 1,
	})
	require.Equal(t, fiber.StatusUnprocessableEntity, status)

	// Valid create lands pending
	status, resp := postJSON(t, catalogApp(seller.ID, seller.Role), "POST", "/listing/create", map[string]any{
		"title": "Good Deal", "price": 10, "stockQuantity": 1,
	})
	require.Equal(t, fiber.StatusCreated, status)
	listingID := uint(resp["data"].(map[string]any)["ID"].(float64))

	// Not visible in the public catalog yet
	req := httptest.NewRequest("GET", "/listing/list", nil)
	listResp, err := catalogApp(0, "").Test(req, -1)
	require.NoError(t, err)
	var listParsed map[string]any
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&listParsed))
	assert.Equal(t, float64(0), listParsed["data"].(map[string]any)["pagination"].(map[string]any)["totalItems"])

	// Admin approves
	status, _ = postJSON(t, setupAdminApp(admin.ID, admin.Role), "POST", "/admin/listing/moderate", map[string]any{
		"listingId": listingID, "action": adminValidator.ActionApprove,
	})
	require.Equal(t, fiber.StatusOK, status)

	// Now visible
	req = httptest.NewRequest("GET", "/listing/list", nil)
	listResp, err = catalogApp(0, "").Test(req, -1)
	require.NoError(t, err)
	listParsed = map[string]any{}
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&listParsed))
	assert.Equal(t, float64(1), listParsed["data"].(map[string]any)["pagination"].(map[string]any)["totalItems"])

	// First rating: 5 stars
	status, _ = postJSON(t, catalogApp(buyer1.ID, buyer1.Role), "POST", fmt.Sprintf("/listing/%d/rating", listingID), map[string]any{"value": 5})
	require.Equal(t, fiber.StatusCreated, status)

	var stored models.Listing
	require.NoError(t, database.Database.Db.First(&stored, listingID).Error)
	assert.Equal(t, 1, stored.RatingCount)
	assert.Equal(t, 5.0, stored.AverageRating)

	// Same buyer again: rejected, stats unchanged
	status, _ = postJSON(t, catalogApp(buyer1.ID, buyer1.Role), "POST", fmt.Sprintf("/listing/%d/rating", listingID), map[string]any{"value": 1})
	assert.Equal(t, fiber.StatusConflict, status)

	require.NoError(t, database.Database.Db.First(&stored, listingID).Error)
	assert.Equal(t, 1, stored.RatingCount)

	// Second buyer: 3 stars, average moves to 4.0
	status, _ = postJSON(t, catalogApp(buyer2.ID, buyer2.Role), "POST", fmt.Sprintf("/listing/%d/rating", listingID), map[string]any{"value": 3})
	require.Equal(t, fiber.StatusCreated, status)

	require.NoError(t, database.Database.Db.First(&stored, listingID).Error)
	assert.Equal(t, 2, stored.RatingCount)
	assert.Equal(t, 4.0, stored.AverageRating)
}
