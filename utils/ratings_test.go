package utils

import (
	"souk/database"
	"souk/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRatingDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Listing{}, &models.Rating{}))
	return db
}

func TestRecomputeListingRating(t *testing.T) {
	db := setupRatingDB(t)

	listing := models.Listing{OwnerID: 1, Title: "Item", Price: 10, StockQuantity: 1}
	require.NoError(t, db.Create(&listing).Error)

	for i, v := range []int{5, 3, 4} {
		require.NoError(t, db.Create(&models.Rating{
			ListingID: listing.ID, UserID: uint(i + 10), Value: v,
		}).Error)
	}

	require.NoError(t, RecomputeListingRating(db, listing.ID))

	var stored models.Listing
	require.NoError(t, db.First(&stored, listing.ID).Error)
	assert.Equal(t, 3, stored.RatingCount)
	assert.Equal(t, 4.0, stored.AverageRating)

	// Soft-deleted rows no longer count
	require.NoError(t, db.Where("listing_id = ? AND value = ?", listing.ID, 5).Delete(&models.Rating{}).Error)
	require.NoError(t, RecomputeListingRating(db, listing.ID))

	require.NoError(t, db.First(&stored, listing.ID).Error)
	assert.Equal(t, 2, stored.RatingCount)
	assert.Equal(t, 3.5, stored.AverageRating)

	// Recompute is idempotent
	require.NoError(t, RecomputeListingRating(db, listing.ID))
	require.NoError(t, db.First(&stored, listing.ID).Error)
	assert.Equal(t, 2, stored.RatingCount)
	assert.Equal(t, 3.5, stored.AverageRating)
}

func TestReconcileRatingAggregates(t *testing.T) {
	database.Database.Db = setupRatingDB(t)
	db := database.Database.Db

	listing := models.Listing{OwnerID: 1, Title: "Stale", Price: 10, StockQuantity: 1}
	require.NoError(t, db.Create(&listing).Error)
	require.NoError(t, db.Create(&models.Rating{ListingID: listing.ID, UserID: 2, Value: 4}).Error)

	// Simulate aggregates left stale by an interrupted write
	require.NoError(t, db.Model(&models.Listing{}).Where("id = ?", listing.ID).
		Updates(map[string]interface{}{"rating_count": 7, "average_rating": 1.0}).Error)

	ReconcileRatingAggregates()

	var stored models.Listing
	require.NoError(t, db.First(&stored, listing.ID).Error)
	assert.Equal(t, 1, stored.RatingCount)
	assert.Equal(t, 4.0, stored.AverageRating)
}
