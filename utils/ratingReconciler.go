package utils

import (
	"log"
	"souk/database"
	"souk/models"

	"github.com/robfig/cron/v3"
)

// ReconcileRatingAggregates recomputes every listing's rating stats from the
// live rating rows. The per-request recompute keeps stats consistent under
// normal operation; this sweep is the idempotent retry path for aggregates
// left stale by an interrupted multi-step write.
func ReconcileRatingAggregates() {
	db := database.Database.Db

	var listingIDs []uint
	if err := db.Model(&models.Listing{}).Pluck("id", &listingIDs).Error; err != nil {
		log.Printf("Rating reconciler: failed to list listings: %v", err)
		return
	}

	fixed := 0
	for _, id := range listingIDs {
		if err := RecomputeListingRating(db, id); err != nil {
			log.Printf("Rating reconciler: listing %d: %v", id, err)
			continue
		}
		fixed++
	}

	log.Printf("Rating reconciler: recomputed aggregates for %d listings", fixed)
}

// InitializeRatingReconciler schedules the nightly aggregate sweep
func InitializeRatingReconciler() *cron.Cron {
	c := cron.New()

	// Every day at 3 AM
	if _, err := c.AddFunc("0 3 * * *", ReconcileRatingAggregates); err != nil {
		log.Printf("Failed to schedule rating reconciler: %v", err)
		return c
	}

	c.Start()
	log.Println("Rating reconciler scheduled (daily 03:00)")
	return c
}
