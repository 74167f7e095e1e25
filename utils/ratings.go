package utils

import (
	"gorm.io/gorm"
)

// RecomputeListingRating rewrites a listing's derived rating stats from the
// live rating rows in a single statement. COUNT/AVG over the source of
// truth rather than increment/decrement, so concurrent raters and deleters
// on the same listing always converge to the correct value. Must run inside
// the same transaction as the rating insert/delete it follows.
func RecomputeListingRating(tx *gorm.DB, listingID uint) error {
	return tx.Exec(`
		UPDATE listings SET
			rating_count = (SELECT COUNT(*) FROM ratings WHERE listing_id = ? AND deleted_at IS NULL),
			average_rating = (SELECT COALESCE(AVG(value), 0) FROM ratings WHERE listing_id = ? AND deleted_at IS NULL)
		WHERE id = ?`,
		listingID, listingID, listingID,
	).Error
}
