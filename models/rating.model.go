package models

import (
	"gorm.io/gorm"
)

// Rating is a 1-5 score plus optional comment. A user rates a given
// listing at most once, enforced by the unique (listing_id, user_id)
// index. Removed ratings are hard-deleted so the pair can be rated
// again; deleting the listing cascades its ratings.
type Rating struct {
	gorm.Model
	ListingID uint   `gorm:"not null;uniqueIndex:idx_ratings_listing_user" json:"listingId"`
	UserID    uint   `gorm:"not null;uniqueIndex:idx_ratings_listing_user" json:"userId"`
	Value     int    `gorm:"not null;check:value >= 1 AND value <= 5" json:"value"`
	Comment   string `gorm:"type:text;default:''" json:"comment"`

	// Associations - omit in JSON unless Preloaded
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Rating) TableName() string {
	return "ratings"
}
