package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ListingStatus defines the moderation status of a listing
type ListingStatus string

const (
	ListingStatusPending  ListingStatus = "PENDING"
	ListingStatusApproved ListingStatus = "APPROVED"
	ListingStatusRejected ListingStatus = "REJECTED"
)

// Defaults applied when the seller leaves the field empty
const (
	DefaultCondition = "Used"
	DefaultCategory  = "Other"
)

// Variant is an optional color/size sub-entry of a listing. An entry is
// valid only when it names at least one of color/size and carries a
// non-negative stock; everything else is dropped during sanitization.
type Variant struct {
	Color string `json:"color"`
	Size  string `json:"size"`
	Stock int    `json:"stock"`
}

type Listing struct {
	gorm.Model
	OwnerID       uint                         `gorm:"not null;index" json:"ownerId"`
	Title         string                       `gorm:"not null" json:"title"`
	Description   string                       `gorm:"type:text" json:"description"`
	Price         float64                      `gorm:"not null" json:"price"`
	Condition     string                       `gorm:"default:'Used'" json:"condition"`
	ContactHandle string                       `gorm:"default:''" json:"contactHandle"`
	Images        datatypes.JSONSlice[string]  `json:"images"`
	StockQuantity int                          `gorm:"default:0" json:"stockQuantity"`
	Category      string                       `gorm:"default:'Other'" json:"category"`
	Variants      datatypes.JSONSlice[Variant] `json:"variants"`
	Status        ListingStatus                `gorm:"type:varchar(20);default:'PENDING';index" json:"status"`

	// Derived rating stats, never written directly by a client
	AverageRating float64 `gorm:"default:0" json:"averageRating"`
	RatingCount   int     `gorm:"default:0" json:"ratingCount"`

	// Associations - omit in JSON unless Preloaded
	Owner *User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}

func (Listing) TableName() string {
	return "listings"
}
