package models

import "gorm.io/gorm"

// Visit is a daily visit counter row, one per calendar day
type Visit struct {
	gorm.Model
	Day   string `gorm:"unique;not null" json:"day"` // YYYY-MM-DD
	Count int64  `gorm:"default:0" json:"count"`
}
