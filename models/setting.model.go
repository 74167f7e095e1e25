package models

import "gorm.io/gorm"

// Setting keys
const (
	SettingHeroImage = "hero_image"
)

// Setting is a key/value site setting managed by admins
type Setting struct {
	gorm.Model
	Key   string `gorm:"unique;not null" json:"key"`
	Value string `gorm:"type:text;default:''" json:"value"`
}
