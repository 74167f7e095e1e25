package models

import (
	"time"

	"gorm.io/gorm"
)

// Role values. Default role is USER.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	gorm.Model
	Name       string    `gorm:"default:''" json:"name"`
	Email      string    `gorm:"unique;not null" json:"email"`
	Password   string    `gorm:"not null" json:"-"`
	Role       string    `gorm:"default:'USER'" json:"role"`
	ShopName   string    `gorm:"default:''" json:"shopName"`
	Avatar     string    `gorm:"default:''" json:"avatar"`
	CoverImage string    `gorm:"default:''" json:"coverImage"`
	LastLogin  time.Time `gorm:"default:NULL" json:"lastLogin"`
	IsDeleted  bool      `gorm:"default:false" json:"isDeleted"`
}
