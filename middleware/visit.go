package middleware

import (
	"souk/database"
	"souk/models"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VisitCounter bumps the daily visit counter for public catalog reads.
// Counting is best effort and never blocks or fails the request.
func VisitCounter(c *fiber.Ctx) error {
	db := database.Database.Db
	if db != nil {
		day := time.Now().Format("2006-01-02")
		db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "day"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"count": gorm.Expr("visits.count + 1")}),
		}).Create(&models.Visit{Day: day, Count: 1})
	}

	return c.Next()
}
