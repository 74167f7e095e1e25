package main

import (
	"encoding/csv"
	"log"
	"os"
	"souk/config"
	"souk/database"
	"souk/models"
	"strconv"
	"strings"
)

// Seeds the catalog from listings.csv for local development.
// Expected headers: owner_email,title,description,price,condition,category,stock_quantity,status
func main() {
	config.LoadConfig()
	database.ConnectDb()

	file, err := os.Open("listings.csv")
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	records, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) < 2 {
		log.Fatal("CSV file is empty or has only headers")
	}

	header := records[0]
	log.Printf("CSV Headers: %v", header)
	log.Printf("Total rows to import: %d", len(records)-1)

	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.TrimSpace(h)] = i
	}

	field := func(row []string, name string) string {
		idx, ok := headerIndex[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	db := database.Database.Db
	inserted := 0
	skipped := 0

	for i, row := range records[1:] {
		title := field(row, "title")
		ownerEmail := field(row, "owner_email")
		if title == "" || ownerEmail == "" {
			skipped++
			continue
		}

		var owner models.User
		if err := db.Where("email = ?", ownerEmail).First(&owner).Error; err != nil {
			log.Printf("Row %d: no user with email %s, skipping", i+1, ownerEmail)
			skipped++
			continue
		}

		price, err := strconv.ParseFloat(field(row, "price"), 64)
		if err != nil || price <= 0 {
			log.Printf("Row %d: invalid price, skipping", i+1)
			skipped++
			continue
		}

		stock, err := strconv.Atoi(field(row, "stock_quantity"))
		if err != nil || stock < 1 {
			stock = 1
		}

		status := models.ListingStatus(strings.ToUpper(field(row, "status")))
		switch status {
		case models.ListingStatusApproved, models.ListingStatusRejected, models.ListingStatusPending:
		default:
			status = models.ListingStatusPending
		}

		condition := field(row, "condition")
		if condition == "" {
			condition = models.DefaultCondition
		}
		category := field(row, "category")
		if category == "" {
			category = models.DefaultCategory
		}

		// Skip duplicates on (owner, title)
		var existing models.Listing
		if err := db.Where("owner_id = ? AND title = ?", owner.ID, title).First(&existing).Error; err == nil {
			skipped++
			continue
		}

		listing := models.Listing{
			OwnerID:       owner.ID,
			Title:         title,
			Description:   field(row, "description"),
			Price:         price,
			Condition:     condition,
			Category:      category,
			StockQuantity: stock,
			Status:        status,
		}
		if err := db.Create(&listing).Error; err != nil {
			log.Printf("Row %d: insert failed: %v", i+1, err)
			skipped++
			continue
		}
		inserted++
	}

	log.Printf("Import complete. Inserted: %d, Skipped: %d", inserted, skipped)
}
