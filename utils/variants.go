package utils

import (
	"souk/models"
	"strings"
)

// SanitizeVariants filters a raw variant list down to the entries worth
// keeping: at least one of color/size non-empty after trim, and a
// non-negative stock. Bad entries are dropped silently rather than
// rejecting the listing; the same rule runs on create and on update.
func SanitizeVariants(raw []models.Variant) []models.Variant {
	clean := make([]models.Variant, 0, len(raw))

	for _, v := range raw {
		color := strings.TrimSpace(v.Color)
		size := strings.TrimSpace(v.Size)

		if color == "" && size == "" {
			continue
		}
		if v.Stock < 0 {
			continue
		}

		clean = append(clean, models.Variant{
			Color: color,
			Size:  size,
			Stock: v.Stock,
		})
	}

	return clean
}
