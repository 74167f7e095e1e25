package utils

// TotalPages returns ceil(totalItems / limit) for pagination metadata
func TotalPages(totalItems int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}
	pages := totalItems / int64(limit)
	if totalItems%int64(limit) != 0 {
		pages++
	}
	return pages
}
