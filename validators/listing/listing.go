package listingValidator

import (
	"encoding/json"
	stderrors "errors"
	"souk/middleware"
	"souk/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Listing sort keys
const (
	SortNewest    = "newest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
)

// CreateListingRequest carries a parsed listing creation payload
type CreateListingRequest struct {
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Price         float64          `json:"price"`
	Condition     string           `json:"condition"`
	ContactHandle string           `json:"contactHandle"`
	Images        []string         `json:"images"`
	StockQuantity int              `json:"stockQuantity"`
	Category      string           `json:"category"`
	Variants      []models.Variant `json:"variants"`
}

// UpdateListingRequest is the whitelisted field change set for a listing
// patch. Nil means "leave unchanged"; unknown keys in the body are ignored
// by parsing. Field names map to columns through a static table in the
// controller, never from caller input.
type UpdateListingRequest struct {
	Title         *string           `json:"title"`
	Description   *string           `json:"description"`
	Price         *float64          `json:"price"`
	Condition     *string           `json:"condition"`
	ContactHandle *string           `json:"contactHandle"`
	Images        *[]string         `json:"images"`
	StockQuantity *int              `json:"stockQuantity"`
	Category      *string           `json:"category"`
	Variants      *[]models.Variant `json:"variants"`
}

// IsEmpty reports whether the patch changes nothing
func (r *UpdateListingRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.Price == nil &&
		r.Condition == nil && r.ContactHandle == nil && r.Images == nil &&
		r.StockQuantity == nil && r.Category == nil && r.Variants == nil
}

// ListListingsRequest is a normalized catalog query
type ListListingsRequest struct {
	Page     int
	Limit    int
	Sort     string
	Search   string
	Category string
}

// CreateListing validates listing creation request
func CreateListing() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateListingRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.Price <= 0 {
			errors["price"] = "Price must be greater than 0!"
		}
		if reqData.StockQuantity < 1 {
			errors["stockQuantity"] = "Stock quantity must be at least 1!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateListing", reqData)
		return c.Next()
	}
}

// UpdateListing validates a listing patch request
func UpdateListing() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateListingRequest)

		// A wrong JSON type for a known field (e.g. a non-array variants
		// value) is a validation failure; anything else malformed is a
		// bad request. Either way the whole patch is rejected before any
		// store call.
		if err := c.BodyParser(reqData); err != nil {
			var typeErr *json.UnmarshalTypeError
			if stderrors.As(err, &typeErr) {
				return middleware.ValidationErrorResponse(c, map[string]string{
					typeErr.Field: "Invalid value type!",
				})
			}
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.IsEmpty() {
			errors["fields"] = "Nothing to update!"
		}
		if reqData.Title != nil && strings.TrimSpace(*reqData.Title) == "" {
			errors["title"] = "Title cannot be empty!"
		}
		if reqData.Price != nil && *reqData.Price <= 0 {
			errors["price"] = "Price must be greater than 0!"
		}
		if reqData.StockQuantity != nil && *reqData.StockQuantity < 0 {
			errors["stockQuantity"] = "Stock quantity cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUpdateListing", reqData)
		return c.Next()
	}
}

// ListListings validates the public catalog query with pagination
func ListListings() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := new(struct {
			Page     *int    `query:"page"`
			Limit    *int    `query:"limit"`
			Sort     *string `query:"sort"`
			Search   *string `query:"search"`
			Category *string `query:"category"`
		})

		if err := c.QueryParser(raw); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request query!", nil)
		}

		reqData := &ListListingsRequest{Page: 1, Limit: 24, Sort: SortNewest}

		errors := make(map[string]string)

		if raw.Page != nil {
			if *raw.Page < 1 {
				errors["page"] = "Page must be greater than 0!"
			} else {
				reqData.Page = *raw.Page
			}
		}
		if raw.Limit != nil {
			if *raw.Limit < 1 || *raw.Limit > 100 {
				errors["limit"] = "Limit must be between 1 and 100!"
			} else {
				reqData.Limit = *raw.Limit
			}
		}
		if raw.Sort != nil && *raw.Sort != "" {
			switch *raw.Sort {
			case SortNewest, SortPriceLow, SortPriceHigh:
				reqData.Sort = *raw.Sort
			default:
				errors["sort"] = "Sort must be newest, price-low, or price-high!"
			}
		}
		if raw.Search != nil {
			reqData.Search = strings.TrimSpace(*raw.Search)
		}
		if raw.Category != nil && *raw.Category != "All" {
			reqData.Category = *raw.Category
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedListListings", reqData)
		return c.Next()
	}
}
