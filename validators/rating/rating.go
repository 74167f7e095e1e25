package ratingValidator

import (
	"souk/middleware"

	"github.com/gofiber/fiber/v2"
)

// SubmitRatingRequest carries a parsed rating payload
type SubmitRatingRequest struct {
	Value   int    `json:"value"`
	Comment string `json:"comment"`
}

// ListRatingsRequest is a normalized rating page query
type ListRatingsRequest struct {
	Page  int
	Limit int
}

// SubmitRating validates a rating submission
func SubmitRating() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubmitRatingRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Value < 1 || reqData.Value > 5 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"value": "Rating must be between 1 and 5!",
			})
		}

		c.Locals("validatedSubmitRating", reqData)
		return c.Next()
	}
}

// ListRatings validates the public rating list query
func ListRatings() fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := c.QueryInt("page", 1)
		limit := c.QueryInt("limit", 10)

		if page < 1 {
			page = 1
		}
		if limit < 1 || limit > 100 {
			limit = 10
		}

		c.Locals("validatedListRatings", &ListRatingsRequest{Page: page, Limit: limit})
		return c.Next()
	}
}
