package adminValidator

import (
	"souk/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Moderation actions
const (
	ActionApprove = "APPROVE"
	ActionReject  = "REJECT"
)

// ModerateListingRequest carries a parsed moderation decision
type ModerateListingRequest struct {
	ListingID uint   `json:"listingId"`
	Action    string `json:"action"` // APPROVE, REJECT
}

// ListPendingRequest is a normalized pending-queue page query
type ListPendingRequest struct {
	Page  int
	Limit int
}

// SetHeroImageRequest carries the hero image setting payload
type SetHeroImageRequest struct {
	URL string `json:"url"`
}

// ModerateListing validates an approve/reject request
func ModerateListing() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ModerateListingRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ListingID == 0 {
			errors["listingId"] = "Listing ID is required!"
		}
		if reqData.Action != ActionApprove && reqData.Action != ActionReject {
			errors["action"] = "Action must be APPROVE or REJECT!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedModerateListing", reqData)
		return c.Next()
	}
}

// ListPending validates the pending moderation queue query
func ListPending() fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := c.QueryInt("page", 1)
		limit := c.QueryInt("limit", 20)

		if page < 1 {
			page = 1
		}
		if limit < 1 || limit > 100 {
			limit = 20
		}

		c.Locals("validatedListPending", &ListPendingRequest{Page: page, Limit: limit})
		return c.Next()
	}
}

// SetHeroImage validates the hero image update request
func SetHeroImage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SetHeroImageRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.URL = strings.TrimSpace(reqData.URL)
		if reqData.URL == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"url": "Image URL is required!",
			})
		}

		c.Locals("validatedSetHeroImage", reqData)
		return c.Next()
	}
}
