package middleware

import (
	"souk/models"

	"github.com/gofiber/fiber/v2"
)

// The two mutation policies are deliberately distinct: listing patches are
// owner-only, while delete and rating moderation are owner-or-admin. Keep
// them as separate functions so the asymmetry is visible at call sites.

// IsOwner reports whether the acting user owns the resource. Admins get no
// bypass here.
func IsOwner(resourceOwnerID, actingUserID uint) bool {
	return resourceOwnerID == actingUserID
}

// IsOwnerOrAdmin reports whether the acting user owns the resource or holds
// the admin role.
func IsOwnerOrAdmin(resourceOwnerID, actingUserID uint, role string) bool {
	return resourceOwnerID == actingUserID || role == models.RoleAdmin
}

// ActingIdentity reads the authenticated identity placed in Locals by the
// JWT middleware. ok is false for anonymous callers.
func ActingIdentity(c *fiber.Ctx) (userID uint, role string, ok bool) {
	userID, ok = c.Locals("userId").(uint)
	if !ok {
		return 0, "", false
	}
	role, _ = c.Locals("role").(string)
	return userID, role, true
}
