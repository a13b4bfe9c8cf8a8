package auth

import "github.com/gofiber/fiber/v2"

const claimsLocalsKey = "auth.claims"

// WithClaims attaches verified claims to the request.
func WithClaims(c *fiber.Ctx, claims Claims) {
	c.Locals(claimsLocalsKey, claims)
}

// ClaimsFrom returns the verified claims attached by the auth middleware.
func ClaimsFrom(c *fiber.Ctx) (Claims, bool) {
	claims, ok := c.Locals(claimsLocalsKey).(Claims)
	return claims, ok
}

// CurrentIdentity returns the authenticated actor of the request.
func CurrentIdentity(c *fiber.Ctx) (Identity, bool) {
	claims, ok := ClaimsFrom(c)
	if !ok {
		return Identity{}, false
	}
	return claims.Identity(), true
}
