package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/orderdesk/orderdesk/internal/apperr"
	"github.com/orderdesk/orderdesk/internal/auth"
	"github.com/orderdesk/orderdesk/internal/identity"
)

const (
	msgTokenRequired = "Access token required"
	msgTokenInvalid  = "Invalid or expired token"
	msgForbidden     = "Insufficient permissions"
)

// Authenticate verifies the bearer token and attaches its claims to the request.
// Claims are trusted as signed; no user lookup happens here.
func Authenticate(codec *auth.Codec, revocations auth.Revocations) fiber.Handler {
	if revocations == nil {
		revocations = auth.NoRevocations{}
	}
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return apperr.Unauthorized(msgTokenRequired)
		}

		claims, err := codec.Verify(token)
		if err != nil {
			return apperr.Wrap(apperr.KindUnauthorized, msgTokenInvalid, err)
		}

		revoked, err := revocations.IsRevoked(c.UserContext(), claims.ID)
		if err != nil {
			return apperr.Store("Internal server error", err)
		}
		if revoked {
			return apperr.Unauthorized(msgTokenInvalid)
		}

		auth.WithClaims(c, claims)
		return c.Next()
	}
}

// RequireRole lets the request through when the caller's role satisfies any of roles.
// It must run after Authenticate.
func RequireRole(roles ...identity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := auth.CurrentIdentity(c)
		if !ok {
			return apperr.Unauthorized(msgTokenRequired)
		}
		for _, required := range roles {
			if id.Role.Satisfies(required) {
				return c.Next()
			}
		}
		return apperr.Forbidden(msgForbidden)
	}
}

// RequireAdmin gates a route to administrators.
func RequireAdmin() fiber.Handler {
	return RequireRole(identity.RoleAdmin)
}

// bearerToken takes the second whitespace-delimited field of an
// "Authorization: Bearer <token>" header.
func bearerToken(header string) (string, bool) {
	fields := strings.Fields(header)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", false
	}
	return fields[1], true
}
