package middleware

import (
	"strings"

	"vehicle-service/constants"
	"vehicle-service/models/account"
	authService "vehicle-service/services/auth"
	"vehicle-service/types"

	"github.com/gofiber/fiber/v2"
)

// RequireRole gates a route to accounts whose resolved role matches one of
// the given roles.
func RequireRole(roles ...account.Role) fiber.Handler {
	return isAuthenticated(roles)
}

// RequireAuthentication only requires a valid session token without a
// specific role.
func RequireAuthentication() fiber.Handler {
	return isAuthenticated(nil)
}

func isAuthenticated(roles []account.Role) fiber.Handler {
	svc := authService.NewService()

	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		var token string

		if authHeader != "" {
			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
					Message: "Invalid authorization header format",
					Status:  fiber.StatusUnauthorized,
				})
			}
			token = tokenParts[1]
		} else {
			// Fall back to the access cookie
			token = c.Cookies(constants.AccessCookie)
			if token == "" {
				return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
					Message: "Authorization token missing",
					Status:  fiber.StatusUnauthorized,
				})
			}
		}

		claims, err := svc.ValidateToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
				Message: "Session expired. Login again.",
				Status:  fiber.StatusUnauthorized,
			})
		}

		if len(roles) > 0 {
			allowed := false
			for _, role := range roles {
				if claims.Role == role {
					allowed = true
					break
				}
			}
			if !allowed {
				return c.Status(fiber.StatusForbidden).JSON(types.ErrorResponse{
					Message: "Access denied for this role",
					Status:  fiber.StatusForbidden,
				})
			}
		}

		c.Locals(constants.LocalsAccount, claims)

		return c.Next()
	}
}
