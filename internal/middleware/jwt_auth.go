package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/mansoorceksport/ironlog/internal/domain"
)

// Context keys for profile info extracted from the access token
const (
	ProfileIDKey   = "profileID"
	ProfileNameKey = "profileName"
)

// VerifyProfileToken validates the JWT and stores the profile claims
func VerifyProfileToken(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Get token from Authorization header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing authorization token",
			})
		}

		// Extract token (format: "Bearer <token>")
		tokenString := authHeader
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenString = authHeader[7:]
		}

		// Parse and validate token
		token, err := jwt.ParseWithClaims(tokenString, &domain.IronLogClaims{}, func(token *jwt.Token) (interface{}, error) {
			// Verify signing method
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(jwtSecret), nil
		})

		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		claims, ok := token.Claims.(*domain.IronLogClaims)
		if !ok || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token claims",
			})
		}

		// Store claims in context
		c.Locals(ProfileIDKey, claims.ProfileID)
		c.Locals(ProfileNameKey, claims.Name)

		return c.Next()
	}
}

// GetProfileID returns the authenticated profile id from the request context.
// Empty string means the middleware never ran.
func GetProfileID(c *fiber.Ctx) string {
	if id, ok := c.Locals(ProfileIDKey).(string); ok {
		return id
	}
	return ""
}
