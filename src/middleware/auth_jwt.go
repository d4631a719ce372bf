package middleware

import (
	"strings"

	"membership-form-backend/src/utils"

	"github.com/gofiber/fiber/v2"
)

// OptionalAuthJWT ตรวจ bearer token เมื่อมีการตั้ง JWT_SECRET; ถ้าไม่ได้ตั้งจะปล่อยผ่าน
func OptionalAuthJWT(secret string) fiber.Handler {
	if secret == "" {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	key := []byte(secret)

	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing or invalid Authorization header"})
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseJWT(key, tokenStr)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid or expired token", "error": err.Error()})
		}

		c.Locals("subject", claims.Subject)
		c.Locals("role", claims.Role)

		return c.Next()
	}
}
