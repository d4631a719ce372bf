// error_utils.go
package utils

import (
	"membership-form-backend/src/models"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Message: message,
	})
}

// HandleErrorDetail also reports the underlying error text.
func HandleErrorDetail(c *fiber.Ctx, status int, message string, err error) error {
	resp := models.ErrorResponse{Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	return c.Status(status).JSON(resp)
}
