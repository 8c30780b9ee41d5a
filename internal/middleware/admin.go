package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nucleobets/backend/internal/dto"
	"github.com/nucleobets/backend/internal/models"
)

// AdminRequired gates the management surface on the account role. Role is
// read from the resolved account, never from anything the client sent.
// Must run after LoadAccount.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		account, ok := CurrentAccount(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		if account.Role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Admin access required",
			})
		}

		return c.Next()
	}
}
