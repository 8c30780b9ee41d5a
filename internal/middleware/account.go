package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/nucleobets/backend/internal/dto"
	"github.com/nucleobets/backend/internal/models"
	"github.com/nucleobets/backend/internal/services"
)

const accountKey = "account"

// LoadAccount resolves the JWT subject to a live account and re-checks the
// authentication gate on every request, so deleted, deactivated or expired
// accounts are rejected even while their token is still within its lifetime.
// Must run after JWTProtected.
func LoadAccount(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, err := tokenSubject(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized: invalid token",
			})
		}

		account, err := auth.Resolve(accountID)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized: account not available",
			})
		}

		c.Locals(accountKey, account)
		return c.Next()
	}
}

// CurrentAccount returns the account stored by LoadAccount.
func CurrentAccount(c *fiber.Ctx) (*models.Account, bool) {
	account, ok := c.Locals(accountKey).(*models.Account)
	return account, ok
}

func tokenSubject(c *fiber.Ctx) (uuid.UUID, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("invalid claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing sub claim")
	}

	return uuid.Parse(sub)
}
