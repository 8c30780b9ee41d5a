package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nucleobets/backend/internal/dto"
	"github.com/nucleobets/backend/internal/services"
)

type StatsHandler struct {
	statsService *services.StatsService
}

func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

func (h *StatsHandler) Get(c *fiber.Ctx) error {
	stats, err := h.statsService.Compute()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to compute statistics",
		})
	}

	return c.JSON(stats)
}
