package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/nucleobets/backend/internal/dto"
	"github.com/nucleobets/backend/internal/services"
)

type AnalysisHandler struct {
	analysisService *services.AnalysisService
}

func NewAnalysisHandler(analysisService *services.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService}
}

// ListPublic is the member feed. Supports ?day=all|yesterday|today|tomorrow.
func (h *AnalysisHandler) ListPublic(c *fiber.Ctx) error {
	mode, ok := services.ParseDayFilter(c.Query("day"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid day filter",
		})
	}

	analyses, err := h.analysisService.ListPublic()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list analyses",
		})
	}

	analyses = services.FilterByDay(analyses, mode, time.Now(), time.Local)
	return c.JSON(dto.NewAnalysisListResponse(analyses))
}

func (h *AnalysisHandler) ListAdmin(c *fiber.Ctx) error {
	analyses, err := h.analysisService.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list analyses",
		})
	}

	return c.JSON(dto.NewAnalysisListResponse(analyses))
}

func (h *AnalysisHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateAnalysisRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	analysis, err := h.analysisService.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidBetType) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create analysis",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewAnalysisResponse(analysis))
}

func (h *AnalysisHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid analysis id",
		})
	}

	var req dto.UpdateAnalysisRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	analysis, err := h.analysisService.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAnalysisNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrInvalidBetType), errors.Is(err, services.ErrInvalidResult):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update analysis",
		})
	}

	return c.JSON(dto.NewAnalysisResponse(analysis))
}

func (h *AnalysisHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid analysis id",
		})
	}

	if err := h.analysisService.Delete(id); err != nil {
		if errors.Is(err, services.ErrAnalysisNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete analysis",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
