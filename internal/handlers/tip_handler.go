package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/nucleobets/backend/internal/dto"
	"github.com/nucleobets/backend/internal/services"
)

type TipHandler struct {
	tipService *services.TipService
}

func NewTipHandler(tipService *services.TipService) *TipHandler {
	return &TipHandler{tipService: tipService}
}

func (h *TipHandler) ListPublic(c *fiber.Ctx) error {
	tips, err := h.tipService.ListPublic()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list tips",
		})
	}

	return c.JSON(tips)
}

func (h *TipHandler) ListAdmin(c *fiber.Ctx) error {
	tips, err := h.tipService.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list tips",
		})
	}

	return c.JSON(tips)
}

func (h *TipHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTipRequest
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

	tip, err := h.tipService.Create(&req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create tip",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(tip)
}

func (h *TipHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid tip id",
		})
	}

	var req dto.UpdateTipRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	tip, err := h.tipService.Update(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrTipNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update tip",
		})
	}

	return c.JSON(tip)
}

func (h *TipHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid tip id",
		})
	}

	if err := h.tipService.Delete(id); err != nil {
		if errors.Is(err, services.ErrTipNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete tip",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
