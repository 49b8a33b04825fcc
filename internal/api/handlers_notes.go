package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/solenne/rebloom/internal/models"
)

func (handler *Handler) GetMemoryNotes(c *fiber.Ctx) error {
	return c.JSON(handler.service.MemoryNotes())
}

func (handler *Handler) GetUrgentNotes(c *fiber.Ctx) error {
	return c.JSON(handler.service.UrgentNotes())
}

func (handler *Handler) CreateMemoryNote(c *fiber.Ctx) error {
	note := models.MemoryNote{}
	if err := c.BodyParser(&note); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := note.Validate(); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	created := handler.service.AddMemoryNote(note)
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (handler *Handler) PatchMemoryNote(c *fiber.Ctx) error {
	id, ok := requiredParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "missing id")
	}

	patch := models.MemoryNotePatch{}
	if err := c.BodyParser(&patch); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	handler.service.UpdateMemoryNote(id, patch)
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) DeleteMemoryNote(c *fiber.Ctx) error {
	id, ok := requiredParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "missing id")
	}

	handler.service.DeleteMemoryNote(id)
	return c.SendStatus(fiber.StatusNoContent)
}
