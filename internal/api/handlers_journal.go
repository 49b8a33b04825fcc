package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/solenne/rebloom/internal/models"
)

func (handler *Handler) GetJournalEntries(c *fiber.Ctx) error {
	return c.JSON(handler.service.JournalEntries())
}

func (handler *Handler) CreateJournalEntry(c *fiber.Ctx) error {
	entry := models.JournalEntry{}
	if err := c.BodyParser(&entry); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := entry.Validate(); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	created := handler.service.AddJournalEntry(entry)
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (handler *Handler) PatchJournalEntry(c *fiber.Ctx) error {
	id, ok := requiredParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "missing id")
	}

	patch := models.JournalEntryPatch{}
	if err := c.BodyParser(&patch); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	handler.service.UpdateJournalEntry(id, patch)
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) DeleteJournalEntry(c *fiber.Ctx) error {
	id, ok := requiredParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "missing id")
	}

	handler.service.DeleteJournalEntry(id)
	return c.SendStatus(fiber.StatusNoContent)
}
