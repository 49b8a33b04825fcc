package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/solenne/rebloom/internal/models"
)

func (handler *Handler) GetReminders(c *fiber.Ctx) error {
	return c.JSON(handler.service.Reminders())
}

func (handler *Handler) GetActiveReminders(c *fiber.Ctx) error {
	return c.JSON(handler.service.ActiveReminders())
}

// SeedReminders installs the built-in self-care catalog. Calling it
// when reminders already exist returns the current list untouched.
func (handler *Handler) SeedReminders(c *fiber.Ctx) error {
	return c.JSON(handler.service.SeedDefaultReminders())
}

func (handler *Handler) CreateReminder(c *fiber.Ctx) error {
	reminder := models.Reminder{}
	if err := c.BodyParser(&reminder); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if reminder.Type == "" {
		reminder.Type = models.ReminderCustom
	}
	if err := reminder.Validate(); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	created := handler.service.AddReminder(reminder)
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (handler *Handler) PatchReminder(c *fiber.Ctx) error {
	id, ok := requiredParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "missing id")
	}

	patch := models.ReminderPatch{}
	if err := c.BodyParser(&patch); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	handler.service.UpdateReminder(id, patch)
	return c.SendStatus(fiber.StatusNoContent)
}
