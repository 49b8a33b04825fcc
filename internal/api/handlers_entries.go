package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/solenne/rebloom/internal/models"
)

func (handler *Handler) GetDailyEntries(c *fiber.Ctx) error {
	return c.JSON(handler.service.DailyEntries())
}

func (handler *Handler) GetTodayEntry(c *fiber.Ctx) error {
	entry, ok := handler.service.TodayEntry(time.Now())
	if !ok {
		return apiError(c, fiber.StatusNotFound, "no entry for today")
	}
	return c.JSON(entry)
}

// UpsertDailyEntry inserts or replaces the entry for its date; the
// store keeps one entry per calendar day.
func (handler *Handler) UpsertDailyEntry(c *fiber.Ctx) error {
	entry := models.DailyEntry{}
	if err := c.BodyParser(&entry); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if entry.Date == "" {
		entry.Date = time.Now().In(handler.location).Format(models.DateLayout)
	}
	if err := entry.Validate(); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	saved := handler.service.AddOrUpdateDailyEntry(entry)
	return c.JSON(saved)
}

func (handler *Handler) GetDashboard(c *fiber.Ctx) error {
	now := time.Now()

	payload := fiber.Map{
		"daysSinceDelivery": handler.service.DaysSinceDelivery(now),
		"weeklyProgress":    handler.service.WeeklyProgress(now),
		"activeReminders":   handler.service.ActiveReminders(),
		"urgentNotes":       handler.service.UrgentNotes(),
	}
	if entry, ok := handler.service.TodayEntry(now); ok {
		payload["todayEntry"] = entry
	} else {
		payload["todayEntry"] = nil
	}
	return c.JSON(payload)
}
