package api

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ExportData streams the full backup blob as a download.
func (handler *Handler) ExportData(c *fiber.Ctx) error {
	blob, err := handler.service.Export()
	if err != nil {
		handler.log.Error("build export", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	filename := fmt.Sprintf("rebloom-export-%s.json", time.Now().In(handler.location).Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(blob)
}

// ClearData wipes every stored record. Irreversible; the client is
// expected to confirm before calling.
func (handler *Handler) ClearData(c *fiber.Ctx) error {
	handler.service.ClearAll()
	return c.SendStatus(fiber.StatusNoContent)
}
