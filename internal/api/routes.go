package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	auth := app.Group("/api/auth")
	auth.Post("/unlock", handler.Unlock)
	auth.Post("/lock", handler.Lock)

	api := app.Group("/api", handler.PinRequired)

	api.Get("/profile", handler.GetProfile)
	api.Post("/profile", handler.CreateProfile)
	api.Patch("/profile", handler.PatchProfile)

	api.Get("/dashboard", handler.GetDashboard)

	entries := api.Group("/entries")
	entries.Get("", handler.GetDailyEntries)
	entries.Get("/today", handler.GetTodayEntry)
	entries.Post("", handler.UpsertDailyEntry)

	journal := api.Group("/journal")
	journal.Get("", handler.GetJournalEntries)
	journal.Post("", handler.CreateJournalEntry)
	journal.Patch("/:id", handler.PatchJournalEntry)
	journal.Delete("/:id", handler.DeleteJournalEntry)

	reminders := api.Group("/reminders")
	reminders.Get("", handler.GetReminders)
	reminders.Get("/active", handler.GetActiveReminders)
	reminders.Post("", handler.CreateReminder)
	reminders.Post("/seed", handler.SeedReminders)
	reminders.Patch("/:id", handler.PatchReminder)

	baby := api.Group("/baby")
	baby.Get("", handler.GetBabyProfile)
	baby.Post("", handler.CreateBabyProfile)
	baby.Patch("", handler.PatchBabyProfile)
	baby.Post("/feedings", handler.AddFeedingLog)
	baby.Post("/diapers", handler.AddDiaperLog)
	baby.Post("/temperatures", handler.AddTemperatureLog)

	notes := api.Group("/notes")
	notes.Get("", handler.GetMemoryNotes)
	notes.Get("/urgent", handler.GetUrgentNotes)
	notes.Post("", handler.CreateMemoryNote)
	notes.Patch("/:id", handler.PatchMemoryNote)
	notes.Delete("/:id", handler.DeleteMemoryNote)

	api.Get("/export", handler.ExportData)
	api.Post("/data/clear", handler.ClearData)
}
