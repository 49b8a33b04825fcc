package services

import (
	"github.com/google/uuid"
	"github.com/solenne/rebloom/internal/models"
)

type builtinReminder struct {
	Type        string
	Title       string
	Description string
	Frequency   string
}

var builtinReminders = []builtinReminder{
	{
		Type:        models.ReminderWater,
		Title:       "Drink Water",
		Description: "Stay hydrated for better recovery",
		Frequency:   "every-3-hours",
	},
	{
		Type:        models.ReminderMeals,
		Title:       "Eat Well",
		Description: "Don't skip meals - your body needs nutrition",
		Frequency:   "3-times-daily",
	},
	{
		Type:        models.ReminderKegel,
		Title:       "Kegel Exercises",
		Description: "Strengthen your pelvic floor muscles",
		Frequency:   "twice-daily",
	},
	{
		Type:        models.ReminderStretches,
		Title:       "Gentle Stretches",
		Description: "Light stretching to ease tension",
		Frequency:   "daily",
	},
}

// DefaultReminders builds the built-in self-care catalog with fresh
// ids, all enabled.
func DefaultReminders() []models.Reminder {
	reminders := make([]models.Reminder, 0, len(builtinReminders))
	for _, builtin := range builtinReminders {
		reminders = append(reminders, models.Reminder{
			ID:          uuid.NewString(),
			Type:        builtin.Type,
			Title:       builtin.Title,
			Description: builtin.Description,
			Frequency:   builtin.Frequency,
			Enabled:     true,
		})
	}
	return reminders
}
