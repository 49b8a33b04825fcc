package services

import (
	"time"

	"github.com/solenne/rebloom/internal/models"
)

type ProgressCounter struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// WeeklyProgress reports completion ratios over the calendar week
// containing "now". The denominator is always seven days, no matter
// how far into the week the query happens.
type WeeklyProgress struct {
	DailyLogs ProgressCounter `json:"dailyLogs"`
	SelfCare  ProgressCounter `json:"selfCare"`
	Wellness  ProgressCounter `json:"wellness"`
}

const daysPerWeek = 7

// Weeks start on Sunday, matching the locale default the original
// interface was built around.
func startOfWeek(now time.Time, location *time.Location) time.Time {
	day := dateAtLocation(now, location)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

func dateAtLocation(now time.Time, location *time.Location) time.Time {
	local := now.In(location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, location)
}

// parseRecordDate reads the calendar-date or RFC 3339 strings carried
// by stored records. The zero time and false signal an unparseable
// value.
func parseRecordDate(value string, location *time.Location) (time.Time, bool) {
	if parsed, err := time.ParseInLocation(models.DateLayout, value, location); err == nil {
		return parsed, true
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return dateAtLocation(parsed, location), true
	}
	return time.Time{}, false
}

// wholeDaysBetween counts calendar days, not elapsed 24h periods. Both
// dates are re-anchored to UTC midnight first so a DST transition
// inside the interval cannot shave a day off the count.
func wholeDaysBetween(from time.Time, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(toDay.Sub(fromDay).Hours() / 24)
}

func buildWeeklyProgress(entries []models.DailyEntry, now time.Time, location *time.Location) WeeklyProgress {
	weekStart := startOfWeek(now, location)
	weekEnd := weekStart.AddDate(0, 0, daysPerWeek)

	loggedDays := 0
	selfCareDays := 0
	wellnessDays := 0
	for _, entry := range entries {
		day, ok := parseRecordDate(entry.Date, location)
		if !ok || day.Before(weekStart) || !day.Before(weekEnd) {
			continue
		}

		loggedDays++
		if entry.BabyCare.Diaper && entry.BabyCare.Feeding {
			selfCareDays++
		}
		if entry.Mood.Mood != models.MoodVerySad && entry.Pain.Level <= 5 {
			wellnessDays++
		}
	}

	return WeeklyProgress{
		DailyLogs: ProgressCounter{Completed: loggedDays, Total: daysPerWeek},
		SelfCare:  ProgressCounter{Completed: selfCareDays, Total: daysPerWeek},
		Wellness:  ProgressCounter{Completed: wellnessDays, Total: daysPerWeek},
	}
}
