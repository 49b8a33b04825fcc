package services

import (
	"testing"
	"time"

	"github.com/solenne/rebloom/internal/models"
)

func TestStartOfWeekIsSunday(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{name: "midweek", now: time.Date(2025, 3, 12, 18, 0, 0, 0, time.UTC), want: "2025-03-09"},
		{name: "sunday itself", now: time.Date(2025, 3, 9, 0, 30, 0, 0, time.UTC), want: "2025-03-09"},
		{name: "saturday", now: time.Date(2025, 3, 15, 23, 0, 0, 0, time.UTC), want: "2025-03-09"},
		{name: "month boundary", now: time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC), want: "2025-03-30"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got := startOfWeek(testCase.now, time.UTC).Format(models.DateLayout)
			if got != testCase.want {
				t.Fatalf("startOfWeek(%s) = %s, want %s", testCase.now, got, testCase.want)
			}
		})
	}
}

func TestParseRecordDate(t *testing.T) {
	if _, ok := parseRecordDate("2025-03-12", time.UTC); !ok {
		t.Fatal("expected plain calendar date to parse")
	}
	if day, ok := parseRecordDate("2025-03-12T22:45:00Z", time.UTC); !ok || day.Day() != 12 {
		t.Fatalf("expected RFC 3339 datetime to parse to its calendar day, got ok=%v day=%v", ok, day)
	}
	if _, ok := parseRecordDate("last tuesday", time.UTC); ok {
		t.Fatal("expected junk to fail parsing")
	}
}

func TestBuildWeeklyProgressCounting(t *testing.T) {
	now := time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC)

	entries := []models.DailyEntry{
		{
			// Counts for all three.
			Date:     "2025-03-10",
			Mood:     models.MoodLog{Mood: models.MoodNeutral},
			Pain:     models.PainLog{Level: 5},
			BabyCare: models.BabyCareLog{Diaper: true, Feeding: true},
		},
		{
			// Logged, but worst mood excludes wellness and missing
			// feeding excludes self-care.
			Date:     "2025-03-11",
			Mood:     models.MoodLog{Mood: models.MoodVerySad},
			Pain:     models.PainLog{Level: 2},
			BabyCare: models.BabyCareLog{Diaper: true, Feeding: false},
		},
		{
			// Logged, pain above threshold excludes wellness.
			Date:     "2025-03-12",
			Mood:     models.MoodLog{Mood: models.MoodHappy},
			Pain:     models.PainLog{Level: 6},
			BabyCare: models.BabyCareLog{Diaper: true, Feeding: true},
		},
		{
			// Outside the week; contributes nothing.
			Date:     "2025-03-08",
			Mood:     models.MoodLog{Mood: models.MoodHappy},
			Pain:     models.PainLog{Level: 0},
			BabyCare: models.BabyCareLog{Diaper: true, Feeding: true},
		},
		{
			// Unparseable date; contributes nothing.
			Date:     "someday",
			Mood:     models.MoodLog{Mood: models.MoodHappy},
			Pain:     models.PainLog{Level: 0},
			BabyCare: models.BabyCareLog{Diaper: true, Feeding: true},
		},
	}

	progress := buildWeeklyProgress(entries, now, time.UTC)

	if progress.DailyLogs.Completed != 3 {
		t.Fatalf("expected 3 logged days, got %d", progress.DailyLogs.Completed)
	}
	if progress.SelfCare.Completed != 2 {
		t.Fatalf("expected 2 self-care days, got %d", progress.SelfCare.Completed)
	}
	if progress.Wellness.Completed != 1 {
		t.Fatalf("expected 1 wellness day, got %d", progress.Wellness.Completed)
	}
	if progress.DailyLogs.Total != 7 || progress.SelfCare.Total != 7 || progress.Wellness.Total != 7 {
		t.Fatalf("expected fixed denominator of 7, got %+v", progress)
	}
}

func TestWholeDaysBetween(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	cases := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{
			name: "utc",
			from: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
			want: 10,
		},
		{
			name: "reversed",
			from: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
			want: -10,
		},
		{
			// The interval loses an hour to the Mar 9 spring-forward
			// transition; the calendar-day count must not.
			name: "spring forward",
			from: time.Date(2025, 3, 5, 0, 0, 0, 0, newYork),
			to:   time.Date(2025, 3, 15, 0, 0, 0, 0, newYork),
			want: 10,
		},
		{
			// Fall-back adds an hour on Nov 2; still ten days.
			name: "fall back",
			from: time.Date(2025, 10, 28, 0, 0, 0, 0, newYork),
			to:   time.Date(2025, 11, 7, 0, 0, 0, 0, newYork),
			want: 10,
		},
	}
	for _, tc := range cases {
		if got := wholeDaysBetween(tc.from, tc.to); got != tc.want {
			t.Fatalf("%s: wholeDaysBetween = %d, want %d", tc.name, got, tc.want)
		}
	}
}
