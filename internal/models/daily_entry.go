package models

const (
	MoodVerySad   = "very-sad"
	MoodSad       = "sad"
	MoodNeutral   = "neutral"
	MoodHappy     = "happy"
	MoodVeryHappy = "very-happy"
)

const (
	SleepPoor      = "poor"
	SleepFair      = "fair"
	SleepGood      = "good"
	SleepExcellent = "excellent"
)

const (
	PainLevelMin = 0
	PainLevelMax = 10
)

type MoodLog struct {
	Mood  string `json:"mood"`
	Emoji string `json:"emoji"`
	Notes string `json:"notes,omitempty"`
}

type PainLog struct {
	Level    int    `json:"level"`
	Location string `json:"location,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

type SleepLog struct {
	Quality string  `json:"quality"`
	Hours   float64 `json:"hours,omitempty"`
	Notes   string  `json:"notes,omitempty"`
}

type BabyCareLog struct {
	Diaper  bool `json:"diaper"`
	Feeding bool `json:"feeding"`
	Bath    bool `json:"bath"`
}

// DailyEntry is the combined tracking record for one calendar day.
// Date is a yyyy-MM-dd string; the store keeps at most one entry per date.
type DailyEntry struct {
	ID        string      `json:"id"`
	Date      string      `json:"date"`
	Mood      MoodLog     `json:"mood"`
	Pain      PainLog     `json:"pain"`
	Sleep     SleepLog    `json:"sleep"`
	BabyCare  BabyCareLog `json:"babyCare"`
	CreatedAt string      `json:"createdAt"`
}

func (entry DailyEntry) Validate() error {
	if entry.Date == "" {
		return requiredFieldError("date")
	}
	if !isValidDateString(entry.Date) {
		return invalidFieldError("date", entry.Date)
	}
	if !oneOf(entry.Mood.Mood, MoodVerySad, MoodSad, MoodNeutral, MoodHappy, MoodVeryHappy) {
		return invalidFieldError("mood.mood", entry.Mood.Mood)
	}
	if entry.Pain.Level < PainLevelMin || entry.Pain.Level > PainLevelMax {
		return invalidFieldError("pain.level", entry.Pain.Level)
	}
	if !oneOf(entry.Sleep.Quality, SleepPoor, SleepFair, SleepGood, SleepExcellent) {
		return invalidFieldError("sleep.quality", entry.Sleep.Quality)
	}
	return nil
}
