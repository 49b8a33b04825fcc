package models

const (
	ReminderWater     = "water"
	ReminderMeals     = "meals"
	ReminderKegel     = "kegel"
	ReminderStretches = "stretches"
	ReminderCustom    = "custom"
)

// Reminder is a self-care nudge. The list keeps its stored order;
// LastTriggered is maintained by the scheduling collaborator.
type Reminder struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Frequency     string `json:"frequency"`
	Enabled       bool   `json:"enabled"`
	LastTriggered string `json:"lastTriggered,omitempty"`
	CustomTime    string `json:"customTime,omitempty"`
}

type ReminderPatch struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	Frequency     *string `json:"frequency"`
	Enabled       *bool   `json:"enabled"`
	LastTriggered *string `json:"lastTriggered"`
	CustomTime    *string `json:"customTime"`
}

func (patch ReminderPatch) ApplyTo(reminder *Reminder) {
	if patch.Title != nil {
		reminder.Title = *patch.Title
	}
	if patch.Description != nil {
		reminder.Description = *patch.Description
	}
	if patch.Frequency != nil {
		reminder.Frequency = *patch.Frequency
	}
	if patch.Enabled != nil {
		reminder.Enabled = *patch.Enabled
	}
	if patch.LastTriggered != nil {
		reminder.LastTriggered = *patch.LastTriggered
	}
	if patch.CustomTime != nil {
		reminder.CustomTime = *patch.CustomTime
	}
}

func (reminder Reminder) Validate() error {
	if !oneOf(reminder.Type, ReminderWater, ReminderMeals, ReminderKegel, ReminderStretches, ReminderCustom) {
		return invalidFieldError("type", reminder.Type)
	}
	if reminder.Title == "" {
		return requiredFieldError("title")
	}
	if reminder.Frequency == "" {
		return requiredFieldError("frequency")
	}
	return nil
}
