package models

const (
	NoteMedication  = "medication"
	NoteAppointment = "appointment"
	NoteMilestone   = "milestone"
	NoteGeneral     = "general"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// MemoryNote is a brain-fog note ("take iron tablets", "pediatrician
// Friday"). The store keeps notes newest-first.
type MemoryNote struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Type      string `json:"type"`
	Priority  string `json:"priority"`
	AlertTime string `json:"alertTime,omitempty"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"createdAt"`
}

type MemoryNotePatch struct {
	Content   *string `json:"content"`
	Type      *string `json:"type"`
	Priority  *string `json:"priority"`
	AlertTime *string `json:"alertTime"`
	Completed *bool   `json:"completed"`
}

func (patch MemoryNotePatch) ApplyTo(note *MemoryNote) {
	if patch.Content != nil {
		note.Content = *patch.Content
	}
	if patch.Type != nil {
		note.Type = *patch.Type
	}
	if patch.Priority != nil {
		note.Priority = *patch.Priority
	}
	if patch.AlertTime != nil {
		note.AlertTime = *patch.AlertTime
	}
	if patch.Completed != nil {
		note.Completed = *patch.Completed
	}
}

func (note MemoryNote) Validate() error {
	if note.Content == "" {
		return requiredFieldError("content")
	}
	if !oneOf(note.Type, NoteMedication, NoteAppointment, NoteMilestone, NoteGeneral) {
		return invalidFieldError("type", note.Type)
	}
	if !oneOf(note.Priority, PriorityLow, PriorityMedium, PriorityHigh) {
		return invalidFieldError("priority", note.Priority)
	}
	return nil
}
