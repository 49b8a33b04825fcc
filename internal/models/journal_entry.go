package models

const (
	JournalText  = "text"
	JournalVoice = "voice"
)

// JournalEntry is a free-form diary record. The store keeps journal
// entries newest-first; several entries may share one date.
type JournalEntry struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Type      string `json:"type"`
	Content   string `json:"content"`
	Mood      string `json:"mood,omitempty"`
	AudioURL  string `json:"audioUrl,omitempty"`
	CreatedAt string `json:"createdAt"`
}

type JournalEntryPatch struct {
	Date     *string `json:"date"`
	Type     *string `json:"type"`
	Content  *string `json:"content"`
	Mood     *string `json:"mood"`
	AudioURL *string `json:"audioUrl"`
}

func (patch JournalEntryPatch) ApplyTo(entry *JournalEntry) {
	if patch.Date != nil {
		entry.Date = *patch.Date
	}
	if patch.Type != nil {
		entry.Type = *patch.Type
	}
	if patch.Content != nil {
		entry.Content = *patch.Content
	}
	if patch.Mood != nil {
		entry.Mood = *patch.Mood
	}
	if patch.AudioURL != nil {
		entry.AudioURL = *patch.AudioURL
	}
}

func (entry JournalEntry) Validate() error {
	if entry.Date == "" {
		return requiredFieldError("date")
	}
	if !oneOf(entry.Type, JournalText, JournalVoice) {
		return invalidFieldError("type", entry.Type)
	}
	if entry.Type == JournalText && entry.Content == "" {
		return requiredFieldError("content")
	}
	if entry.Type == JournalVoice && entry.AudioURL == "" {
		return requiredFieldError("audioUrl")
	}
	return nil
}
