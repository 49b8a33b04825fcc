package db

import (
	"encoding/json"

	"github.com/solenne/rebloom/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Storage keys are part of the on-disk contract; renaming one requires
// a migration. keyWellnessProgress is reserved and never written by
// the core.
const (
	keyUserProfile      = "postpartum_user_profile"
	keyDailyEntries     = "postpartum_daily_entries"
	keyJournalEntries   = "postpartum_journal_entries"
	keyReminders        = "postpartum_reminders"
	keyBabyProfile      = "postpartum_baby_profile"
	keyMemoryNotes      = "postpartum_memory_notes"
	keyWellnessProgress = "postpartum_wellness_progress"
)

type exportEntry struct {
	LogicalName string
	StorageKey  string
}

var exportEntries = []exportEntry{
	{LogicalName: "USER_PROFILE", StorageKey: keyUserProfile},
	{LogicalName: "DAILY_ENTRIES", StorageKey: keyDailyEntries},
	{LogicalName: "JOURNAL_ENTRIES", StorageKey: keyJournalEntries},
	{LogicalName: "REMINDERS", StorageKey: keyReminders},
	{LogicalName: "BABY_PROFILE", StorageKey: keyBabyProfile},
	{LogicalName: "MEMORY_NOTES", StorageKey: keyMemoryNotes},
	{LogicalName: "WELLNESS_PROGRESS", StorageKey: keyWellnessProgress},
}

// RecoveryStore is the sole reader and writer of domain records. Reads
// that fail (missing key, corrupted JSON, storage error) behave as "no
// data stored yet"; writes that fail are reported and dropped. Callers
// never see a storage error.
type RecoveryStore struct {
	database *gorm.DB
	log      *zap.Logger
}

func NewRecoveryStore(database *gorm.DB, log *zap.Logger) *RecoveryStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &RecoveryStore{database: database, log: log}
}

func (store *RecoveryStore) read(key string, target any) bool {
	value, found, err := readRecordValue(store.database, key)
	if err != nil {
		store.log.Warn("store read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if !found {
		return false
	}
	if err := json.Unmarshal([]byte(value), target); err != nil {
		store.log.Warn("stored value corrupted", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (store *RecoveryStore) write(key string, value any) {
	serialized, err := json.Marshal(value)
	if err != nil {
		store.log.Warn("store serialize failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := writeRecordValue(store.database, key, string(serialized)); err != nil {
		store.log.Warn("store write failed", zap.String("key", key), zap.Error(err))
	}
}

// User profile

func (store *RecoveryStore) UserProfile() (models.UserProfile, bool) {
	profile := models.UserProfile{}
	if !store.read(keyUserProfile, &profile) {
		return models.UserProfile{}, false
	}
	return profile, true
}

func (store *RecoveryStore) SetUserProfile(profile models.UserProfile) {
	store.write(keyUserProfile, profile)
}

// Daily entries

func (store *RecoveryStore) DailyEntries() []models.DailyEntry {
	entries := make([]models.DailyEntry, 0)
	store.read(keyDailyEntries, &entries)
	return entries
}

// AddDailyEntry upserts by date: an entry for an already-logged date
// replaces the old one at its position, otherwise the entry is
// appended.
func (store *RecoveryStore) AddDailyEntry(entry models.DailyEntry) {
	entries := store.DailyEntries()
	replaced := false
	for index := range entries {
		if entries[index].Date == entry.Date {
			entries[index] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, entry)
	}
	store.write(keyDailyEntries, entries)
}

func (store *RecoveryStore) DailyEntry(date string) (models.DailyEntry, bool) {
	for _, entry := range store.DailyEntries() {
		if entry.Date == date {
			return entry, true
		}
	}
	return models.DailyEntry{}, false
}

// Journal entries

func (store *RecoveryStore) JournalEntries() []models.JournalEntry {
	entries := make([]models.JournalEntry, 0)
	store.read(keyJournalEntries, &entries)
	return entries
}

// AddJournalEntry inserts at the front so the list stays
// reverse-chronological.
func (store *RecoveryStore) AddJournalEntry(entry models.JournalEntry) {
	entries := append([]models.JournalEntry{entry}, store.JournalEntries()...)
	store.write(keyJournalEntries, entries)
}

// UpdateJournalEntry merges the patch onto the matching entry; a
// missing id is a silent no-op.
func (store *RecoveryStore) UpdateJournalEntry(id string, patch models.JournalEntryPatch) {
	entries := store.JournalEntries()
	for index := range entries {
		if entries[index].ID == id {
			patch.ApplyTo(&entries[index])
			store.write(keyJournalEntries, entries)
			return
		}
	}
}

func (store *RecoveryStore) DeleteJournalEntry(id string) {
	entries := store.JournalEntries()
	remaining := make([]models.JournalEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.ID != id {
			remaining = append(remaining, entry)
		}
	}
	store.write(keyJournalEntries, remaining)
}

// Reminders

func (store *RecoveryStore) Reminders() []models.Reminder {
	reminders := make([]models.Reminder, 0)
	store.read(keyReminders, &reminders)
	return reminders
}

func (store *RecoveryStore) SetReminders(reminders []models.Reminder) {
	store.write(keyReminders, reminders)
}

func (store *RecoveryStore) UpdateReminder(id string, patch models.ReminderPatch) {
	reminders := store.Reminders()
	for index := range reminders {
		if reminders[index].ID == id {
			patch.ApplyTo(&reminders[index])
			store.write(keyReminders, reminders)
			return
		}
	}
}

// Baby profile

func (store *RecoveryStore) BabyProfile() (models.BabyProfile, bool) {
	profile := models.BabyProfile{}
	if !store.read(keyBabyProfile, &profile) {
		return models.BabyProfile{}, false
	}
	return profile, true
}

func (store *RecoveryStore) SetBabyProfile(profile models.BabyProfile) {
	store.write(keyBabyProfile, profile)
}

// Memory notes

func (store *RecoveryStore) MemoryNotes() []models.MemoryNote {
	notes := make([]models.MemoryNote, 0)
	store.read(keyMemoryNotes, &notes)
	return notes
}

func (store *RecoveryStore) AddMemoryNote(note models.MemoryNote) {
	notes := append([]models.MemoryNote{note}, store.MemoryNotes()...)
	store.write(keyMemoryNotes, notes)
}

func (store *RecoveryStore) UpdateMemoryNote(id string, patch models.MemoryNotePatch) {
	notes := store.MemoryNotes()
	for index := range notes {
		if notes[index].ID == id {
			patch.ApplyTo(&notes[index])
			store.write(keyMemoryNotes, notes)
			return
		}
	}
}

func (store *RecoveryStore) DeleteMemoryNote(id string) {
	notes := store.MemoryNotes()
	remaining := make([]models.MemoryNote, 0, len(notes))
	for _, note := range notes {
		if note.ID != id {
			remaining = append(remaining, note)
		}
	}
	store.write(keyMemoryNotes, remaining)
}

// Clear removes every known storage key. Irreversible.
func (store *RecoveryStore) Clear() {
	for _, entry := range exportEntries {
		if err := deleteRecordValue(store.database, entry.StorageKey); err != nil {
			store.log.Warn("store clear failed", zap.String("key", entry.StorageKey), zap.Error(err))
		}
	}
}

// Export renders every stored value into one pretty-printed JSON
// object keyed by logical names. Absent or unreadable values appear
// as null.
func (store *RecoveryStore) Export() ([]byte, error) {
	payload := make(map[string]json.RawMessage, len(exportEntries))
	for _, entry := range exportEntries {
		value, found, err := readRecordValue(store.database, entry.StorageKey)
		if err != nil {
			store.log.Warn("store read failed", zap.String("key", entry.StorageKey), zap.Error(err))
		}
		if err != nil || !found || !json.Valid([]byte(value)) {
			payload[entry.LogicalName] = json.RawMessage("null")
			continue
		}
		payload[entry.LogicalName] = json.RawMessage(value)
	}
	return json.MarshalIndent(payload, "", "  ")
}
