package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/solenne/rebloom/internal/models"
	"go.uber.org/zap"
)

// Store is the persistence surface the service consumes. Every read
// reflects the current stored state; failed writes inside the store
// are absorbed there, so a re-read after a write always yields the
// authoritative value.
type Store interface {
	UserProfile() (models.UserProfile, bool)
	SetUserProfile(profile models.UserProfile)
	DailyEntries() []models.DailyEntry
	AddDailyEntry(entry models.DailyEntry)
	JournalEntries() []models.JournalEntry
	AddJournalEntry(entry models.JournalEntry)
	UpdateJournalEntry(id string, patch models.JournalEntryPatch)
	DeleteJournalEntry(id string)
	Reminders() []models.Reminder
	SetReminders(reminders []models.Reminder)
	UpdateReminder(id string, patch models.ReminderPatch)
	BabyProfile() (models.BabyProfile, bool)
	SetBabyProfile(profile models.BabyProfile)
	MemoryNotes() []models.MemoryNote
	AddMemoryNote(note models.MemoryNote)
	UpdateMemoryNote(id string, patch models.MemoryNotePatch)
	DeleteMemoryNote(id string)
	Clear()
	Export() ([]byte, error)
}

// RecoveryService mirrors the store in process and keeps the mirror
// consistent by re-reading the affected slice after every
// write-through. Consumers read the mirror only through the exposed
// accessors; nothing hands out a reference into it.
//
// The mutex protects the mirror against concurrent HTTP handlers in
// this process. A second process (or a second service instance) on
// the same database can still interleave read-modify-write cycles;
// that single-writer limitation is accepted, matching the original.
type RecoveryService struct {
	store     Store
	scheduler ReminderScheduler
	location  *time.Location
	log       *zap.Logger

	mu           sync.RWMutex
	profile      *models.UserProfile
	dailyEntries []models.DailyEntry
	journal      []models.JournalEntry
	reminders    []models.Reminder
	baby         *models.BabyProfile
	notes        []models.MemoryNote

	subscriberMu   sync.Mutex
	subscribers    map[int]func()
	nextSubscriber int
}

func NewRecoveryService(store Store, scheduler ReminderScheduler, location *time.Location, log *zap.Logger) *RecoveryService {
	if location == nil {
		location = time.Local
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &RecoveryService{
		store:       store,
		scheduler:   scheduler,
		location:    location,
		log:         log,
		subscribers: make(map[int]func()),
	}
}

// Load replaces the whole mirror with the store's current state.
// Calling it again reloads; it never merges.
func (service *RecoveryService) Load() {
	service.mu.Lock()
	defer service.mu.Unlock()

	service.profile = nil
	if profile, ok := service.store.UserProfile(); ok {
		service.profile = &profile
	}
	service.dailyEntries = service.store.DailyEntries()
	service.journal = service.store.JournalEntries()
	service.reminders = service.store.Reminders()
	service.baby = nil
	if baby, ok := service.store.BabyProfile(); ok {
		service.baby = &baby
	}
	service.notes = service.store.MemoryNotes()
}

// Subscribe registers a change listener fired after every completed
// mutation. The returned func removes the listener.
func (service *RecoveryService) Subscribe(listener func()) func() {
	service.subscriberMu.Lock()
	defer service.subscriberMu.Unlock()

	id := service.nextSubscriber
	service.nextSubscriber++
	service.subscribers[id] = listener
	return func() {
		service.subscriberMu.Lock()
		defer service.subscriberMu.Unlock()
		delete(service.subscribers, id)
	}
}

func (service *RecoveryService) notifySubscribers() {
	service.subscriberMu.Lock()
	listeners := make([]func(), 0, len(service.subscribers))
	for _, listener := range service.subscribers {
		listeners = append(listeners, listener)
	}
	service.subscriberMu.Unlock()

	for _, listener := range listeners {
		listener()
	}
}

// User profile

func (service *RecoveryService) Profile() (models.UserProfile, bool) {
	service.mu.RLock()
	defer service.mu.RUnlock()
	if service.profile == nil {
		return models.UserProfile{}, false
	}
	return *service.profile, true
}

func (service *RecoveryService) SetUserProfile(profile models.UserProfile) models.UserProfile {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	service.mu.Lock()
	service.store.SetUserProfile(profile)
	service.reloadProfileLocked()
	service.mu.Unlock()

	service.notifySubscribers()
	return profile
}

// UpdateUserProfile merges the patch onto the loaded profile. Without
// a loaded profile it is a no-op; a patch must never fabricate a
// record.
func (service *RecoveryService) UpdateUserProfile(patch models.UserProfilePatch) {
	service.mu.Lock()
	if service.profile == nil {
		service.mu.Unlock()
		return
	}
	merged := *service.profile
	patch.ApplyTo(&merged)
	service.store.SetUserProfile(merged)
	service.reloadProfileLocked()
	service.mu.Unlock()

	service.notifySubscribers()
}

func (service *RecoveryService) reloadProfileLocked() {
	service.profile = nil
	if profile, ok := service.store.UserProfile(); ok {
		service.profile = &profile
	}
}

// DaysSinceDelivery counts whole calendar days from the delivery date
// to now, never negative. Missing profile or unparseable date yields
// zero.
func (service *RecoveryService) DaysSinceDelivery(now time.Time) int {
	profile, ok := service.Profile()
	if !ok || profile.DeliveryDate == "" {
		return 0
	}
	delivered, ok := parseRecordDate(profile.DeliveryDate, service.location)
	if !ok {
		return 0
	}
	days := wholeDaysBetween(delivered, dateAtLocation(now, service.location))
	if days < 0 {
		return 0
	}
	return days
}

// Daily entries

func (service *RecoveryService) DailyEntries() []models.DailyEntry {
	service.mu.RLock()
	defer service.mu.RUnlock()
	entries := make([]models.DailyEntry, len(service.dailyEntries))
	copy(entries, service.dailyEntries)
	return entries
}

func (service *RecoveryService) AddOrUpdateDailyEntry(entry models.DailyEntry) models.DailyEntry {
	entry = stampDailyEntry(entry, time.Now().In(service.location))

	service.mu.Lock()
	service.store.AddDailyEntry(entry)
	service.dailyEntries = service.store.DailyEntries()
	service.mu.Unlock()

	service.notifySubscribers()
	return entry
}

func (service *RecoveryService) TodayEntry(now time.Time) (models.DailyEntry, bool) {
	today := dateAtLocation(now, service.location).Format(models.DateLayout)
	service.mu.RLock()
	defer service.mu.RUnlock()
	for _, entry := range service.dailyEntries {
		if entry.Date == today {
			return entry, true
		}
	}
	return models.DailyEntry{}, false
}

func (service *RecoveryService) WeeklyProgress(now time.Time) WeeklyProgress {
	service.mu.RLock()
	entries := make([]models.DailyEntry, len(service.dailyEntries))
	copy(entries, service.dailyEntries)
	service.mu.RUnlock()

	return buildWeeklyProgress(entries, now, service.location)
}

// Journal

func (service *RecoveryService) JournalEntries() []models.JournalEntry {
	service.mu.RLock()
	defer service.mu.RUnlock()
	entries := make([]models.JournalEntry, len(service.journal))
	copy(entries, service.journal)
	return entries
}

func (service *RecoveryService) AddJournalEntry(entry models.JournalEntry) models.JournalEntry {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt == "" {
		entry.CreatedAt = time.Now().In(service.location).Format(time.RFC3339)
	}

	service.mu.Lock()
	service.store.AddJournalEntry(entry)
	service.journal = service.store.JournalEntries()
	service.mu.Unlock()

	service.notifySubscribers()
	return entry
}

func (service *RecoveryService) UpdateJournalEntry(id string, patch models.JournalEntryPatch) {
	service.mu.Lock()
	service.store.UpdateJournalEntry(id, patch)
	service.journal = service.store.JournalEntries()
	service.mu.Unlock()

	service.notifySubscribers()
}

func (service *RecoveryService) DeleteJournalEntry(id string) {
	service.mu.Lock()
	service.store.DeleteJournalEntry(id)
	service.journal = service.store.JournalEntries()
	service.mu.Unlock()

	service.notifySubscribers()
}

// Reminders

func (service *RecoveryService) Reminders() []models.Reminder {
	service.mu.RLock()
	defer service.mu.RUnlock()
	reminders := make([]models.Reminder, len(service.reminders))
	copy(reminders, service.reminders)
	return reminders
}

func (service *RecoveryService) ActiveReminders() []models.Reminder {
	service.mu.RLock()
	defer service.mu.RUnlock()
	active := make([]models.Reminder, 0, len(service.reminders))
	for _, reminder := range service.reminders {
		if reminder.Enabled {
			active = append(active, reminder)
		}
	}
	return active
}

// SeedDefaultReminders installs the built-in catalog when no reminders
// exist yet, emitting a scheduling signal for each.
func (service *RecoveryService) SeedDefaultReminders() []models.Reminder {
	service.mu.Lock()
	if len(service.reminders) > 0 {
		reminders := make([]models.Reminder, len(service.reminders))
		copy(reminders, service.reminders)
		service.mu.Unlock()
		return reminders
	}
	seeded := DefaultReminders()
	service.store.SetReminders(seeded)
	service.reminders = service.store.Reminders()
	service.mu.Unlock()

	for _, reminder := range seeded {
		service.scheduleReminder(reminder)
	}
	service.notifySubscribers()
	return seeded
}

func (service *RecoveryService) AddReminder(reminder models.Reminder) models.Reminder {
	if reminder.ID == "" {
		reminder.ID = uuid.NewString()
	}

	service.mu.Lock()
	reminders := append(service.store.Reminders(), reminder)
	service.store.SetReminders(reminders)
	service.reminders = service.store.Reminders()
	service.mu.Unlock()

	service.scheduleReminder(reminder)
	service.notifySubscribers()
	return reminder
}

func (service *RecoveryService) UpdateReminder(id string, patch models.ReminderPatch) {
	service.mu.Lock()
	service.store.UpdateReminder(id, patch)
	service.reminders = service.store.Reminders()
	var updated *models.Reminder
	for index := range service.reminders {
		if service.reminders[index].ID == id {
			reminder := service.reminders[index]
			updated = &reminder
			break
		}
	}
	service.mu.Unlock()

	if updated != nil {
		service.scheduleReminder(*updated)
	}
	service.notifySubscribers()
}

func (service *RecoveryService) scheduleReminder(reminder models.Reminder) {
	if service.scheduler == nil {
		return
	}
	service.scheduler.Schedule(reminder)
}

// Baby profile

func (service *RecoveryService) Baby() (models.BabyProfile, bool) {
	service.mu.RLock()
	defer service.mu.RUnlock()
	if service.baby == nil {
		return models.BabyProfile{}, false
	}
	return *service.baby, true
}

func (service *RecoveryService) SetBabyProfile(profile models.BabyProfile) models.BabyProfile {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	if profile.FeedingLogs == nil {
		profile.FeedingLogs = []models.FeedingLog{}
	}
	if profile.DiaperLogs == nil {
		profile.DiaperLogs = []models.DiaperLog{}
	}
	if profile.TemperatureLogs == nil {
		profile.TemperatureLogs = []models.TemperatureLog{}
	}

	service.mu.Lock()
	service.store.SetBabyProfile(profile)
	service.reloadBabyLocked()
	service.mu.Unlock()

	service.notifySubscribers()
	return profile
}

func (service *RecoveryService) UpdateBabyProfile(patch models.BabyProfilePatch) {
	service.mu.Lock()
	if service.baby == nil {
		service.mu.Unlock()
		return
	}
	merged := *service.baby
	patch.ApplyTo(&merged)
	service.store.SetBabyProfile(merged)
	service.reloadBabyLocked()
	service.mu.Unlock()

	service.notifySubscribers()
}

func (service *RecoveryService) AddFeedingLog(log models.FeedingLog) bool {
	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	return service.mutateBaby(func(baby *models.BabyProfile) {
		baby.FeedingLogs = append(baby.FeedingLogs, log)
	})
}

func (service *RecoveryService) AddDiaperLog(log models.DiaperLog) bool {
	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	return service.mutateBaby(func(baby *models.BabyProfile) {
		baby.DiaperLogs = append(baby.DiaperLogs, log)
	})
}

func (service *RecoveryService) AddTemperatureLog(log models.TemperatureLog) bool {
	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	return service.mutateBaby(func(baby *models.BabyProfile) {
		baby.TemperatureLogs = append(baby.TemperatureLogs, log)
	})
}

func (service *RecoveryService) mutateBaby(mutate func(baby *models.BabyProfile)) bool {
	service.mu.Lock()
	if service.baby == nil {
		service.mu.Unlock()
		return false
	}
	merged := *service.baby
	mutate(&merged)
	service.store.SetBabyProfile(merged)
	service.reloadBabyLocked()
	service.mu.Unlock()

	service.notifySubscribers()
	return true
}

func (service *RecoveryService) reloadBabyLocked() {
	service.baby = nil
	if baby, ok := service.store.BabyProfile(); ok {
		service.baby = &baby
	}
}

// Memory notes

func (service *RecoveryService) MemoryNotes() []models.MemoryNote {
	service.mu.RLock()
	defer service.mu.RUnlock()
	notes := make([]models.MemoryNote, len(service.notes))
	copy(notes, service.notes)
	return notes
}

func (service *RecoveryService) AddMemoryNote(note models.MemoryNote) models.MemoryNote {
	if note.ID == "" {
		note.ID = uuid.NewString()
	}
	if note.CreatedAt == "" {
		note.CreatedAt = time.Now().In(service.location).Format(time.RFC3339)
	}

	service.mu.Lock()
	service.store.AddMemoryNote(note)
	service.notes = service.store.MemoryNotes()
	service.mu.Unlock()

	service.notifySubscribers()
	return note
}

func (service *RecoveryService) UpdateMemoryNote(id string, patch models.MemoryNotePatch) {
	service.mu.Lock()
	service.store.UpdateMemoryNote(id, patch)
	service.notes = service.store.MemoryNotes()
	service.mu.Unlock()

	service.notifySubscribers()
}

func (service *RecoveryService) DeleteMemoryNote(id string) {
	service.mu.Lock()
	service.store.DeleteMemoryNote(id)
	service.notes = service.store.MemoryNotes()
	service.mu.Unlock()

	service.notifySubscribers()
}

// UrgentNotes lists open high-priority notes, newest first.
func (service *RecoveryService) UrgentNotes() []models.MemoryNote {
	service.mu.RLock()
	defer service.mu.RUnlock()
	urgent := make([]models.MemoryNote, 0, len(service.notes))
	for _, note := range service.notes {
		if note.Priority == models.PriorityHigh && !note.Completed {
			urgent = append(urgent, note)
		}
	}
	return urgent
}

// Whole-store operations

func (service *RecoveryService) Export() ([]byte, error) {
	return service.store.Export()
}

// ClearAll wipes the store and reloads the (now empty) mirror.
func (service *RecoveryService) ClearAll() {
	service.store.Clear()
	service.Load()
	service.notifySubscribers()
}

func stampDailyEntry(entry models.DailyEntry, now time.Time) models.DailyEntry {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt == "" {
		entry.CreatedAt = now.Format(time.RFC3339)
	}
	if entry.Date == "" {
		entry.Date = now.Format(models.DateLayout)
	}
	return entry
}
