package services

import (
	"testing"
	"time"

	"github.com/solenne/rebloom/internal/models"
)

// fakeStore mirrors the persistence semantics in memory: upsert by
// date, prepend collections, silent no-op patches.
type fakeStore struct {
	profile      *models.UserProfile
	dailyEntries []models.DailyEntry
	journal      []models.JournalEntry
	reminders    []models.Reminder
	baby         *models.BabyProfile
	notes        []models.MemoryNote
}

func (store *fakeStore) UserProfile() (models.UserProfile, bool) {
	if store.profile == nil {
		return models.UserProfile{}, false
	}
	return *store.profile, true
}

func (store *fakeStore) SetUserProfile(profile models.UserProfile) {
	store.profile = &profile
}

func (store *fakeStore) DailyEntries() []models.DailyEntry {
	return append([]models.DailyEntry{}, store.dailyEntries...)
}

func (store *fakeStore) AddDailyEntry(entry models.DailyEntry) {
	for index := range store.dailyEntries {
		if store.dailyEntries[index].Date == entry.Date {
			store.dailyEntries[index] = entry
			return
		}
	}
	store.dailyEntries = append(store.dailyEntries, entry)
}

func (store *fakeStore) JournalEntries() []models.JournalEntry {
	return append([]models.JournalEntry{}, store.journal...)
}

func (store *fakeStore) AddJournalEntry(entry models.JournalEntry) {
	store.journal = append([]models.JournalEntry{entry}, store.journal...)
}

func (store *fakeStore) UpdateJournalEntry(id string, patch models.JournalEntryPatch) {
	for index := range store.journal {
		if store.journal[index].ID == id {
			patch.ApplyTo(&store.journal[index])
			return
		}
	}
}

func (store *fakeStore) DeleteJournalEntry(id string) {
	remaining := make([]models.JournalEntry, 0, len(store.journal))
	for _, entry := range store.journal {
		if entry.ID != id {
			remaining = append(remaining, entry)
		}
	}
	store.journal = remaining
}

func (store *fakeStore) Reminders() []models.Reminder {
	return append([]models.Reminder{}, store.reminders...)
}

func (store *fakeStore) SetReminders(reminders []models.Reminder) {
	store.reminders = append([]models.Reminder{}, reminders...)
}

func (store *fakeStore) UpdateReminder(id string, patch models.ReminderPatch) {
	for index := range store.reminders {
		if store.reminders[index].ID == id {
			patch.ApplyTo(&store.reminders[index])
			return
		}
	}
}

func (store *fakeStore) BabyProfile() (models.BabyProfile, bool) {
	if store.baby == nil {
		return models.BabyProfile{}, false
	}
	return *store.baby, true
}

func (store *fakeStore) SetBabyProfile(profile models.BabyProfile) {
	store.baby = &profile
}

func (store *fakeStore) MemoryNotes() []models.MemoryNote {
	return append([]models.MemoryNote{}, store.notes...)
}

func (store *fakeStore) AddMemoryNote(note models.MemoryNote) {
	store.notes = append([]models.MemoryNote{note}, store.notes...)
}

func (store *fakeStore) UpdateMemoryNote(id string, patch models.MemoryNotePatch) {
	for index := range store.notes {
		if store.notes[index].ID == id {
			patch.ApplyTo(&store.notes[index])
			return
		}
	}
}

func (store *fakeStore) DeleteMemoryNote(id string) {
	remaining := make([]models.MemoryNote, 0, len(store.notes))
	for _, note := range store.notes {
		if note.ID != id {
			remaining = append(remaining, note)
		}
	}
	store.notes = remaining
}

func (store *fakeStore) Clear() {
	store.profile = nil
	store.dailyEntries = nil
	store.journal = nil
	store.reminders = nil
	store.baby = nil
	store.notes = nil
}

func (store *fakeStore) Export() ([]byte, error) {
	return []byte("{}"), nil
}

type recordingScheduler struct {
	scheduled []models.Reminder
}

func (scheduler *recordingScheduler) Schedule(reminder models.Reminder) {
	scheduler.scheduled = append(scheduler.scheduled, reminder)
}

func newServiceForTest(store *fakeStore) (*RecoveryService, *recordingScheduler) {
	scheduler := &recordingScheduler{}
	service := NewRecoveryService(store, scheduler, time.UTC, nil)
	service.Load()
	return service, scheduler
}

func TestLoadMirrorsStoreState(t *testing.T) {
	store := &fakeStore{
		profile: &models.UserProfile{ID: "p", Name: "Asha", DeliveryDate: "2025-02-20"},
		dailyEntries: []models.DailyEntry{
			{ID: "d1", Date: "2025-03-10"},
		},
		notes: []models.MemoryNote{
			{ID: "n1", Content: "x", Priority: models.PriorityHigh},
		},
	}
	service, _ := newServiceForTest(store)

	if _, ok := service.Profile(); !ok {
		t.Fatal("expected loaded profile")
	}
	if entries := service.DailyEntries(); len(entries) != 1 {
		t.Fatalf("expected one mirrored entry, got %d", len(entries))
	}
	if notes := service.MemoryNotes(); len(notes) != 1 {
		t.Fatalf("expected one mirrored note, got %d", len(notes))
	}
}

func TestLoadReplacesRatherThanMerges(t *testing.T) {
	store := &fakeStore{
		notes: []models.MemoryNote{{ID: "n1", Content: "x", Priority: models.PriorityLow}},
	}
	service, _ := newServiceForTest(store)

	store.notes = nil
	service.Load()

	if notes := service.MemoryNotes(); len(notes) != 0 {
		t.Fatalf("expected reload to drop stale mirror state, got %d notes", len(notes))
	}
}

func TestMutationRefreshesMirrorFromStore(t *testing.T) {
	store := &fakeStore{}
	service, _ := newServiceForTest(store)

	service.AddJournalEntry(models.JournalEntry{Date: "2025-03-10", Type: models.JournalText, Content: "first"})
	service.AddJournalEntry(models.JournalEntry{Date: "2025-03-11", Type: models.JournalText, Content: "second"})

	entries := service.JournalEntries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 mirrored journal entries, got %d", len(entries))
	}
	if entries[0].Content != "second" {
		t.Fatalf("expected newest-first mirror, got %q first", entries[0].Content)
	}
	if entries[0].ID == "" || entries[0].CreatedAt == "" {
		t.Fatal("expected generated id and createdAt on insert")
	}
}

func TestUpdateUserProfileWithoutLoadedProfileIsNoOp(t *testing.T) {
	store := &fakeStore{}
	service, _ := newServiceForTest(store)

	name := "Asha"
	service.UpdateUserProfile(models.UserProfilePatch{Name: &name})

	if store.profile != nil {
		t.Fatal("expected patch without a loaded profile to write nothing")
	}
	if _, ok := service.Profile(); ok {
		t.Fatal("expected mirror to stay empty")
	}
}

func TestUpdateUserProfileMergesPatch(t *testing.T) {
	store := &fakeStore{
		profile: &models.UserProfile{ID: "p", Name: "Asha", DeliveryDate: "2025-02-20", Language: models.LanguageEnglish},
	}
	service, _ := newServiceForTest(store)

	language := models.LanguageHindi
	service.UpdateUserProfile(models.UserProfilePatch{Language: &language})

	profile, ok := service.Profile()
	if !ok {
		t.Fatal("expected profile after patch")
	}
	if profile.Language != models.LanguageHindi {
		t.Fatalf("expected patched language, got %q", profile.Language)
	}
	if profile.Name != "Asha" {
		t.Fatalf("expected untouched name, got %q", profile.Name)
	}
}

func TestDaysSinceDelivery(t *testing.T) {
	now := time.Date(2025, 3, 12, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		profile *models.UserProfile
		want    int
	}{
		{name: "no profile", profile: nil, want: 0},
		{
			name:    "ten days ago",
			profile: &models.UserProfile{ID: "p", DeliveryDate: "2025-03-02"},
			want:    10,
		},
		{
			name:    "same day",
			profile: &models.UserProfile{ID: "p", DeliveryDate: "2025-03-12"},
			want:    0,
		},
		{
			name:    "future date clamps to zero",
			profile: &models.UserProfile{ID: "p", DeliveryDate: "2025-03-20"},
			want:    0,
		},
		{
			name:    "unparseable date",
			profile: &models.UserProfile{ID: "p", DeliveryDate: "soon"},
			want:    0,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store := &fakeStore{profile: testCase.profile}
			service, _ := newServiceForTest(store)
			if got := service.DaysSinceDelivery(now); got != testCase.want {
				t.Fatalf("DaysSinceDelivery = %d, want %d", got, testCase.want)
			}
		})
	}
}

func TestDaysSinceDeliveryAcrossDSTTransition(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	store := &fakeStore{
		profile: &models.UserProfile{ID: "p", DeliveryDate: "2025-03-05"},
	}
	service := NewRecoveryService(store, &recordingScheduler{}, newYork, nil)
	service.Load()

	// Mar 9 springs forward, so only 239 hours elapse across these
	// ten calendar days.
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, newYork)
	if got := service.DaysSinceDelivery(now); got != 10 {
		t.Fatalf("DaysSinceDelivery = %d, want 10", got)
	}
}

func TestTodayEntry(t *testing.T) {
	now := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)
	store := &fakeStore{
		dailyEntries: []models.DailyEntry{
			{ID: "old", Date: "2025-03-11"},
			{ID: "today", Date: "2025-03-12"},
		},
	}
	service, _ := newServiceForTest(store)

	entry, ok := service.TodayEntry(now)
	if !ok || entry.ID != "today" {
		t.Fatalf("expected today's entry, got ok=%v id=%s", ok, entry.ID)
	}

	_, ok = service.TodayEntry(now.AddDate(0, 0, 5))
	if ok {
		t.Fatal("expected no entry for an unlogged day")
	}
}

func TestWeeklyProgressEmpty(t *testing.T) {
	service, _ := newServiceForTest(&fakeStore{})

	progress := service.WeeklyProgress(time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC))
	for name, counter := range map[string]ProgressCounter{
		"dailyLogs": progress.DailyLogs,
		"selfCare":  progress.SelfCare,
		"wellness":  progress.Wellness,
	} {
		if counter.Completed != 0 || counter.Total != 7 {
			t.Fatalf("expected %s 0/7 on empty store, got %d/%d", name, counter.Completed, counter.Total)
		}
	}
}

func TestWeeklyProgressFullWeek(t *testing.T) {
	// 2025-03-12 is a Wednesday; its Sunday-start week covers
	// March 9 through March 15.
	now := time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC)

	store := &fakeStore{}
	for day := 9; day <= 15; day++ {
		store.AddDailyEntry(models.DailyEntry{
			ID:       "d",
			Date:     time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC).Format(models.DateLayout),
			Mood:     models.MoodLog{Mood: models.MoodHappy},
			Pain:     models.PainLog{Level: 3},
			Sleep:    models.SleepLog{Quality: models.SleepGood},
			BabyCare: models.BabyCareLog{Diaper: true, Feeding: true},
		})
	}
	service, _ := newServiceForTest(store)

	progress := service.WeeklyProgress(now)
	if progress.DailyLogs.Completed != 7 || progress.SelfCare.Completed != 7 || progress.Wellness.Completed != 7 {
		t.Fatalf("expected 7/7 across the board, got %+v", progress)
	}
}

func TestActiveRemindersPreserveOrder(t *testing.T) {
	store := &fakeStore{
		reminders: []models.Reminder{
			{ID: "r1", Enabled: true},
			{ID: "r2", Enabled: false},
			{ID: "r3", Enabled: true},
		},
	}
	service, _ := newServiceForTest(store)

	active := service.ActiveReminders()
	if len(active) != 2 || active[0].ID != "r1" || active[1].ID != "r3" {
		t.Fatalf("expected enabled reminders in stored order, got %+v", active)
	}
}

func TestUrgentNotesFilter(t *testing.T) {
	store := &fakeStore{
		notes: []models.MemoryNote{
			{ID: "n1", Priority: models.PriorityHigh, Completed: false},
			{ID: "n2", Priority: models.PriorityHigh, Completed: true},
			{ID: "n3", Priority: models.PriorityLow, Completed: false},
			{ID: "n4", Priority: models.PriorityHigh, Completed: false},
		},
	}
	service, _ := newServiceForTest(store)

	urgent := service.UrgentNotes()
	if len(urgent) != 2 || urgent[0].ID != "n1" || urgent[1].ID != "n4" {
		t.Fatalf("expected open high-priority notes in stored order, got %+v", urgent)
	}
}

func TestReminderMutationsEmitSchedulingSignal(t *testing.T) {
	store := &fakeStore{}
	service, scheduler := newServiceForTest(store)

	created := service.AddReminder(models.Reminder{
		Type: models.ReminderCustom, Title: "Vitamins", Frequency: "daily", Enabled: true,
	})
	if len(scheduler.scheduled) != 1 || scheduler.scheduled[0].ID != created.ID {
		t.Fatalf("expected scheduling signal on create, got %+v", scheduler.scheduled)
	}

	enabled := false
	service.UpdateReminder(created.ID, models.ReminderPatch{Enabled: &enabled})
	if len(scheduler.scheduled) != 2 {
		t.Fatalf("expected scheduling signal on update, got %d signals", len(scheduler.scheduled))
	}
	if scheduler.scheduled[1].Enabled {
		t.Fatal("expected the updated descriptor in the signal")
	}

	service.UpdateReminder("missing", models.ReminderPatch{Enabled: &enabled})
	if len(scheduler.scheduled) != 2 {
		t.Fatal("expected no signal when the target id does not exist")
	}
}

func TestSeedDefaultRemindersOnlyOnEmptyList(t *testing.T) {
	store := &fakeStore{}
	service, scheduler := newServiceForTest(store)

	seeded := service.SeedDefaultReminders()
	if len(seeded) != 4 {
		t.Fatalf("expected 4 built-in reminders, got %d", len(seeded))
	}
	if len(scheduler.scheduled) != 4 {
		t.Fatalf("expected a scheduling signal per seeded reminder, got %d", len(scheduler.scheduled))
	}

	again := service.SeedDefaultReminders()
	if len(again) != 4 {
		t.Fatalf("expected existing list back on repeat seed, got %d", len(again))
	}
	if len(scheduler.scheduled) != 4 {
		t.Fatal("expected no extra signals on repeat seed")
	}
}

func TestBabySubLogAppendsRequireProfile(t *testing.T) {
	store := &fakeStore{}
	service, _ := newServiceForTest(store)

	if service.AddFeedingLog(models.FeedingLog{Time: "2025-03-12T08:00:00Z", Type: models.FeedingBreast}) {
		t.Fatal("expected feeding log append to fail without a baby profile")
	}

	service.SetBabyProfile(models.BabyProfile{Name: "Meera", BirthDate: "2025-02-20"})
	if !service.AddFeedingLog(models.FeedingLog{Time: "2025-03-12T08:00:00Z", Type: models.FeedingBreast}) {
		t.Fatal("expected feeding log append to succeed")
	}
	if !service.AddDiaperLog(models.DiaperLog{Time: "2025-03-12T09:00:00Z", Type: models.DiaperWet}) {
		t.Fatal("expected diaper log append to succeed")
	}
	if !service.AddTemperatureLog(models.TemperatureLog{Time: "2025-03-12T10:00:00Z", Temperature: 36.8}) {
		t.Fatal("expected temperature log append to succeed")
	}

	baby, ok := service.Baby()
	if !ok {
		t.Fatal("expected baby profile")
	}
	if len(baby.FeedingLogs) != 1 || len(baby.DiaperLogs) != 1 || len(baby.TemperatureLogs) != 1 {
		t.Fatalf("expected one log of each kind, got %d/%d/%d",
			len(baby.FeedingLogs), len(baby.DiaperLogs), len(baby.TemperatureLogs))
	}
	if baby.FeedingLogs[0].ID == "" {
		t.Fatal("expected generated id on appended sub-log")
	}
}

func TestUpdateBabyProfileWithoutLoadedProfileIsNoOp(t *testing.T) {
	store := &fakeStore{}
	service, _ := newServiceForTest(store)

	name := "Meera"
	service.UpdateBabyProfile(models.BabyProfilePatch{Name: &name})

	if store.baby != nil {
		t.Fatal("expected patch without a loaded baby profile to write nothing")
	}
}

func TestSubscribersNotifiedOnMutation(t *testing.T) {
	store := &fakeStore{}
	service, _ := newServiceForTest(store)

	notified := 0
	unsubscribe := service.Subscribe(func() { notified++ })

	service.AddMemoryNote(models.MemoryNote{Content: "x", Type: models.NoteGeneral, Priority: models.PriorityLow})
	if notified != 1 {
		t.Fatalf("expected one notification after mutation, got %d", notified)
	}

	unsubscribe()
	service.AddMemoryNote(models.MemoryNote{Content: "y", Type: models.NoteGeneral, Priority: models.PriorityLow})
	if notified != 1 {
		t.Fatalf("expected no notification after unsubscribe, got %d", notified)
	}
}

func TestClearAllResetsMirror(t *testing.T) {
	store := &fakeStore{
		profile: &models.UserProfile{ID: "p", Name: "Asha"},
		notes:   []models.MemoryNote{{ID: "n", Content: "x"}},
	}
	service, _ := newServiceForTest(store)

	service.ClearAll()

	if _, ok := service.Profile(); ok {
		t.Fatal("expected empty mirror after clear")
	}
	if notes := service.MemoryNotes(); len(notes) != 0 {
		t.Fatalf("expected no notes after clear, got %d", len(notes))
	}
}
