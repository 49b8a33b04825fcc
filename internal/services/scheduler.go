package services

import (
	"github.com/solenne/rebloom/internal/models"
	"go.uber.org/zap"
)

// ReminderScheduler is the push/offline collaborator. The core emits a
// scheduling signal whenever a reminder is created or updated;
// delivery of the actual notification happens outside this process.
type ReminderScheduler interface {
	Schedule(reminder models.Reminder)
}

// LogScheduler records scheduling signals in the log. It stands in
// when no push collaborator is attached.
type LogScheduler struct {
	log *zap.Logger
}

func NewLogScheduler(log *zap.Logger) *LogScheduler {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogScheduler{log: log}
}

func (scheduler *LogScheduler) Schedule(reminder models.Reminder) {
	scheduler.log.Info("reminder scheduling signal",
		zap.String("id", reminder.ID),
		zap.String("type", reminder.Type),
		zap.String("title", reminder.Title),
		zap.String("frequency", reminder.Frequency),
		zap.Bool("enabled", reminder.Enabled),
	)
}
