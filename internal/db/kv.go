package db

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// storedRecord maps one storage key to one whole JSON document. The
// store has no partial-write primitive; every mutation rewrites the
// full value, matching the original localStorage contract.
type storedRecord struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     string    `gorm:"column:value;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (storedRecord) TableName() string { return "records" }

func readRecordValue(database *gorm.DB, key string) (string, bool, error) {
	record := storedRecord{}
	result := database.Where("key = ?", key).Limit(1).Find(&record)
	if result.Error != nil {
		return "", false, result.Error
	}
	if result.RowsAffected == 0 {
		return "", false, nil
	}
	return record.Value, true, nil
}

func writeRecordValue(database *gorm.DB, key string, value string) error {
	record := storedRecord{Key: key, Value: value, UpdatedAt: time.Now()}
	return database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&record).Error
}

func deleteRecordValue(database *gorm.DB, key string) error {
	return database.Where("key = ?", key).Delete(&storedRecord{}).Error
}
