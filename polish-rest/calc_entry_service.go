package main

import (
	"errors"
	"os"
	"time"

	"gorm.io/gorm"

	"polish-calc-go/model"
)

func SaveCalcEntry(entry *model.CalcEntry, expired_duration time.Duration) error {
	now := time.Now().Unix()
	entry.CreatedAt = now
	entry.LastAccess = now
	entry.ExpiredDuration = int64(expired_duration / time.Second)
	return DB.Create(entry).Error
}

// / FindCalcEntry returns the newest live entry for key, or os.ErrNotExist.
func FindCalcEntry(key string) (*model.CalcEntry, error) {
	var entry model.CalcEntry
	err := DB.Model(&model.CalcEntry{}).Where("`key` = ?", key).
		Order("id desc").First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, os.ErrNotExist
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func UpdateEntryAccess(id int64) error {
	return DB.Model(&model.CalcEntry{}).Where("`id` = ?", id).
		Updates(map[string]interface{}{
			"last_access": time.Now().Unix(),
			"hits":        gorm.Expr("`hits` + 1"),
		}).Error
}

func FindExpiredEntriesWithLimit(limit int) ([]*model.CalcEntry, error) {
	var expired []*model.CalcEntry
	now := time.Now().Unix()
	if err := DB.Model(&model.CalcEntry{}).Where("`last_access` + `expired_duration` < ?", now).
		Limit(limit).Find(&expired).Error; err != nil {
		return nil, err
	}
	return expired, nil
}

// / DeleteEntries soft-deletes the given ids.
func DeleteEntries(ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return DB.Delete(&model.CalcEntry{}, ids).Error
}
