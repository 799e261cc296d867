package store

import (
	"errors"
	"time"

	"github.com/giftkart-next/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore 持久键值存储（对应浏览器 localStorage，重启后仍然可读）
type GormStore struct {
	db *gorm.DB
}

// NewGormStore 创建持久存储
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Get 读取键值；不存在返回 false
func (s *GormStore) Get(key string) (string, bool) {
	if s == nil || s.db == nil || key == "" {
		return "", false
	}
	var entry models.KVEntry
	err := s.db.Where("key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false
	}
	if err != nil {
		return "", false
	}
	return entry.Value, true
}

// Set 写入键值（存在则覆盖）
func (s *GormStore) Set(key, value string) error {
	if s == nil || s.db == nil {
		return errors.New("store not initialized")
	}
	if key == "" {
		return errors.New("empty store key")
	}
	entry := models.KVEntry{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

// Delete 删除键
func (s *GormStore) Delete(key string) error {
	if s == nil || s.db == nil || key == "" {
		return nil
	}
	return s.db.Where("key = ?", key).Delete(&models.KVEntry{}).Error
}
