package models

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/glebarez/sqlite" // 纯 Go SQLite 驱动（基于 modernc.org/sqlite）
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB 初始化本地存储数据库
func InitDB(path string) error {
	dsn := strings.TrimSpace(path)
	if dsn == "" {
		dsn = "./db/storefront.db"
	}
	if dir := filepath.Dir(dsn); dir != "" && dir != "." && !strings.HasPrefix(dsn, "file:") && dsn != ":memory:" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return err
	}
	DB = db
	return nil
}

// AutoMigrate 自动迁移本地存储表
func AutoMigrate() error {
	return DB.AutoMigrate(
		&KVEntry{},
	)
}
