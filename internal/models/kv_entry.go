package models

import "time"

// KVEntry 本地键值存储行（对应浏览器持久存储的落地形态）
type KVEntry struct {
	Key       string    `gorm:"primarykey;type:varchar(191)" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`
}

// TableName 指定表名
func (KVEntry) TableName() string {
	return "kv_entries"
}
