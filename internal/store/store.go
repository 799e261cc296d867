package store

import (
	"encoding/json"
	"strings"
)

// KV 键值存储接口：持久存储与会话存储共用同一契约。
// 读取不到或数据损坏一律按"不存在"处理，写入为 last-write-wins。
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// GetJSON 读取并解析 JSON 值；键不存在或 JSON 损坏返回 false
func GetJSON(kv KV, key string, dest interface{}) bool {
	raw, ok := kv.Get(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false
	}
	return true
}

// SetJSON 序列化并写入 JSON 值
func SetJSON(kv KV, key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return kv.Set(key, string(payload))
}
