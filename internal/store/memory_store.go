package store

import "sync"

// MemoryStore 会话级键值存储（对应浏览器 sessionStorage，进程退出即清空）
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore 创建会话存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get 读取键值；不存在返回 false
func (s *MemoryStore) Get(key string) (string, bool) {
	if s == nil || key == "" {
		return "", false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok
}

// Set 写入键值
func (s *MemoryStore) Set(key, value string) error {
	if s == nil || key == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Delete 删除键
func (s *MemoryStore) Delete(key string) error {
	if s == nil || key == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
