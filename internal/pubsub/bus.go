package pubsub

import (
	"sync"
)

// Handler 事件回调
type Handler func(topic string, payload []byte)

// Bus 进程内发布订阅总线。
// 对应源端"同页自定义事件"：写入方广播整表替换事件，同进程内
// 所有订阅者收到后以事件内容整体替换本地视图。
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[string]map[int]Handler
	relay  *RedisRelay
}

// NewBus 创建总线
func NewBus() *Bus {
	return &Bus{subs: make(map[string]map[int]Handler)}
}

// AttachRelay 挂接跨进程中继（可选）
func (b *Bus) AttachRelay(relay *RedisRelay) {
	if b == nil {
		return
	}
	b.mu.Lock()
	b.relay = relay
	b.mu.Unlock()
	if relay != nil {
		relay.bindLocal(b.dispatchLocal)
	}
}

// Subscribe 订阅主题，返回退订函数
func (b *Bus) Subscribe(topic string, handler Handler) func() {
	if b == nil || topic == "" || handler == nil {
		return func() {}
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.subs[topic] == nil {
		b.subs[topic] = make(map[int]Handler)
	}
	id := b.nextID
	b.nextID++
	b.subs[topic][id] = handler
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[topic], id)
	}
}

// Publish 发布事件：先本进程分发，再经中继广播给其他进程
func (b *Bus) Publish(topic string, payload []byte) {
	if b == nil || topic == "" {
		return
	}
	b.dispatchLocal(topic, payload)
	b.mu.RLock()
	relay := b.relay
	b.mu.RUnlock()
	if relay != nil {
		relay.Publish(topic, payload)
	}
}

// dispatchLocal 在本进程内按发布顺序同步分发。
// 订阅方以事件内容整表替换本地视图，乱序送达会让旧快照覆盖新写入，
// 因此回调在发布方的调用栈里依次执行（回调中允许再次发布）。
func (b *Bus) dispatchLocal(topic string, payload []byte) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs[topic]))
	for _, handler := range b.subs[topic] {
		handlers = append(handlers, handler)
	}
	b.mu.RUnlock()
	for _, handler := range handlers {
		handler(topic, payload)
	}
}
