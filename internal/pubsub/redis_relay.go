package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/giftkart-next/internal/config"
	"github.com/giftkart-next/internal/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// relayEnvelope 中继消息：带 origin 以丢弃自己发出的回声。
// 对应源端 storage 事件"只在其他标签页触发"的语义。
type relayEnvelope struct {
	Origin  string          `json:"origin"`
	Topic   string          `json:"topic"`
	Payload json.RawMessage `json:"payload"`
}

// RedisRelay 跨进程事件中继（Redis Pub/Sub，可禁用）
type RedisRelay struct {
	client  *redis.Client
	channel string
	origin  string

	mu    sync.RWMutex
	local func(topic string, payload []byte)
}

// NewRedisRelay 创建中继；未启用时返回 nil
func NewRedisRelay(cfg *config.RedisConfig) *RedisRelay {
	if cfg == nil || !cfg.Enabled {
		return nil
	}
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = "127.0.0.1"
	}
	port := cfg.Port
	if port <= 0 {
		port = 6379
	}
	prefix := strings.TrimSpace(cfg.Prefix)
	if prefix == "" {
		prefix = "tk"
	}
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &RedisRelay{
		client:  client,
		channel: prefix + ":events",
		origin:  uuid.NewString(),
	}
}

// Publish 广播事件给其他进程
func (r *RedisRelay) Publish(topic string, payload []byte) {
	if r == nil || r.client == nil {
		return
	}
	body, err := json.Marshal(relayEnvelope{
		Origin:  r.origin,
		Topic:   topic,
		Payload: payload,
	})
	if err != nil {
		logger.Warnw("relay_marshal_failed", "topic", topic, "error", err)
		return
	}
	if err := r.client.Publish(context.Background(), r.channel, body).Err(); err != nil {
		logger.Warnw("relay_publish_failed", "topic", topic, "error", err)
	}
}

// Run 订阅远端事件并转发到本进程总线，直到 ctx 结束
func (r *RedisRelay) Run(ctx context.Context) {
	if r == nil || r.client == nil {
		return
	}
	sub := r.client.Subscribe(ctx, r.channel)
	defer func() { _ = sub.Close() }()
	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var envelope relayEnvelope
			if err := json.Unmarshal([]byte(msg.Payload), &envelope); err != nil {
				logger.Debugw("relay_message_invalid", "error", err)
				continue
			}
			if envelope.Origin == r.origin {
				continue
			}
			r.mu.RLock()
			local := r.local
			r.mu.RUnlock()
			if local != nil {
				local(envelope.Topic, envelope.Payload)
			}
		}
	}
}

// Close 关闭中继连接
func (r *RedisRelay) Close() error {
	if r == nil || r.client == nil {
		return nil
	}
	return r.client.Close()
}

func (r *RedisRelay) bindLocal(dispatch func(topic string, payload []byte)) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.local = dispatch
	r.mu.Unlock()
}
