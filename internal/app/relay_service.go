package app

import (
	"context"
	"errors"

	"github.com/giftkart-next/internal/pubsub"
)

// RelayService 跨进程事件中继服务封装
type RelayService struct {
	relay *pubsub.RedisRelay
}

// NewRelayService 创建中继服务；relay 为 nil 时返回 nil
func NewRelayService(relay *pubsub.RedisRelay) *RelayService {
	if relay == nil {
		return nil
	}
	return &RelayService{relay: relay}
}

// Name 服务名称
func (s *RelayService) Name() string {
	return "relay"
}

// Start 启动订阅循环
func (s *RelayService) Start(ctx context.Context) error {
	if s == nil || s.relay == nil {
		return errors.New("relay not initialized")
	}
	s.relay.Run(ctx)
	return nil
}

// Stop 停止服务
func (s *RelayService) Stop(ctx context.Context) error {
	if s == nil || s.relay == nil {
		return nil
	}
	return s.relay.Close()
}
