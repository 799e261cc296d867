package worker

import (
	"context"
	"encoding/json"

	"github.com/giftkart-next/internal/logger"
	"github.com/giftkart-next/internal/provider"
	"github.com/giftkart-next/internal/queue"
	"github.com/giftkart-next/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{Container: c}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskWishlistMirror, c.handleWishlistMirror)
}

// handleWishlistMirror 心愿单远端镜像。
// 载荷损坏直接丢弃；远端失败返回错误交给 asynq 有限重试。
func (c *Consumer) handleWishlistMirror(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.WishlistMirrorPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_wishlist_mirror_unmarshal_failed", "error", err)
		return nil
	}
	if payload.UserID <= 0 || payload.Entry.NormalizedID() == "" {
		logger.Debugw("worker_wishlist_mirror_skip_invalid_payload", "user_id", payload.UserID)
		return nil
	}
	if err := service.MirrorWishlist(ctx, c.APIClient, payload); err != nil {
		logger.Warnw("worker_wishlist_mirror_failed",
			"user_id", payload.UserID,
			"action", payload.Action,
			"product_id", payload.Entry.NormalizedID(),
			"error", err,
		)
		return err
	}
	return nil
}
