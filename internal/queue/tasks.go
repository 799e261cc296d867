package queue

import (
	"encoding/json"

	"github.com/giftkart-next/internal/constants"
	"github.com/giftkart-next/internal/models"

	"github.com/hibiken/asynq"
)

// TaskWishlistMirror 心愿单远端镜像任务
const TaskWishlistMirror = constants.TaskWishlistMirror

// WishlistMirrorPayload 心愿单镜像任务载荷
type WishlistMirrorPayload struct {
	UserID int64                `json:"user_id"`
	Action string               `json:"action"` // add / remove
	Entry  models.WishlistEntry `json:"entry"`
}

// NewWishlistMirrorTask 创建心愿单镜像任务
func NewWishlistMirrorTask(payload WishlistMirrorPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskWishlistMirror, body), nil
}
