package shop

import "github.com/giftkart-next/internal/provider"

// Handler 店面本地接口处理器入口
// 说明：供展示层（页面壳）调用，所有路由都挂在该处理器上。
type Handler struct {
	*provider.Container
}

// New 创建店面处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
