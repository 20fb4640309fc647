package public

import "github.com/rephone-next/internal/provider"

// Handler 前台/公开接口处理器入口
// 说明：店面全部接口均为游客侧，按设备标识区分状态。
type Handler struct {
	*provider.Container
}

// New 创建前台处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
