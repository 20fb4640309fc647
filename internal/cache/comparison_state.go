package cache

import (
	"context"
	"fmt"
	"time"
)

// 对比栏是会话级状态：仅在 Redis 中保留带 TTL 的镜像，
// 让多副本部署和进程重启不丢当前会话，过期即消失，不落库。

func comparisonStateKey(deviceID string) string {
	return fmt.Sprintf("comparison:%s", deviceID)
}

// GetComparisonState 读取设备的对比栏镜像
func GetComparisonState(ctx context.Context, deviceID string) ([]byte, bool, error) {
	if deviceID == "" {
		return nil, false, nil
	}
	return GetRaw(ctx, comparisonStateKey(deviceID))
}

// SetComparisonState 写入设备的对比栏镜像
func SetComparisonState(ctx context.Context, deviceID string, payload []byte, ttl time.Duration) error {
	if deviceID == "" {
		return nil
	}
	return SetRaw(ctx, comparisonStateKey(deviceID), payload, ttl)
}

// DelComparisonState 删除设备的对比栏镜像
func DelComparisonState(ctx context.Context, deviceID string) error {
	if deviceID == "" {
		return nil
	}
	return Del(ctx, comparisonStateKey(deviceID))
}
