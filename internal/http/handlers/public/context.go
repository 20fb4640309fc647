package public

import (
	"github.com/rephone-next/internal/constants"
	"github.com/rephone-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// getDeviceID 读取中间件注入的设备标识，缺失时直接响应 400。
func getDeviceID(c *gin.Context) (string, bool) {
	if value, ok := c.Get(constants.DeviceIDContextKey); ok {
		if id, ok := value.(string); ok && id != "" {
			return id, true
		}
	}
	respondError(c, response.CodeBadRequest, "device id missing", nil)
	return "", false
}
