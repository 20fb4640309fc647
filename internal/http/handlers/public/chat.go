package public

import (
	"strings"

	"github.com/rephone-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ChatMessageRequest 客服机器人提问请求
type ChatMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// GetChatBootstrap 获取会话开场白与快捷提问
func (h *Handler) GetChatBootstrap(c *gin.Context) {
	response.Success(c, gin.H{
		"greeting":        h.ChatService.Greeting(),
		"quick_questions": h.ChatService.QuickQuestions(),
	})
}

// PostChatMessage 发送提问并获取机器人应答
func (h *Handler) PostChatMessage(c *gin.Context) {
	var req ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		respondError(c, response.CodeBadRequest, "message required", nil)
		return
	}
	response.Success(c, h.ChatService.Reply(req.Message))
}
