package service

import (
	"math/rand"
	"strings"

	"github.com/rephone-next/internal/config"
)

// ChatReply 机器人应答
// TypingDelayMS 为建议的打字延迟，由展示层自行消费，服务端不阻塞。
type ChatReply struct {
	Reply         string `json:"reply"`
	TypingDelayMS int    `json:"typing_delay_ms"`
}

// ChatService 客服机器人服务（预置话术关键词匹配）
type ChatService struct {
	baseDelayMS   int
	jitterDelayMS int
}

// NewChatService 创建客服机器人服务
func NewChatService(cfg config.ChatConfig) *ChatService {
	base := cfg.TypingDelayBaseMS
	if base <= 0 {
		base = 1000
	}
	jitter := cfg.TypingDelayJitterMS
	if jitter < 0 {
		jitter = 0
	}
	return &ChatService{baseDelayMS: base, jitterDelayMS: jitter}
}

// Greeting 会话开场白
func (s *ChatService) Greeting() string {
	return ChatGreeting
}

// QuickQuestions 快捷提问列表
func (s *ChatService) QuickQuestions() []string {
	questions := make([]string, len(ChatQuickQuestions))
	copy(questions, ChatQuickQuestions)
	return questions
}

// Reply 生成应答：按规则顺序匹配首个命中的关键词，未命中返回兜底话术
func (s *ChatService) Reply(message string) ChatReply {
	return ChatReply{
		Reply:         matchReply(message),
		TypingDelayMS: s.typingDelay(),
	}
}

func matchReply(message string) string {
	input := strings.ToLower(strings.TrimSpace(message))
	if input == "" {
		return ChatDefaultReply
	}
	for _, rule := range chatRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(input, keyword) {
				return rule.reply
			}
		}
	}
	return ChatDefaultReply
}

func (s *ChatService) typingDelay() int {
	delay := s.baseDelayMS
	if s.jitterDelayMS > 0 {
		delay += rand.Intn(s.jitterDelayMS + 1)
	}
	return delay
}
