package service

import (
	"learning_path_backend/internal/model"
	"learning_path_backend/internal/repository"
	"learning_path_backend/pkg/monitoring"
	"strings"
	"time"
)

// QuickPrompts 看板上的快捷提问按钮文案
var QuickPrompts = []string{
	"motivate me",
	"python tip",
	"tell me about AI",
	"help with web dev",
}

type ChatService struct {
	ChatRepo    *repository.ChatRepository
	Responder   *ResponderService
	TypingDelay time.Duration
}

func NewChatService(chatRepo *repository.ChatRepository, responder *ResponderService, typingDelay time.Duration) *ChatService {
	return &ChatService{
		ChatRepo:    chatRepo,
		Responder:   responder,
		TypingDelay: typingDelay,
	}
}

// SendMessage 处理一条用户输入并返回助手回复
// 空白输入是无操作：不记录、不回复、不报错
func (s *ChatService) SendMessage(sessionID, message string) (*model.ChatTurn, bool) {
	if strings.TrimSpace(message) == "" {
		return nil, false
	}

	s.ChatRepo.AppendTurn(sessionID, model.SenderUser, message)

	decision := Decide(message, s.ChatRepo.TopicMemory(sessionID))
	s.ChatRepo.SetTopicMemory(sessionID, decision.Topic)
	reply := s.Responder.Draw(decision)

	topicLabel := string(decision.Topic)
	if topicLabel == "" {
		topicLabel = "none"
	}
	monitoring.ChatReplies.WithLabelValues(topicLabel).Inc()

	// 打字延迟纯粹是界面节奏，配置为 0 时完全跳过
	if s.TypingDelay > 0 {
		time.Sleep(s.TypingDelay)
	}

	turn := s.ChatRepo.AppendTurn(sessionID, model.SenderBot, reply)
	return &turn, true
}

// History 会话历史
func (s *ChatService) History(sessionID string) []model.ChatTurn {
	return s.ChatRepo.History(sessionID)
}

// TopicMemory 当前主题记忆
func (s *ChatService) TopicMemory(sessionID string) model.Topic {
	return s.ChatRepo.TopicMemory(sessionID)
}

// ClearHistory 清空会话
func (s *ChatService) ClearHistory(sessionID string) {
	s.ChatRepo.Clear(sessionID)
}
