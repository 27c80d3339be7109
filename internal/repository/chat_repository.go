package repository

import (
	"learning_path_backend/internal/model"
	"sync"
	"time"
)

// ChatRepository 按会话维护对话状态
// 每个会话互相隔离，历史只追加；时间戳保证单调不回退
type ChatRepository struct {
	mu         sync.Mutex
	sessions   map[string]*model.ConversationState
	maxHistory int
}

func NewChatRepository(maxHistory int) *ChatRepository {
	return &ChatRepository{
		sessions:   make(map[string]*model.ConversationState),
		maxHistory: maxHistory,
	}
}

// session 取出或创建会话，调用方需持有锁
func (r *ChatRepository) session(sessionID string) *model.ConversationState {
	state, exists := r.sessions[sessionID]
	if !exists {
		state = &model.ConversationState{SessionID: sessionID}
		r.sessions[sessionID] = state
	}
	return state
}

// AppendTurn 追加一条消息，时钟回拨时沿用上一条的时间戳
func (r *ChatRepository) AppendTurn(sessionID string, sender model.Sender, message string) model.ChatTurn {
	r.mu.Lock()
	defer r.mu.Unlock()

	state := r.session(sessionID)

	ts := time.Now()
	if n := len(state.History); n > 0 && ts.Before(state.History[n-1].Timestamp) {
		ts = state.History[n-1].Timestamp
	}

	turn := model.ChatTurn{Sender: sender, Message: message, Timestamp: ts}
	state.History = append(state.History, turn)

	// 超过上限时丢弃最旧的消息
	if r.maxHistory > 0 && len(state.History) > r.maxHistory {
		state.History = state.History[len(state.History)-r.maxHistory:]
	}
	return turn
}

// History 返回会话历史的副本
func (r *ChatRepository) History(sessionID string) []model.ChatTurn {
	r.mu.Lock()
	defer r.mu.Unlock()

	state := r.session(sessionID)
	history := make([]model.ChatTurn, len(state.History))
	copy(history, state.History)
	return history
}

// TopicMemory 当前记忆的主题
func (r *ChatRepository) TopicMemory(sessionID string) model.Topic {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session(sessionID).TopicMemory
}

// SetTopicMemory 更新主题记忆
func (r *ChatRepository) SetTopicMemory(sessionID string, topic model.Topic) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session(sessionID).TopicMemory = topic
}

// Clear 整体清空会话历史与主题记忆
func (r *ChatRepository) Clear(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state := r.session(sessionID)
	state.History = nil
	state.TopicMemory = model.TopicNone
}

// Restore 用快照内容重建会话
func (r *ChatRepository) Restore(sessionID string, history []model.ChatTurn, topic model.Topic) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state := r.session(sessionID)
	state.History = make([]model.ChatTurn, len(history))
	copy(state.History, history)
	state.TopicMemory = topic
}
