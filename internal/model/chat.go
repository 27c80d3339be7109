package model

import "time"

// Sender 消息发送方
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Topic 会话主题，决定回复语料池
type Topic string

const (
	TopicNone       Topic = ""
	TopicGreeting   Topic = "greeting"
	TopicPython     Topic = "python"
	TopicAI         Topic = "ai"
	TopicWeb        Topic = "web"
	TopicMotivation Topic = "motivation"
	TopicJokes      Topic = "jokes"
)

// ParseTopic 解析快照中的主题字符串，不认识的值退回 TopicNone
func ParseTopic(s string) Topic {
	switch Topic(s) {
	case TopicGreeting, TopicPython, TopicAI, TopicWeb, TopicMotivation, TopicJokes:
		return Topic(s)
	default:
		return TopicNone
	}
}

// ChatTurn 会话中的一条消息
type ChatTurn struct {
	Sender    Sender    `json:"sender"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"ts"`
}

// ConversationState 单个会话的全部状态
// History 在会话内只追加，可整体清空；TopicMemory 记住最近命中的主题
type ConversationState struct {
	SessionID   string     `json:"sessionId"`
	History     []ChatTurn `json:"history"`
	TopicMemory Topic      `json:"topicMemory"`
}
