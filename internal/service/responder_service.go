package service

import (
	"learning_path_backend/internal/model"
	"math/rand"
	"strings"
)

// FarewellReply 告别语固定为常量，不从语料池抽取
const FarewellReply = "Goodbye! Keep learning and see you soon! 👋"

// 告别关键词优先级最高，即使同句出现其他主题词也先生效
var farewellKeywords = []string{"bye", "goodnight", "see you", "exit"}

// topicPriority 主题的固定优先级，多个主题同时命中时取最靠前的
// 顺序是约定而不是遍历巧合
var topicPriority = []model.Topic{
	model.TopicGreeting,
	model.TopicPython,
	model.TopicAI,
	model.TopicWeb,
	model.TopicMotivation,
	model.TopicJokes,
}

// 各主题的触发词，大小写不敏感，匹配语句中任意位置
var topicKeywords = map[model.Topic][]string{
	// 子串匹配下 "hi" 会误伤 machine/this 之类的词，问候词只留长词
	model.TopicGreeting:   {"hello", "hey", "good morning"},
	model.TopicPython:     {"python", "py"},
	model.TopicAI:         {"ai", "machine learning", "ml"},
	model.TopicWeb:        {"web", "html", "css", "javascript", "js"},
	model.TopicMotivation: {"motivate", "inspire", "tired", "sad"},
	model.TopicJokes:      {"joke", "funny", "laugh"},
}

var topicPools = map[model.Topic][]string{
	model.TopicGreeting: {
		"Hello! Ready to learn something new today?",
		"Hey there! What part of CS are we tackling today?",
		"Hi! Ask me about Python, AI, web dev, or just say 'motivate me'.",
	},
	model.TopicPython: {
		"🐍 Python tip: list comprehensions beat manual loops for building lists.",
		"Try building a small calculator in Python using functions and loops!",
		"Use enumerate() instead of range(len(...)) when you need the index.",
		"Virtual environments keep your Python projects from stepping on each other.",
	},
	model.TopicAI: {
		"🧠 AI is mostly math: start with linear algebra and probability.",
		"Machine learning 101: garbage data in, garbage model out.",
		"Train/test splits exist so your model can't cheat on the exam.",
		"Start with scikit-learn before jumping to deep learning frameworks.",
	},
	model.TopicWeb: {
		"🌐 HTML is the skeleton, CSS the skin, JavaScript the muscles.",
		"Open your browser dev tools — it's the fastest way to learn web dev.",
		"Build a personal portfolio page; it's the classic first web project.",
		"Learn flexbox and grid before reaching for a CSS framework.",
	},
	model.TopicMotivation: {
		"💪 Progress over perfection — one small step every day adds up.",
		"Feeling stuck is part of learning. Take a break, then try again.",
		"You've already come further than when you started. Keep going!",
		"Every expert was once a beginner who refused to quit.",
	},
	model.TopicJokes: {
		"Why do programmers prefer dark mode? Because light attracts bugs! 😄",
		"There are only 10 kinds of people: those who know binary and those who don't.",
		"A SQL query walks into a bar, goes up to two tables and asks: may I join you?",
	},
}

// 兜底语料池，与所有主题池互不重叠
var fallbackPool = []string{
	"I'm not sure about that one. Try asking about Python, AI, or web development.",
	"Hmm, that's outside my notes. Ask me for a study tip or say 'motivate me'!",
	"Could you rephrase? I know about Python, AI, web dev, jokes, and motivation.",
}

// Decision 一次应答决策：下一个主题记忆 + 回复来源
// Fixed 非空时回复是固定字符串，否则从 Pool 均匀抽取
type Decision struct {
	Topic model.Topic
	Pool  []string
	Fixed string
}

// Decide 纯决策函数：根据语句和当前主题记忆得出转移结果
// 随机抽取被拆到 Draw 里，这里的匹配逻辑可以确定性测试
func Decide(utterance string, current model.Topic) Decision {
	msg := strings.ToLower(utterance)

	// 1. 告别词永远最先判定
	for _, kw := range farewellKeywords {
		if strings.Contains(msg, kw) {
			return Decision{Topic: model.TopicNone, Fixed: FarewellReply}
		}
	}

	// 2. 按固定优先级匹配主题词
	for _, topic := range topicPriority {
		for _, kw := range topicKeywords[topic] {
			if strings.Contains(msg, kw) {
				return Decision{Topic: topic, Pool: topicPools[topic]}
			}
		}
	}

	// 3. 未命中：停留在当前主题继续聊，没有主题则走兜底
	if current != model.TopicNone {
		return Decision{Topic: current, Pool: topicPools[current]}
	}
	return Decision{Topic: model.TopicNone, Pool: fallbackPool}
}

// TopicPool 指定主题的语料池，测试用来做成员断言
func TopicPool(topic model.Topic) []string {
	if topic == model.TopicNone {
		return append([]string(nil), fallbackPool...)
	}
	return append([]string(nil), topicPools[topic]...)
}

// ResponderService 把决策结果变成一条具体回复
type ResponderService struct {
	pick func(n int) int
}

func NewResponderService() *ResponderService {
	return &ResponderService{pick: rand.Intn}
}

// NewResponderServiceWithPick 注入选择函数，测试时可固定
func NewResponderServiceWithPick(pick func(n int) int) *ResponderService {
	return &ResponderService{pick: pick}
}

// Draw 从决策中抽出回复
func (s *ResponderService) Draw(d Decision) string {
	if d.Fixed != "" {
		return d.Fixed
	}
	if len(d.Pool) == 0 {
		return fallbackPool[s.pick(len(fallbackPool))]
	}
	return d.Pool[s.pick(len(d.Pool))]
}
