package service

import (
	"learning_path_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecide_TopicKeywordMatch(t *testing.T) {
	tests := []struct {
		utterance string
		want      model.Topic
	}{
		{"tell me about python", model.TopicPython},
		{"PYTHON please", model.TopicPython},
		{"what is machine learning", model.TopicAI},
		{"help with web dev", model.TopicWeb},
		{"I feel tired", model.TopicMotivation},
		{"tell me a joke", model.TopicJokes},
		{"hello there", model.TopicGreeting},
	}

	for _, tt := range tests {
		t.Run(tt.utterance, func(t *testing.T) {
			d := Decide(tt.utterance, model.TopicNone)
			assert.Equal(t, tt.want, d.Topic)
			assert.Empty(t, d.Fixed)
			assert.Equal(t, topicPools[tt.want], d.Pool)
		})
	}
}

func TestDecide_FarewellWins(t *testing.T) {
	// 告别词与主题词同句出现时告别优先
	for _, utterance := range []string{"bye", "bye, python", "goodnight and tell me a joke", "see you, web dev"} {
		d := Decide(utterance, model.TopicPython)
		assert.Equal(t, model.TopicNone, d.Topic, utterance)
		assert.Equal(t, FarewellReply, d.Fixed, utterance)
	}
}

func TestDecide_ContinuationKeepsTopic(t *testing.T) {
	d := Decide("ok thanks", model.TopicPython)
	assert.Equal(t, model.TopicPython, d.Topic)
	assert.Equal(t, topicPools[model.TopicPython], d.Pool)
}

func TestDecide_NoMatchNoMemoryFallsBack(t *testing.T) {
	d := Decide("qwerty", model.TopicNone)
	assert.Equal(t, model.TopicNone, d.Topic)
	assert.Equal(t, fallbackPool, d.Pool)
}

func TestDecide_PriorityOrderIsFixed(t *testing.T) {
	// python 与 web 同时命中时取优先级更高的 python
	d := Decide("python or javascript?", model.TopicNone)
	assert.Equal(t, model.TopicPython, d.Topic)
}

func TestTopicPools_NonEmptyAndDisjointFromFallback(t *testing.T) {
	fallback := make(map[string]bool, len(fallbackPool))
	for _, reply := range fallbackPool {
		fallback[reply] = true
	}

	for _, topic := range topicPriority {
		pool := topicPools[topic]
		require.NotEmpty(t, pool, string(topic))
		for _, reply := range pool {
			assert.False(t, fallback[reply], "fallback pool must stay distinct: %s", reply)
		}
	}
}

func TestDraw_ReplyIsPoolMember(t *testing.T) {
	responder := NewResponderService()
	d := Decide("tell me about python", model.TopicNone)

	for i := 0; i < 20; i++ {
		assert.Contains(t, topicPools[model.TopicPython], responder.Draw(d))
	}
}

func TestDraw_FixedReplyBypassesPool(t *testing.T) {
	responder := NewResponderServiceWithPick(func(n int) int {
		t.Fatal("pick must not be called for fixed replies")
		return 0
	})

	d := Decide("bye", model.TopicNone)
	assert.Equal(t, FarewellReply, responder.Draw(d))
}

func TestDraw_PickIsDeterministicWhenInjected(t *testing.T) {
	responder := NewResponderServiceWithPick(func(n int) int { return 0 })

	d := Decide("make me laugh", model.TopicNone)
	assert.Equal(t, topicPools[model.TopicJokes][0], responder.Draw(d))
}
