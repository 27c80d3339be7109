package service

import (
	"learning_path_backend/internal/model"
	"learning_path_backend/internal/repository"
	"learning_path_backend/internal/util"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSnapshotService(t *testing.T) (*SnapshotService, *ProgressService, *ChatService) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "progress.json")
	progressRepo := repository.NewProgressRepository()
	chatRepo := repository.NewChatRepository(100)
	snapshot := NewSnapshotService(repository.NewSnapshotRepository(path), progressRepo, chatRepo)
	progress := NewProgressService(progressRepo)
	chat := NewChatService(chatRepo, NewResponderService(), 0)
	return snapshot, progress, chat
}

func TestSnapshotRoundTrip(t *testing.T) {
	snapshot, progress, chat := newSnapshotService(t)

	_, err := progress.AddCourse("Python", 45)
	require.NoError(t, err)
	_, err = progress.AddCourse("AI", 85)
	require.NoError(t, err)
	_, err = progress.AddCourse("Rust", 100)
	require.NoError(t, err)

	_, ok := chat.SendMessage(util.DefaultSessionID, "tell me about python")
	require.True(t, ok)

	before := progress.ExportRows()
	historyBefore := chat.History(util.DefaultSessionID)

	require.NoError(t, snapshot.Save(util.DefaultSessionID))

	// 清空后从快照恢复
	progress.ProgressRepo.Replace(nil)
	chat.ClearHistory(util.DefaultSessionID)

	seeded := snapshot.Load()
	assert.False(t, seeded)

	// 名称、完成度、状态、顺序全部还原
	assert.Equal(t, before, progress.ExportRows())

	historyAfter := chat.History(util.DefaultSessionID)
	require.Len(t, historyAfter, len(historyBefore))
	for i := range historyBefore {
		assert.Equal(t, historyBefore[i].Sender, historyAfter[i].Sender)
		assert.Equal(t, historyBefore[i].Message, historyAfter[i].Message)
	}
	assert.Equal(t, model.TopicPython, chat.TopicMemory(util.DefaultSessionID))
}

func TestLoad_MissingFileYieldsSeed(t *testing.T) {
	snapshot, progress, _ := newSnapshotService(t)

	seeded := snapshot.Load()
	assert.True(t, seeded)

	rows := progress.ExportRows()
	require.Len(t, rows, 7)
	assert.Equal(t, "Python", rows[0].Name)
	assert.Equal(t, 45, rows[0].Completion)
	assert.Equal(t, "Cybersecurity", rows[6].Name)
}

func TestLoad_CorruptFileYieldsSeed(t *testing.T) {
	snapshot, progress, _ := newSnapshotService(t)

	require.NoError(t, os.WriteFile(snapshot.SnapshotRepo.Path, []byte("{not json"), 0644))

	seeded := snapshot.Load()
	assert.True(t, seeded)
	assert.Equal(t, 7, progress.ProgressRepo.Count())
}

func TestLoad_ClampsOutOfRangeValues(t *testing.T) {
	snapshot, progress, _ := newSnapshotService(t)

	// 手工改坏的快照：越界完成度与状态不一致
	raw := `{"courses":[{"name":"Python","completion":150,"status":"not_started"},{"name":"AI","completion":-20,"status":"completed"}],"chat_history":[],"topic_memory":null}`
	require.NoError(t, os.WriteFile(snapshot.SnapshotRepo.Path, []byte(raw), 0644))

	seeded := snapshot.Load()
	assert.False(t, seeded)

	python, err := progress.ProgressRepo.FindByName("Python")
	require.NoError(t, err)
	assert.Equal(t, 100, python.Completion)
	assert.Equal(t, model.StatusCompleted, python.Status)

	ai, err := progress.ProgressRepo.FindByName("AI")
	require.NoError(t, err)
	assert.Equal(t, 0, ai.Completion)
	assert.Equal(t, model.StatusNotStarted, ai.Status)
}

func TestLoad_UnknownTopicMemoryFallsBackToNone(t *testing.T) {
	snapshot, _, chat := newSnapshotService(t)

	raw := `{"courses":[],"chat_history":[],"topic_memory":"quantum"}`
	require.NoError(t, os.WriteFile(snapshot.SnapshotRepo.Path, []byte(raw), 0644))

	snapshot.Load()
	assert.Equal(t, model.TopicNone, chat.TopicMemory(util.DefaultSessionID))
}
