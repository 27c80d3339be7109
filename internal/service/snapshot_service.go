package service

import (
	"learning_path_backend/internal/model"
	"learning_path_backend/internal/repository"
	"learning_path_backend/internal/util"
	"learning_path_backend/pkg/logger"
	"learning_path_backend/pkg/monitoring"
	"time"

	"go.uber.org/zap"
)

// SnapshotService 负责全量状态的保存与恢复
// 保存是整文件覆盖；恢复失败时退回默认种子而不是报错
type SnapshotService struct {
	SnapshotRepo *repository.SnapshotRepository
	ProgressRepo *repository.ProgressRepository
	ChatRepo     *repository.ChatRepository
}

func NewSnapshotService(
	snapshotRepo *repository.SnapshotRepository,
	progressRepo *repository.ProgressRepository,
	chatRepo *repository.ChatRepository,
) *SnapshotService {
	return &SnapshotService{
		SnapshotRepo: snapshotRepo,
		ProgressRepo: progressRepo,
		ChatRepo:     chatRepo,
	}
}

// Save 把课程集合与指定会话的对话写入快照文件
func (s *SnapshotService) Save(sessionID string) error {
	snapshot := &model.Snapshot{
		Courses:     make([]model.SnapshotCourse, 0, s.ProgressRepo.Count()),
		ChatHistory: []model.SnapshotTurn{},
	}

	for _, course := range s.ProgressRepo.All() {
		snapshot.Courses = append(snapshot.Courses, model.SnapshotCourse{
			Name:       course.Name,
			Completion: course.Completion,
			Status:     string(course.Status),
		})
	}

	for _, turn := range s.ChatRepo.History(sessionID) {
		snapshot.ChatHistory = append(snapshot.ChatHistory, model.SnapshotTurn{
			Sender:  string(turn.Sender),
			Message: turn.Message,
			TS:      turn.Timestamp.Format(time.RFC3339),
		})
	}

	if topic := s.ChatRepo.TopicMemory(sessionID); topic != model.TopicNone {
		t := string(topic)
		snapshot.TopicMemory = &t
	}

	if err := s.SnapshotRepo.Write(snapshot); err != nil {
		monitoring.SnapshotWrites.WithLabelValues("error").Inc()
		return err
	}
	monitoring.SnapshotWrites.WithLabelValues("ok").Inc()
	return nil
}

// Load 读取快照并恢复状态，聊天记录恢复到默认会话
// 文件缺失或损坏时加载默认种子，返回是否使用了种子
func (s *SnapshotService) Load() bool {
	snapshot, err := s.SnapshotRepo.Read()
	if err != nil {
		logger.Log.Warn("snapshot unavailable, falling back to seed courses",
			zap.String("path", s.SnapshotRepo.Path),
			zap.Error(err))
		s.ProgressRepo.Replace(repository.SeedCourses())
		s.ChatRepo.Restore(util.DefaultSessionID, nil, model.TopicNone)
		return true
	}

	courses := make([]*model.Course, 0, len(snapshot.Courses))
	for _, sc := range snapshot.Courses {
		// 手工改过的文件可能带着越界值，夹取后重新派生状态
		v := sc.Completion
		if v < 0 {
			v = 0
		}
		if v > 100 {
			v = 100
		}
		courses = append(courses, &model.Course{
			Name:       sc.Name,
			Completion: v,
			Status:     model.DeriveStatus(v),
		})
	}
	s.ProgressRepo.Replace(courses)

	history := make([]model.ChatTurn, 0, len(snapshot.ChatHistory))
	var last time.Time
	for _, st := range snapshot.ChatHistory {
		ts, err := time.Parse(time.RFC3339, st.TS)
		if err != nil || ts.Before(last) {
			ts = last
		}
		last = ts
		history = append(history, model.ChatTurn{
			Sender:    model.Sender(st.Sender),
			Message:   st.Message,
			Timestamp: ts,
		})
	}

	topic := model.TopicNone
	if snapshot.TopicMemory != nil {
		topic = model.ParseTopic(*snapshot.TopicMemory)
	}
	s.ChatRepo.Restore(util.DefaultSessionID, history, topic)
	return false
}
