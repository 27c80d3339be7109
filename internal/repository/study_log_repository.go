package repository

import (
	"learning_path_backend/internal/model"
	"learning_path_backend/internal/util"
	"sync"
)

// 固定的四周窗口，与看板的周视图一致
var defaultWeeks = []string{"Week 1", "Week 2", "Week 3", "Week 4"}

// StudyLogRepository 记录每周学习时长
type StudyLogRepository struct {
	mu    sync.RWMutex
	weeks []string
	hours map[string]int
}

func NewStudyLogRepository() *StudyLogRepository {
	hours := make(map[string]int, len(defaultWeeks))
	for _, w := range defaultWeeks {
		hours[w] = 0
	}
	return &StudyLogRepository{
		weeks: append([]string(nil), defaultWeeks...),
		hours: hours,
	}
}

// SetHours 记录某周时长，覆盖而非累加
func (r *StudyLogRepository) SetHours(week string, hours int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.hours[week]; !exists {
		return util.ErrWeekNotFound
	}
	r.hours[week] = hours
	return nil
}

// All 按周次顺序返回记录
func (r *StudyLogRepository) All() []model.WeekLog {
	r.mu.RLock()
	defer r.mu.RUnlock()

	logs := make([]model.WeekLog, 0, len(r.weeks))
	for _, w := range r.weeks {
		logs = append(logs, model.WeekLog{Week: w, Hours: r.hours[w]})
	}
	return logs
}

// TotalHours 四周时长合计
func (r *StudyLogRepository) TotalHours() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, h := range r.hours {
		total += h
	}
	return total
}
