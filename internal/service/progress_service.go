package service

import (
	"errors"
	"learning_path_backend/internal/model"
	"learning_path_backend/internal/repository"
	"learning_path_backend/internal/util"
	"strings"
)

type ProgressService struct {
	ProgressRepo *repository.ProgressRepository
}

func NewProgressService(progressRepo *repository.ProgressRepository) *ProgressService {
	return &ProgressService{ProgressRepo: progressRepo}
}

// AddCourse 新增课程，状态由初始完成度派生
// 名称重复时拒绝，保证集合内名称唯一
func (s *ProgressService) AddCourse(name string, initialCompletion int) (*model.Course, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("课程名称不能为空")
	}
	if initialCompletion < 0 || initialCompletion > 100 {
		return nil, util.ErrCompletionOutOfRange
	}

	course := &model.Course{
		Name:       name,
		Completion: initialCompletion,
		Status:     model.DeriveStatus(initialCompletion),
	}
	if err := s.ProgressRepo.Create(course); err != nil {
		return nil, err
	}
	return course, nil
}

// SetCompletion 设置完成度并重新派生状态，幂等
// 越界值直接拒绝，课程保持原样
func (s *ProgressService) SetCompletion(name string, value int) (*model.Course, error) {
	if value < 0 || value > 100 {
		return nil, util.ErrCompletionOutOfRange
	}

	course, err := s.ProgressRepo.FindByName(name)
	if err != nil {
		return nil, err
	}

	course.Completion = value
	course.Status = model.DeriveStatus(value)
	if err := s.ProgressRepo.Save(course); err != nil {
		return nil, err
	}
	return course, nil
}

// SetMetadata 更新附带元数据，不影响完成度与状态
func (s *ProgressService) SetMetadata(name string, totalTopics int, attachments []string) (*model.Course, error) {
	course, err := s.ProgressRepo.FindByName(name)
	if err != nil {
		return nil, err
	}

	course.TotalTopics = totalTopics
	course.Attachments = attachments
	if err := s.ProgressRepo.Save(course); err != nil {
		return nil, err
	}
	return course, nil
}

// RemoveCourse 删除课程
func (s *ProgressService) RemoveCourse(name string) error {
	return s.ProgressRepo.Delete(name)
}

// BulkAdjust 给全部课程加上 delta，逐项夹取到 [0,100] 并重新派生状态
// delta 取 -100 即可把所有课程清零
func (s *ProgressService) BulkAdjust(delta int) []*model.Course {
	courses := s.ProgressRepo.All()
	for _, course := range courses {
		v := course.Completion + delta
		if v < 0 {
			v = 0
		}
		if v > 100 {
			v = 100
		}
		course.Completion = v
		course.Status = model.DeriveStatus(v)
		s.ProgressRepo.Save(course)
	}
	return courses
}

// Aggregate 完成度聚合统计，空集合显式报错而不是除零
// 极值并列时取先插入的课程
func (s *ProgressService) Aggregate() (*model.Aggregate, error) {
	courses := s.ProgressRepo.All()
	if len(courses) == 0 {
		return nil, util.ErrEmptyStore
	}

	sum := 0
	maxItem := courses[0]
	minItem := courses[0]
	for _, course := range courses {
		sum += course.Completion
		if course.Completion > maxItem.Completion {
			maxItem = course
		}
		if course.Completion < minItem.Completion {
			minItem = course
		}
	}

	return &model.Aggregate{
		Mean:  float64(sum) / float64(len(courses)),
		Max:   model.Extreme{Name: maxItem.Name, Completion: maxItem.Completion},
		Min:   model.Extreme{Name: minItem.Name, Completion: minItem.Completion},
		Count: len(courses),
	}, nil
}

// ExportRows 按插入顺序导出只读行，供 CSV/JSON 导出方消费
func (s *ProgressService) ExportRows() []model.CourseRow {
	courses := s.ProgressRepo.All()
	rows := make([]model.CourseRow, 0, len(courses))
	for _, course := range courses {
		rows = append(rows, model.CourseRow{
			Name:       course.Name,
			Completion: course.Completion,
			Status:     course.Status,
		})
	}
	return rows
}
