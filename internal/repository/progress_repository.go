package repository

import (
	"learning_path_backend/internal/model"
	"learning_path_backend/internal/util"
	"sync"
)

// ProgressRepository 按插入顺序维护课程集合，名称唯一
// 进程内存储，落盘由 SnapshotRepository 负责
type ProgressRepository struct {
	mu    sync.RWMutex
	order []string
	items map[string]*model.Course
}

func NewProgressRepository() *ProgressRepository {
	return &ProgressRepository{
		items: make(map[string]*model.Course),
	}
}

// Create 新增课程，名称重复时拒绝
func (r *ProgressRepository) Create(course *model.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[course.Name]; exists {
		return util.ErrCourseExists
	}

	cp := *course
	r.items[course.Name] = &cp
	r.order = append(r.order, course.Name)
	return nil
}

// FindByName 返回课程副本
func (r *ProgressRepository) FindByName(name string) (*model.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	course, exists := r.items[name]
	if !exists {
		return nil, util.ErrCourseNotFound
	}
	cp := *course
	return &cp, nil
}

// Save 覆盖已存在课程的内容，不改变其插入位置
func (r *ProgressRepository) Save(course *model.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[course.Name]; !exists {
		return util.ErrCourseNotFound
	}
	cp := *course
	r.items[course.Name] = &cp
	return nil
}

// Delete 删除课程，不影响其余课程
func (r *ProgressRepository) Delete(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[name]; !exists {
		return util.ErrCourseNotFound
	}
	delete(r.items, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// All 按插入顺序返回全部课程的副本
func (r *ProgressRepository) All() []*model.Course {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Course, 0, len(r.order))
	for _, name := range r.order {
		cp := *r.items[name]
		result = append(result, &cp)
	}
	return result
}

func (r *ProgressRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Replace 整体替换集合，用于快照加载与种子初始化
// 出现重复名称时保留先出现的一条
func (r *ProgressRepository) Replace(courses []*model.Course) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.order = r.order[:0]
	r.items = make(map[string]*model.Course, len(courses))
	for _, course := range courses {
		if _, exists := r.items[course.Name]; exists {
			continue
		}
		cp := *course
		r.items[course.Name] = &cp
		r.order = append(r.order, course.Name)
	}
}
