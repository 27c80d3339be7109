package repository

import (
	"encoding/json"
	"learning_path_backend/internal/model"
	"learning_path_backend/internal/util"
	"os"
	"path/filepath"
)

// SnapshotRepository 负责全量状态的整文件读写
// 没有加锁语义，最后一次写入获胜
type SnapshotRepository struct {
	Path string
}

func NewSnapshotRepository(path string) *SnapshotRepository {
	return &SnapshotRepository{Path: path}
}

// Write 先写临时文件再重命名，避免写一半的文件被下次启动读到
func (r *SnapshotRepository) Write(snapshot *model.Snapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(r.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "snapshot-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, r.Path)
}

// Read 读取快照，文件缺失或无法解析时返回 ErrCorruptSnapshot
// 由上层决定退回默认种子
func (r *SnapshotRepository) Read() (*model.Snapshot, error) {
	data, err := os.ReadFile(r.Path)
	if err != nil {
		return nil, util.ErrCorruptSnapshot
	}

	var snapshot model.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, util.ErrCorruptSnapshot
	}
	return &snapshot, nil
}

// SeedCourses 默认课程集合，加载失败时的兜底数据
func SeedCourses() []*model.Course {
	seed := []struct {
		name       string
		completion int
	}{
		{"Python", 45},
		{"C++", 70},
		{"Web Development", 20},
		{"AI", 85},
		{"Data Science", 60},
		{"Machine Learning", 30},
		{"Cybersecurity", 90},
	}

	courses := make([]*model.Course, 0, len(seed))
	for _, s := range seed {
		courses = append(courses, &model.Course{
			Name:       s.name,
			Completion: s.completion,
			Status:     model.DeriveStatus(s.completion),
		})
	}
	return courses
}
