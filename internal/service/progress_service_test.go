package service

import (
	"learning_path_backend/internal/model"
	"learning_path_backend/internal/repository"
	"learning_path_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProgressService(t *testing.T) *ProgressService {
	t.Helper()
	return NewProgressService(repository.NewProgressRepository())
}

func TestAddCourse_DerivesStatus(t *testing.T) {
	tests := []struct {
		name       string
		completion int
		want       model.CourseStatus
	}{
		{"zero is not started", 0, model.StatusNotStarted},
		{"one is in progress", 1, model.StatusInProgress},
		{"middle is in progress", 55, model.StatusInProgress},
		{"ninety nine is in progress", 99, model.StatusInProgress},
		{"hundred is completed", 100, model.StatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newProgressService(t)
			course, err := s.AddCourse("Algorithms", tt.completion)
			require.NoError(t, err)
			assert.Equal(t, tt.want, course.Status)
		})
	}
}

func TestAddCourse_RejectsDuplicateName(t *testing.T) {
	s := newProgressService(t)

	_, err := s.AddCourse("Python", 10)
	require.NoError(t, err)

	_, err = s.AddCourse("Python", 50)
	assert.ErrorIs(t, err, util.ErrCourseExists)

	// 原有课程不受影响
	course, err := s.ProgressRepo.FindByName("Python")
	require.NoError(t, err)
	assert.Equal(t, 10, course.Completion)
}

func TestAddCourse_RejectsInvalidInput(t *testing.T) {
	s := newProgressService(t)

	_, err := s.AddCourse("", 10)
	assert.Error(t, err)

	_, err = s.AddCourse("Python", 101)
	assert.ErrorIs(t, err, util.ErrCompletionOutOfRange)

	_, err = s.AddCourse("Python", -1)
	assert.ErrorIs(t, err, util.ErrCompletionOutOfRange)
}

func TestSetCompletion_RederivesStatus(t *testing.T) {
	s := newProgressService(t)
	_, err := s.AddCourse("Python", 45)
	require.NoError(t, err)

	course, err := s.SetCompletion("Python", 100)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, course.Status)

	course, err = s.SetCompletion("Python", 0)
	require.NoError(t, err)
	assert.Equal(t, model.StatusNotStarted, course.Status)
}

func TestSetCompletion_Idempotent(t *testing.T) {
	s := newProgressService(t)
	_, err := s.AddCourse("Python", 45)
	require.NoError(t, err)

	first, err := s.SetCompletion("Python", 80)
	require.NoError(t, err)
	second, err := s.SetCompletion("Python", 80)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, s.ProgressRepo.Count())
}

func TestSetCompletion_OutOfRangeLeavesItemUnchanged(t *testing.T) {
	s := newProgressService(t)
	_, err := s.AddCourse("Python", 45)
	require.NoError(t, err)

	_, err = s.SetCompletion("Python", 101)
	assert.ErrorIs(t, err, util.ErrCompletionOutOfRange)

	_, err = s.SetCompletion("Python", -5)
	assert.ErrorIs(t, err, util.ErrCompletionOutOfRange)

	course, err := s.ProgressRepo.FindByName("Python")
	require.NoError(t, err)
	assert.Equal(t, 45, course.Completion)
	assert.Equal(t, model.StatusInProgress, course.Status)
}

func TestSetCompletion_UnknownCourse(t *testing.T) {
	s := newProgressService(t)
	_, err := s.SetCompletion("Rust", 50)
	assert.ErrorIs(t, err, util.ErrCourseNotFound)
}

func TestSetMetadata_DoesNotTouchCompletion(t *testing.T) {
	s := newProgressService(t)
	_, err := s.AddCourse("Python", 45)
	require.NoError(t, err)

	course, err := s.SetMetadata("Python", 12, []string{"notes.pdf"})
	require.NoError(t, err)
	assert.Equal(t, 12, course.TotalTopics)
	assert.Equal(t, []string{"notes.pdf"}, course.Attachments)
	assert.Equal(t, 45, course.Completion)
	assert.Equal(t, model.StatusInProgress, course.Status)

	_, err = s.SetMetadata("Ghost", 1, nil)
	assert.ErrorIs(t, err, util.ErrCourseNotFound)
}

func TestRemoveCourse(t *testing.T) {
	s := newProgressService(t)
	_, err := s.AddCourse("Python", 45)
	require.NoError(t, err)
	_, err = s.AddCourse("AI", 85)
	require.NoError(t, err)

	require.NoError(t, s.RemoveCourse("Python"))
	assert.ErrorIs(t, s.RemoveCourse("Python"), util.ErrCourseNotFound)

	// 其余课程不受影响
	course, err := s.ProgressRepo.FindByName("AI")
	require.NoError(t, err)
	assert.Equal(t, 85, course.Completion)
}

func TestBulkAdjust_ClampsToRange(t *testing.T) {
	tests := []struct {
		name  string
		delta int
	}{
		{"large positive", 1000},
		{"large negative", -1000},
		{"small positive", 10},
		{"small negative", -10},
		{"zero", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newProgressService(t)
			for _, c := range repository.SeedCourses() {
				_, err := s.AddCourse(c.Name, c.Completion)
				require.NoError(t, err)
			}

			for _, course := range s.BulkAdjust(tt.delta) {
				assert.GreaterOrEqual(t, course.Completion, 0)
				assert.LessOrEqual(t, course.Completion, 100)
				assert.Equal(t, model.DeriveStatus(course.Completion), course.Status)
			}
		})
	}
}

func TestBulkAdjust_ResetAll(t *testing.T) {
	s := newProgressService(t)
	_, err := s.AddCourse("Python", 45)
	require.NoError(t, err)
	_, err = s.AddCourse("AI", 85)
	require.NoError(t, err)

	// delta=-100 等价于全部清零
	for _, course := range s.BulkAdjust(-100) {
		assert.Equal(t, 0, course.Completion)
		assert.Equal(t, model.StatusNotStarted, course.Status)
	}
}

func TestAggregate(t *testing.T) {
	s := newProgressService(t)
	_, err := s.AddCourse("Python", 45)
	require.NoError(t, err)
	_, err = s.AddCourse("AI", 85)
	require.NoError(t, err)

	agg, err := s.Aggregate()
	require.NoError(t, err)
	assert.Equal(t, 65.0, agg.Mean)
	assert.Equal(t, model.Extreme{Name: "AI", Completion: 85}, agg.Max)
	assert.Equal(t, model.Extreme{Name: "Python", Completion: 45}, agg.Min)
	assert.Equal(t, 2, agg.Count)
}

func TestAggregate_EmptyStore(t *testing.T) {
	s := newProgressService(t)
	_, err := s.Aggregate()
	assert.ErrorIs(t, err, util.ErrEmptyStore)
}

func TestAggregate_TiesGoToInsertionOrder(t *testing.T) {
	s := newProgressService(t)
	_, err := s.AddCourse("Python", 50)
	require.NoError(t, err)
	_, err = s.AddCourse("AI", 50)
	require.NoError(t, err)

	agg, err := s.Aggregate()
	require.NoError(t, err)
	assert.Equal(t, "Python", agg.Max.Name)
	assert.Equal(t, "Python", agg.Min.Name)
}

// 端到端场景：更新完成度前后聚合结果的变化
func TestProgressScenario(t *testing.T) {
	s := newProgressService(t)
	_, err := s.AddCourse("Python", 45)
	require.NoError(t, err)
	_, err = s.AddCourse("AI", 85)
	require.NoError(t, err)

	agg, err := s.Aggregate()
	require.NoError(t, err)
	assert.Equal(t, model.Extreme{Name: "AI", Completion: 85}, agg.Max)

	_, err = s.SetCompletion("Python", 100)
	require.NoError(t, err)

	agg, err = s.Aggregate()
	require.NoError(t, err)
	assert.Equal(t, 92.5, agg.Mean)
	assert.Equal(t, model.Extreme{Name: "Python", Completion: 100}, agg.Max)
}

func TestExportRows_PreservesInsertionOrder(t *testing.T) {
	s := newProgressService(t)
	names := []string{"Python", "C++", "AI"}
	for i, name := range names {
		_, err := s.AddCourse(name, i*10)
		require.NoError(t, err)
	}

	rows := s.ExportRows()
	require.Len(t, rows, 3)
	for i, row := range rows {
		assert.Equal(t, names[i], row.Name)
	}

	// 修改导出行不影响存储内容
	rows[0].Completion = 99
	course, err := s.ProgressRepo.FindByName("Python")
	require.NoError(t, err)
	assert.Equal(t, 0, course.Completion)
}
