package repository

import (
	"learning_path_backend/internal/model"
	"learning_path_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func course(name string, completion int) *model.Course {
	return &model.Course{
		Name:       name,
		Completion: completion,
		Status:     model.DeriveStatus(completion),
	}
}

func TestCreate_RejectsDuplicate(t *testing.T) {
	r := NewProgressRepository()

	require.NoError(t, r.Create(course("Python", 45)))
	assert.ErrorIs(t, r.Create(course("Python", 90)), util.ErrCourseExists)
	assert.Equal(t, 1, r.Count())
}

func TestAll_PreservesInsertionOrder(t *testing.T) {
	r := NewProgressRepository()
	names := []string{"Python", "C++", "Web Development", "AI"}
	for _, name := range names {
		require.NoError(t, r.Create(course(name, 10)))
	}

	all := r.All()
	require.Len(t, all, len(names))
	for i, c := range all {
		assert.Equal(t, names[i], c.Name)
	}
}

func TestDelete_KeepsOrderOfRemaining(t *testing.T) {
	r := NewProgressRepository()
	for _, name := range []string{"A", "B", "C"} {
		require.NoError(t, r.Create(course(name, 0)))
	}

	require.NoError(t, r.Delete("B"))
	assert.ErrorIs(t, r.Delete("B"), util.ErrCourseNotFound)

	all := r.All()
	require.Len(t, all, 2)
	assert.Equal(t, "A", all[0].Name)
	assert.Equal(t, "C", all[1].Name)
}

func TestSave_RequiresExistingCourse(t *testing.T) {
	r := NewProgressRepository()
	assert.ErrorIs(t, r.Save(course("Ghost", 10)), util.ErrCourseNotFound)
}

func TestFindByName_ReturnsCopy(t *testing.T) {
	r := NewProgressRepository()
	require.NoError(t, r.Create(course("Python", 45)))

	c, err := r.FindByName("Python")
	require.NoError(t, err)
	c.Completion = 99

	again, err := r.FindByName("Python")
	require.NoError(t, err)
	assert.Equal(t, 45, again.Completion)
}

func TestReplace_DropsLaterDuplicates(t *testing.T) {
	r := NewProgressRepository()
	require.NoError(t, r.Create(course("Old", 1)))

	r.Replace([]*model.Course{
		course("Python", 45),
		course("AI", 85),
		course("Python", 99),
	})

	all := r.All()
	require.Len(t, all, 2)
	assert.Equal(t, "Python", all[0].Name)
	assert.Equal(t, 45, all[0].Completion)
	assert.Equal(t, "AI", all[1].Name)
}
