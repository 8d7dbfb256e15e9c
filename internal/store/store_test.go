package store

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tgienger/taskdesk/internal/models"
)

func seeded(t *testing.T, opts ...Option) *Store {
	t.Helper()
	s := New(opts...)
	err := s.Seed([]models.Task{
		{ID: "1", Title: "Plan project roadmap", Description: "Outline milestones.", Status: models.StatusToDo, DueDate: models.Date(2025, time.July, 20)},
		{ID: "2", Title: "Develop login page", Description: "Responsive login UI.", Status: models.StatusDone, DueDate: models.Date(2025, time.July, 10)},
	})
	require.NoError(t, err)
	return s
}

func draft(title string) models.Draft {
	return models.Draft{
		Title:       title,
		Description: "core doc",
		Status:      models.StatusToDo,
		DueDate:     models.Date(2025, time.August, 1),
	}
}

func TestStore_AddAssignsUniqueIDs(t *testing.T) {
	s := New()
	ids := map[string]bool{}
	for i := 0; i < 200; i++ {
		task, err := s.Add(draft(fmt.Sprintf("task %d", i)))
		require.NoError(t, err)
		require.False(t, ids[task.ID], "duplicate id %s", task.ID)
		ids[task.ID] = true
	}
	assert.Equal(t, 200, s.Len())
}

func TestStore_AddRedrawsCollidingID(t *testing.T) {
	seq := []string{"1", "2", "", "3"}
	s := seeded(t, WithIDGenerator(func() string {
		id := seq[0]
		seq = seq[1:]
		return id
	}))

	task, err := s.Add(draft("Write docs"))
	require.NoError(t, err)
	assert.Equal(t, "3", task.ID)
}

func TestStore_AddRoundTrip(t *testing.T) {
	s := seeded(t)
	d := draft("Write docs")

	task, err := s.Add(d)
	require.NoError(t, err)
	assert.NotEqual(t, "1", task.ID)
	assert.NotEqual(t, "2", task.ID)

	list := s.List()
	require.Len(t, list, 3)
	assert.Equal(t, task, list[2])
	assert.Equal(t, d, list[2].Draft())
}

func TestStore_AddRejectsInvalidDraft(t *testing.T) {
	s := seeded(t)
	d := draft("")

	_, err := s.Add(d)
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, models.FieldErrors{models.FieldTitle: "Title is required."}, verr.Fields)
	assert.Equal(t, 2, s.Len())
}

func TestStore_UpdateReplacesFieldsInPlace(t *testing.T) {
	s := seeded(t)
	before := s.List()

	d := draft("Renamed")
	d.Status = models.StatusInProgress
	got, err := s.Update("1", d)
	require.NoError(t, err)
	assert.Equal(t, "1", got.ID)

	after := s.List()
	require.Len(t, after, 2)
	assert.Equal(t, got, after[0])
	assert.Equal(t, d, after[0].Draft())
	assert.Equal(t, before[1], after[1])
}

func TestStore_UpdateMissingID(t *testing.T) {
	s := seeded(t)
	_, err := s.Update("999", draft("x"))
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestStore_UpdateInvalidDraftLeavesTask(t *testing.T) {
	s := seeded(t)
	before, _ := s.Get("1")
	_, err := s.Update("1", models.Draft{})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 4)
	after, _ := s.Get("1")
	assert.Equal(t, before, after)
}

func TestStore_UpdateStatus(t *testing.T) {
	s := seeded(t)
	one, _ := s.Get("1")

	got, err := s.UpdateStatus("2", models.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, got.Status)

	list := s.List()
	assert.Equal(t, models.StatusInProgress, list[1].Status)
	assert.Equal(t, "Develop login page", list[1].Title)
	assert.Equal(t, one, list[0])
}

func TestStore_UpdateStatusErrors(t *testing.T) {
	s := seeded(t)
	_, err := s.UpdateStatus("999", models.StatusDone)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.UpdateStatus("1", "Blocked")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	task, _ := s.Get("1")
	assert.Equal(t, models.StatusToDo, task.Status)
}

func TestStore_RemoveMissingIsNoop(t *testing.T) {
	s := seeded(t)
	before := s.List()
	assert.False(t, s.Remove("999"))
	assert.Equal(t, before, s.List())
}

func TestStore_Remove(t *testing.T) {
	s := seeded(t)
	assert.True(t, s.Remove("1"))
	list := s.List()
	require.Len(t, list, 1)
	assert.Equal(t, "2", list[0].ID)
	_, ok := s.Get("1")
	assert.False(t, ok)
}

func TestStore_ListIsACopy(t *testing.T) {
	s := seeded(t)
	list := s.List()
	list[0].Title = "mutated"

	task, _ := s.Get("1")
	assert.Equal(t, "Plan project roadmap", task.Title)
	assert.Equal(t, 2, s.Len())
}

func TestStore_SeedRejectsBadData(t *testing.T) {
	s := seeded(t)

	err := s.Seed([]models.Task{{ID: "1", Title: "a", Description: "b", Status: models.StatusDone, DueDate: models.Date(2025, 1, 1)}})
	assert.ErrorIs(t, err, ErrDuplicateID)

	err = s.Seed([]models.Task{{ID: "9", Title: "a", Description: "b", Status: "Later", DueDate: models.Date(2025, 1, 1)}})
	var verr *models.ValidationError
	assert.ErrorAs(t, err, &verr)

	err = s.Seed([]models.Task{{Title: "a"}})
	assert.Error(t, err)

	assert.Equal(t, 2, s.Len())
}

func TestStore_GetMissing(t *testing.T) {
	s := seeded(t)
	_, ok := s.Get("999")
	assert.False(t, ok)
}
