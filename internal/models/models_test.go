package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() Draft {
	return Draft{
		Title:       "Write docs",
		Description: "core doc",
		Status:      StatusToDo,
		DueDate:     Date(2025, time.August, 1),
	}
}

func TestValidate_AllFieldsEmpty(t *testing.T) {
	errs := Validate(Draft{})
	require.Len(t, errs, 4)
	assert.Equal(t, "Title is required.", errs[FieldTitle])
	assert.Equal(t, "Description is required.", errs[FieldDescription])
	assert.Equal(t, "Status is required.", errs[FieldStatus])
	assert.Equal(t, "Due Date is required.", errs[FieldDueDate])
}

func TestValidate_ValidDraft(t *testing.T) {
	errs := Validate(validDraft())
	assert.True(t, errs.Valid())
	assert.Empty(t, errs)
}

func TestValidate_WhitespaceOnly(t *testing.T) {
	d := validDraft()
	d.Title = "   "
	d.Description = "\t\n"
	errs := Validate(d)
	assert.Equal(t, FieldErrors{
		FieldTitle:       "Title is required.",
		FieldDescription: "Description is required.",
	}, errs)
}

func TestValidate_StatusOutsideEnumeration(t *testing.T) {
	d := validDraft()
	d.Status = "Blocked"
	errs := Validate(d)
	assert.Equal(t, FieldErrors{FieldStatus: "Status is required."}, errs)
}

func TestValidate_PastDueDateAccepted(t *testing.T) {
	d := validDraft()
	d.DueDate = Date(1999, time.January, 1)
	assert.True(t, Validate(d).Valid())
}

func TestCheck_ReturnsValidationError(t *testing.T) {
	d := validDraft()
	d.Title = ""
	err := Check(d)
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, FieldErrors{FieldTitle: "Title is required."}, verr.Fields)
	assert.Contains(t, err.Error(), "title: Title is required.")

	assert.NoError(t, Check(validDraft()))
}

func TestStatus_Cycle(t *testing.T) {
	assert.Equal(t, StatusInProgress, StatusToDo.Next())
	assert.Equal(t, StatusDone, StatusInProgress.Next())
	assert.Equal(t, StatusToDo, StatusDone.Next())
	assert.Equal(t, StatusDone, StatusToDo.Prev())
	assert.Equal(t, StatusToDo, Status("bogus").Next())
}

func TestParseStatus(t *testing.T) {
	st, ok := ParseStatus(" in progress ")
	require.True(t, ok)
	assert.Equal(t, StatusInProgress, st)

	_, ok = ParseStatus("archived")
	assert.False(t, ok)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-07-20")
	require.NoError(t, err)
	assert.Equal(t, Date(2025, time.July, 20), d)

	_, err = ParseDate("20/07/2025")
	assert.Error(t, err)
}

func TestTask_ApplyKeepsID(t *testing.T) {
	task := Task{ID: "7", Title: "old", Description: "old", Status: StatusDone, DueDate: Date(2025, 1, 1)}
	got := task.Apply(validDraft())
	assert.Equal(t, "7", got.ID)
	assert.Equal(t, validDraft(), got.Draft())
	assert.Equal(t, "N/A", Task{}.DueString(""))
	assert.Equal(t, "2025-08-01", got.DueString(""))
}
