package models

import (
	"strings"
	"time"
)

// Status is the workflow state of a task. Only the values in Statuses are valid.
type Status string

const (
	StatusToDo       Status = "To Do"
	StatusInProgress Status = "In Progress"
	StatusDone       Status = "Done"
)

// Statuses returns the fixed status enumeration in display order
func Statuses() []Status {
	return []Status{StatusToDo, StatusInProgress, StatusDone}
}

// Valid reports whether s is a member of the status enumeration
func (s Status) Valid() bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Next returns the status after s, wrapping around. Unknown values map to StatusToDo.
func (s Status) Next() Status {
	return s.shift(1)
}

// Prev returns the status before s, wrapping around. Unknown values map to StatusToDo.
func (s Status) Prev() Status {
	return s.shift(-1)
}

func (s Status) shift(dir int) Status {
	all := Statuses()
	for i, st := range all {
		if st == s {
			return all[(i+dir+len(all))%len(all)]
		}
	}
	return StatusToDo
}

// ParseStatus matches a status by name, ignoring case and surrounding space
func ParseStatus(v string) (Status, bool) {
	v = strings.TrimSpace(v)
	for _, st := range Statuses() {
		if strings.EqualFold(string(st), v) {
			return st, true
		}
	}
	return "", false
}

// DateLayout is the canonical text form of a due date
const DateLayout = "2006-01-02"

// Date returns the calendar date y-m-d at midnight UTC
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD due date
func ParseDate(v string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(v), time.UTC)
}

// Task represents a single task
type Task struct {
	ID          string
	Title       string
	Description string
	Status      Status
	DueDate     time.Time
}

// Draft holds the editable fields of a task before it is committed to the store
type Draft struct {
	Title       string
	Description string
	Status      Status
	DueDate     time.Time // zero means not set
}

// Draft returns the editable fields of t
func (t Task) Draft() Draft {
	return Draft{
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		DueDate:     t.DueDate,
	}
}

// Apply returns t with every mutable field replaced by d. The ID is kept.
func (t Task) Apply(d Draft) Task {
	t.Title = d.Title
	t.Description = d.Description
	t.Status = d.Status
	t.DueDate = d.DueDate
	return t
}

// DueString formats the due date for display, "N/A" when unset
func (t Task) DueString(layout string) string {
	if t.DueDate.IsZero() {
		return "N/A"
	}
	if layout == "" {
		layout = DateLayout
	}
	return t.DueDate.Format(layout)
}
