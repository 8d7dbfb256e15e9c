package manager

import (
	"github.com/tgienger/taskdesk/internal/models"
)

// Mode says whether the editor creates a new task or edits an existing one
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// Dialog is the single modal state of the task list. Exactly one of Closed,
// Editor or ConfirmDelete is active at a time.
type Dialog interface {
	dialog()
}

// Closed means no dialog is showing
type Closed struct{}

// Editor is the create/edit form. Target is nil in create mode.
type Editor struct {
	Mode   Mode
	Target *models.Task
}

// ConfirmDelete asks the user to confirm removing TargetID
type ConfirmDelete struct {
	TargetID string
}

func (Closed) dialog()        {}
func (Editor) dialog()        {}
func (ConfirmDelete) dialog() {}

// Title is the heading shown above the form
func (e Editor) Title() string {
	if e.Mode == ModeEdit {
		return "Edit Task"
	}
	return "Add New Task"
}

// SubmitLabel is the text of the form's commit button
func (e Editor) SubmitLabel() string {
	if e.Mode == ModeEdit {
		return "Update Task"
	}
	return "Add Task"
}

// Initial returns the draft the form starts from
func (e Editor) Initial() models.Draft {
	if e.Target != nil {
		return e.Target.Draft()
	}
	return models.Draft{Status: models.StatusToDo}
}

func dialogName(d Dialog) string {
	switch d := d.(type) {
	case Editor:
		return "editor(" + d.Mode.String() + ")"
	case ConfirmDelete:
		return "confirm-delete(" + d.TargetID + ")"
	default:
		return "closed"
	}
}
