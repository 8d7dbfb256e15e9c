// Package manager coordinates the task store, the search filter, form
// validation and the dialog state of the task list.
package manager

import (
	"errors"
	"fmt"
	"log"
	"maps"
	"slices"

	"github.com/tgienger/taskdesk/internal/models"
	"github.com/tgienger/taskdesk/internal/store"
)

// ErrInvalidTransition is returned when a dialog operation does not apply to
// the current dialog state. The state is left unchanged.
var ErrInvalidTransition = errors.New("invalid dialog transition")

// Manager owns the task list view state: search query, visible rows, dialog and
// per-field form errors. Like the store it is single-goroutine.
type Manager struct {
	store   *store.Store
	query   string
	visible []models.Task
	dialog  Dialog
	errs    models.FieldErrors
}

// New creates a manager over s with no query and no dialog open
func New(s *store.Store) *Manager {
	m := &Manager{
		store:  s,
		dialog: Closed{},
		errs:   models.FieldErrors{},
	}
	m.refresh()
	return m
}

func (m *Manager) refresh() {
	m.visible = store.Filter(m.store.List(), m.query)
}

func (m *Manager) transitionError(op string) error {
	log.Printf("[manager] %s not allowed while %s", op, dialogName(m.dialog))
	return fmt.Errorf("%s from %s: %w", op, dialogName(m.dialog), ErrInvalidTransition)
}

// VisibleTasks returns the tasks matching the current query, in store order
func (m *Manager) VisibleTasks() []models.Task {
	return slices.Clone(m.visible)
}

// Tasks returns every stored task
func (m *Manager) Tasks() []models.Task {
	return m.store.List()
}

// Lookup finds a task by id. A missing id is a normal outcome.
func (m *Manager) Lookup(id string) (models.Task, bool) {
	return m.store.Get(id)
}

// Report counts all stored tasks per status
func (m *Manager) Report() []store.StatusCount {
	return store.CountByStatus(m.store.List())
}

// Query returns the current search text
func (m *Manager) Query() string {
	return m.query
}

// SetSearchQuery changes the search text and recomputes the visible rows
func (m *Manager) SetSearchQuery(q string) {
	m.query = q
	m.refresh()
}

// Dialog returns the active dialog state
func (m *Manager) Dialog() Dialog {
	return m.dialog
}

// FieldErrors returns a copy of the current form errors
func (m *Manager) FieldErrors() models.FieldErrors {
	return maps.Clone(m.errs)
}

// ClearFieldError drops the error for one field, typically when the user edits it
func (m *Manager) ClearFieldError(f models.Field) {
	delete(m.errs, f)
}

// AddTask validates d and appends it to the store
func (m *Manager) AddTask(d models.Draft) (models.Task, error) {
	t, err := m.store.Add(d)
	if err != nil {
		return models.Task{}, err
	}
	m.refresh()
	return t, nil
}

// UpdateTask replaces every mutable field of task id
func (m *Manager) UpdateTask(id string, d models.Draft) (models.Task, error) {
	t, err := m.store.Update(id, d)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Printf("[manager] %v", err)
		}
		return models.Task{}, err
	}
	m.refresh()
	return t, nil
}

// UpdateStatus is the quick-edit path: it sets only the status, without the
// editor dialog and without form validation.
func (m *Manager) UpdateStatus(id string, status models.Status) (models.Task, error) {
	t, err := m.store.UpdateStatus(id, status)
	if err != nil {
		log.Printf("[manager] %v", err)
		return models.Task{}, err
	}
	m.refresh()
	return t, nil
}

// DeleteTask removes task id. Deleting a missing id does nothing.
func (m *Manager) DeleteTask(id string) {
	if !m.store.Remove(id) {
		log.Printf("[manager] delete %q: no such task, ignored", id)
	}
	m.refresh()
}

// OpenCreate opens an empty editor
func (m *Manager) OpenCreate() error {
	if _, ok := m.dialog.(Closed); !ok {
		return m.transitionError("open create")
	}
	m.errs = models.FieldErrors{}
	m.dialog = Editor{Mode: ModeCreate}
	return nil
}

// OpenEdit opens the editor on the stored copy of task
func (m *Manager) OpenEdit(task models.Task) error {
	if _, ok := m.dialog.(Closed); !ok {
		return m.transitionError("open edit")
	}
	current, ok := m.store.Get(task.ID)
	if !ok {
		return fmt.Errorf("open edit %q: %w", task.ID, store.ErrNotFound)
	}
	m.errs = models.FieldErrors{}
	m.dialog = Editor{Mode: ModeEdit, Target: &current}
	return nil
}

// RequestDelete opens the delete confirmation for id
func (m *Manager) RequestDelete(id string) error {
	if _, ok := m.dialog.(Closed); !ok {
		return m.transitionError("request delete")
	}
	m.dialog = ConfirmDelete{TargetID: id}
	return nil
}

// DismissEditor closes the editor without saving
func (m *Manager) DismissEditor() error {
	if _, ok := m.dialog.(Editor); !ok {
		return m.transitionError("dismiss editor")
	}
	m.close()
	return nil
}

// DismissDelete closes the delete confirmation without deleting
func (m *Manager) DismissDelete() error {
	if _, ok := m.dialog.(ConfirmDelete); !ok {
		return m.transitionError("dismiss delete")
	}
	m.close()
	return nil
}

// CommitEditor validates d and, if it passes, adds or updates the task and
// closes the editor. On validation failure the editor stays open and the
// returned *models.ValidationError carries the same errors as FieldErrors.
func (m *Manager) CommitEditor(d models.Draft) (models.Task, error) {
	ed, ok := m.dialog.(Editor)
	if !ok {
		return models.Task{}, m.transitionError("commit editor")
	}
	if errs := models.Validate(d); !errs.Valid() {
		m.errs = errs
		return models.Task{}, &models.ValidationError{Fields: maps.Clone(errs)}
	}

	var (
		t   models.Task
		err error
	)
	if ed.Mode == ModeEdit {
		t, err = m.UpdateTask(ed.Target.ID, d)
	} else {
		t, err = m.AddTask(d)
	}
	if err != nil {
		return models.Task{}, err
	}
	m.close()
	return t, nil
}

// CommitDelete removes the targeted task and closes the confirmation. It
// reports whether a task was actually removed.
func (m *Manager) CommitDelete() (bool, error) {
	cd, ok := m.dialog.(ConfirmDelete)
	if !ok {
		return false, m.transitionError("commit delete")
	}
	removed := m.store.Remove(cd.TargetID)
	if !removed {
		log.Printf("[manager] delete %q: no such task, ignored", cd.TargetID)
	}
	m.close()
	m.refresh()
	return removed, nil
}

func (m *Manager) close() {
	m.dialog = Closed{}
	m.errs = models.FieldErrors{}
}
