package store

import (
	"errors"
	"fmt"
	"log"
	"slices"

	"github.com/google/uuid"
	"github.com/tgienger/taskdesk/internal/models"
)

var (
	// ErrNotFound is returned when an update targets an id that is not in the store
	ErrNotFound = errors.New("task not found")
	// ErrInvalidStatus is returned when a status is outside the enumeration
	ErrInvalidStatus = errors.New("invalid status")
	// ErrDuplicateID is returned when seeding would create two tasks with one id
	ErrDuplicateID = errors.New("duplicate task id")
)

// Store is the in-memory, insertion-ordered collection of tasks.
// It is owned by a single goroutine and does no locking.
type Store struct {
	tasks []models.Task
	newID func() string
}

// Option configures a Store
type Option func(*Store)

// WithIDGenerator replaces the default UUIDv7 id source
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		s.newID = fn
	}
}

// New creates an empty store
func New(opts ...Option) *Store {
	s := &Store{newID: newUUID}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func newUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// nextID draws ids until one is not already taken
func (s *Store) nextID() string {
	for {
		id := s.newID()
		if id != "" && s.indexOf(id) < 0 {
			return id
		}
		log.Printf("[store] id %q already taken, drawing another", id)
	}
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.tasks, func(t models.Task) bool { return t.ID == id })
}

// Seed appends pre-built tasks, keeping their ids. Every task must be valid and
// no id may collide with one already stored.
func (s *Store) Seed(tasks []models.Task) error {
	seen := make(map[string]struct{}, len(tasks))
	for _, t := range tasks {
		if t.ID == "" {
			return fmt.Errorf("seed %q: empty id", t.Title)
		}
		if _, dup := seen[t.ID]; dup || s.indexOf(t.ID) >= 0 {
			return fmt.Errorf("seed %q: %w", t.ID, ErrDuplicateID)
		}
		if err := models.Check(t.Draft()); err != nil {
			return fmt.Errorf("seed %q: %w", t.ID, err)
		}
		seen[t.ID] = struct{}{}
	}
	s.tasks = append(s.tasks, tasks...)
	return nil
}

// List returns a copy of all tasks in insertion order
func (s *Store) List() []models.Task {
	return slices.Clone(s.tasks)
}

// Len returns the number of stored tasks
func (s *Store) Len() int {
	return len(s.tasks)
}

// Get looks up a task by id. A missing id is reported with ok=false, not an error.
func (s *Store) Get(id string) (models.Task, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, false
	}
	return s.tasks[i], true
}

// Add validates d, assigns a fresh id and appends the task
func (s *Store) Add(d models.Draft) (models.Task, error) {
	if err := models.Check(d); err != nil {
		return models.Task{}, err
	}
	t := models.Task{ID: s.nextID()}.Apply(d)
	s.tasks = append(s.tasks, t)
	return t, nil
}

// Update replaces every mutable field of the task with the given id.
// The task keeps its position.
func (s *Store) Update(id string, d models.Draft) (models.Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, fmt.Errorf("update %q: %w", id, ErrNotFound)
	}
	if err := models.Check(d); err != nil {
		return models.Task{}, err
	}
	s.tasks[i] = s.tasks[i].Apply(d)
	return s.tasks[i], nil
}

// UpdateStatus replaces only the status of the task with the given id
func (s *Store) UpdateStatus(id string, status models.Status) (models.Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, fmt.Errorf("update status %q: %w", id, ErrNotFound)
	}
	if !status.Valid() {
		return models.Task{}, fmt.Errorf("update status %q to %q: %w", id, status, ErrInvalidStatus)
	}
	s.tasks[i].Status = status
	return s.tasks[i], nil
}

// Remove deletes the task with the given id. Removing a missing id is a no-op;
// the return value reports whether anything was removed.
func (s *Store) Remove(id string) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.tasks = slices.Delete(s.tasks, i, i+1)
	return true
}
