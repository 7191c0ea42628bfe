// Package store owns the application state. All mutation goes through
// Store methods, and every successful mutation persists synchronously
// before returning.
package store

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mfigueiredo/tarefa/internal/db"
	"github.com/mfigueiredo/tarefa/internal/models"
	"github.com/mfigueiredo/tarefa/internal/view"
)

// Slot names in the persistence layer
const (
	SlotTasks = "tasks"
	SlotTheme = "theme"
)

// Store is the authoritative owner of tasks, theme and active filters
type Store struct {
	db *db.DB

	tasks []models.Task
	dark  bool

	statusFilter   models.StatusFilter
	categoryFilter string

	pendingRemove string // id of the task awaiting delete confirmation
}

// New creates a Store backed by d and hydrates it from the persisted
// slots. Malformed or absent data degrades to an empty collection and
// the default (light) theme.
func New(d *db.DB) *Store {
	s := &Store{
		db:             d,
		statusFilter:   models.StatusAll,
		categoryFilter: models.CategoryAll,
	}
	s.load()
	return s
}

// load hydrates tasks and theme from storage. Never fails: bad data
// reads as empty.
func (s *Store) load() {
	s.tasks = nil
	if raw, ok, err := s.db.Get(SlotTasks); err == nil && ok {
		var tasks []models.Task
		if err := json.Unmarshal([]byte(raw), &tasks); err == nil {
			s.tasks = tasks
		}
	}

	s.dark = false
	if raw, ok, err := s.db.Get(SlotTheme); err == nil && ok {
		s.dark = raw == "true"
	}
}

// persist writes the full task collection back to its slot
func (s *Store) persist() error {
	data, err := json.Marshal(s.tasks)
	if err != nil {
		return err
	}
	return s.db.Put(SlotTasks, string(data))
}

// Add appends a new pending task and persists. Whitespace-only text is
// a silent no-op: no task, no error.
func (s *Store) Add(text, category string, priority models.Priority, due *time.Time) (*models.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	task := models.Task{
		ID:        uuid.Must(uuid.NewUUID()).String(),
		Text:      text,
		Completed: false,
		Category:  category,
		Priority:  priority,
		Due:       due,
		CreatedAt: time.Now(),
	}
	s.tasks = append(s.tasks, task)

	if err := s.persist(); err != nil {
		return nil, err
	}
	return &task, nil
}

// ToggleCompleted flips the completion state of the task with the given
// id and persists. Unknown ids are a no-op.
func (s *Store) ToggleCompleted(id string) (*models.Task, error) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = !s.tasks[i].Completed
			if err := s.persist(); err != nil {
				return nil, err
			}
			return &s.tasks[i], nil
		}
	}
	return nil, nil
}

// RequestRemove records a pending delete intent for the task with the
// given id. Returns the task awaiting confirmation, or nil when the id
// is unknown. Nothing is removed until ConfirmRemove.
func (s *Store) RequestRemove(id string) *models.Task {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.pendingRemove = id
			return &s.tasks[i]
		}
	}
	return nil
}

// PendingRemove returns the task currently awaiting delete confirmation
func (s *Store) PendingRemove() *models.Task {
	if s.pendingRemove == "" {
		return nil
	}
	for i := range s.tasks {
		if s.tasks[i].ID == s.pendingRemove {
			return &s.tasks[i]
		}
	}
	return nil
}

// ConfirmRemove resolves the pending delete intent, removing exactly
// that task and persisting. Without a pending intent it is a no-op.
func (s *Store) ConfirmRemove() (*models.Task, error) {
	id := s.pendingRemove
	s.pendingRemove = ""
	if id == "" {
		return nil, nil
	}
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			removed := s.tasks[i]
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			if err := s.persist(); err != nil {
				return nil, err
			}
			return &removed, nil
		}
	}
	return nil, nil
}

// CancelRemove clears the pending delete intent, leaving the store
// unchanged
func (s *Store) CancelRemove() {
	s.pendingRemove = ""
}

// Tasks returns a copy of the full task collection in insertion order
func (s *Store) Tasks() []models.Task {
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Visible returns the projection of the store through the active filters
func (s *Store) Visible() []models.Task {
	return view.VisibleTasks(s.tasks, s.statusFilter, s.categoryFilter)
}

// StatusFilter returns the active status filter
func (s *Store) StatusFilter() models.StatusFilter {
	return s.statusFilter
}

// SetStatusFilter changes the active status filter
func (s *Store) SetStatusFilter(f models.StatusFilter) {
	s.statusFilter = f
}

// CategoryFilter returns the active category filter
func (s *Store) CategoryFilter() string {
	return s.categoryFilter
}

// SetCategoryFilter changes the active category filter
func (s *Store) SetCategoryFilter(category string) {
	s.categoryFilter = category
}

// Dark reports whether the dark theme is active
func (s *Store) Dark() bool {
	return s.dark
}

// ToggleTheme flips the theme flag and persists it as "true"/"false"
func (s *Store) ToggleTheme() (bool, error) {
	s.dark = !s.dark
	value := "false"
	if s.dark {
		value = "true"
	}
	if err := s.db.Put(SlotTheme, value); err != nil {
		return s.dark, err
	}
	return s.dark, nil
}
