// Package state holds the in-memory application state: projects, tasks,
// the current selection and the invalid-input modal.
package state

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/tgienger/projman/internal/ids"
	"github.com/tgienger/projman/internal/models"
)

// OrphanPolicy decides what happens to a project's tasks when it is deleted
type OrphanPolicy string

const (
	OrphansCascade OrphanPolicy = "cascade"
	OrphansKeep    OrphanPolicy = "keep"
)

// ParseOrphanPolicy validates a policy name; empty means cascade
func ParseOrphanPolicy(s string) (OrphanPolicy, error) {
	switch p := OrphanPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case OrphansCascade, OrphansKeep:
		return p, nil
	case "":
		return OrphansCascade, nil
	default:
		return "", fmt.Errorf("unknown orphan policy %q (want cascade or keep)", s)
	}
}

// Store is the single owner of all mutable state. Every operation replaces
// the current Snapshot with a new one. Store is meant to be driven from one
// goroutine (the bubbletea update loop) and does no locking.
type Store struct {
	ids     ids.Generator
	orphans OrphanPolicy
	logger  *slog.Logger
	current Snapshot
}

// Option configures a Store
type Option func(*Store)

// WithIDGenerator sets the generator used for new projects and tasks
func WithIDGenerator(g ids.Generator) Option {
	return func(s *Store) { s.ids = g }
}

// WithOrphanPolicy sets what DeleteProject does with the project's tasks
func WithOrphanPolicy(p OrphanPolicy) Option {
	return func(s *Store) { s.orphans = p }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// New creates an empty store with no selection and the modal closed
func New(opts ...Option) *Store {
	s := &Store{
		ids:     ids.UUID{},
		orphans: OrphansCascade,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		current: Snapshot{selection: NoSelection()},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns the current state
func (s *Store) Snapshot() Snapshot { return s.current }

// commit installs next as the new current snapshot
func (s *Store) commit(op string, next Snapshot) {
	next.version = s.current.version + 1
	s.current = next
	s.logger.Debug("state transition",
		"op", op,
		"version", next.version,
		"selection", next.selection.String(),
		"projects", len(next.projects),
		"tasks", len(next.tasks),
		"modal_open", next.modalOpen,
	)
}

// StartAddProject switches to the creation form
func (s *Store) StartAddProject() {
	next := s.current
	next.selection = AddMode()
	s.commit("start_add_project", next)
}

// CancelAddProject clears the selection. It is valid from any state.
func (s *Store) CancelAddProject() {
	next := s.current
	next.selection = NoSelection()
	s.commit("cancel_add_project", next)
}

// AddProject validates in and appends a new project. When a required field
// is blank nothing is created, the selection is left alone, the modal
// opens and a *ValidationError is returned.
func (s *Store) AddProject(in models.ProjectInput) (models.Project, error) {
	var verr *ValidationError
	if err := ValidateProject(in); errors.As(err, &verr) {
		next := s.current
		next.modalOpen = true
		next.missing = verr.Missing
		s.commit("add_project_rejected", next)
		s.logger.Info("project rejected", "missing", strings.Join(verr.Missing, ","))
		return models.Project{}, err
	}

	in = in.Trimmed()
	p := models.Project{
		ID:          s.ids.NewID(),
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
	}

	next := s.current
	projects := make([]models.Project, 0, len(s.current.projects)+1)
	projects = append(projects, s.current.projects...)
	next.projects = append(projects, p)
	next.selection = NoSelection()
	s.commit("add_project", next)
	return p, nil
}

// DismissModal closes the invalid-input dialog
func (s *Store) DismissModal() {
	next := s.current
	next.modalOpen = false
	next.missing = nil
	s.commit("dismiss_modal", next)
}

// SelectProject views the project with id. Unknown ids are accepted; the
// view falls back to "no project selected".
func (s *Store) SelectProject(id string) {
	next := s.current
	next.selection = Selected(id)
	s.commit("select_project", next)
}

// DeleteProject removes the selected project and clears the selection.
// With nothing selected it does nothing and returns false.
func (s *Store) DeleteProject() (models.Project, bool) {
	id, ok := s.current.selection.ProjectID()
	if !ok {
		s.logger.Info("delete project ignored", "selection", s.current.selection.String())
		return models.Project{}, false
	}

	var (
		removed models.Project
		found   bool
	)
	projects := make([]models.Project, 0, len(s.current.projects))
	for _, p := range s.current.projects {
		if p.ID == id {
			removed, found = p, true
			continue
		}
		projects = append(projects, p)
	}

	next := s.current
	next.projects = projects
	next.selection = NoSelection()
	if found && s.orphans == OrphansCascade {
		tasks := make([]models.Task, 0, len(s.current.tasks))
		for _, t := range s.current.tasks {
			if t.ProjectID != id {
				tasks = append(tasks, t)
			}
		}
		next.tasks = tasks
	}
	s.commit("delete_project", next)
	return removed, found
}

// AddTask prepends a task to the selected project. It returns
// ErrBlankTask for blank text and ErrNoProjectSelected when no existing
// project is selected.
func (s *Store) AddTask(text string) (models.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Task{}, ErrBlankTask
	}
	p, ok := s.current.SelectedProject()
	if !ok {
		s.logger.Info("task rejected", "selection", s.current.selection.String())
		return models.Task{}, ErrNoProjectSelected
	}

	t := models.Task{
		ID:        s.ids.NewID(),
		ProjectID: p.ID,
		Text:      text,
	}
	tasks := make([]models.Task, 0, len(s.current.tasks)+1)
	tasks = append(tasks, t)
	tasks = append(tasks, s.current.tasks...)

	next := s.current
	next.tasks = tasks
	s.commit("add_task", next)
	return t, nil
}

// DeleteTask removes the task with id and reports whether one was removed
func (s *Store) DeleteTask(id string) bool {
	tasks := make([]models.Task, 0, len(s.current.tasks))
	for _, t := range s.current.tasks {
		if t.ID != id {
			tasks = append(tasks, t)
		}
	}
	if len(tasks) == len(s.current.tasks) {
		return false
	}

	next := s.current
	next.tasks = tasks
	s.commit("delete_task", next)
	return true
}
