package state

import (
	"slices"

	"github.com/tgienger/projman/internal/models"
)

// Snapshot is one immutable version of the application state. Accessors
// hand out copies so readers cannot change what other readers see.
type Snapshot struct {
	version   uint64
	projects  []models.Project
	tasks     []models.Task // newest first
	selection Selection
	modalOpen bool
	missing   []string // blank fields behind the open modal
}

func (s Snapshot) Version() uint64 { return s.version }

// Projects returns all projects in creation order
func (s Snapshot) Projects() []models.Project { return slices.Clone(s.projects) }

// Tasks returns every task of every project, newest first
func (s Snapshot) Tasks() []models.Task { return slices.Clone(s.tasks) }

func (s Snapshot) Selection() Selection { return s.selection }

// ModalOpen reports whether the invalid-input dialog is showing
func (s Snapshot) ModalOpen() bool { return s.modalOpen }

// MissingFields lists the blank fields that opened the modal
func (s Snapshot) MissingFields() []string { return slices.Clone(s.missing) }

// Project looks up a project by id
func (s Snapshot) Project(id string) (models.Project, bool) {
	for _, p := range s.projects {
		if p.ID == id {
			return p, true
		}
	}
	return models.Project{}, false
}

// TasksFor returns the tasks belonging to projectID, newest first. The
// filter runs over the full task list on every call.
func (s Snapshot) TasksFor(projectID string) []models.Task {
	var out []models.Task
	for _, t := range s.tasks {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out
}

// SelectedProject returns the project being viewed, if it still exists
func (s Snapshot) SelectedProject() (models.Project, bool) {
	id, ok := s.selection.ProjectID()
	if !ok {
		return models.Project{}, false
	}
	return s.Project(id)
}
