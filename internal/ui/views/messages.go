package views

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tgienger/projman/internal/models"
)

// Views never change application state themselves. They report what the
// user asked for with these messages and the app applies it to the store.

// CreateProjectRequested asks to open the creation form
type CreateProjectRequested struct{}

// CancelRequested asks to leave the creation form
type CancelRequested struct{}

// ProjectSubmitted carries the form values at submit time
type ProjectSubmitted struct {
	Input models.ProjectInput
}

// ProjectSelected asks to view a project
type ProjectSelected struct {
	ID string
}

// DeletePromptRequested asks to confirm deletion of a project
type DeletePromptRequested struct {
	ID string
}

// ProjectDeletionRequested asks to delete the selected project
type ProjectDeletionRequested struct{}

// TaskSubmitted carries the text of a new task for the selected project
type TaskSubmitted struct {
	Text string
}

// TaskDeletionRequested asks to remove a task
type TaskDeletionRequested struct {
	ID string
}

// ModalDismissed acknowledges the invalid-input dialog
type ModalDismissed struct{}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
