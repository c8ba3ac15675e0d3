package state

import (
	"errors"
	"strings"

	"github.com/tgienger/projman/internal/models"
)

var (
	// ErrBlankTask is returned when a task is submitted without text
	ErrBlankTask = errors.New("task text is blank")
	// ErrNoProjectSelected is returned when a task is added while no existing project is selected
	ErrNoProjectSelected = errors.New("no project selected")
)

// Field names reported by ValidationError
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldDueDate     = "due date"
)

// ValidationError lists the required project fields that were blank
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// ValidateProject checks that title, description and due date are not
// blank after trimming. It returns nil or a *ValidationError.
func ValidateProject(in models.ProjectInput) error {
	in = in.Trimmed()

	var missing []string
	if in.Title == "" {
		missing = append(missing, FieldTitle)
	}
	if in.Description == "" {
		missing = append(missing, FieldDescription)
	}
	if in.DueDate == "" {
		missing = append(missing, FieldDueDate)
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}
