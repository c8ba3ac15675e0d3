package models

import (
	"strings"
	"time"
)

// DueDateLayout is the format the creation form asks for
const DueDateLayout = "2006-01-02"

// Project represents a user-created work item
type Project struct {
	ID          string
	Title       string
	Description string
	DueDate     string // as entered
}

// Task represents a single to-do entry belonging to a project
type Task struct {
	ID        string
	ProjectID string
	Text      string
}

// ProjectInput holds the values read from the creation form at submit time
type ProjectInput struct {
	Title       string
	Description string
	DueDate     string
}

// Trimmed returns a copy with surrounding whitespace removed from every field
func (in ProjectInput) Trimmed() ProjectInput {
	return ProjectInput{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		DueDate:     strings.TrimSpace(in.DueDate),
	}
}

// Due parses the due date. ok is false when it was not entered as YYYY-MM-DD.
func (p Project) Due() (due time.Time, ok bool) {
	t, err := time.Parse(DueDateLayout, strings.TrimSpace(p.DueDate))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDue renders the due date as "Jan 2, 2006", falling back to the raw text
func (p Project) FormatDue() string {
	if t, ok := p.Due(); ok {
		return t.Format("Jan 2, 2006")
	}
	return p.DueDate
}
