package views

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/projman/internal/models"
	"github.com/tgienger/projman/internal/ui/keys"
	"github.com/tgienger/projman/internal/ui/styles"
)

// Form focus positions
const (
	focusTitle = iota
	focusDescription
	focusDueDate
	focusSave
	focusCancel
	formFocusCount
)

// clamp returns val clamped between minVal and maxVal
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// ProjectForm is the creation form. Its inputs stay intact while the
// invalid-input modal is shown.
type ProjectForm struct {
	styles *styles.Styles
	keys   keys.KeyMap
	width  int

	title       textinput.Model
	description textarea.Model
	dueDate     textinput.Model
	focusIdx    int
}

func NewProjectForm(s *styles.Styles, km keys.KeyMap) *ProjectForm {
	title := textinput.New()
	title.Placeholder = "Project title"
	title.CharLimit = 100

	desc := textarea.New()
	desc.Placeholder = "What is this project about?"
	desc.CharLimit = 1000
	desc.SetWidth(50)
	desc.SetHeight(4)
	desc.ShowLineNumbers = false

	due := textinput.New()
	due.Placeholder = "YYYY-MM-DD"
	due.CharLimit = 10

	f := &ProjectForm{
		styles:      s,
		keys:        km,
		title:       title,
		description: desc,
		dueDate:     due,
	}
	f.updateFocus()
	return f
}

func (f *ProjectForm) Init() tea.Cmd { return textinput.Blink }

// Reset clears every field and focuses the title
func (f *ProjectForm) Reset() {
	f.title.Reset()
	f.description.Reset()
	f.dueDate.Reset()
	f.focusIdx = focusTitle
	f.updateFocus()
}

// Values returns what is currently entered, untrimmed
func (f *ProjectForm) Values() models.ProjectInput {
	return models.ProjectInput{
		Title:       f.title.Value(),
		Description: f.description.Value(),
		DueDate:     f.dueDate.Value(),
	}
}

// FocusIndex reports which field or button has focus
func (f *ProjectForm) FocusIndex() int { return f.focusIdx }

func (f *ProjectForm) SetWidth(w int) {
	f.width = w
	inputWidth := clamp(w-8, 20, 60)
	f.title.Width = inputWidth - 6
	f.dueDate.Width = inputWidth - 6
	f.description.SetWidth(inputWidth - 2)
}

func (f *ProjectForm) submit() tea.Cmd {
	return emit(ProjectSubmitted{Input: f.Values()})
}

func (f *ProjectForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, f.updateFocused(msg)
	}

	switch {
	case key.Matches(km, f.keys.Back):
		return f, emit(CancelRequested{})

	case key.Matches(km, f.keys.Save):
		return f, f.submit()

	case key.Matches(km, f.keys.ShiftTab):
		f.focusIdx = (f.focusIdx + formFocusCount - 1) % formFocusCount
		f.updateFocus()
		return f, nil

	case key.Matches(km, f.keys.Tab):
		f.focusIdx = (f.focusIdx + 1) % formFocusCount
		f.updateFocus()
		return f, nil

	case key.Matches(km, f.keys.Enter):
		switch f.focusIdx {
		case focusTitle, focusDueDate:
			f.focusIdx++
			f.updateFocus()
			return f, nil
		case focusSave:
			return f, f.submit()
		case focusCancel:
			return f, emit(CancelRequested{})
		}
	}

	return f, f.updateFocused(msg)
}

func (f *ProjectForm) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focusIdx {
	case focusTitle:
		f.title, cmd = f.title.Update(msg)
	case focusDescription:
		f.description, cmd = f.description.Update(msg)
	case focusDueDate:
		f.dueDate, cmd = f.dueDate.Update(msg)
	}
	return cmd
}

func (f *ProjectForm) updateFocus() {
	f.title.Blur()
	f.description.Blur()
	f.dueDate.Blur()
	switch f.focusIdx {
	case focusTitle:
		f.title.Focus()
	case focusDescription:
		f.description.Focus()
	case focusDueDate:
		f.dueDate.Focus()
	}
}

func (f *ProjectForm) View() string {
	s := f.styles

	titleStyle, descStyle, dueStyle := s.Input, s.Input, s.Input
	saveStyle, cancelStyle := s.Button, s.Button
	switch f.focusIdx {
	case focusTitle:
		titleStyle = s.InputFocused
	case focusDescription:
		descStyle = s.InputFocused
	case focusDueDate:
		dueStyle = s.InputFocused
	case focusSave:
		saveStyle = s.ButtonFocused
	case focusCancel:
		cancelStyle = s.ButtonFocused
	}

	inputWidth := clamp(f.width-8, 20, 60)

	return lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("New Project"),
		"",
		s.Label.Render("TITLE"),
		titleStyle.Width(inputWidth).Render(f.title.View()),
		s.Label.Render("DESCRIPTION"),
		descStyle.Width(inputWidth).Render(f.description.View()),
		s.Label.Render("DUE DATE"),
		dueStyle.Width(inputWidth).Render(f.dueDate.View()),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center,
			cancelStyle.Render("Cancel"),
			" ",
			saveStyle.Render("Save"),
		),
		"",
		s.TitleMuted.Render("Tab: next • Ctrl+S: save • Esc: cancel"),
	)
}
