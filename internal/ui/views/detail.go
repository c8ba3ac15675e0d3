package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/tgienger/projman/internal/models"
	"github.com/tgienger/projman/internal/ui/keys"
	"github.com/tgienger/projman/internal/ui/styles"
)

// DetailFocus is the part of the detail pane that receives keys
type DetailFocus int

const (
	FocusTaskInput DetailFocus = iota
	FocusTaskList
)

// ProjectDetail shows one project and its tasks
type ProjectDetail struct {
	styles   *styles.Styles
	keys     keys.KeyMap
	markdown bool
	width    int
	height   int

	project models.Project
	tasks   []models.Task

	focus     DetailFocus
	cursor    int
	taskInput textinput.Model
}

func NewProjectDetail(s *styles.Styles, km keys.KeyMap, markdown bool) *ProjectDetail {
	input := textinput.New()
	input.Placeholder = "Add a task..."
	input.CharLimit = 200

	return &ProjectDetail{
		styles:    s,
		keys:      km,
		markdown:  markdown,
		taskInput: input,
	}
}

func (v *ProjectDetail) Init() tea.Cmd { return textinput.Blink }

// SetProject shows p with its tasks. Switching to another project clears
// the task input.
func (v *ProjectDetail) SetProject(p models.Project, tasks []models.Task) {
	if p.ID != v.project.ID {
		v.taskInput.Reset()
		v.cursor = 0
		v.focus = FocusTaskInput
	}
	v.project = p
	v.tasks = tasks
	if v.cursor >= len(v.tasks) {
		v.cursor = max(0, len(v.tasks)-1)
	}
	if len(v.tasks) == 0 {
		v.focus = FocusTaskInput
	}
}

// Focus gives keyboard focus to the task input
func (v *ProjectDetail) Focus() tea.Cmd {
	v.focus = FocusTaskInput
	return v.taskInput.Focus()
}

func (v *ProjectDetail) Blur() { v.taskInput.Blur() }

// ClearInput empties the task input after a task was added
func (v *ProjectDetail) ClearInput() { v.taskInput.Reset() }

func (v *ProjectDetail) InputValue() string { return v.taskInput.Value() }

func (v *ProjectDetail) FocusArea() DetailFocus { return v.focus }

func (v *ProjectDetail) SetSize(w, h int) {
	v.width = w
	v.height = h
	v.taskInput.Width = taskInputWidth(w) - 5
}

// taskInputWidth is the width of the task input box, leaving room for the Add Task button
func taskInputWidth(paneWidth int) int {
	return clamp(paneWidth-16, 20, 60)
}

func (v *ProjectDetail) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		v.taskInput, cmd = v.taskInput.Update(msg)
		return v, cmd
	}

	if v.focus == FocusTaskInput {
		switch {
		case key.Matches(km, v.keys.Enter):
			return v, emit(TaskSubmitted{Text: v.taskInput.Value()})
		case key.Matches(km, v.keys.Tab), key.Matches(km, v.keys.ShiftTab):
			if len(v.tasks) > 0 {
				v.focus = FocusTaskList
				v.taskInput.Blur()
			}
			return v, nil
		}
		var cmd tea.Cmd
		v.taskInput, cmd = v.taskInput.Update(msg)
		return v, cmd
	}

	switch {
	case key.Matches(km, v.keys.Tab), key.Matches(km, v.keys.ShiftTab):
		return v, v.Focus()
	case key.Matches(km, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(km, v.keys.Down):
		if v.cursor < len(v.tasks)-1 {
			v.cursor++
		}
	case key.Matches(km, v.keys.ClearTask):
		if v.cursor < len(v.tasks) {
			return v, emit(TaskDeletionRequested{ID: v.tasks[v.cursor].ID})
		}
	}
	return v, nil
}

func (v *ProjectDetail) View() string {
	s := v.styles
	width := max(v.width, 20)

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(max(width-12, 8)).Render(
			s.Title.Render(ansi.Truncate(v.project.Title, max(width-12, 8), "…")),
		),
		s.ButtonDanger.Render("Delete"),
	)

	desc := v.project.Description
	if v.markdown {
		desc = renderMarkdown(desc, width)
	} else {
		desc = lipgloss.NewStyle().Width(width).Render(desc)
	}

	parts := []string{
		header,
		s.TitleMuted.Render(v.project.FormatDue()),
		"",
		desc,
		s.Divider.Render(strings.Repeat("─", width)),
		s.Heading.Render("Tasks"),
	}

	inputStyle := s.Input
	if v.focus == FocusTaskInput {
		inputStyle = s.InputFocused
	}
	parts = append(parts,
		lipgloss.JoinHorizontal(lipgloss.Center,
			inputStyle.Width(taskInputWidth(width)).Render(v.taskInput.View()),
			" ",
			s.Button.Render("Add Task"),
		),
		"",
	)

	if len(v.tasks) == 0 {
		parts = append(parts, s.TitleMuted.Render("This project does not have any tasks yet."))
	} else {
		for i, t := range v.tasks {
			parts = append(parts, v.renderTask(t, width, v.focus == FocusTaskList && i == v.cursor))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (v *ProjectDetail) renderTask(t models.Task, width int, selected bool) string {
	s := v.styles
	const clearLabel = "Clear"

	textWidth := max(width-len(clearLabel)-4, 8)
	text := ansi.Truncate(t.Text, textWidth, "…")

	style := s.TaskItem
	if selected {
		style = s.TaskSelected
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		style.Width(textWidth+2).Render(text),
		" ",
		s.TaskClear.Render(clearLabel),
	)
}
