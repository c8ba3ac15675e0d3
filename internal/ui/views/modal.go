package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/projman/internal/ui/keys"
	"github.com/tgienger/projman/internal/ui/styles"
)

// InvalidInputModal blocks the creation form until the user acknowledges it
type InvalidInputModal struct {
	styles  *styles.Styles
	keys    keys.KeyMap
	missing []string
	width   int
	height  int
}

func NewInvalidInputModal(s *styles.Styles, km keys.KeyMap) *InvalidInputModal {
	return &InvalidInputModal{styles: s, keys: km}
}

func (m *InvalidInputModal) Init() tea.Cmd { return nil }

func (m *InvalidInputModal) SetMissing(fields []string) { m.missing = fields }

func (m *InvalidInputModal) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// Update swallows every key; only a dismiss key produces a message
func (m *InvalidInputModal) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, m.keys.Dismiss) {
		return m, emit(ModalDismissed{})
	}
	return m, nil
}

func (m *InvalidInputModal) View() string {
	box := m.Box()
	if m.width <= 0 || m.height <= 0 {
		return box
	}
	return lipgloss.Place(m.width, max(m.height-4, 1),
		lipgloss.Center, lipgloss.Center,
		box,
	)
}

// Box renders just the dialog, for drawing over the form with Overlay
func (m *InvalidInputModal) Box() string {
	s := m.styles

	lines := []string{
		s.ModalTitle.Render("Invalid Input"),
		"",
		"Oops ... looks like you forgot to enter a value.",
		"Please make sure you provide a valid value for every input field.",
	}
	if len(m.missing) > 0 {
		lines = append(lines, "", s.Error.Render("Missing: "+strings.Join(m.missing, ", ")))
	}
	lines = append(lines, "", s.ButtonPrimary.Render(" Okay "))

	return s.Modal.Width(clamp(m.width-4, 30, 60)).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// RenderDeleteConfirm renders the y/n prompt shown before a project is deleted
func RenderDeleteConfirm(s *styles.Styles, title string, withTasks bool, width, height int) string {
	body := "\"" + title + "\" will be removed."
	if withTasks {
		body = "\"" + title + "\" and its tasks will be removed."
	}
	content := lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Foreground(styles.Current.Error).Render("Delete Project?"),
		"",
		s.TitleMuted.Render(body),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center,
			s.ButtonPrimary.Render(" Y - Yes "),
			"  ",
			s.Button.Render(" N - No "),
		),
	)
	if width <= 0 || height <= 0 {
		return content
	}
	return lipgloss.Place(width, max(height-4, 1),
		lipgloss.Center, lipgloss.Center,
		content,
	)
}
