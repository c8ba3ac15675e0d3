package views

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/projman/internal/ui/keys"
	"github.com/tgienger/projman/internal/ui/styles"
)

// NoProject is shown when nothing is selected or the selected project is gone
type NoProject struct {
	styles *styles.Styles
	keys   keys.KeyMap
	width  int
	height int
}

func NewNoProject(s *styles.Styles, km keys.KeyMap) *NoProject {
	return &NoProject{styles: s, keys: km}
}

func (v *NoProject) Init() tea.Cmd { return nil }

func (v *NoProject) SetSize(w, h int) {
	v.width = w
	v.height = h
}

func (v *NoProject) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(km, v.keys.Enter) || key.Matches(km, v.keys.New) {
			return v, emit(CreateProjectRequested{})
		}
	}
	return v, nil
}

func (v *NoProject) View() string {
	s := v.styles

	content := lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Render("No Project Selected"),
		"",
		s.TitleMuted.Render("Select a project or get started with a new one"),
		"",
		s.ButtonPrimary.Render(" Create new project "),
	)

	if v.width <= 0 || v.height <= 0 {
		return content
	}
	return lipgloss.Place(v.width, max(v.height-4, 1),
		lipgloss.Center, lipgloss.Center,
		content,
	)
}
