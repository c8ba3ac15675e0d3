package views

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/tgienger/projman/internal/models"
	"github.com/tgienger/projman/internal/ui/keys"
	"github.com/tgienger/projman/internal/ui/styles"
)

type projectItem struct {
	project models.Project
}

func (i projectItem) Title() string       { return i.project.Title }
func (i projectItem) Description() string { return i.project.FormatDue() }
func (i projectItem) FilterValue() string { return i.project.Title }

type projectDelegate struct {
	styles   *styles.Styles
	width    int
	activeID string
	focused  bool
}

func (d *projectDelegate) Height() int                               { return 1 }
func (d *projectDelegate) Spacing() int                              { return 0 }
func (d *projectDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d *projectDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	p, ok := item.(projectItem)
	if !ok {
		return
	}

	width := max(d.width-2, 8)
	title := ansi.Truncate(p.Title(), width-2, "…")

	var style lipgloss.Style
	switch {
	case d.focused && index == m.Index():
		style = d.styles.ListSelected
	case p.project.ID == d.activeID:
		style = d.styles.ListActive
	default:
		style = d.styles.ListItem
	}
	fmt.Fprint(w, style.Width(width).Render(title))
}

// Sidebar lists every project and highlights the one being viewed
type Sidebar struct {
	list     list.Model
	delegate *projectDelegate
	styles   *styles.Styles
	keys     keys.KeyMap
	height   int
}

func NewSidebar(s *styles.Styles, km keys.KeyMap) *Sidebar {
	delegate := &projectDelegate{styles: s, width: styles.SidebarWidth - 2}

	l := list.New([]list.Item{}, delegate, styles.SidebarWidth-2, 10)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(true)
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	l.KeyMap.ShowFullHelp.SetEnabled(false)

	return &Sidebar{
		list:     l,
		delegate: delegate,
		styles:   s,
		keys:     km,
	}
}

func (v *Sidebar) Init() tea.Cmd { return nil }

// SetProjects replaces the listed projects. The highlight follows the
// active project when there is one.
func (v *Sidebar) SetProjects(projects []models.Project, activeID string) {
	prev := v.HighlightedID()

	items := make([]list.Item, len(projects))
	for i, p := range projects {
		items[i] = projectItem{project: p}
	}
	v.list.SetItems(items)
	v.delegate.activeID = activeID

	target := activeID
	if target == "" {
		target = prev
	}
	for i, p := range projects {
		if p.ID == target {
			v.list.Select(i)
			return
		}
	}
	if v.list.Index() >= len(projects) && len(projects) > 0 {
		v.list.Select(len(projects) - 1)
	}
}

// Highlight moves the cursor to the project with id, if listed
func (v *Sidebar) Highlight(id string) {
	for i, item := range v.list.Items() {
		if p, ok := item.(projectItem); ok && p.project.ID == id {
			v.list.Select(i)
			return
		}
	}
}

// HighlightedID returns the id under the cursor, or "" for an empty list
func (v *Sidebar) HighlightedID() string {
	if item, ok := v.list.SelectedItem().(projectItem); ok {
		return item.project.ID
	}
	return ""
}

func (v *Sidebar) SetFocused(focused bool) { v.delegate.focused = focused }

func (v *Sidebar) SetHeight(h int) {
	v.height = h
	v.list.SetSize(styles.SidebarWidth-2, max(h-10, 3))
}

func (v *Sidebar) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, v.keys.New):
			return v, emit(CreateProjectRequested{})
		case key.Matches(msg, v.keys.Enter):
			if id := v.HighlightedID(); id != "" {
				return v, emit(ProjectSelected{ID: id})
			}
			return v, nil
		case key.Matches(msg, v.keys.Delete):
			if id := v.HighlightedID(); id != "" {
				return v, emit(DeletePromptRequested{ID: id})
			}
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

func (v *Sidebar) View() string {
	s := v.styles
	box := s.Sidebar
	if v.delegate.focused {
		box = s.SidebarFocused
	}

	var body string
	if len(v.list.Items()) == 0 {
		body = s.TitleMuted.Render("No projects yet")
	} else {
		body = v.list.View()
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		s.SidebarTitle.Render("YOUR PROJECTS"),
		s.Button.Render("+ Add Project"),
		"",
		body,
	)
	if v.height > 0 {
		box = box.Height(max(v.height-4, 5))
	}
	return box.Render(content)
}
