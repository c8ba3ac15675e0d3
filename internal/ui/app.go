package ui

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/projman/internal/state"
	"github.com/tgienger/projman/internal/ui/keys"
	"github.com/tgienger/projman/internal/ui/styles"
	"github.com/tgienger/projman/internal/ui/views"
)

// Focus is the pane receiving keys outside the creation form
type Focus int

const (
	FocusSidebar Focus = iota
	FocusMain
)

// Options tune the UI
type Options struct {
	Logger *slog.Logger
	// Render project descriptions as markdown
	Markdown bool
	// Deleting a project also removes its tasks (only affects wording)
	CascadeDelete bool
}

// App is the root model. It is the only place that calls store operations;
// the views just report what the user asked for.
type App struct {
	store   *state.Store
	logger  *slog.Logger
	styles  *styles.Styles
	keys    keys.KeyMap
	help    help.Model
	cascade bool

	sidebar *views.Sidebar
	form    *views.ProjectForm
	detail  *views.ProjectDetail
	empty   *views.NoProject
	modal   *views.InvalidInputModal

	focus            Focus
	confirmingDelete bool
	deleteTarget     string // asked about by the delete prompt; selected only on yes
	width            int
	height           int
}

// Creates a new application around store
func NewApp(store *state.Store, opts Options) *App {
	s := styles.NewStyles()
	km := keys.DefaultKeyMap()

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	h := help.New()
	h.Styles.ShortKey = s.HelpKey
	h.Styles.FullKey = s.HelpKey

	a := &App{
		store:   store,
		logger:  logger,
		styles:  s,
		keys:    km,
		help:    h,
		cascade: opts.CascadeDelete,
		sidebar: views.NewSidebar(s, km),
		form:    views.NewProjectForm(s, km),
		detail:  views.NewProjectDetail(s, km, opts.Markdown),
		empty:   views.NewNoProject(s, km),
		modal:   views.NewInvalidInputModal(s, km),
		focus:   FocusSidebar,
	}
	a.resize(80, 24)
	a.sync()
	return a
}

func (a *App) Init() tea.Cmd {
	return nil
}

// Snapshot exposes the current store state
func (a *App) Snapshot() state.Snapshot { return a.store.Snapshot() }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case views.CreateProjectRequested:
		a.store.StartAddProject()
		a.form.Reset()
		a.focus = FocusMain
		a.sync()
		return a, textinput.Blink

	case views.CancelRequested:
		a.store.CancelAddProject()
		a.focus = FocusSidebar
		a.sync()
		return a, nil

	case views.ProjectSubmitted:
		p, err := a.store.AddProject(msg.Input)
		if err != nil {
			a.logger.Debug("project not added", "err", err)
			a.sync()
			return a, nil
		}
		a.logger.Info("project created", "id", p.ID, "title", p.Title)
		a.focus = FocusSidebar
		a.sync()
		a.sidebar.Highlight(p.ID)
		return a, nil

	case views.ModalDismissed:
		a.store.DismissModal()
		a.sync()
		return a, nil

	case views.ProjectSelected:
		a.store.SelectProject(msg.ID)
		a.focus = FocusMain
		a.sync()
		return a, a.detail.Focus()

	case views.DeletePromptRequested:
		a.deleteTarget = msg.ID
		a.confirmingDelete = true
		return a, nil

	case views.ProjectDeletionRequested:
		if a.deleteTarget != "" {
			a.store.SelectProject(a.deleteTarget)
		}
		a.confirmingDelete = false
		a.deleteTarget = ""
		if p, ok := a.store.DeleteProject(); ok {
			a.logger.Info("project deleted", "id", p.ID, "title", p.Title)
		}
		a.focus = FocusSidebar
		a.sync()
		return a, nil

	case views.TaskSubmitted:
		t, err := a.store.AddTask(msg.Text)
		if err != nil {
			// Blank input or a vanished project: keep whatever was typed.
			a.logger.Debug("task not added", "err", err)
			return a, nil
		}
		a.logger.Info("task added", "id", t.ID, "project_id", t.ProjectID)
		a.detail.ClearInput()
		a.sync()
		return a, nil

	case views.TaskDeletionRequested:
		if a.store.DeleteTask(msg.ID) {
			a.logger.Info("task cleared", "id", msg.ID)
		}
		a.sync()
		return a, nil
	}

	// Everything else (cursor blinks etc.) goes to the active view
	var cmd tea.Cmd
	switch state.Resolve(a.store.Snapshot()).Kind {
	case state.ViewAddProjectForm:
		_, cmd = a.form.Update(msg)
	case state.ViewProjectDetail:
		_, cmd = a.detail.Update(msg)
	}
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.ForceQuit) {
		return a, tea.Quit
	}

	snap := a.store.Snapshot()

	// The modal blocks everything until dismissed
	if snap.ModalOpen() {
		_, cmd := a.modal.Update(msg)
		return a, cmd
	}

	if a.confirmingDelete {
		switch {
		case key.Matches(msg, a.keys.Confirm):
			return a.Update(views.ProjectDeletionRequested{})
		case key.Matches(msg, a.keys.Cancel):
			a.confirmingDelete = false
			a.deleteTarget = ""
		}
		return a, nil
	}

	view := state.Resolve(snap)

	if view.Kind == state.ViewAddProjectForm {
		_, cmd := a.form.Update(msg)
		return a, cmd
	}

	if view.Kind == state.ViewProjectDetail && key.Matches(msg, a.keys.DeleteProject) {
		a.deleteTarget = view.Project.ID
		a.confirmingDelete = true
		return a, nil
	}

	if a.focus == FocusSidebar {
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Help):
			a.help.ShowAll = !a.help.ShowAll
			return a, nil
		case key.Matches(msg, a.keys.Tab):
			a.focus = FocusMain
			a.sync()
			if view.Kind == state.ViewProjectDetail {
				return a, a.detail.Focus()
			}
			return a, nil
		}
		_, cmd := a.sidebar.Update(msg)
		return a, cmd
	}

	if key.Matches(msg, a.keys.Back) {
		a.focus = FocusSidebar
		a.detail.Blur()
		a.sync()
		return a, nil
	}

	if view.Kind == state.ViewProjectDetail {
		_, cmd := a.detail.Update(msg)
		return a, cmd
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Tab), key.Matches(msg, a.keys.ShiftTab):
		a.focus = FocusSidebar
		a.sync()
		return a, nil
	}
	_, cmd := a.empty.Update(msg)
	return a, cmd
}

// sync pushes the current snapshot into the views
func (a *App) sync() {
	snap := a.store.Snapshot()
	view := state.Resolve(snap)

	var activeID string
	if view.Kind == state.ViewProjectDetail {
		activeID = view.Project.ID
		a.detail.SetProject(view.Project, snap.TasksFor(view.Project.ID))
	} else {
		a.detail.Blur()
	}

	a.sidebar.SetProjects(snap.Projects(), activeID)
	a.sidebar.SetFocused(a.focus == FocusSidebar && view.Kind != state.ViewAddProjectForm)
	a.modal.SetMissing(snap.MissingFields())
}

func (a *App) resize(w, h int) {
	a.width = w
	a.height = h
	// Views render inside the main pane's horizontal padding
	inner := styles.MainWidth(w) - a.styles.Main.GetHorizontalPadding()
	a.sidebar.SetHeight(h)
	a.form.SetWidth(inner)
	a.detail.SetSize(inner, h)
	a.empty.SetSize(inner, h)
	a.modal.SetSize(inner, h)
	a.help.Width = styles.ContentWidth(w)
}

func (a *App) View() string {
	snap := a.store.Snapshot()
	view := state.Resolve(snap)
	inner := styles.MainWidth(a.width) - a.styles.Main.GetHorizontalPadding()

	var main string
	switch {
	case snap.ModalOpen():
		// The form stays on screen underneath the dialog
		form := lipgloss.Place(inner, max(a.height-4, 1), lipgloss.Left, lipgloss.Top, a.form.View())
		main = views.Overlay(form, a.modal.Box(), a.styles.Scrim)
	case a.confirmingDelete:
		title := view.Project.Title
		if p, ok := snap.Project(a.deleteTarget); ok {
			title = p.Title
		}
		main = views.RenderDeleteConfirm(a.styles, title, a.cascade, inner, a.height)
	case view.Kind == state.ViewAddProjectForm:
		main = a.form.View()
	case view.Kind == state.ViewProjectDetail:
		main = a.detail.View()
	default:
		main = a.empty.View()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		a.sidebar.View(),
		a.styles.Main.Width(styles.MainWidth(a.width)).Render(main),
	)
	content := lipgloss.JoinVertical(lipgloss.Left,
		body,
		a.styles.Help.Render(a.help.View(a.keys)),
	)
	return styles.CenterView(content, a.width, a.height)
}
