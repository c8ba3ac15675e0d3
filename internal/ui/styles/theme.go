package styles

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme represents a color scheme for the application
type Theme struct {
	Name string

	// Base colors
	Background    lipgloss.Color
	Foreground    lipgloss.Color
	ForegroundDim lipgloss.Color

	// Accent colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	// Semantic colors
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	// UI element colors
	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	Selection   lipgloss.Color
	Sidebar     lipgloss.Color
}

// TokyoNight is the default color theme
var TokyoNight = Theme{
	Name: "tokyo-night",

	Background:    lipgloss.Color("#1a1b26"),
	Foreground:    lipgloss.Color("#c0caf5"),
	ForegroundDim: lipgloss.Color("#565f89"),

	Primary:   lipgloss.Color("#7aa2f7"),
	Secondary: lipgloss.Color("#bb9af7"),
	Accent:    lipgloss.Color("#7dcfff"),

	Success: lipgloss.Color("#9ece6a"),
	Warning: lipgloss.Color("#e0af68"),
	Error:   lipgloss.Color("#f7768e"),

	Border:      lipgloss.Color("#3b4261"),
	BorderFocus: lipgloss.Color("#7aa2f7"),
	Selection:   lipgloss.Color("#33467c"),
	Sidebar:     lipgloss.Color("#16161e"),
}

// Gruvbox is a warm dark theme
var Gruvbox = Theme{
	Name: "gruvbox",

	Background:    lipgloss.Color("#282828"),
	Foreground:    lipgloss.Color("#ebdbb2"),
	ForegroundDim: lipgloss.Color("#928374"),

	Primary:   lipgloss.Color("#fabd2f"),
	Secondary: lipgloss.Color("#d3869b"),
	Accent:    lipgloss.Color("#8ec07c"),

	Success: lipgloss.Color("#b8bb26"),
	Warning: lipgloss.Color("#fe8019"),
	Error:   lipgloss.Color("#fb4934"),

	Border:      lipgloss.Color("#504945"),
	BorderFocus: lipgloss.Color("#fabd2f"),
	Selection:   lipgloss.Color("#3c3836"),
	Sidebar:     lipgloss.Color("#1d2021"),
}

// Nord is a cool, low-contrast theme
var Nord = Theme{
	Name: "nord",

	Background:    lipgloss.Color("#2e3440"),
	Foreground:    lipgloss.Color("#eceff4"),
	ForegroundDim: lipgloss.Color("#4c566a"),

	Primary:   lipgloss.Color("#88c0d0"),
	Secondary: lipgloss.Color("#b48ead"),
	Accent:    lipgloss.Color("#8fbcbb"),

	Success: lipgloss.Color("#a3be8c"),
	Warning: lipgloss.Color("#ebcb8b"),
	Error:   lipgloss.Color("#bf616a"),

	Border:      lipgloss.Color("#434c5e"),
	BorderFocus: lipgloss.Color("#88c0d0"),
	Selection:   lipgloss.Color("#3b4252"),
	Sidebar:     lipgloss.Color("#242933"),
}

var themes = map[string]Theme{
	TokyoNight.Name: TokyoNight,
	Gruvbox.Name:    Gruvbox,
	Nord.Name:       Nord,
}

// Current holds the active theme
var Current = TokyoNight

// Lookup finds a theme by name (case-insensitive)
func Lookup(name string) (Theme, bool) {
	t, ok := themes[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// Names lists the available theme names, sorted
func Names() []string {
	names := make([]string, 0, len(themes))
	for n := range themes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Use makes the named theme current. Styles built afterwards pick it up.
func Use(name string) error {
	t, ok := Lookup(name)
	if !ok {
		return fmt.Errorf("unknown theme %q", name)
	}
	Current = t
	return nil
}

// ApplyColorProfile picks the lipgloss color profile for the terminal.
// NO_COLOR disables colors; otherwise termenv's detection is used, upgraded
// when COLORTERM or TERM advertise more than was detected.
func ApplyColorProfile() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()
	colorterm := strings.ToLower(os.Getenv("COLORTERM"))
	term := strings.ToLower(os.Getenv("TERM"))
	switch {
	case profile == termenv.Ascii:
	case strings.Contains(colorterm, "truecolor"), strings.Contains(colorterm, "24bit"):
		profile = termenv.TrueColor
	case strings.Contains(term, "256color") && profile == termenv.ANSI:
		profile = termenv.ANSI256
	}
	lipgloss.SetColorProfile(profile)
}

// MaxWidth is the maximum content width for the app
const MaxWidth = 110

// SidebarWidth is the fixed width of the project sidebar
const SidebarWidth = 30

// ContentWidth returns the actual content width to use (min of terminal width and MaxWidth)
func ContentWidth(terminalWidth int) int {
	if terminalWidth > MaxWidth {
		return MaxWidth
	}
	return terminalWidth
}

// MainWidth is the width left for the main pane next to the sidebar
func MainWidth(terminalWidth int) int {
	return max(ContentWidth(terminalWidth)-SidebarWidth-2, 20)
}

// CenterView wraps content and centers it horizontally if terminal is wider than MaxWidth
func CenterView(content string, terminalWidth, terminalHeight int) string {
	if terminalWidth <= MaxWidth {
		return content
	}
	return lipgloss.Place(terminalWidth, terminalHeight,
		lipgloss.Center, lipgloss.Top,
		content,
	)
}

// Styles holds all the pre-computed styles for the UI
type Styles struct {
	// Title bar
	Title      lipgloss.Style
	TitleMuted lipgloss.Style
	Heading    lipgloss.Style

	// Sidebar
	Sidebar        lipgloss.Style
	SidebarTitle   lipgloss.Style
	ListItem       lipgloss.Style
	ListSelected   lipgloss.Style
	ListActive     lipgloss.Style
	SidebarFocused lipgloss.Style

	// Main pane
	Main    lipgloss.Style
	Divider lipgloss.Style

	// Buttons
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	ButtonPrimary lipgloss.Style
	ButtonDanger  lipgloss.Style

	// Task item
	TaskItem     lipgloss.Style
	TaskSelected lipgloss.Style
	TaskClear    lipgloss.Style

	// Input fields
	Label        lipgloss.Style
	Input        lipgloss.Style
	InputFocused lipgloss.Style

	// Modal dialog
	Modal      lipgloss.Style
	ModalTitle lipgloss.Style

	// Dims whatever sits behind a modal
	Scrim lipgloss.Style

	// Help text
	Help    lipgloss.Style
	HelpKey lipgloss.Style

	Error lipgloss.Style
}

// NewStyles creates styles based on the current theme
func NewStyles() *Styles {
	t := Current

	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		TitleMuted: lipgloss.NewStyle().
			Foreground(t.ForegroundDim),

		Heading: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Bold(true).
			MarginBottom(1),

		Sidebar: lipgloss.NewStyle().
			Width(SidebarWidth).
			Padding(1, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border),

		SidebarFocused: lipgloss.NewStyle().
			Width(SidebarWidth).
			Padding(1, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus),

		SidebarTitle: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Bold(true).
			MarginBottom(1),

		ListItem: lipgloss.NewStyle().
			Foreground(t.ForegroundDim).
			Padding(0, 1),

		ListSelected: lipgloss.NewStyle().
			Foreground(t.Primary).
			Background(t.Selection).
			Padding(0, 1).
			Bold(true),

		ListActive: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Padding(0, 1).
			Bold(true),

		Main: lipgloss.NewStyle().
			Padding(1, 2),

		Divider: lipgloss.NewStyle().
			Foreground(t.Border),

		Button: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 2),

		ButtonFocused: lipgloss.NewStyle().
			Foreground(t.Primary).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Padding(0, 2).
			Bold(true),

		ButtonPrimary: lipgloss.NewStyle().
			Foreground(t.Background).
			Background(t.Primary).
			Padding(0, 2).
			Bold(true),

		ButtonDanger: lipgloss.NewStyle().
			Foreground(t.Background).
			Background(t.Error).
			Padding(0, 2).
			Bold(true),

		TaskItem: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Padding(0, 1),

		TaskSelected: lipgloss.NewStyle().
			Foreground(t.Primary).
			Background(t.Selection).
			Padding(0, 1),

		TaskClear: lipgloss.NewStyle().
			Foreground(t.Error),

		Label: lipgloss.NewStyle().
			Foreground(t.ForegroundDim).
			Bold(true),

		Input: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),

		InputFocused: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Padding(0, 1),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(t.Error).
			Padding(1, 3),

		ModalTitle: lipgloss.NewStyle().
			Foreground(t.Error).
			Bold(true),

		Scrim: lipgloss.NewStyle().
			Foreground(t.Border),

		Help: lipgloss.NewStyle().
			Foreground(t.ForegroundDim).
			Padding(0, 2),

		HelpKey: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(t.Error),
	}
}
