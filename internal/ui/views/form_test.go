package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tgienger/projman/internal/models"
	"github.com/tgienger/projman/internal/ui/keys"
	"github.com/tgienger/projman/internal/ui/styles"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeInto(m tea.Model, s string) {
	for _, r := range s {
		m.Update(runes(string(r)))
	}
}

func newTestForm() *ProjectForm {
	f := NewProjectForm(styles.NewStyles(), keys.DefaultKeyMap())
	f.SetWidth(60)
	return f
}

func TestProjectForm_ValuesAfterTyping(t *testing.T) {
	f := newTestForm()

	typeInto(f, "Website")
	f.Update(tea.KeyMsg{Type: tea.KeyEnter}) // title -> description
	require.Equal(t, focusDescription, f.FocusIndex())
	typeInto(f, "Redesign")
	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeInto(f, "2025-03-01-extra") // char limit keeps the date

	assert.Equal(t, models.ProjectInput{Title: "Website", Description: "Redesign", DueDate: "2025-03-01"}, f.Values())
}

func TestProjectForm_FocusCycles(t *testing.T) {
	f := newTestForm()
	for i := 1; i <= formFocusCount; i++ {
		f.Update(tea.KeyMsg{Type: tea.KeyTab})
		assert.Equal(t, i%formFocusCount, f.FocusIndex())
	}
	f.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, focusCancel, f.FocusIndex())
}

func TestProjectForm_SubmitAndCancel(t *testing.T) {
	f := newTestForm()
	typeInto(f, "Site")

	_, cmd := f.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	assert.Equal(t, ProjectSubmitted{Input: models.ProjectInput{Title: "Site"}}, cmd())

	_, cmd = f.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, CancelRequested{}, cmd())

	// Enter on the buttons
	f.Update(tea.KeyMsg{Type: tea.KeyShiftTab}) // cancel
	_, cmd = f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, CancelRequested{}, cmd())

	f.Update(tea.KeyMsg{Type: tea.KeyShiftTab}) // save
	_, cmd = f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, ProjectSubmitted{}, cmd())
}

func TestProjectForm_Reset(t *testing.T) {
	f := newTestForm()
	typeInto(f, "Old")
	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeInto(f, "Stuff")

	f.Reset()
	assert.Equal(t, models.ProjectInput{}, f.Values())
	assert.Equal(t, focusTitle, f.FocusIndex())
}
