package state

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tgienger/projman/internal/ids"
	"github.com/tgienger/projman/internal/models"
)

func newTestStore(opts ...Option) *Store {
	opts = append([]Option{WithIDGenerator(ids.NewSequence("id"))}, opts...)
	return New(opts...)
}

func validInput(title string) models.ProjectInput {
	return models.ProjectInput{Title: title, Description: "desc", DueDate: "2025-01-01"}
}

func TestNewStoreIsEmpty(t *testing.T) {
	s := New()
	snap := s.Snapshot()

	assert.Empty(t, snap.Projects())
	assert.Empty(t, snap.Tasks())
	assert.Equal(t, KindNone, snap.Selection().Kind())
	assert.False(t, snap.ModalOpen())
	assert.Equal(t, uint64(0), snap.Version())
	assert.Equal(t, ViewNoProjectSelected, Resolve(snap).Kind)
}

func TestAddProject_GrowsByOneWithDistinctIDs(t *testing.T) {
	s := New() // uuid ids
	seen := map[string]bool{}
	for i := 0; i < 25; i++ {
		before := len(s.Snapshot().Projects())
		p, err := s.AddProject(validInput("p"))
		require.NoError(t, err)
		assert.Len(t, s.Snapshot().Projects(), before+1)
		assert.False(t, seen[p.ID], "id %s reused", p.ID)
		seen[p.ID] = true
	}
}

func TestAddProject_TrimsAndClearsSelection(t *testing.T) {
	s := newTestStore()
	s.StartAddProject()

	p, err := s.AddProject(models.ProjectInput{Title: " Website ", Description: "Redesign\n", DueDate: " 2025-03-01"})
	require.NoError(t, err)
	assert.Equal(t, models.Project{ID: "id-1", Title: "Website", Description: "Redesign", DueDate: "2025-03-01"}, p)
	assert.Equal(t, KindNone, s.Snapshot().Selection().Kind())
}

func TestAddProject_BlankFieldOpensModal(t *testing.T) {
	s := newTestStore()
	s.StartAddProject()

	_, err := s.AddProject(models.ProjectInput{Title: "", Description: "x", DueDate: "2025-01-01"})
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{FieldTitle}, verr.Missing)

	snap := s.Snapshot()
	assert.Empty(t, snap.Projects())
	assert.True(t, snap.ModalOpen())
	assert.Equal(t, []string{FieldTitle}, snap.MissingFields())
	assert.Equal(t, KindAdd, snap.Selection().Kind(), "selection stays in add mode")
	assert.Equal(t, ViewAddProjectForm, Resolve(snap).Kind)
}

func TestAddProject_WhitespaceOnlyIsBlank(t *testing.T) {
	s := newTestStore()
	_, err := s.AddProject(models.ProjectInput{Title: "t", Description: "   ", DueDate: "\t"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{FieldDescription, FieldDueDate}, verr.Missing)
}

func TestModalStaysOpenUntilDismissed(t *testing.T) {
	s := newTestStore()
	s.StartAddProject()
	_, _ = s.AddProject(models.ProjectInput{})
	require.True(t, s.Snapshot().ModalOpen())

	s.StartAddProject()
	assert.True(t, s.Snapshot().ModalOpen())

	s.DismissModal()
	assert.False(t, s.Snapshot().ModalOpen())
	assert.Empty(t, s.Snapshot().MissingFields())
	assert.Equal(t, KindAdd, s.Snapshot().Selection().Kind())
}

func TestCancelAddProject_Idempotent(t *testing.T) {
	s := newTestStore()
	s.StartAddProject()

	s.CancelAddProject()
	once := s.Snapshot().Selection()
	s.CancelAddProject()
	twice := s.Snapshot().Selection()

	assert.Equal(t, NoSelection(), once)
	assert.Equal(t, once, twice)
}

func TestSelectThenDeleteProject(t *testing.T) {
	s := newTestStore()
	a, _ := s.AddProject(validInput("a"))
	b, _ := s.AddProject(validInput("b"))
	c, _ := s.AddProject(validInput("c"))

	s.SelectProject(b.ID)
	removed, ok := s.DeleteProject()
	require.True(t, ok)
	assert.Equal(t, b, removed)

	snap := s.Snapshot()
	assert.Equal(t, []models.Project{a, c}, snap.Projects())
	assert.Equal(t, NoSelection(), snap.Selection())
	assert.Equal(t, ViewNoProjectSelected, Resolve(snap).Kind)
}

func TestDeleteProject_NothingSelected(t *testing.T) {
	s := newTestStore()
	_, _ = s.AddProject(validInput("a"))
	version := s.Snapshot().Version()

	_, ok := s.DeleteProject()
	assert.False(t, ok)
	assert.Len(t, s.Snapshot().Projects(), 1)
	assert.Equal(t, version, s.Snapshot().Version())
}

func TestDeleteProject_SelectedIDMissing(t *testing.T) {
	s := newTestStore()
	_, _ = s.AddProject(validInput("a"))
	s.SelectProject("gone")

	_, ok := s.DeleteProject()
	assert.False(t, ok)
	assert.Len(t, s.Snapshot().Projects(), 1)
	assert.Equal(t, NoSelection(), s.Snapshot().Selection())
}

func TestDeleteProject_OrphanPolicy(t *testing.T) {
	for _, tc := range []struct {
		policy    OrphanPolicy
		remaining int
	}{
		{OrphansCascade, 1},
		{OrphansKeep, 3},
	} {
		t.Run(string(tc.policy), func(t *testing.T) {
			s := newTestStore(WithOrphanPolicy(tc.policy))
			a, _ := s.AddProject(validInput("a"))
			b, _ := s.AddProject(validInput("b"))

			s.SelectProject(a.ID)
			_, _ = s.AddTask("one")
			_, _ = s.AddTask("two")
			s.SelectProject(b.ID)
			_, _ = s.AddTask("three")

			s.SelectProject(a.ID)
			_, ok := s.DeleteProject()
			require.True(t, ok)

			snap := s.Snapshot()
			assert.Len(t, snap.Tasks(), tc.remaining)
			assert.Len(t, snap.TasksFor(b.ID), 1)
		})
	}
}

func TestAddTask_PrependsToSelectedProject(t *testing.T) {
	s := newTestStore()
	p, _ := s.AddProject(validInput("p"))
	other, _ := s.AddProject(validInput("other"))
	s.SelectProject(p.ID)

	first, err := s.AddTask("Write copy")
	require.NoError(t, err)
	milk, err := s.AddTask("  Buy milk ")
	require.NoError(t, err)

	assert.Equal(t, "Buy milk", milk.Text)
	assert.Equal(t, p.ID, milk.ProjectID)

	snap := s.Snapshot()
	assert.Equal(t, milk, snap.Tasks()[0])
	assert.Equal(t, []models.Task{milk, first}, snap.TasksFor(p.ID))
	assert.Empty(t, snap.TasksFor(other.ID))
}

func TestAddTask_Rejections(t *testing.T) {
	s := newTestStore()

	_, err := s.AddTask("orphan")
	assert.ErrorIs(t, err, ErrNoProjectSelected)

	s.SelectProject("missing")
	_, err = s.AddTask("orphan")
	assert.ErrorIs(t, err, ErrNoProjectSelected)

	p, _ := s.AddProject(validInput("p"))
	s.SelectProject(p.ID)
	_, err = s.AddTask("   ")
	assert.ErrorIs(t, err, ErrBlankTask)

	assert.Empty(t, s.Snapshot().Tasks())
}

func TestDeleteTask(t *testing.T) {
	s := newTestStore()
	p, _ := s.AddProject(validInput("p"))
	s.SelectProject(p.ID)
	a, _ := s.AddTask("a")
	b, _ := s.AddTask("b")

	before := s.Snapshot().Version()
	assert.False(t, s.DeleteTask("nope"))
	assert.Len(t, s.Snapshot().Tasks(), 2)
	assert.Equal(t, before, s.Snapshot().Version(), "unknown id leaves the snapshot alone")

	assert.True(t, s.DeleteTask(a.ID))
	assert.Equal(t, []models.Task{b}, s.Snapshot().Tasks())
}

func TestSnapshotsAreImmutable(t *testing.T) {
	s := newTestStore()
	p, _ := s.AddProject(validInput("p"))
	s.SelectProject(p.ID)
	_, _ = s.AddTask("a")

	old := s.Snapshot()
	_, _ = s.AddTask("b")
	_, _ = s.AddProject(validInput("q"))

	assert.Len(t, old.Tasks(), 1)
	assert.Len(t, old.Projects(), 1)
	assert.Greater(t, s.Snapshot().Version(), old.Version())

	leaked := old.Projects()
	leaked[0].Title = "mutated"
	got, _ := old.Project(p.ID)
	assert.Equal(t, "p", got.Title)
}

func TestEndToEnd(t *testing.T) {
	s := newTestStore()
	s.StartAddProject()
	require.Equal(t, ViewAddProjectForm, Resolve(s.Snapshot()).Kind)

	p, err := s.AddProject(models.ProjectInput{Title: "Website", Description: "Redesign", DueDate: "2025-03-01"})
	require.NoError(t, err)

	snap := s.Snapshot()
	assert.Len(t, snap.Projects(), 1)
	assert.Equal(t, NoSelection(), snap.Selection())
	assert.Equal(t, ViewNoProjectSelected, Resolve(snap).Kind)

	s.SelectProject(p.ID)
	v := Resolve(s.Snapshot())
	assert.Equal(t, ViewProjectDetail, v.Kind)
	assert.Equal(t, "Website", v.Project.Title)
}

func TestStoreLogsTransitions(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := newTestStore(WithLogger(logger))

	s.StartAddProject()
	_, _ = s.AddProject(models.ProjectInput{})

	assert.Contains(t, buf.String(), "op=start_add_project")
	assert.Contains(t, buf.String(), "op=add_project_rejected")
	assert.Contains(t, buf.String(), "project rejected")
}

func TestParseOrphanPolicy(t *testing.T) {
	p, err := ParseOrphanPolicy("KEEP")
	require.NoError(t, err)
	assert.Equal(t, OrphansKeep, p)

	p, err = ParseOrphanPolicy("")
	require.NoError(t, err)
	assert.Equal(t, OrphansCascade, p)

	_, err = ParseOrphanPolicy("archive")
	assert.Error(t, err)
}
