package state

import "github.com/tgienger/projman/internal/models"

// ViewKind is the screen shown in the main pane
type ViewKind int

const (
	ViewNoProjectSelected ViewKind = iota
	ViewAddProjectForm
	ViewProjectDetail
)

func (k ViewKind) String() string {
	switch k {
	case ViewAddProjectForm:
		return "add-project-form"
	case ViewProjectDetail:
		return "project-detail"
	default:
		return "no-project-selected"
	}
}

// View is the result of Resolve. Project is set only for ViewProjectDetail.
type View struct {
	Kind    ViewKind
	Project models.Project
}

// Resolve maps a snapshot to the screen to render. A selection that points
// at a missing project falls back to ViewNoProjectSelected.
func Resolve(s Snapshot) View {
	if s.selection.Kind() == KindAdd {
		return View{Kind: ViewAddProjectForm}
	}
	if p, ok := s.SelectedProject(); ok {
		return View{Kind: ViewProjectDetail, Project: p}
	}
	return View{Kind: ViewNoProjectSelected}
}
