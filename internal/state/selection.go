package state

import "fmt"

// SelectionKind tells which of the three selection variants is active
type SelectionKind int

const (
	KindNone SelectionKind = iota
	KindAdd
	KindSelected
)

func (k SelectionKind) String() string {
	switch k {
	case KindAdd:
		return "add-mode"
	case KindSelected:
		return "selected"
	default:
		return "no-selection"
	}
}

// Selection is what the user is currently doing: nothing, adding a
// project, or viewing one. Build it with NoSelection, AddMode or Selected.
type Selection struct {
	kind      SelectionKind
	projectID string
}

// NoSelection is the initial selection
func NoSelection() Selection { return Selection{kind: KindNone} }

// AddMode means the creation form is active
func AddMode() Selection { return Selection{kind: KindAdd} }

// Selected means the project with id is being viewed
func Selected(id string) Selection { return Selection{kind: KindSelected, projectID: id} }

func (s Selection) Kind() SelectionKind { return s.kind }

// ProjectID returns the selected project id; ok is false for the other variants
func (s Selection) ProjectID() (id string, ok bool) {
	if s.kind != KindSelected {
		return "", false
	}
	return s.projectID, true
}

func (s Selection) String() string {
	if s.kind == KindSelected {
		return fmt.Sprintf("selected(%s)", s.projectID)
	}
	return s.kind.String()
}
