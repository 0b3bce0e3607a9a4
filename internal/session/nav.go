package session

import "fmt"

// Screen identifies which screen of the application is active.
type Screen string

const (
	ScreenInput   Screen = "input"
	ScreenResults Screen = "results"
	ScreenDetails Screen = "details"
)

// ListKind identifies which list a results screen is showing.
type ListKind string

const (
	// ListPrimary is the paginated primary search result list
	ListPrimary ListKind = "primary"
	// ListSimilar is the similar-to-a-recipe list (not paginated)
	ListSimilar ListKind = "similar"
)

// NavError reports a navigation action invoked from a state where it is
// not valid. It maps to the InvalidState error category; callers treat it
// as "action unavailable", never as a crash.
type NavError struct {
	Action string
	From   Screen
}

func (e *NavError) Error() string {
	return fmt.Sprintf("invalid navigation: %s from %s screen", e.Action, e.From)
}

// Nav tracks which screen is active, which list is being viewed, and the
// reversible transitions between them. A recipe id of 0 means "unset";
// the API never issues id 0.
type Nav struct {
	Screen Screen
	List   ListKind

	// SelectedID is the recipe open on the details screen; set only while
	// Screen == ScreenDetails
	SelectedID int

	// LastViewedID is the most recent recipe whose detail fetch succeeded.
	// It anchors the similar-recipes lookup.
	LastViewedID int
}

// NewNav returns navigation state at the query input screen.
func NewNav() *Nav {
	return &Nav{
		Screen: ScreenInput,
		List:   ListPrimary,
	}
}

// Search transitions Input -> Results(Primary). The caller resets the
// paginator with the new query alongside this call.
func (n *Nav) Search() error {
	if n.Screen != ScreenInput {
		return &NavError{Action: "search", From: n.Screen}
	}
	n.Screen = ScreenResults
	n.List = ListPrimary
	return nil
}

// Select transitions Results -> Details for the given recipe id. Selecting
// from the similar list is allowed and behaves the same way.
func (n *Nav) Select(id int) error {
	if n.Screen != ScreenResults || id == 0 {
		return &NavError{Action: "select", From: n.Screen}
	}
	n.Screen = ScreenDetails
	n.SelectedID = id
	return nil
}

// RecordDetailView marks a successful detail fetch, anchoring subsequent
// similar-recipe lookups.
func (n *Nav) RecordDetailView(id int) {
	n.LastViewedID = id
}

// FindSimilar transitions Details -> Results(Similar). Rejected unless a
// detail view has succeeded, since the lookup needs an anchor recipe.
// The paginator is untouched; the similar list is not paginated.
func (n *Nav) FindSimilar() error {
	if n.Screen != ScreenDetails || n.LastViewedID == 0 {
		return &NavError{Action: "find similar", From: n.Screen}
	}
	n.Screen = ScreenResults
	n.List = ListSimilar
	return nil
}

// Back reverses the most recent forward transition:
//
//	Details          -> Results (list kind unchanged), clearing the selection
//	Results(Similar) -> Details, reverting the list kind to Primary
//
// Back from the primary results list is not a transition; use NewSearch.
func (n *Nav) Back() error {
	switch {
	case n.Screen == ScreenDetails:
		n.Screen = ScreenResults
		n.SelectedID = 0
		return nil

	case n.Screen == ScreenResults && n.List == ListSimilar:
		n.Screen = ScreenDetails
		n.List = ListPrimary
		if n.SelectedID == 0 {
			n.SelectedID = n.LastViewedID
		}
		return nil

	default:
		return &NavError{Action: "back", From: n.Screen}
	}
}

// NewSearch transitions Results -> Input, clearing the selection and the
// similar-lookup anchor. The caller resets the paginator alongside.
func (n *Nav) NewSearch() error {
	if n.Screen != ScreenResults {
		return &NavError{Action: "new search", From: n.Screen}
	}
	n.Screen = ScreenInput
	n.List = ListPrimary
	n.SelectedID = 0
	n.LastViewedID = 0
	return nil
}

// Recover repairs an impossible state: a details screen with no selected
// recipe falls back to the primary results list. Reports whether a repair
// happened. Callers invoke this before rendering; the user never sees the
// broken state as an error.
func (n *Nav) Recover() bool {
	if n.Screen == ScreenDetails && n.SelectedID == 0 {
		n.Screen = ScreenResults
		n.List = ListPrimary
		return true
	}
	return false
}
