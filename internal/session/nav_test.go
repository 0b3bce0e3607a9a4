package session

import (
	"errors"
	"testing"
)

func TestNav_SearchFromInput(t *testing.T) {
	n := NewNav()

	if err := n.Search(); err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if n.Screen != ScreenResults {
		t.Errorf("Screen = %q, want %q", n.Screen, ScreenResults)
	}
	if n.List != ListPrimary {
		t.Errorf("List = %q, want %q", n.List, ListPrimary)
	}
}

func TestNav_SearchRejectedOutsideInput(t *testing.T) {
	n := NewNav()
	n.Screen = ScreenDetails

	err := n.Search()
	if err == nil {
		t.Fatal("Search() from details succeeded, want error")
	}
	var navErr *NavError
	if !errors.As(err, &navErr) {
		t.Fatalf("error = %T, want *NavError", err)
	}
	if n.Screen != ScreenDetails {
		t.Errorf("rejected transition changed Screen to %q", n.Screen)
	}
}

func TestNav_SelectAndBack(t *testing.T) {
	n := NewNav()
	if err := n.Search(); err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if err := n.Select(716429); err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if n.Screen != ScreenDetails {
		t.Errorf("Screen = %q, want %q", n.Screen, ScreenDetails)
	}
	if n.SelectedID != 716429 {
		t.Errorf("SelectedID = %d, want 716429", n.SelectedID)
	}

	n.RecordDetailView(716429)

	if err := n.Back(); err != nil {
		t.Fatalf("Back() error = %v", err)
	}
	if n.Screen != ScreenResults {
		t.Errorf("Screen = %q, want %q", n.Screen, ScreenResults)
	}
	if n.List != ListPrimary {
		t.Errorf("List = %q, want %q", n.List, ListPrimary)
	}
	if n.SelectedID != 0 {
		t.Errorf("SelectedID = %d after back, want 0", n.SelectedID)
	}
}

func TestNav_SelectRejectedFromInput(t *testing.T) {
	n := NewNav()

	if err := n.Select(1); err == nil {
		t.Fatal("Select() from input succeeded, want error")
	}
}

func TestNav_FindSimilarRoundTrip(t *testing.T) {
	n := NewNav()
	if err := n.Search(); err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if err := n.Select(716429); err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	n.RecordDetailView(716429)

	if err := n.FindSimilar(); err != nil {
		t.Fatalf("FindSimilar() error = %v", err)
	}
	if n.Screen != ScreenResults || n.List != ListSimilar {
		t.Errorf("after FindSimilar: Screen=%q List=%q, want results/similar", n.Screen, n.List)
	}

	// Back from the similar list returns to the recipe it came from.
	if err := n.Back(); err != nil {
		t.Fatalf("Back() error = %v", err)
	}
	if n.Screen != ScreenDetails {
		t.Errorf("Screen = %q, want %q", n.Screen, ScreenDetails)
	}
	if n.SelectedID != 716429 {
		t.Errorf("SelectedID = %d, want 716429", n.SelectedID)
	}
	if n.List != ListPrimary {
		t.Errorf("List = %q after returning, want %q", n.List, ListPrimary)
	}
}

func TestNav_FindSimilarRequiresViewedRecipe(t *testing.T) {
	n := NewNav()
	if err := n.Search(); err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if err := n.Select(1); err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	// Detail fetch failed, so no RecordDetailView happened.
	n.SelectedID = 0

	if err := n.FindSimilar(); err == nil {
		t.Fatal("FindSimilar() with no viewed recipe succeeded, want error")
	}
}

func TestNav_SelectAllowedFromSimilarList(t *testing.T) {
	n := NewNav()
	if err := n.Search(); err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if err := n.Select(10); err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	n.RecordDetailView(10)
	if err := n.FindSimilar(); err != nil {
		t.Fatalf("FindSimilar() error = %v", err)
	}

	if err := n.Select(20); err != nil {
		t.Fatalf("Select() from similar list error = %v", err)
	}
	if n.Screen != ScreenDetails || n.SelectedID != 20 {
		t.Errorf("after select: Screen=%q SelectedID=%d, want details/20", n.Screen, n.SelectedID)
	}
}

func TestNav_NewSearchClearsSelection(t *testing.T) {
	n := NewNav()
	if err := n.Search(); err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if err := n.Select(5); err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	n.RecordDetailView(5)
	if err := n.Back(); err != nil {
		t.Fatalf("Back() error = %v", err)
	}

	if err := n.NewSearch(); err != nil {
		t.Fatalf("NewSearch() error = %v", err)
	}
	if n.Screen != ScreenInput {
		t.Errorf("Screen = %q, want %q", n.Screen, ScreenInput)
	}
	if n.SelectedID != 0 || n.LastViewedID != 0 {
		t.Errorf("selection survived new search: selected=%d lastViewed=%d",
			n.SelectedID, n.LastViewedID)
	}
}

func TestNav_RecoverRepairsDetailsWithoutSelection(t *testing.T) {
	n := NewNav()
	n.Screen = ScreenDetails
	n.SelectedID = 0

	if !n.Recover() {
		t.Fatal("Recover() = false for details without selection, want true")
	}
	if n.Screen != ScreenResults || n.List != ListPrimary {
		t.Errorf("after recover: Screen=%q List=%q, want results/primary", n.Screen, n.List)
	}
}

func TestNav_RecoverNoOpOnHealthyState(t *testing.T) {
	n := NewNav()
	if err := n.Search(); err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if n.Recover() {
		t.Error("Recover() = true on a healthy state, want false")
	}
	if n.Screen != ScreenResults {
		t.Errorf("Recover changed Screen to %q", n.Screen)
	}
}

func TestNav_FailedDetailFetchLeavesNoStaleSelection(t *testing.T) {
	n := NewNav()
	if err := n.Search(); err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if err := n.Select(99); err != nil {
		t.Fatalf("Select() error = %v", err)
	}

	// The detail fetch failed; the caller backs out without recording a view.
	if err := n.Back(); err != nil {
		t.Fatalf("Back() error = %v", err)
	}
	if n.SelectedID != 0 {
		t.Errorf("SelectedID = %d after backing out, want 0", n.SelectedID)
	}
	if n.LastViewedID != 0 {
		t.Errorf("LastViewedID = %d, want 0", n.LastViewedID)
	}
}
