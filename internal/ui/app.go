package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/pkoski/recipefinder/internal/logging"
	"github.com/pkoski/recipefinder/internal/session"
	"github.com/pkoski/recipefinder/internal/spoonacular"
)

// AppModel is the top-level coordinator. It owns the API client, the
// search session and the navigation state, and routes messages to the
// active screen. Fetches happen inline while handling the key that
// triggered them; failures become a status line, never a crash.
type AppModel struct {
	Client *spoonacular.Client
	Sess   *session.SearchSession
	Nav    *session.Nav

	PageSize     int
	SimilarCount int

	// Screen models
	Input   InputModel
	Results ResultsModel
	Details DetailsModel

	// similar caches the last similar-recipes response so that returning
	// to that list does not refetch it
	similar []spoonacular.RecipeSummary

	// Status is a soft-failure message shown under the active screen title
	Status string

	Width  int
	Height int
}

// NewAppModel creates the application model at the query input screen.
func NewAppModel(client *spoonacular.Client, pageSize, similarCount int) AppModel {
	if pageSize <= 0 {
		pageSize = spoonacular.DefaultPageSize
	}
	if similarCount <= 0 {
		similarCount = spoonacular.DefaultSimilarCount
	}

	return AppModel{
		Client:       client,
		Sess:         session.NewSearchSession(),
		Nav:          session.NewNav(),
		PageSize:     pageSize,
		SimilarCount: similarCount,
		Input:        NewInputModel(),
		Results:      NewResultsModel(),
		Details:      NewDetailsModel(),
	}
}

// Init starts the cursor blink on the query input.
func (m AppModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all messages and routes them to the active screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Input.Width = msg.Width
		m.Input.Height = msg.Height
		m.Results.Resize(msg.Width, msg.Height)
		m.Details.Resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	switch m.Nav.Screen {
	case session.ScreenInput:
		return m.updateInput(msg)
	case session.ScreenResults:
		return m.updateResults(msg)
	case session.ScreenDetails:
		return m.updateDetails(msg)
	}

	return m, nil
}

// updateInput handles the query entry screen.
func (m AppModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" {
		query := m.Input.Value()
		if query == "" {
			m.Status = "Enter a search term first."
			return m, nil
		}
		return m.runSearch(query)
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

// runSearch resets the session for a new query and fetches the first page.
// On fetch failure the user stays on the input screen with a status line.
func (m AppModel) runSearch(query string) (tea.Model, tea.Cmd) {
	m.Sess.Reset(query)
	if err := m.Sess.EnsurePageLoaded(m.Client, m.PageSize); err != nil {
		logging.Error("search failed", zap.String("query", query), zap.Error(err))
		m.Status = spoonacular.GetShortErrorMessage(err)
		return m, nil
	}

	if err := m.Nav.Search(); err != nil {
		m.Status = err.Error()
		return m, nil
	}

	m.Status = ""
	m.refreshPrimaryList()
	return m, nil
}

// updateResults handles both the primary paginated list and the similar
// list, dispatching on the navigation state.
func (m AppModel) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.Results, cmd = m.Results.Update(msg)
		return m, cmd
	}

	if m.Nav.List == session.ListSimilar {
		return m.updateSimilarList(keyMsg)
	}

	switch keyMsg.String() {
	case "enter":
		return m.openSelected()

	case "n", "right":
		if !m.Sess.CanAdvance() {
			return m, nil
		}
		m.Sess.AdvancePage(m.PageSize)
		if err := m.Sess.EnsurePageLoaded(m.Client, m.PageSize); err != nil {
			// PageSlice walks the window back onto loaded data
			m.Status = spoonacular.GetShortErrorMessage(err)
		} else {
			m.Status = ""
		}
		m.refreshPrimaryList()
		return m, nil

	case "p", "left":
		if m.Sess.RetreatPage(m.PageSize) {
			m.Status = ""
			m.refreshPrimaryList()
		}
		return m, nil

	case "s", "/":
		return m.startNewSearch()

	case "q":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.Results, cmd = m.Results.Update(msg)
	return m, cmd
}

// startNewSearch returns to the query input, discarding the session.
func (m AppModel) startNewSearch() (tea.Model, tea.Cmd) {
	if err := m.Nav.NewSearch(); err != nil {
		m.Status = err.Error()
		return m, nil
	}
	m.Sess.Reset("")
	m.Status = ""
	m.Input.Clear()
	return m, textinput.Blink
}

// updateSimilarList handles keys while the similar-recipes list is shown.
func (m AppModel) updateSimilarList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "enter":
		return m.openSelected()

	case "esc", "b":
		if err := m.Nav.Back(); err != nil {
			m.Status = err.Error()
			return m, nil
		}
		m.Status = ""
		return m, nil

	case "s", "/":
		return m.startNewSearch()

	case "q":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.Results, cmd = m.Results.Update(keyMsg)
	return m, cmd
}

// openSelected fetches the highlighted recipe's details and moves to the
// details screen. The selection is recorded only after the fetch succeeds,
// so a failure leaves navigation exactly where it was.
func (m AppModel) openSelected() (tea.Model, tea.Cmd) {
	recipe, ok := m.Results.SelectedRecipe()
	if !ok {
		return m, nil
	}

	detail, err := m.Client.GetDetail(recipe.ID)
	if err != nil {
		logging.Error("detail fetch failed", zap.Int("id", recipe.ID), zap.Error(err))
		m.Status = spoonacular.GetShortErrorMessage(err)
		return m, nil
	}

	if err := m.Nav.Select(recipe.ID); err != nil {
		m.Status = err.Error()
		return m, nil
	}
	m.Nav.RecordDetailView(recipe.ID)
	m.Details.SetRecipe(detail)
	m.Details.Resize(m.Width, m.Height)
	m.Status = ""
	return m, nil
}

// updateDetails handles the recipe details screen.
func (m AppModel) updateDetails(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.Details, cmd = m.Details.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "f":
		return m.runFindSimilar()

	case "esc", "b":
		if err := m.Nav.Back(); err != nil {
			m.Status = err.Error()
			return m, nil
		}
		m.Status = ""
		if m.Nav.List == session.ListSimilar {
			m.Results.SetRecipes(m.similar)
		} else {
			m.refreshPrimaryList()
		}
		return m, nil

	case "q":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.Details, cmd = m.Details.Update(msg)
	return m, cmd
}

// runFindSimilar fetches recipes similar to the one being viewed and shows
// them as a flat, unpaginated list.
func (m AppModel) runFindSimilar() (tea.Model, tea.Cmd) {
	anchor := m.Nav.LastViewedID
	if anchor == 0 {
		m.Status = "View a recipe before looking for similar ones."
		return m, nil
	}

	similar, err := m.Client.GetSimilar(anchor, m.SimilarCount)
	if err != nil {
		logging.Error("similar fetch failed", zap.Int("id", anchor), zap.Error(err))
		m.Status = spoonacular.GetShortErrorMessage(err)
		return m, nil
	}

	if err := m.Nav.FindSimilar(); err != nil {
		m.Status = err.Error()
		return m, nil
	}

	m.similar = similar
	m.Results.SetRecipes(similar)
	if m.Details.Recipe != nil {
		m.Results.AnchorTitle = m.Details.Recipe.Title
	}
	m.Status = ""
	return m, nil
}

// refreshPrimaryList loads the current page window into the list widget.
func (m *AppModel) refreshPrimaryList() {
	m.Results.SetRecipes(m.Sess.PageSlice(m.PageSize))
}

// pageLabel describes the visible window of the primary results.
func (m AppModel) pageLabel() string {
	label := fmt.Sprintf("Page %d • %d recipes loaded", m.Sess.PageNumber(m.PageSize), len(m.Sess.Results))
	if m.Sess.CanAdvance() {
		label += " • n: load more"
	}
	if m.Sess.CanRetreat() {
		label += " • p: previous page"
	}
	return label
}

// View renders the active screen inside the application container.
func (m AppModel) View() string {
	// Repair impossible navigation states before rendering
	if m.Nav.Recover() {
		m.refreshPrimaryList()
	}

	switch m.Nav.Screen {
	case session.ScreenInput:
		content := m.Input.View(m.Status)
		helpText := "enter: search • ctrl+c: quit"
		return RenderApplicationContainer(content, helpText, m.Width, m.Height)

	case session.ScreenResults:
		if m.Nav.List == session.ListSimilar {
			content := m.Results.ViewSimilar(m.Status)
			helpText := m.Results.Help.View(m.Results.SimilarKeys)
			return RenderApplicationContainer(content, helpText, m.Width, m.Height)
		}
		content := m.Results.ViewPrimary(m.Sess.Query, m.pageLabel(), m.Status)
		helpText := m.Results.Help.View(m.Results.Keys)
		return RenderApplicationContainer(content, helpText, m.Width, m.Height)

	case session.ScreenDetails:
		content := m.Details.View(m.Status)
		helpText := m.Details.Help.View(m.Details.Keys)
		return RenderApplicationContainer(content, helpText, m.Width, m.Height)
	}

	return "Unknown screen"
}

// Run starts the interactive program in the alternate screen buffer.
func Run(client *spoonacular.Client, pageSize, similarCount int) error {
	p := tea.NewProgram(NewAppModel(client, pageSize, similarCount), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
