package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pkoski/recipefinder/internal/spoonacular"
)

// resultsKeyMap defines key bindings for the results screen
type resultsKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Open      key.Binding
	NextPage  key.Binding
	PrevPage  key.Binding
	NewSearch key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k resultsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.NextPage, k.PrevPage, k.NewSearch, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k resultsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open},
		{k.NextPage, k.PrevPage, k.NewSearch, k.Back, k.Quit},
	}
}

// similarKeyMap defines key bindings when viewing the similar-recipes list
type similarKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Open      key.Binding
	Back      key.Binding
	NewSearch key.Binding
	Quit      key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k similarKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Back, k.NewSearch, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k similarKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open},
		{k.Back, k.NewSearch, k.Quit},
	}
}

// recipeItem wraps a RecipeSummary for use with bubbles/list
type recipeItem struct {
	recipe spoonacular.RecipeSummary
}

// FilterValue implements list.Item; recipes filter by title.
func (r recipeItem) FilterValue() string {
	return r.recipe.Title
}

// recipeDelegate renders recipe cards in the results list
type recipeDelegate struct {
	width int
}

func (d recipeDelegate) Height() int { return 4 } // Card height including borders

func (d recipeDelegate) Spacing() int { return 0 }

func (d recipeDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d recipeDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ri, ok := item.(recipeItem)
	if !ok {
		return
	}

	recipe := ri.recipe
	selected := index == m.Index()

	var content strings.Builder
	if selected {
		content.WriteString(SelectedItemStyle.Render("→ " + recipe.Title))
	} else {
		content.WriteString("  " + recipe.Title)
	}
	content.WriteString("\n")

	detail := fmt.Sprintf("  ⏱ %d min", recipe.ReadyInMinutes)
	if recipe.ReadyInMinutes <= 0 {
		detail = "  ⏱ time unknown"
	}
	content.WriteString(SubtitleStyle.Render(detail))

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(0, 1).
		MarginLeft(2)

	cardWidth := d.width - 6
	if cardWidth < MinTerminalWidth-6 {
		cardWidth = MinTerminalWidth - 6
	}
	if cardWidth > MaxContentWidth-6 {
		cardWidth = MaxContentWidth - 6
	}
	cardStyle = cardStyle.Width(cardWidth)

	if selected {
		cardStyle = cardStyle.BorderForeground(HighlightColor)
	}

	fmt.Fprint(w, cardStyle.Render(content.String()))
}

// ResultsModel is the results screen. It shows either the paginated
// primary search results or a flat similar-recipes list; the coordinator
// decides which via the navigation state.
type ResultsModel struct {
	List list.Model

	// Similar-list context: the recipe the listing is anchored to
	AnchorTitle string

	Width  int
	Height int

	Help        help.Model
	Keys        resultsKeyMap
	SimilarKeys similarKeyMap
}

// NewResultsModel creates the results screen model.
func NewResultsModel() ResultsModel {
	delegate := recipeDelegate{width: MinTerminalWidth}
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)

	keys := resultsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "view recipe"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("n", "right"),
			key.WithHelp("n", "load more"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("p", "left"),
			key.WithHelp("p", "previous page"),
		),
		NewSearch: key.NewBinding(
			key.WithKeys("s", "/"),
			key.WithHelp("s", "new search"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}

	similarKeys := similarKeyMap{
		Up:   keys.Up,
		Down: keys.Down,
		Open: keys.Open,
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back to recipe"),
		),
		NewSearch: keys.NewSearch,
		Quit:      keys.Quit,
	}

	return ResultsModel{
		List:        l,
		Help:        help.New(),
		Keys:        keys,
		SimilarKeys: similarKeys,
	}
}

// SetRecipes replaces the visible list items.
func (m *ResultsModel) SetRecipes(recipes []spoonacular.RecipeSummary) {
	items := make([]list.Item, len(recipes))
	for i, r := range recipes {
		items[i] = recipeItem{recipe: r}
	}
	m.List.SetItems(items)
	m.List.ResetSelected()
}

// SelectedRecipe returns the highlighted recipe and whether one exists.
func (m ResultsModel) SelectedRecipe() (spoonacular.RecipeSummary, bool) {
	item, ok := m.List.SelectedItem().(recipeItem)
	if !ok {
		return spoonacular.RecipeSummary{}, false
	}
	return item.recipe, true
}

// Resize propagates terminal dimensions to the list widget.
func (m *ResultsModel) Resize(width, height int) {
	m.Width = width
	m.Height = height
	m.List.SetDelegate(recipeDelegate{width: width})
	listHeight := height - 10 // header, title, status, footer
	if listHeight < 8 {
		listHeight = 8
	}
	m.List.SetSize(width-4, listHeight)
}

// Update forwards movement keys to the list widget.
func (m ResultsModel) Update(msg tea.Msg) (ResultsModel, tea.Cmd) {
	var cmd tea.Cmd
	m.List, cmd = m.List.Update(msg)
	return m, cmd
}

// ViewPrimary renders the paginated search results content.
// pageLabel describes the window, e.g. "Page 2 • 14 results so far".
func (m ResultsModel) ViewPrimary(query, pageLabel, status string) string {
	var b strings.Builder

	b.WriteString(RenderTitle(fmt.Sprintf("Results for %q", query)))
	b.WriteString("\n")

	if status != "" {
		b.WriteString(RenderStatus(status))
		b.WriteString("\n")
	}

	if len(m.List.Items()) == 0 {
		b.WriteString(RenderInfo("No recipes found. Try a different search term."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.List.View())
	b.WriteString("\n")
	b.WriteString(RenderSubtitle(pageLabel))
	b.WriteString("\n")

	return b.String()
}

// ViewSimilar renders the similar-recipes list content.
func (m ResultsModel) ViewSimilar(status string) string {
	var b strings.Builder

	b.WriteString(RenderTitle(fmt.Sprintf("Recipes similar to %q", m.AnchorTitle)))
	b.WriteString("\n")

	if status != "" {
		b.WriteString(RenderStatus(status))
		b.WriteString("\n")
	}

	if len(m.List.Items()) == 0 {
		b.WriteString(RenderInfo("No similar recipes found."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.List.View())
	b.WriteString("\n")

	return b.String()
}
