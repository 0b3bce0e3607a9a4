package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/pkoski/recipefinder/internal/spoonacular"
)

// detailsKeyMap defines key bindings for the recipe details screen
type detailsKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Similar key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k detailsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Similar, k.Back, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k detailsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Similar, k.Back, k.Quit},
	}
}

// DetailsModel is the recipe details screen. The fetched recipe is kept so
// returning from the similar list does not refetch it.
type DetailsModel struct {
	Recipe   *spoonacular.RecipeDetail
	Viewport viewport.Model

	Width  int
	Height int

	Help help.Model
	Keys detailsKeyMap
}

// NewDetailsModel creates the details screen model.
func NewDetailsModel() DetailsModel {
	keys := detailsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Similar: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "find similar"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back to results"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}

	vp := viewport.New(MinTerminalWidth, 20)

	return DetailsModel{
		Viewport: vp,
		Help:     help.New(),
		Keys:     keys,
	}
}

// SetRecipe loads a fetched recipe into the viewport, scrolled to the top.
func (m *DetailsModel) SetRecipe(recipe *spoonacular.RecipeDetail) {
	m.Recipe = recipe
	m.Viewport.SetContent(m.buildContent())
	m.Viewport.GotoTop()
}

// Resize propagates terminal dimensions and rewraps the content.
func (m *DetailsModel) Resize(width, height int) {
	m.Width = width
	m.Height = height

	vpHeight := height - 10 // header, title, footer
	if vpHeight < 8 {
		vpHeight = 8
	}
	m.Viewport.Width = ContentWidth(width)
	m.Viewport.Height = vpHeight

	if m.Recipe != nil {
		m.Viewport.SetContent(m.buildContent())
	}
}

// Update forwards scroll keys to the viewport.
func (m DetailsModel) Update(msg tea.Msg) (DetailsModel, tea.Cmd) {
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// buildContent renders the recipe body: facts, ingredients, instructions.
func (m DetailsModel) buildContent() string {
	r := m.Recipe
	if r == nil {
		return ""
	}

	wrapWidth := m.Viewport.Width - 2
	if wrapWidth < 30 {
		wrapWidth = 30
	}

	var b strings.Builder

	if r.ReadyInMinutes > 0 {
		b.WriteString(fmt.Sprintf("%s %d minutes\n", LabelStyle.Render("Ready in:"), r.ReadyInMinutes))
	}
	if r.Servings > 0 {
		b.WriteString(fmt.Sprintf("%s %d\n", LabelStyle.Render("Servings:"), r.Servings))
	}
	if cal := r.Calories(); cal != "" {
		b.WriteString(fmt.Sprintf("%s %s per serving\n", LabelStyle.Render("Calories:"), cal))
	}
	if r.SourceURL != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", LabelStyle.Render("Source:"), r.SourceURL))
	}

	lines := r.IngredientLines()
	b.WriteString(SectionStyle.Render("Ingredients"))
	b.WriteString("\n")
	if len(lines) == 0 {
		b.WriteString(SubtitleStyle.Render("  No ingredient information available."))
		b.WriteString("\n")
	}
	for _, line := range lines {
		b.WriteString(wordwrap.String("  • "+line, wrapWidth))
		b.WriteString("\n")
	}

	b.WriteString(SectionStyle.Render("Instructions"))
	b.WriteString("\n")

	steps := r.Steps()
	switch {
	case len(steps) > 0:
		for i, step := range steps {
			b.WriteString(wordwrap.String(fmt.Sprintf("  %d. %s", i+1, step.Step), wrapWidth))
			b.WriteString("\n")
		}
	case strings.TrimSpace(r.Instructions) != "":
		b.WriteString(wordwrap.String("  "+strings.TrimSpace(r.Instructions), wrapWidth))
		b.WriteString("\n")
	default:
		b.WriteString(SubtitleStyle.Render("  No instructions available. Check the source link above."))
		b.WriteString("\n")
	}

	return b.String()
}

// View renders the details screen content (without the container).
func (m DetailsModel) View(status string) string {
	var b strings.Builder

	title := "Recipe"
	if m.Recipe != nil {
		title = m.Recipe.Title
	}
	b.WriteString(RenderTitle("🍽 " + title))
	b.WriteString("\n")

	if status != "" {
		b.WriteString(RenderStatus(status))
		b.WriteString("\n")
	}

	b.WriteString(m.Viewport.View())
	b.WriteString("\n")

	return b.String()
}
