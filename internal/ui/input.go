package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// InputModel is the query entry screen.
type InputModel struct {
	Query textinput.Model

	Width  int
	Height int
}

// NewInputModel creates the query entry screen with the cursor focused.
func NewInputModel() InputModel {
	ti := textinput.New()
	ti.Placeholder = "e.g. pasta, chicken curry, chocolate cake"
	ti.CharLimit = 120
	ti.Width = 50
	ti.PromptStyle = FocusedInputStyle
	ti.Focus()
	return InputModel{Query: ti}
}

// Value returns the trimmed query text.
func (m InputModel) Value() string {
	return strings.TrimSpace(m.Query.Value())
}

// Clear empties the input for a fresh search.
func (m *InputModel) Clear() {
	m.Query.SetValue("")
	m.Query.Focus()
}

// Update forwards key events to the text input widget.
func (m InputModel) Update(msg tea.Msg) (InputModel, tea.Cmd) {
	var cmd tea.Cmd
	m.Query, cmd = m.Query.Update(msg)
	return m, cmd
}

// View renders the query entry screen content (without the container).
func (m InputModel) View(status string) string {
	var b strings.Builder

	b.WriteString(RenderTitle("🔍 Search Recipes"))
	b.WriteString("\n")

	if status != "" {
		b.WriteString(RenderStatus(status))
		b.WriteString("\n\n")
	}

	b.WriteString("What would you like to cook?\n\n")
	b.WriteString("  " + m.Query.View())
	b.WriteString("\n\n")
	b.WriteString(RenderSubtitle("Results are fetched from Spoonacular ten at a time."))
	b.WriteString("\n")

	return b.String()
}
