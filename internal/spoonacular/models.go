package spoonacular

import (
	"fmt"
	"strings"
)

// RecipeSummary is the lightweight listing record returned by search and
// similar-recipe lookups. Summaries are immutable once received.
type RecipeSummary struct {
	ID    int    `json:"id"`
	Title string `json:"title"`

	// ReadyInMinutes is optional; zero means the API omitted it
	ReadyInMinutes int `json:"readyInMinutes,omitempty"`

	// Image URL, when the API provides one
	Image string `json:"image,omitempty"`
}

// searchResponse is the envelope returned by GET /recipes/complexSearch.
type searchResponse struct {
	Results      []RecipeSummary `json:"results"`
	Offset       int             `json:"offset"`
	Number       int             `json:"number"`
	TotalResults int             `json:"totalResults"`
}

// Nutrient is a single entry in the detail's nutrition table. Older API
// responses key the nutrient by "title", newer ones by "name"; both are
// decoded.
type Nutrient struct {
	Title  string  `json:"title,omitempty"`
	Name   string  `json:"name,omitempty"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// label returns whichever of the two name fields is populated.
func (n Nutrient) label() string {
	if n.Title != "" {
		return n.Title
	}
	return n.Name
}

// Nutrition holds the nutrient table of a recipe detail.
type Nutrition struct {
	Nutrients []Nutrient `json:"nutrients"`
}

// Ingredient is one entry of a detail's extended ingredient list.
// Original is the full human-readable line ("2 cups flour, sifted").
type Ingredient struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Original string `json:"original"`
}

// InstructionStep is a single numbered step of an analyzed instruction set.
type InstructionStep struct {
	Number int    `json:"number"`
	Step   string `json:"step"`
}

// AnalyzedInstruction is one named group of instruction steps. Most recipes
// have a single unnamed group.
type AnalyzedInstruction struct {
	Name  string            `json:"name"`
	Steps []InstructionStep `json:"steps"`
}

// RecipeDetail is the full record fetched on demand per recipe id via
// GET /recipes/{id}/information?includeNutrition=true.
type RecipeDetail struct {
	ID             int    `json:"id"`
	Title          string `json:"title"`
	ReadyInMinutes int    `json:"readyInMinutes"`
	Servings       int    `json:"servings"`
	SourceURL      string `json:"sourceUrl,omitempty"`
	Image          string `json:"image,omitempty"`

	Nutrition *Nutrition `json:"nutrition,omitempty"`

	ExtendedIngredients []Ingredient `json:"extendedIngredients"`

	// AnalyzedInstructions is the structured step list. When empty, the
	// raw Instructions text (possibly HTML) is the only guidance available.
	AnalyzedInstructions []AnalyzedInstruction `json:"analyzedInstructions"`
	Instructions         string                `json:"instructions,omitempty"`
}

// Calories returns the calorie entry of the nutrition table formatted as
// "570 kcal", or empty when nutrition data is absent.
func (d *RecipeDetail) Calories() string {
	if d.Nutrition == nil {
		return ""
	}
	for _, n := range d.Nutrition.Nutrients {
		if strings.EqualFold(n.label(), "Calories") {
			return strings.TrimSpace(fmt.Sprintf("%g %s", n.Amount, n.Unit))
		}
	}
	return ""
}

// IngredientLines returns the human-readable ingredient lines in order.
func (d *RecipeDetail) IngredientLines() []string {
	if len(d.ExtendedIngredients) == 0 {
		return nil
	}
	lines := make([]string, 0, len(d.ExtendedIngredients))
	for _, ing := range d.ExtendedIngredients {
		if ing.Original != "" {
			lines = append(lines, ing.Original)
		}
	}
	return lines
}

// Steps flattens the analyzed instruction groups into a single ordered
// list. An empty result means callers should fall back to the raw
// Instructions text.
func (d *RecipeDetail) Steps() []InstructionStep {
	var steps []InstructionStep
	for _, group := range d.AnalyzedInstructions {
		steps = append(steps, group.Steps...)
	}
	return steps
}

// FormatDetailed returns a multi-line rendering of the recipe for CLI
// output: facts, ingredients, and numbered instructions.
func (d *RecipeDetail) FormatDetailed() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s (id %d)\n", d.Title, d.ID)
	if d.ReadyInMinutes > 0 {
		fmt.Fprintf(&b, "  Ready in:  %d minutes\n", d.ReadyInMinutes)
	}
	if d.Servings > 0 {
		fmt.Fprintf(&b, "  Servings:  %d\n", d.Servings)
	}
	if cal := d.Calories(); cal != "" {
		fmt.Fprintf(&b, "  Calories:  %s per serving\n", cal)
	}
	if d.SourceURL != "" {
		fmt.Fprintf(&b, "  Source:    %s\n", d.SourceURL)
	}

	b.WriteString("\nIngredients:\n")
	lines := d.IngredientLines()
	if len(lines) == 0 {
		b.WriteString("  (none listed)\n")
	}
	for _, line := range lines {
		fmt.Fprintf(&b, "  - %s\n", line)
	}

	b.WriteString("\nInstructions:\n")
	steps := d.Steps()
	switch {
	case len(steps) > 0:
		for i, step := range steps {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, step.Step)
		}
	case strings.TrimSpace(d.Instructions) != "":
		fmt.Fprintf(&b, "  %s\n", strings.TrimSpace(d.Instructions))
	default:
		b.WriteString("  (none listed; check the source link)\n")
	}

	return b.String()
}

// FormatCompact returns a one-line rendering of the recipe.
func (d *RecipeDetail) FormatCompact() string {
	parts := []string{fmt.Sprintf("%d  %s", d.ID, d.Title)}
	if d.ReadyInMinutes > 0 {
		parts = append(parts, fmt.Sprintf("%d min", d.ReadyInMinutes))
	}
	if d.Servings > 0 {
		parts = append(parts, fmt.Sprintf("serves %d", d.Servings))
	}
	if cal := d.Calories(); cal != "" {
		parts = append(parts, cal)
	}
	return strings.Join(parts, " • ")
}

// String returns a one-line summary suitable for compact CLI output.
func (s RecipeSummary) String() string {
	if s.ReadyInMinutes > 0 {
		return fmt.Sprintf("%d  %s (%d min)", s.ID, s.Title, s.ReadyInMinutes)
	}
	return fmt.Sprintf("%d  %s", s.ID, s.Title)
}
