package spoonacular

import (
	"strings"
	"testing"
)

func TestCalories_FromNameKey(t *testing.T) {
	d := &RecipeDetail{
		Nutrition: &Nutrition{Nutrients: []Nutrient{
			{Name: "Fat", Amount: 12, Unit: "g"},
			{Name: "Calories", Amount: 584, Unit: "kcal"},
		}},
	}

	if got := d.Calories(); got != "584 kcal" {
		t.Errorf("Calories() = %q, want %q", got, "584 kcal")
	}
}

func TestCalories_FromTitleKey(t *testing.T) {
	// Older API responses key nutrients by "title"
	d := &RecipeDetail{
		Nutrition: &Nutrition{Nutrients: []Nutrient{
			{Title: "Calories", Amount: 420.5, Unit: "kcal"},
		}},
	}

	if got := d.Calories(); got != "420.5 kcal" {
		t.Errorf("Calories() = %q, want %q", got, "420.5 kcal")
	}
}

func TestCalories_MissingNutrition(t *testing.T) {
	d := &RecipeDetail{}

	if got := d.Calories(); got != "" {
		t.Errorf("Calories() = %q for missing nutrition, want empty", got)
	}
}

func TestCalories_NoCalorieEntry(t *testing.T) {
	d := &RecipeDetail{
		Nutrition: &Nutrition{Nutrients: []Nutrient{
			{Name: "Protein", Amount: 20, Unit: "g"},
		}},
	}

	if got := d.Calories(); got != "" {
		t.Errorf("Calories() = %q with no calorie entry, want empty", got)
	}
}

func TestIngredientLines(t *testing.T) {
	d := &RecipeDetail{
		ExtendedIngredients: []Ingredient{
			{Name: "garlic", Original: "3 cloves garlic, minced"},
			{Name: "mystery"}, // no line, skipped
			{Name: "pasta", Original: "200g spaghetti"},
		},
	}

	lines := d.IngredientLines()
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2", len(lines))
	}
	if lines[0] != "3 cloves garlic, minced" || lines[1] != "200g spaghetti" {
		t.Errorf("lines = %v", lines)
	}
}

func TestSteps_FlattensGroups(t *testing.T) {
	d := &RecipeDetail{
		AnalyzedInstructions: []AnalyzedInstruction{
			{Name: "Sauce", Steps: []InstructionStep{
				{Number: 1, Step: "Simmer the tomatoes."},
			}},
			{Name: "Pasta", Steps: []InstructionStep{
				{Number: 1, Step: "Boil the pasta."},
				{Number: 2, Step: "Drain."},
			}},
		},
	}

	steps := d.Steps()
	if len(steps) != 3 {
		t.Fatalf("len(steps) = %d, want 3", len(steps))
	}
	if steps[0].Step != "Simmer the tomatoes." || steps[2].Step != "Drain." {
		t.Errorf("steps = %v", steps)
	}
}

func TestSteps_EmptyWhenOnlyRawInstructions(t *testing.T) {
	d := &RecipeDetail{Instructions: "Mix everything and bake."}

	if steps := d.Steps(); len(steps) != 0 {
		t.Errorf("Steps() = %v, want empty so callers use the raw text", steps)
	}
}

func TestFormatDetailed(t *testing.T) {
	d := &RecipeDetail{
		ID:             716429,
		Title:          "Pasta with Garlic",
		ReadyInMinutes: 45,
		Servings:       2,
		SourceURL:      "https://example.com/pasta",
		Nutrition: &Nutrition{Nutrients: []Nutrient{
			{Name: "Calories", Amount: 584, Unit: "kcal"},
		}},
		ExtendedIngredients: []Ingredient{
			{Original: "3 cloves garlic, minced"},
		},
		AnalyzedInstructions: []AnalyzedInstruction{
			{Steps: []InstructionStep{{Number: 1, Step: "Boil the pasta."}}},
		},
	}

	out := d.FormatDetailed()

	for _, want := range []string{
		"Pasta with Garlic (id 716429)",
		"45 minutes",
		"584 kcal",
		"- 3 cloves garlic, minced",
		"1. Boil the pasta.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatDetailed() missing %q\ngot:\n%s", want, out)
		}
	}
}

func TestFormatDetailed_RawInstructionsFallback(t *testing.T) {
	d := &RecipeDetail{
		ID:           1,
		Title:        "Mystery Bake",
		Instructions: "Mix everything and bake.",
	}

	out := d.FormatDetailed()
	if !strings.Contains(out, "Mix everything and bake.") {
		t.Errorf("FormatDetailed() did not fall back to raw instructions:\n%s", out)
	}
}

func TestRecipeSummaryString(t *testing.T) {
	withTime := RecipeSummary{ID: 716429, Title: "Pasta with Garlic", ReadyInMinutes: 45}
	if got := withTime.String(); got != "716429  Pasta with Garlic (45 min)" {
		t.Errorf("String() = %q", got)
	}

	withoutTime := RecipeSummary{ID: 5, Title: "Toast"}
	if got := withoutTime.String(); got != "5  Toast" {
		t.Errorf("String() = %q", got)
	}
}
