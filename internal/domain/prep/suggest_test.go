package prep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ak/mealkit/internal/domain/models"
)

func usage(name string, count int, recipes []string, amounts ...models.ParsedAmount) models.IngredientUsage {
	a := testAnalyzer()
	return models.IngredientUsage{
		Name:           name,
		NormalizedName: NormalizeName(name),
		Amounts:        amounts,
		Recipes:        recipes,
		Category:       a.Categorize(name),
		UsageCount:     count,
	}
}

func TestBatchSuggestions(t *testing.T) {
	a := testAnalyzer()

	usages := []models.IngredientUsage{
		usage("chicken breast", 2, []string{"Bowl", "Salad"},
			models.ParsedAmount{Amount: 1, Unit: "lb"}, models.ParsedAmount{Amount: 1, Unit: "lb"}),
		usage("onion", 3, []string{"Bowl", "Salad", "Soup"},
			models.ParsedAmount{Amount: 1}), // vegetable, not batch cooked
		usage("rice", 1, []string{"Bowl"},
			models.ParsedAmount{Amount: 1, Unit: "cup"}), // used once, filtered
		usage("maple syrup", 2, []string{"Pancakes", "Oatmeal"},
			models.ParsedAmount{Amount: 1, Unit: "tbsp"}), // no knowledge entry
	}

	out := a.BatchSuggestions(usages)
	require.Len(t, out, 1)

	s := out[0]
	assert.Equal(t, "chicken breast", s.Ingredient)
	assert.Equal(t, "2", s.TotalAmount)
	assert.Equal(t, "lb", s.Unit)
	assert.Equal(t, "oven_bake", s.CookingMethod)
	assert.Contains(t, s.PrepInstructions, "375F")
	assert.Contains(t, s.PrepInstructions, "chicken breast")
	assert.Equal(t, "3-4 days", s.ShelfLife)
	assert.Equal(t, "easy", s.Difficulty)
	assert.Equal(t, []string{"Bowl", "Salad"}, s.Recipes)
	// base 15 min at multiplier 1 for a total of 2
	assert.Equal(t, 15, s.EstimatedPrepTime)
}

func TestBatchSuggestionsSortedByImpact(t *testing.T) {
	a := testAnalyzer()

	usages := []models.IngredientUsage{
		usage("rice", 2, []string{"Bowl", "Curry"}, models.ParsedAmount{Amount: 2, Unit: "cups"}),
		usage("chicken breast", 3, []string{"Bowl", "Salad", "Wrap"}, models.ParsedAmount{Amount: 3, Unit: "lbs"}),
	}

	out := a.BatchSuggestions(usages)
	require.Len(t, out, 2)
	assert.Equal(t, "chicken breast", out[0].Ingredient)
	assert.Equal(t, "rice", out[1].Ingredient)
}

func TestPrepSuggestions(t *testing.T) {
	a := testAnalyzer()

	usages := []models.IngredientUsage{
		usage("onion", 2, []string{"Soup", "Stir Fry"},
			models.ParsedAmount{Amount: 1}, models.ParsedAmount{Amount: 2}),
		usage("chicken breast", 2, []string{"Bowl", "Salad"},
			models.ParsedAmount{Amount: 1, Unit: "lb"}), // protein, not prepped here
		usage("onion", 1, []string{"Soup"}), // below usage threshold
	}

	out := a.PrepSuggestions(usages[:2])
	require.Len(t, out, 1)

	s := out[0]
	assert.Equal(t, "onion", s.Ingredient)
	assert.Equal(t, "dice", s.PrepType)
	assert.Contains(t, s.PrepInstructions, "Dice onion")
	assert.Equal(t, "Airtight container in refrigerator", s.StorageMethod)
	// base 2 min at multiplier 1.5 for a total of 3
	assert.Equal(t, 3, s.EstimatedPrepTime)
}

func TestQuantityMultiplierBuckets(t *testing.T) {
	tests := []struct {
		total string
		want  float64
	}{
		{"", 1},
		{"to taste", 1},
		{"1", 1},
		{"2", 1},
		{"3", 1.5},
		{"4", 1.5},
		{"6", 2},
		{"8", 2},
		{"9", 2.5},
		{"12.5", 2.5},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, quantityMultiplier(tt.total), 1e-9, "total %q", tt.total)
	}
}

func TestAssessDifficulty(t *testing.T) {
	assert.Equal(t, "easy", assessDifficulty("protein", "slow_cook"))
	assert.Equal(t, "easy", assessDifficulty("protein", "oven_bake"))
	assert.Equal(t, "medium", assessDifficulty("protein", "grill"))
	assert.Equal(t, "easy", assessDifficulty("grain", "large_pot_boiling"))
	assert.Equal(t, "easy", assessDifficulty("other", "grill"))
}

func TestBatchInstructionFallback(t *testing.T) {
	assert.Equal(t, "Cook tofu using preferred method.", batchInstruction("sous_vide", "tofu"))
	assert.Equal(t, "Prep celery as needed for recipes.", prepInstruction("spiralize", "celery"))
}
