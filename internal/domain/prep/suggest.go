package prep

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ak/mealkit/internal/domain/ingredients"
	"github.com/ak/mealkit/internal/domain/models"
)

// batchInstructions maps a cooking method to its instruction template.
var batchInstructions = map[string]string{
	"oven_bake":      "Preheat oven to 375F. Season %s and bake until cooked through.",
	"slow_cook":      "Add %s to slow cooker with seasonings. Cook on low 6-8 hours.",
	"stovetop_brown": "Heat oil in large pan. Brown %s in batches until cooked through.",
	"grill":          "Preheat grill to medium-high. Grill %s until cooked through.",
	"oven_roast":     "Preheat oven to 400F. Roast %s until internal temp reaches safe level.",
}

var prepInstructions = map[string]string{
	"dice":     "Wash and peel if needed. Dice %s into uniform pieces.",
	"slice":    "Wash and trim %s. Slice into even pieces.",
	"chop":     "Wash and prepare %s. Chop into desired size.",
	"mince":    "Peel and mince %s finely.",
	"julienne": "Wash and trim %s. Cut into thin matchsticks.",
}

// BatchSuggestions recommends batch cooking for proteins and grains used by
// at least two meals in the week and known to the knowledge base. Results
// are sorted by impact: the suggestion touching the most distinct recipes
// comes first.
func (a *Analyzer) BatchSuggestions(usages []models.IngredientUsage) []models.BatchCookingSuggestion {
	var out []models.BatchCookingSuggestion

	for _, u := range usages {
		if u.UsageCount < 2 {
			continue
		}
		if u.Category != string(models.PrepDomainProtein) && u.Category != string(models.PrepDomainGrain) {
			continue
		}
		entry, ok := a.kb.Lookup(u.NormalizedName)
		if !ok || len(entry.Methods) == 0 {
			continue
		}

		method := entry.Methods[0]
		total, unit := totalAmount(u.Amounts)
		storage := entry.StorageInstructions
		if storage == "" {
			storage = "Refrigerate in airtight container"
		}
		shelfLife := entry.ShelfLife
		if shelfLife == "" {
			shelfLife = "3-4 days"
		}

		out = append(out, models.BatchCookingSuggestion{
			Ingredient:          u.Name,
			TotalAmount:         total,
			Unit:                unit,
			Recipes:             u.Recipes,
			CookingMethod:       method,
			PrepInstructions:    batchInstruction(method, u.Name),
			StorageInstructions: storage,
			ShelfLife:           shelfLife,
			ReheatingMethods:    entry.ReheatingMethods,
			Tips:                entry.Tips,
			EstimatedPrepTime:   scaledPrepTime(entry.PrepTime, 15, total),
			Difficulty:          assessDifficulty(u.Category, method),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i].Recipes) > len(out[j].Recipes)
	})
	return out
}

// PrepSuggestions recommends advance prep for vegetables used by at least
// two meals in the week.
func (a *Analyzer) PrepSuggestions(usages []models.IngredientUsage) []models.IngredientPrepSuggestion {
	var out []models.IngredientPrepSuggestion

	for _, u := range usages {
		if u.UsageCount < 2 {
			continue
		}
		entry, ok := a.kb.Vegetable(u.NormalizedName)
		if !ok || len(entry.PrepMethods) == 0 {
			continue
		}

		prepType := entry.PrepMethods[0]
		total, _ := totalAmount(u.Amounts)

		out = append(out, models.IngredientPrepSuggestion{
			Ingredient:        u.Name,
			TotalAmount:       total,
			PrepType:          prepType,
			Recipes:           u.Recipes,
			PrepInstructions:  prepInstruction(prepType, u.Name),
			StorageMethod:     entry.StorageInstructions,
			EstimatedPrepTime: scaledPrepTime(entry.PrepTime, 5, total),
		})
	}
	return out
}

func batchInstruction(method, ingredient string) string {
	if tmpl, ok := batchInstructions[method]; ok {
		return fmt.Sprintf(tmpl, ingredient)
	}
	return fmt.Sprintf("Cook %s using preferred method.", ingredient)
}

func prepInstruction(prepType, ingredient string) string {
	if tmpl, ok := prepInstructions[prepType]; ok {
		return fmt.Sprintf(tmpl, ingredient)
	}
	return fmt.Sprintf("Prep %s as needed for recipes.", ingredient)
}

// totalAmount sums what it can and reports the display total. Amounts with
// mismatched units sum numerically and carry the first unit seen; the
// structured per-occurrence amounts remain the source of truth.
func totalAmount(amounts []models.ParsedAmount) (string, string) {
	var sum float64
	var unit string
	for _, a := range amounts {
		sum += a.Amount
		if unit == "" && a.Unit != "" {
			unit = a.Unit
		}
	}
	if sum == 0 {
		return "", unit
	}
	return ingredients.FormatAmount(sum), unit
}

// scaledPrepTime scales a base prep time by a rough quantity bucket: more
// quantity means more time, with diminishing returns.
func scaledPrepTime(baseTime, fallback int, total string) int {
	if baseTime <= 0 {
		baseTime = fallback
	}
	return int(math.Ceil(float64(baseTime) * quantityMultiplier(total)))
}

func quantityMultiplier(total string) float64 {
	parsed := ingredients.ParseAmount(total)
	if parsed.Amount == 0 {
		return 1
	}
	switch {
	case parsed.Amount <= 2:
		return 1
	case parsed.Amount <= 4:
		return 1.5
	case parsed.Amount <= 8:
		return 2
	default:
		return 2.5
	}
}

func assessDifficulty(category, method string) string {
	if category == string(models.PrepDomainProtein) {
		switch {
		case strings.Contains(method, "slow_cook"):
			return "easy"
		case strings.Contains(method, "oven"):
			return "easy"
		case strings.Contains(method, "grill"):
			return "medium"
		}
	}
	return "easy"
}
