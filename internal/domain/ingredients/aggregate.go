package ingredients

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ak/mealkit/internal/domain/models"
	"github.com/ak/mealkit/internal/domain/taxonomy"
	"github.com/ak/mealkit/internal/pkg/logger"
)

// Key returns the aggregation key for an ingredient name. Two ingredient
// entries merge exactly when their keys are equal.
func Key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Aggregator merges ingredient lists from many recipes into one deduplicated
// map keyed by normalized ingredient name.
type Aggregator struct {
	taxonomy *taxonomy.Taxonomy
	log      *logger.Logger
}

// NewAggregator creates an Aggregator classifying against the given taxonomy.
func NewAggregator(tax *taxonomy.Taxonomy, log *logger.Logger) *Aggregator {
	return &Aggregator{
		taxonomy: tax,
		log:      log.WithComponent("aggregator"),
	}
}

// Combine folds every ingredient of every recipe into a single map of
// aggregated entries. Recipe usage data scales quantities by the ratio of
// planned servings to recipe servings; without usage data quantities pass
// through unscaled. Individual ingredient failures never abort the pass: a
// broken entry is recorded under a synthetic key so nothing is silently lost.
func (a *Aggregator) Combine(recipes []models.Recipe, usage map[string]*models.MealUsage) map[string]*models.AggregatedIngredient {
	combined := make(map[string]*models.AggregatedIngredient)

	for _, recipe := range recipes {
		factor := a.scaleFactor(recipe, usage)

		for idx, ing := range recipe.Ingredients {
			if strings.TrimSpace(ing.Name) == "" {
				a.log.Warn("skipping ingredient with empty name",
					zap.String("recipe", recipe.Title),
					zap.Int("index", idx))
				continue
			}

			if err := a.combineOne(combined, recipe, ing, factor); err != nil {
				a.rescue(combined, recipe, ing, idx, err)
			}
		}
	}

	return combined
}

func (a *Aggregator) combineOne(combined map[string]*models.AggregatedIngredient, recipe models.Recipe, ing models.Ingredient, factor float64) (err error) {
	// A single malformed entry must not take down the whole pass.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("combine %q: %v", ing.Name, r)
		}
	}()

	parsed := ParseAmount(ing.Amount)
	unit := ing.Unit
	if unit == "" {
		unit = parsed.Unit
	}
	scaled := parsed.Amount * factor

	key := Key(ing.Name)
	existing, ok := combined[key]
	if !ok {
		combined[key] = &models.AggregatedIngredient{
			Key:      key,
			Name:     ing.Name,
			Amount:   scaled,
			Unit:     unit,
			Recipes:  []string{recipe.Title},
			Category: a.taxonomy.Classify(ing.Name),
			Optional: ing.Optional,
		}
		return nil
	}

	existing.Recipes = appendUnique(existing.Recipes, recipe.Title)
	if !ing.Optional {
		existing.Optional = false
	}

	if existing.Unit == unit {
		existing.Amount += scaled
		return nil
	}

	// Unit mismatch: keep the quantity visible instead of guessing at a
	// conversion.
	for i := range existing.AlternativeAmounts {
		alt := &existing.AlternativeAmounts[i]
		if alt.Unit == unit {
			alt.Amount += scaled
			alt.Recipes = appendUnique(alt.Recipes, recipe.Title)
			return nil
		}
	}
	existing.AlternativeAmounts = append(existing.AlternativeAmounts, models.AlternativeAmount{
		Amount:  scaled,
		Unit:    unit,
		Recipes: []string{recipe.Title},
	})
	return nil
}

// rescue records an ingredient that failed to combine under a synthetic
// collision-proof key so the shopping list still includes it.
func (a *Aggregator) rescue(combined map[string]*models.AggregatedIngredient, recipe models.Recipe, ing models.Ingredient, idx int, cause error) {
	a.log.WithRecipe(recipe.ID).Warn("ingredient aggregation failed, preserving raw entry",
		zap.String("recipe", recipe.Title),
		zap.String("ingredient", ing.Name),
		zap.Error(cause))

	key := fmt.Sprintf("%s-%d-%d", Key(ing.Name), time.Now().UnixNano(), idx)
	combined[key] = &models.AggregatedIngredient{
		Key:      key,
		Name:     ing.Name,
		Unit:     ing.Unit,
		Recipes:  []string{recipe.Title},
		Category: taxonomy.FallbackCategory,
		Optional: ing.Optional,
	}
}

// scaleFactor computes the quantity multiplier for one recipe from the meal
// plan's usage data: planned servings divided by the recipe's base servings,
// summed over every scheduled meal that uses the recipe.
func (a *Aggregator) scaleFactor(recipe models.Recipe, usage map[string]*models.MealUsage) float64 {
	if usage == nil {
		return 1
	}
	u, ok := usage[recipe.ID]
	if !ok || len(u.Meals) == 0 {
		return 1
	}

	base := float64(recipe.DefaultServings())
	var factor float64
	for _, meal := range u.Meals {
		servings := meal.Servings
		if servings <= 0 {
			servings = 1
		}
		factor += float64(servings) / base
	}
	return factor
}

func appendUnique(list []string, value string) []string {
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}
