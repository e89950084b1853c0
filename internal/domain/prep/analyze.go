package prep

import (
	"strings"

	"go.uber.org/zap"

	"github.com/ak/mealkit/internal/domain/ingredients"
	"github.com/ak/mealkit/internal/domain/models"
	"github.com/ak/mealkit/internal/pkg/logger"
)

const defaultServings = 4

// PlannedRecipe is a recipe as scheduled in the week: the recipe itself
// plus the day, meal slot, and effective servings it was planned with.
type PlannedRecipe struct {
	models.Recipe
	ScheduledDay string
	MealType     string
}

// Analyzer finds consolidation opportunities across a week of meals.
type Analyzer struct {
	kb  *KnowledgeBase
	log *logger.Logger
}

// NewAnalyzer creates an Analyzer backed by the given knowledge base.
func NewAnalyzer(kb *KnowledgeBase, log *logger.Logger) *Analyzer {
	return &Analyzer{
		kb:  kb,
		log: log.WithComponent("prep_analyzer"),
	}
}

// ExtractMeals flattens a meal plan into the scheduled recipes, walking
// days monday through sunday. Meals whose recipe cannot be resolved or has
// no ingredients are dropped. Effective servings fall back from the meal to
// the recipe to a default of 4.
func (a *Analyzer) ExtractMeals(plan *models.MealPlan, recipesByID map[string]models.Recipe) []PlannedRecipe {
	var out []PlannedRecipe
	if plan == nil {
		return out
	}

	for _, day := range models.WeekDays {
		for _, meal := range plan.Meals[day] {
			recipe, ok := recipesByID[meal.RecipeID]
			if !ok || len(recipe.Ingredients) == 0 {
				a.log.Debug("skipping unresolvable meal",
					zap.String("day", day),
					zap.String("recipe_id", meal.RecipeID))
				continue
			}

			servings := meal.Servings
			if servings <= 0 {
				servings = recipe.Servings
			}
			if servings <= 0 {
				servings = defaultServings
			}
			recipe.Servings = servings

			out = append(out, PlannedRecipe{
				Recipe:       recipe,
				ScheduledDay: day,
				MealType:     meal.MealType,
			})
		}
	}
	return out
}

// AnalyzeIngredients builds the per-ingredient usage map across the week's
// recipes, keyed by normalized name. Every occurrence counts toward
// UsageCount, including repeats of the same recipe; the recipe list itself
// stays deduplicated. Amounts are kept as a structured list rather than
// merged, so mismatched units stay inspectable.
func (a *Analyzer) AnalyzeIngredients(recipes []PlannedRecipe) []models.IngredientUsage {
	index := make(map[string]int)
	var usages []models.IngredientUsage

	for _, recipe := range recipes {
		for _, ing := range recipe.Ingredients {
			normalized := NormalizeName(ing.Name)
			if normalized == "" {
				continue
			}

			parsed := ingredients.ParseAmount(ing.Amount)
			if parsed.Unit == "" {
				parsed.Unit = ing.Unit
			}

			if i, ok := index[normalized]; ok {
				u := &usages[i]
				u.Amounts = append(u.Amounts, parsed)
				u.Recipes = appendUnique(u.Recipes, recipe.Title)
				u.UsageCount++
				continue
			}

			index[normalized] = len(usages)
			usages = append(usages, models.IngredientUsage{
				Name:           ing.Name,
				NormalizedName: normalized,
				Amounts:        []models.ParsedAmount{parsed},
				Recipes:        []string{recipe.Title},
				Category:       a.Categorize(ing.Name),
				UsageCount:     1,
			})
		}
	}
	return usages
}

// Categorize buckets an ingredient into protein, vegetable, grain, or
// other. Knowledge base membership decides first; keyword heuristics catch
// common ingredients the knowledge base does not know.
func (a *Analyzer) Categorize(name string) string {
	normalized := NormalizeName(name)

	if entry, ok := a.kb.Lookup(normalized); ok {
		return string(entry.Domain)
	}

	for _, kw := range []string{"chicken", "beef", "pork", "turkey", "fish", "salmon", "tuna", "shrimp"} {
		if strings.Contains(normalized, kw) {
			return string(models.PrepDomainProtein)
		}
	}
	for _, kw := range []string{"onion", "pepper", "tomato", "carrot", "broccoli", "spinach"} {
		if strings.Contains(normalized, kw) {
			return string(models.PrepDomainVegetable)
		}
	}
	for _, kw := range []string{"rice", "pasta", "quinoa", "bread", "noodles"} {
		if strings.Contains(normalized, kw) {
			return string(models.PrepDomainGrain)
		}
	}
	return "other"
}

func appendUnique(list []string, value string) []string {
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}
