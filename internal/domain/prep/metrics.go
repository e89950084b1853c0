package prep

import "github.com/ak/mealkit/internal/domain/models"

// Metrics scores a prep plan. Time saved is a conservative 40% of total
// scheduled prep time; efficiency is the saved share as a percentage,
// capped at 100 and zero when nothing is scheduled.
func (a *Analyzer) Metrics(batch []models.BatchCookingSuggestion, prepWork []models.IngredientPrepSuggestion, schedule []models.PrepScheduleDay) models.PrepMetrics {
	var totalPrepTime int
	for _, day := range schedule {
		for _, task := range day.Tasks {
			totalPrepTime += task.EstimatedTime
		}
	}

	recipeSet := make(map[string]struct{})
	for _, s := range batch {
		for _, r := range s.Recipes {
			recipeSet[r] = struct{}{}
		}
	}
	for _, s := range prepWork {
		for _, r := range s.Recipes {
			recipeSet[r] = struct{}{}
		}
	}

	timeSaved := totalPrepTime * 40 / 100

	efficiency := 0
	if timeSaved > 0 {
		efficiency = timeSaved * 100 / totalPrepTime
		if efficiency > 100 {
			efficiency = 100
		}
	}

	return models.PrepMetrics{
		TotalPrepTime:           totalPrepTime,
		TimeSaved:               timeSaved,
		Efficiency:              efficiency,
		RecipesAffected:         len(recipeSet),
		IngredientsConsolidated: len(batch) + len(prepWork),
	}
}
