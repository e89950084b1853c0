package prep

import (
	"fmt"

	"github.com/ak/mealkit/internal/domain/models"
)

// methodEquipment maps a cooking method to its required equipment.
var methodEquipment = map[string][]string{
	"oven_bake":         {"baking sheet", "oven"},
	"slow_cook":         {"slow cooker"},
	"stovetop_brown":    {"large skillet", "stovetop"},
	"grill":             {"grill", "tongs"},
	"oven_roast":        {"roasting pan", "oven"},
	"rice_cooker":       {"rice cooker"},
	"large_pot_boiling": {"large pot", "stovetop"},
}

// BuildSchedule lays suggestions out across the preferred prep days. All
// batch cooking lands on the primary prep day at high priority; ingredient
// prep tasks round-robin across the days at medium priority. Days that end
// up with no tasks are omitted. MaxPrepTime is carried on the preferences
// but not enforced as a hard cap; overloaded days are the user's call.
func (a *Analyzer) BuildSchedule(batch []models.BatchCookingSuggestion, prepWork []models.IngredientPrepSuggestion, prefs models.PrepPreferences) []models.PrepScheduleDay {
	prefs = prefs.Normalized()
	days := prefs.PreferredPrepDays

	var schedule []models.PrepScheduleDay
	for i, day := range days {
		daySchedule := models.PrepScheduleDay{Day: day}

		if i == 0 {
			for _, s := range batch {
				daySchedule.Tasks = append(daySchedule.Tasks, models.PrepTask{
					TaskType:      models.TaskBatchCook,
					Description:   taskDescription("Batch cook", s.TotalAmount, s.Ingredient),
					EstimatedTime: s.EstimatedPrepTime,
					Priority:      "high",
					Ingredients:   []string{s.Ingredient},
					Equipment:     requiredEquipment(s.CookingMethod),
				})
			}
		}

		for idx, s := range prepWork {
			if idx%len(days) != i {
				continue
			}
			daySchedule.Tasks = append(daySchedule.Tasks, models.PrepTask{
				TaskType:      models.TaskIngredientPrep,
				Description:   taskDescription("Prep", s.TotalAmount, s.Ingredient),
				EstimatedTime: s.EstimatedPrepTime,
				Priority:      "medium",
				Ingredients:   []string{s.Ingredient},
				Equipment:     []string{"cutting board", "knife"},
			})
		}

		if len(daySchedule.Tasks) > 0 {
			schedule = append(schedule, daySchedule)
		}
	}
	return schedule
}

func taskDescription(verb, amount, ingredient string) string {
	if amount == "" {
		return fmt.Sprintf("%s %s", verb, ingredient)
	}
	return fmt.Sprintf("%s %s %s", verb, amount, ingredient)
}

func requiredEquipment(method string) []string {
	if eq, ok := methodEquipment[method]; ok {
		return eq
	}
	return []string{"basic cooking equipment"}
}
