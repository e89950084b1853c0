package prep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ak/mealkit/internal/domain/models"
)

func TestBuildScheduleBatchOnPrimaryDay(t *testing.T) {
	a := testAnalyzer()

	batch := []models.BatchCookingSuggestion{
		{Ingredient: "chicken breast", TotalAmount: "3", CookingMethod: "oven_bake", EstimatedPrepTime: 23},
	}
	prepWork := []models.IngredientPrepSuggestion{
		{Ingredient: "onion", TotalAmount: "2", PrepType: "dice", EstimatedPrepTime: 3},
	}

	schedule := a.BuildSchedule(batch, prepWork, models.PrepPreferences{})
	require.Len(t, schedule, 1)

	day := schedule[0]
	assert.Equal(t, "sunday", day.Day)
	require.Len(t, day.Tasks, 2)

	cook := day.Tasks[0]
	assert.Equal(t, models.TaskBatchCook, cook.TaskType)
	assert.Equal(t, "Batch cook 3 chicken breast", cook.Description)
	assert.Equal(t, "high", cook.Priority)
	assert.Equal(t, []string{"baking sheet", "oven"}, cook.Equipment)
	assert.Equal(t, 23, cook.EstimatedTime)

	chop := day.Tasks[1]
	assert.Equal(t, models.TaskIngredientPrep, chop.TaskType)
	assert.Equal(t, "Prep 2 onion", chop.Description)
	assert.Equal(t, "medium", chop.Priority)
	assert.Equal(t, []string{"cutting board", "knife"}, chop.Equipment)
}

func TestBuildScheduleRoundRobinsPrepTasks(t *testing.T) {
	a := testAnalyzer()

	prepWork := []models.IngredientPrepSuggestion{
		{Ingredient: "onion", EstimatedPrepTime: 3},
		{Ingredient: "carrots", EstimatedPrepTime: 5},
		{Ingredient: "broccoli", EstimatedPrepTime: 8},
	}
	prefs := models.PrepPreferences{PreferredPrepDays: []string{"sunday", "wednesday"}}

	schedule := a.BuildSchedule(nil, prepWork, prefs)
	require.Len(t, schedule, 2)

	assert.Equal(t, "sunday", schedule[0].Day)
	require.Len(t, schedule[0].Tasks, 2)
	assert.Equal(t, []string{"onion"}, schedule[0].Tasks[0].Ingredients)
	assert.Equal(t, []string{"broccoli"}, schedule[0].Tasks[1].Ingredients)

	assert.Equal(t, "wednesday", schedule[1].Day)
	require.Len(t, schedule[1].Tasks, 1)
	assert.Equal(t, []string{"carrots"}, schedule[1].Tasks[0].Ingredients)
}

func TestBuildScheduleOmitsEmptyDays(t *testing.T) {
	a := testAnalyzer()

	prepWork := []models.IngredientPrepSuggestion{
		{Ingredient: "onion", EstimatedPrepTime: 3},
	}
	prefs := models.PrepPreferences{PreferredPrepDays: []string{"sunday", "wednesday"}}

	schedule := a.BuildSchedule(nil, prepWork, prefs)
	require.Len(t, schedule, 1)
	assert.Equal(t, "sunday", schedule[0].Day)
}

func TestBuildScheduleNoSuggestions(t *testing.T) {
	a := testAnalyzer()
	assert.Empty(t, a.BuildSchedule(nil, nil, models.PrepPreferences{}))
}

func TestRequiredEquipment(t *testing.T) {
	assert.Equal(t, []string{"slow cooker"}, requiredEquipment("slow_cook"))
	assert.Equal(t, []string{"large pot", "stovetop"}, requiredEquipment("large_pot_boiling"))
	assert.Equal(t, []string{"basic cooking equipment"}, requiredEquipment("sous_vide"))
}

func TestTaskDescriptionWithoutAmount(t *testing.T) {
	assert.Equal(t, "Prep onion", taskDescription("Prep", "", "onion"))
}
