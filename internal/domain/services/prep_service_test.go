package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ak/mealkit/internal/domain/models"
	"github.com/ak/mealkit/internal/domain/prep"
	"github.com/ak/mealkit/internal/pkg/logger"
)

func newTestPrepService() MealPrepService {
	return NewMealPrepService(prep.DefaultKnowledgeBase(), &logger.Logger{Logger: zap.NewNop()})
}

func TestAnalyzeFindsBatchOpportunity(t *testing.T) {
	svc := newTestPrepService()

	recipes := []models.Recipe{
		{ID: "r1", Title: "Teriyaki Bowl", Servings: 4, Ingredients: []models.Ingredient{
			{Name: "chicken breast", Amount: "1", Unit: "lb"},
			{Name: "rice", Amount: "1", Unit: "cup"},
		}},
		{ID: "r2", Title: "Chicken Salad", Servings: 2, Ingredients: []models.Ingredient{
			{Name: "chicken breast", Amount: "0.5", Unit: "lb"},
			{Name: "onion", Amount: "1"},
		}},
		{ID: "r3", Title: "Veggie Soup", Servings: 4, Ingredients: []models.Ingredient{
			{Name: "onion", Amount: "2"},
			{Name: "carrots", Amount: "3"},
		}},
	}

	plan := &models.MealPlan{
		ID:            "mp1",
		Name:          "Prep Week",
		WeekStartDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Meals: map[string][]models.PlannedMeal{
			"monday":    {{RecipeID: "r1", MealType: "dinner"}},
			"wednesday": {{RecipeID: "r2", MealType: "lunch"}},
			"friday":    {{RecipeID: "r3", MealType: "dinner"}},
		},
	}

	result, err := svc.Analyze(context.Background(), AnalyzeMealPlanRequest{
		MealPlan: plan,
		Recipes:  recipes,
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "mp1", result.MealPlanID)
	assert.Empty(t, result.Message)

	// Chicken breast used in two meals: batch cook it.
	require.Len(t, result.BatchCookingSuggestions, 1)
	batch := result.BatchCookingSuggestions[0]
	assert.Equal(t, "chicken breast", batch.Ingredient)
	assert.Equal(t, "oven_bake", batch.CookingMethod)
	assert.ElementsMatch(t, []string{"Teriyaki Bowl", "Chicken Salad"}, batch.Recipes)

	// Onion used in two meals: prep it ahead.
	require.Len(t, result.IngredientPrepSuggestion, 1)
	assert.Equal(t, "onion", result.IngredientPrepSuggestion[0].Ingredient)
	assert.Equal(t, "dice", result.IngredientPrepSuggestion[0].PrepType)

	// Everything lands on the default prep day.
	require.Len(t, result.PrepSchedule, 1)
	day := result.PrepSchedule[0]
	assert.Equal(t, "sunday", day.Day)
	require.Len(t, day.Tasks, 2)
	assert.Equal(t, models.TaskBatchCook, day.Tasks[0].TaskType)
	assert.Equal(t, "high", day.Tasks[0].Priority)
	assert.Equal(t, models.TaskIngredientPrep, day.Tasks[1].TaskType)

	assert.Positive(t, result.Metrics.TotalPrepTime)
	assert.Equal(t, 2, result.Metrics.IngredientsConsolidated)
	assert.Equal(t, 3, result.Metrics.RecipesAffected)

	// Defaults recorded on the result.
	assert.Equal(t, []string{"sunday"}, result.Preferences.PreferredPrepDays)
	assert.Equal(t, 180, result.Preferences.MaxPrepTime)
}

func TestAnalyzeNoOpportunities(t *testing.T) {
	svc := newTestPrepService()

	recipes := []models.Recipe{
		{ID: "r1", Title: "Toast", Servings: 1, Ingredients: []models.Ingredient{
			{Name: "bread", Amount: "2", Unit: "slices"},
		}},
	}
	plan := &models.MealPlan{ID: "mp1", Meals: map[string][]models.PlannedMeal{
		"monday": {{RecipeID: "r1"}},
	}}

	result, err := svc.Analyze(context.Background(), AnalyzeMealPlanRequest{MealPlan: plan, Recipes: recipes})
	require.NoError(t, err)

	assert.Empty(t, result.BatchCookingSuggestions)
	assert.Empty(t, result.IngredientPrepSuggestion)
	assert.Empty(t, result.PrepSchedule)
	assert.Equal(t, 0, result.Metrics.Efficiency)
	assert.NotEmpty(t, result.Message)
}

func TestAnalyzeMissingMealPlan(t *testing.T) {
	svc := newTestPrepService()

	result, err := svc.Analyze(context.Background(), AnalyzeMealPlanRequest{})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "no meal plan found", result.Message)
	assert.Empty(t, result.MealPlanID)
	assert.Empty(t, result.BatchCookingSuggestions)
	assert.Empty(t, result.IngredientPrepSuggestion)
	assert.Empty(t, result.PrepSchedule)
	assert.False(t, result.GeneratedAt.IsZero())

	// Defaults still apply on the degraded path.
	assert.Equal(t, []string{"sunday"}, result.Preferences.PreferredPrepDays)
	assert.Equal(t, 180, result.Preferences.MaxPrepTime)
}

func TestAnalyzeMissingRecipes(t *testing.T) {
	svc := newTestPrepService()

	plan := &models.MealPlan{
		ID:            "mp1",
		WeekStartDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Meals: map[string][]models.PlannedMeal{
			"monday": {{RecipeID: "r1"}},
		},
	}

	result, err := svc.Analyze(context.Background(), AnalyzeMealPlanRequest{MealPlan: plan})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "no recipes found for meal plan", result.Message)
	assert.Equal(t, "mp1", result.MealPlanID)
	assert.Equal(t, plan.WeekStartDate, result.WeekStartDate)
	assert.Empty(t, result.PrepSchedule)
}

func TestPrepRenderText(t *testing.T) {
	svc := newTestPrepService()

	recipes := []models.Recipe{
		{ID: "r1", Title: "Teriyaki Bowl", Servings: 4, Ingredients: []models.Ingredient{
			{Name: "chicken breast", Amount: "1", Unit: "lb"},
		}},
		{ID: "r2", Title: "Chicken Salad", Servings: 2, Ingredients: []models.Ingredient{
			{Name: "chicken breast", Amount: "0.5", Unit: "lb"},
		}},
	}
	plan := &models.MealPlan{ID: "mp1", Meals: map[string][]models.PlannedMeal{
		"monday":    {{RecipeID: "r1"}},
		"wednesday": {{RecipeID: "r2"}},
	}}

	result, err := svc.Analyze(context.Background(), AnalyzeMealPlanRequest{MealPlan: plan, Recipes: recipes})
	require.NoError(t, err)

	text := svc.RenderText(result)
	assert.Contains(t, text, "Meal prep plan")
	assert.Contains(t, text, "Sunday\n")
	assert.Contains(t, text, "chicken breast")
	assert.Contains(t, text, "high priority")
	assert.Contains(t, text, "equipment:")
	assert.Contains(t, text, "Total prep time:")
}

func TestPrepRenderTextDegraded(t *testing.T) {
	svc := newTestPrepService()

	result, err := svc.Analyze(context.Background(), AnalyzeMealPlanRequest{})
	require.NoError(t, err)

	text := svc.RenderText(result)
	assert.Contains(t, text, "no meal plan found")
	assert.NotContains(t, text, "Total prep time:")

	assert.Empty(t, svc.RenderText(nil))
}

func TestAnalyzeRespectsPreferredDays(t *testing.T) {
	svc := newTestPrepService()

	recipes := []models.Recipe{
		{ID: "r1", Title: "Soup", Servings: 4, Ingredients: []models.Ingredient{
			{Name: "onion", Amount: "1"},
			{Name: "carrots", Amount: "2"},
		}},
		{ID: "r2", Title: "Stew", Servings: 4, Ingredients: []models.Ingredient{
			{Name: "onion", Amount: "2"},
			{Name: "carrots", Amount: "1"},
		}},
	}
	plan := &models.MealPlan{ID: "mp1", Meals: map[string][]models.PlannedMeal{
		"tuesday":  {{RecipeID: "r1"}},
		"saturday": {{RecipeID: "r2"}},
	}}

	result, err := svc.Analyze(context.Background(), AnalyzeMealPlanRequest{
		MealPlan:    plan,
		Recipes:     recipes,
		Preferences: models.PrepPreferences{PreferredPrepDays: []string{"saturday", "monday"}},
	})
	require.NoError(t, err)

	require.Len(t, result.PrepSchedule, 2)
	assert.Equal(t, "saturday", result.PrepSchedule[0].Day)
	assert.Equal(t, "monday", result.PrepSchedule[1].Day)
}
