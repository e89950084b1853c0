package models

import "time"

// WeekDays lists the meal plan day buckets in schedule order. Extraction and
// scheduling both iterate this slice so output ordering is deterministic.
var WeekDays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// PlannedMeal is one scheduled use of a recipe inside a meal plan day.
type PlannedMeal struct {
	RecipeID   string `json:"recipe_id"`
	RecipeName string `json:"recipe_name,omitempty"`
	MealType   string `json:"meal_type,omitempty"` // breakfast, lunch, dinner, snack
	Servings   int    `json:"servings"`
}

// MealPlan represents a weekly meal plan with day-keyed meal buckets.
type MealPlan struct {
	ID            string                   `json:"id"`
	Name          string                   `json:"name,omitempty"`
	WeekStartDate time.Time                `json:"week_start_date"`
	Meals         map[string][]PlannedMeal `json:"meals"`
}

// MealUsage summarizes every planned use of one recipe across the week.
type MealUsage struct {
	RecipeName string        `json:"recipe_name"`
	Meals      []PlannedMeal `json:"meals"`
}

// UsageByRecipe indexes the plan's meals by recipe id, preserving day order.
func (p *MealPlan) UsageByRecipe() map[string]*MealUsage {
	usage := make(map[string]*MealUsage)
	if p == nil {
		return usage
	}
	for _, day := range WeekDays {
		for _, meal := range p.Meals[day] {
			if meal.RecipeID == "" {
				continue
			}
			u, ok := usage[meal.RecipeID]
			if !ok {
				u = &MealUsage{RecipeName: meal.RecipeName}
				usage[meal.RecipeID] = u
			}
			u.Meals = append(u.Meals, meal)
		}
	}
	return usage
}

// PrepPreferences carries the user's meal prep scheduling preferences.
type PrepPreferences struct {
	MaxPrepTime       int      `json:"max_prep_time"` // minutes; accepted but not enforced as a packing budget
	PreferredPrepDays []string `json:"preferred_prep_days"`
	AvoidedTasks      []string `json:"avoided_tasks,omitempty"`
	SkillLevel        string   `json:"skill_level,omitempty"`
}

// Normalized returns a copy with defaults applied: sunday as the single prep
// day and a 3 hour prep budget.
func (p PrepPreferences) Normalized() PrepPreferences {
	out := p
	if len(out.PreferredPrepDays) == 0 {
		out.PreferredPrepDays = []string{"sunday"}
	}
	if out.MaxPrepTime <= 0 {
		out.MaxPrepTime = 180
	}
	return out
}
