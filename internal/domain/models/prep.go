package models

import "time"

// PrepDomain identifies which knowledge base domain an entry belongs to.
type PrepDomain string

const (
	PrepDomainProtein   PrepDomain = "protein"
	PrepDomainVegetable PrepDomain = "vegetable"
	PrepDomainGrain     PrepDomain = "grain"
)

// PrepKnowledgeEntry is static culinary reference data for one ingredient,
// keyed by its normalized name. Immutable configuration; not owned by any
// runtime entity.
type PrepKnowledgeEntry struct {
	Domain              PrepDomain `json:"domain" mapstructure:"domain"`
	Methods             []string   `json:"methods,omitempty" mapstructure:"methods"`           // batch cooking methods, preferred first
	PrepMethods         []string   `json:"prep_methods,omitempty" mapstructure:"prep_methods"` // vegetable prep methods, preferred first
	MaxBatchSize        string     `json:"max_batch_size,omitempty" mapstructure:"max_batch_size"`
	PrepTime            int        `json:"prep_time" mapstructure:"prep_time"` // minutes per batch
	CookTime            int        `json:"cook_time,omitempty" mapstructure:"cook_time"`
	ShelfLife           string     `json:"shelf_life,omitempty" mapstructure:"shelf_life"`
	StorageInstructions string     `json:"storage_instructions,omitempty" mapstructure:"storage_instructions"`
	ReheatingMethods    []string   `json:"reheating_methods,omitempty" mapstructure:"reheating_methods"`
	Tips                []string   `json:"tips,omitempty" mapstructure:"tips"`
}

// IngredientUsage is one entry in the analyzer's usage map: how often a
// normalized ingredient appears across the week's recipes and in what
// quantities. Amounts stay structured; mismatched units are kept side by side.
type IngredientUsage struct {
	Name           string         `json:"name"`
	NormalizedName string         `json:"normalized_name"`
	Amounts        []ParsedAmount `json:"amounts,omitempty"`
	Recipes        []string       `json:"recipes"`
	Category       string         `json:"category"`
	UsageCount     int            `json:"usage_count"`
}

// BatchCookingSuggestion recommends cooking one ingredient in bulk for the
// week. Derived per analysis call, never persisted on its own.
type BatchCookingSuggestion struct {
	Ingredient          string   `json:"ingredient"`
	TotalAmount         string   `json:"total_amount"`
	Unit                string   `json:"unit,omitempty"`
	Recipes             []string `json:"recipes"`
	CookingMethod       string   `json:"cooking_method"`
	PrepInstructions    string   `json:"prep_instructions"`
	StorageInstructions string   `json:"storage_instructions,omitempty"`
	ShelfLife           string   `json:"shelf_life,omitempty"`
	ReheatingMethods    []string `json:"reheating_methods,omitempty"`
	Tips                []string `json:"tips,omitempty"`
	EstimatedPrepTime   int      `json:"estimated_prep_time"` // minutes
	Difficulty          string   `json:"difficulty"`          // easy, medium
}

// IngredientPrepSuggestion recommends pre-prepping a vegetable used by
// multiple recipes.
type IngredientPrepSuggestion struct {
	Ingredient        string   `json:"ingredient"`
	TotalAmount       string   `json:"total_amount"`
	PrepType          string   `json:"prep_type"`
	Recipes           []string `json:"recipes"`
	PrepInstructions  string   `json:"prep_instructions"`
	StorageMethod     string   `json:"storage_method,omitempty"`
	EstimatedPrepTime int      `json:"estimated_prep_time"`
}

// PrepTaskType distinguishes schedule task kinds.
type PrepTaskType string

const (
	TaskBatchCook      PrepTaskType = "batch_cook"
	TaskIngredientPrep PrepTaskType = "ingredient_prep"
)

// PrepTask is one scheduled task on a prep day.
type PrepTask struct {
	TaskType      PrepTaskType `json:"task_type"`
	Description   string       `json:"description"`
	EstimatedTime int          `json:"estimated_time"` // minutes
	Priority      string       `json:"priority"`       // high, medium
	Ingredients   []string     `json:"ingredients"`
	Equipment     []string     `json:"equipment"`
}

// PrepScheduleDay groups the tasks assigned to one prep day. Days with no
// tasks are omitted from schedules entirely.
type PrepScheduleDay struct {
	Day   string     `json:"day"`
	Tasks []PrepTask `json:"tasks"`
}

// PrepMetrics summarizes the value of a prep plan.
type PrepMetrics struct {
	TotalPrepTime           int `json:"total_prep_time"` // minutes
	TimeSaved               int `json:"time_saved"`
	Efficiency              int `json:"efficiency"` // percent, 0..100
	RecipesAffected         int `json:"recipes_affected"`
	IngredientsConsolidated int `json:"ingredients_consolidated"`
}

// MealPrepSuggestion is the full analysis result for one meal plan.
type MealPrepSuggestion struct {
	MealPlanID               string                     `json:"meal_plan_id,omitempty"`
	BatchCookingSuggestions  []BatchCookingSuggestion   `json:"batch_cooking_suggestions"`
	IngredientPrepSuggestion []IngredientPrepSuggestion `json:"ingredient_prep_suggestions"`
	PrepSchedule             []PrepScheduleDay          `json:"prep_schedule"`
	Metrics                  PrepMetrics                `json:"metrics"`
	Preferences              PrepPreferences            `json:"preferences"`
	WeekStartDate            time.Time                  `json:"week_start_date,omitempty"`
	GeneratedAt              time.Time                  `json:"generated_at"`
	Message                  string                     `json:"message,omitempty"`
}
