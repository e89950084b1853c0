package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ak/mealkit/internal/domain/models"
	"github.com/ak/mealkit/internal/domain/prep"
	"github.com/ak/mealkit/internal/pkg/errors"
	"github.com/ak/mealkit/internal/pkg/logger"
)

// dayTitle capitalizes weekday names for text output.
var dayTitle = cases.Title(language.English)

// MealPrepService handles meal prep analysis business logic
type MealPrepService interface {
	Analyze(ctx context.Context, req AnalyzeMealPlanRequest) (*models.MealPrepSuggestion, error)
	RenderText(result *models.MealPrepSuggestion) string
}

type AnalyzeMealPlanRequest struct {
	MealPlan    *models.MealPlan       `json:"meal_plan"`
	Recipes     []models.Recipe        `json:"recipes"`
	Preferences models.PrepPreferences `json:"preferences"`
}

type mealPrepService struct {
	analyzer *prep.Analyzer
	log      *logger.Logger
	now      func() time.Time
}

// NewMealPrepService creates a new meal prep service
func NewMealPrepService(kb *prep.KnowledgeBase, log *logger.Logger) MealPrepService {
	return &mealPrepService{
		analyzer: prep.NewAnalyzer(kb, log),
		log:      log.WithComponent("meal_prep_service"),
		now:      time.Now,
	}
}

// Analyze runs the full prep analysis pipeline: extract the week's meals,
// build the ingredient usage map, derive batch and prep suggestions, lay
// out the schedule, and score it.
func (s *mealPrepService) Analyze(ctx context.Context, req AnalyzeMealPlanRequest) (*models.MealPrepSuggestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	prefs := req.Preferences.Normalized()

	if req.MealPlan == nil || len(req.Recipes) == 0 {
		relErr := errors.MissingRelation("no meal plan found")
		if req.MealPlan != nil {
			relErr = errors.MissingRelation("no recipes found for meal plan")
		}
		s.log.Warn("generating empty prep analysis",
			zap.String("code", string(relErr.Code)),
			zap.String("reason", relErr.Message))
		return s.emptyResult(req.MealPlan, prefs, relErr.Message), nil
	}

	recipesByID := make(map[string]models.Recipe, len(req.Recipes))
	for _, r := range req.Recipes {
		recipesByID[r.ID] = r
	}

	planned := s.analyzer.ExtractMeals(req.MealPlan, recipesByID)
	usages := s.analyzer.AnalyzeIngredients(planned)
	batch := s.analyzer.BatchSuggestions(usages)
	prepWork := s.analyzer.PrepSuggestions(usages)
	schedule := s.analyzer.BuildSchedule(batch, prepWork, prefs)
	metrics := s.analyzer.Metrics(batch, prepWork, schedule)

	result := &models.MealPrepSuggestion{
		MealPlanID:               req.MealPlan.ID,
		BatchCookingSuggestions:  batch,
		IngredientPrepSuggestion: prepWork,
		PrepSchedule:             schedule,
		Metrics:                  metrics,
		Preferences:              prefs,
		WeekStartDate:            req.MealPlan.WeekStartDate,
		GeneratedAt:              s.now(),
	}
	if len(batch) == 0 && len(prepWork) == 0 {
		result.Message = "no consolidation opportunities found for this week"
	}

	s.log.WithMealPlan(req.MealPlan.ID).Info("meal prep analysis complete",
		zap.String("meal_plan", req.MealPlan.Name),
		zap.Int("batch_suggestions", len(batch)),
		zap.Int("prep_suggestions", len(prepWork)),
		zap.Int("total_prep_time", metrics.TotalPrepTime))

	return result, nil
}

// RenderText formats an analysis result as a plain-text prep plan, one
// section per scheduled day with the metrics summary at the end.
func (s *mealPrepService) RenderText(result *models.MealPrepSuggestion) string {
	if result == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("Meal prep plan\n\n")
	if result.Message != "" {
		fmt.Fprintf(&b, "%s\n", result.Message)
		if len(result.PrepSchedule) == 0 {
			return b.String()
		}
		b.WriteString("\n")
	}

	for _, day := range result.PrepSchedule {
		fmt.Fprintf(&b, "%s\n", dayTitle.String(day.Day))
		for _, task := range day.Tasks {
			fmt.Fprintf(&b, "  - %s (%d min, %s priority)\n",
				task.Description, task.EstimatedTime, task.Priority)
			if len(task.Equipment) > 0 {
				fmt.Fprintf(&b, "    equipment: %s\n", strings.Join(task.Equipment, ", "))
			}
		}
		b.WriteString("\n")
	}

	m := result.Metrics
	fmt.Fprintf(&b, "Total prep time: %d min, saves %d min across %d recipes (%d%% efficiency)\n",
		m.TotalPrepTime, m.TimeSaved, m.RecipesAffected, m.Efficiency)
	return b.String()
}

// emptyResult is the degraded response for a missing meal plan or recipe
// set: an explicit empty analysis carrying a message, never an error.
func (s *mealPrepService) emptyResult(plan *models.MealPlan, prefs models.PrepPreferences, message string) *models.MealPrepSuggestion {
	result := &models.MealPrepSuggestion{
		Preferences: prefs,
		GeneratedAt: s.now(),
		Message:     message,
	}
	if plan != nil {
		result.MealPlanID = plan.ID
		result.WeekStartDate = plan.WeekStartDate
	}
	return result
}
