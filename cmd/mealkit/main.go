package main

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ak/mealkit/internal/domain/models"
	"github.com/ak/mealkit/internal/domain/prep"
	"github.com/ak/mealkit/internal/domain/services"
	"github.com/ak/mealkit/internal/domain/taxonomy"
	"github.com/ak/mealkit/internal/infrastructure/config"
	"github.com/ak/mealkit/internal/pkg/errors"
	"github.com/ak/mealkit/internal/pkg/logger"
)

var (
	version   = "0.1.0"
	buildTime = "unknown"
)

var (
	mealPlanPath  string
	recipesPath   string
	inventoryPath string
	prefsPath     string
	outputFormat  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mealkit",
		Short: "Meal planning engine - shopping lists and prep schedules",
		Long: `Mealkit aggregates recipe ingredients across a weekly meal plan into a
categorized shopping list, cross-referenced against pantry inventory, and
generates batch-cooking and ingredient-prep schedules for the week.`,
	}

	// Version command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("mealkit version %s (built %s)\n", version, buildTime)
		},
	})

	// Shopping list command
	shoppingCmd := &cobra.Command{
		Use:   "shopping-list",
		Short: "Generate a categorized shopping list from a meal plan",
		RunE:  runShoppingList,
	}
	shoppingCmd.Flags().StringVar(&mealPlanPath, "meal-plan", "", "path to meal plan JSON file")
	shoppingCmd.Flags().StringVar(&recipesPath, "recipes", "", "path to recipes JSON file")
	shoppingCmd.Flags().StringVar(&inventoryPath, "inventory", "", "path to inventory JSON file")
	shoppingCmd.Flags().StringVar(&outputFormat, "format", "json", "output format: json or text")
	shoppingCmd.MarkFlagRequired("meal-plan")
	shoppingCmd.MarkFlagRequired("recipes")
	rootCmd.AddCommand(shoppingCmd)

	// Prep schedule command
	prepCmd := &cobra.Command{
		Use:   "prep-schedule",
		Short: "Analyze a meal plan for batch cooking and prep opportunities",
		RunE:  runPrepSchedule,
	}
	prepCmd.Flags().StringVar(&mealPlanPath, "meal-plan", "", "path to meal plan JSON file")
	prepCmd.Flags().StringVar(&recipesPath, "recipes", "", "path to recipes JSON file")
	prepCmd.Flags().StringVar(&prefsPath, "prefs", "", "path to prep preferences JSON file")
	prepCmd.Flags().StringVar(&outputFormat, "format", "json", "output format: json or text")
	prepCmd.MarkFlagRequired("meal-plan")
	prepCmd.MarkFlagRequired("recipes")
	rootCmd.AddCommand(prepCmd)

	if err := rootCmd.Execute(); err != nil {
		var apiErr *errors.APIError
		if stderrors.As(err, &apiErr) {
			json.NewEncoder(os.Stderr).Encode(errors.NewErrorResponse(apiErr))
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func setup() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(cfg.Logging)
	if err != nil {
		return nil, nil, errors.Internal("failed to initialize logger").WithDetails(err.Error())
	}
	logger.SetGlobal(log)

	return cfg, log, nil
}

func loadTaxonomy(cfg *config.Config, log *logger.Logger) *taxonomy.Taxonomy {
	if cfg.Taxonomy.File == "" {
		return taxonomy.Default()
	}
	tax, err := taxonomy.LoadFile(cfg.Taxonomy.File)
	if err != nil {
		log.Warn("falling back to built-in taxonomy", zap.Error(err))
		return taxonomy.Default()
	}
	return tax
}

func loadKnowledgeBase(cfg *config.Config, log *logger.Logger) *prep.KnowledgeBase {
	if cfg.Prep.KnowledgeFile == "" {
		return prep.DefaultKnowledgeBase()
	}
	kb, err := prep.LoadKnowledgeFile(cfg.Prep.KnowledgeFile)
	if err != nil {
		log.Warn("falling back to built-in knowledge base", zap.Error(err))
		return prep.DefaultKnowledgeBase()
	}
	log.Info("loaded prep knowledge base",
		zap.String("file", cfg.Prep.KnowledgeFile),
		zap.String("kb_version", kb.Version()))
	return kb
}

func runShoppingList(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()
	log = log.WithFields(zap.String("command", "shopping-list"))

	if err := validateFormat(outputFormat); err != nil {
		return err
	}

	var plan models.MealPlan
	if err := readJSON(mealPlanPath, "meal plan", &plan); err != nil {
		return err
	}

	var recipes []models.Recipe
	if err := readJSON(recipesPath, "recipes", &recipes); err != nil {
		return err
	}

	var inv *models.UserInventory
	if inventoryPath != "" {
		inv = &models.UserInventory{}
		if err := readJSON(inventoryPath, "inventory", inv); err != nil {
			return err
		}
	}

	svc := services.NewShoppingListService(loadTaxonomy(cfg, log), log)
	list, err := svc.Generate(context.Background(), services.GenerateShoppingListRequest{
		MealPlan:  &plan,
		Recipes:   recipes,
		Inventory: inv,
	})
	if err != nil {
		return err
	}

	if outputFormat == "text" {
		fmt.Print(svc.RenderText(list))
		return nil
	}
	return writeJSON(os.Stdout, list)
}

func runPrepSchedule(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()
	log = log.WithFields(zap.String("command", "prep-schedule"))

	if err := validateFormat(outputFormat); err != nil {
		return err
	}

	var plan models.MealPlan
	if err := readJSON(mealPlanPath, "meal plan", &plan); err != nil {
		return err
	}

	var recipes []models.Recipe
	if err := readJSON(recipesPath, "recipes", &recipes); err != nil {
		return err
	}

	var prefs models.PrepPreferences
	if prefsPath != "" {
		if err := readJSON(prefsPath, "preferences", &prefs); err != nil {
			return err
		}
	}

	svc := services.NewMealPrepService(loadKnowledgeBase(cfg, log), log)
	result, err := svc.Analyze(context.Background(), services.AnalyzeMealPlanRequest{
		MealPlan:    &plan,
		Recipes:     recipes,
		Preferences: prefs,
	})
	if err != nil {
		return err
	}

	if outputFormat == "text" {
		fmt.Print(svc.RenderText(result))
		return nil
	}
	return writeJSON(os.Stdout, result)
}

func validateFormat(format string) error {
	switch format {
	case "json", "text":
		return nil
	default:
		return errors.Validation(fmt.Sprintf("unsupported output format %q, expected json or text", format))
	}
}

func readJSON(path, what string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NotFound(fmt.Sprintf("%s file %s", what, path))
		}
		return errors.Internal(fmt.Sprintf("failed to read %s file", what)).WithDetails(err.Error())
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.InvalidInput(fmt.Sprintf("failed to decode %s file %s", what, path)).WithDetails(err.Error())
	}
	return nil
}

func writeJSON(w *os.File, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
