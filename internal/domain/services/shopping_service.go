package services

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ak/mealkit/internal/domain/ingredients"
	"github.com/ak/mealkit/internal/domain/inventory"
	"github.com/ak/mealkit/internal/domain/models"
	"github.com/ak/mealkit/internal/domain/taxonomy"
	"github.com/ak/mealkit/internal/pkg/errors"
	"github.com/ak/mealkit/internal/pkg/logger"
)

// ShoppingListService handles shopping list business logic
type ShoppingListService interface {
	Generate(ctx context.Context, req GenerateShoppingListRequest) (*models.ShoppingList, error)
	UpdateItems(ctx context.Context, list *models.ShoppingList, updates []models.ItemUpdate) error
	UpdateFlatItems(ctx context.Context, items []models.ShoppingListItem, updates []models.ItemUpdate) ([]models.ShoppingListItem, error)
	FilterItems(list *models.ShoppingList, filter ItemFilter) []models.ShoppingListItem
	RenderText(list *models.ShoppingList) string
}

type GenerateShoppingListRequest struct {
	MealPlan  *models.MealPlan      `json:"meal_plan"`
	Recipes   []models.Recipe       `json:"recipes"`
	Inventory *models.UserInventory `json:"inventory"`
}

// ItemFilter selects a slice of a shopping list by purchase status.
type ItemFilter string

const (
	FilterAll         ItemFilter = "all"
	FilterNeedToBuy   ItemFilter = "need_to_buy"
	FilterInInventory ItemFilter = "in_inventory"
	FilterPurchased   ItemFilter = "purchased"
)

type shoppingListService struct {
	taxonomy   *taxonomy.Taxonomy
	aggregator *ingredients.Aggregator
	collator   *collate.Collator
	log        *logger.Logger
	now        func() time.Time
}

// NewShoppingListService creates a new shopping list service
func NewShoppingListService(tax *taxonomy.Taxonomy, log *logger.Logger) ShoppingListService {
	return &shoppingListService{
		taxonomy:   tax,
		aggregator: ingredients.NewAggregator(tax, log),
		collator:   collate.New(language.English, collate.IgnoreCase),
		log:        log.WithComponent("shopping_list_service"),
		now:        time.Now,
	}
}

// Generate builds a categorized shopping list from a meal plan and its
// recipes, cross-referenced against the user's inventory. Missing inputs
// degrade to an explicit empty list with a message rather than an error.
func (s *shoppingListService) Generate(ctx context.Context, req GenerateShoppingListRequest) (*models.ShoppingList, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	generatedAt := s.now()

	if req.MealPlan == nil || len(req.Recipes) == 0 {
		relErr := errors.MissingRelation("no meal plan found")
		if req.MealPlan != nil {
			relErr = errors.MissingRelation("no recipes found for meal plan")
		}
		s.log.Warn("generating empty shopping list",
			zap.String("code", string(relErr.Code)),
			zap.String("reason", relErr.Message))
		return s.emptyList(req.MealPlan, generatedAt, relErr.Message), nil
	}

	usage := req.MealPlan.UsageByRecipe()
	combined := s.aggregator.Combine(req.Recipes, usage)

	var inventoryItems []models.InventoryItem
	if req.Inventory != nil {
		inventoryItems = req.Inventory.Items
	}

	// Stable iteration over the aggregation map.
	keys := make([]string, 0, len(combined))
	for k := range combined {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	grouped := make(map[string][]models.ShoppingListItem)
	summary := models.ShoppingListSummary{}

	for _, key := range keys {
		agg := combined[key]

		match := inventory.Match(agg.Name, inventoryItems)
		category := s.taxonomy.Coerce(agg.Category)

		item := models.ShoppingListItem{
			ID:                 s.itemID(agg.Name, generatedAt),
			Ingredient:         agg.Name,
			Amount:             ingredients.FormatAmount(agg.Amount),
			Unit:               agg.Unit,
			Category:           category,
			Recipes:            agg.Recipes,
			InInventory:        match != nil,
			InventoryItem:      inventory.Snapshot(match),
			Purchased:          false,
			Selected:           true,
			Optional:           agg.Optional,
			ItemKey:            agg.Key,
			AlternativeAmounts: agg.AlternativeAmounts,
		}

		grouped[category] = append(grouped[category], item)
		summary.TotalItems++
		if item.InInventory {
			summary.InInventory++
		} else {
			summary.NeedToBuy++
		}
	}

	// Locale-aware sort within each category.
	for _, items := range grouped {
		sort.SliceStable(items, func(i, j int) bool {
			return s.collator.CompareString(items[i].Ingredient, items[j].Ingredient) < 0
		})
	}

	categoriesUsed := s.usedCategories(grouped)

	list := &models.ShoppingList{
		ID:            uuid.New().String(),
		Items:         grouped,
		Summary:       summary,
		Recipes:       listRecipes(req.Recipes),
		GeneratedAt:   generatedAt,
		MealPlanName:  req.MealPlan.Name,
		WeekStartDate: req.MealPlan.WeekStartDate,
		Metadata: models.ShoppingListMetadata{
			CategoriesUsed:  categoriesUsed,
			TotalCategories: len(categoriesUsed),
		},
	}

	s.log.Info("shopping list generated",
		zap.String("meal_plan", req.MealPlan.Name),
		zap.Int("items", summary.TotalItems),
		zap.Int("categories", len(categoriesUsed)))

	return list, nil
}

// UpdateItems merges partial updates into a categorized list, matching
// items by ingredient name. Unknown names are ignored with a warning.
// Summary counts are recomputed afterwards.
func (s *shoppingListService) UpdateItems(ctx context.Context, list *models.ShoppingList, updates []models.ItemUpdate) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if list == nil {
		return fmt.Errorf("shopping list is nil")
	}

	for _, update := range updates {
		found := false
		for category, items := range list.Items {
			for i := range items {
				if !strings.EqualFold(items[i].Ingredient, update.IngredientName) {
					continue
				}
				applyUpdate(&items[i], update)
				found = true

				// A category change moves the item between groups; names
				// outside the taxonomy coerce to the fallback.
				if update.Category != nil {
					items[i].Category = s.taxonomy.Coerce(items[i].Category)
				}
				if update.Category != nil && items[i].Category != category {
					moved := items[i]
					list.Items[category] = append(items[:i], items[i+1:]...)
					if len(list.Items[category]) == 0 {
						delete(list.Items, category)
					}
					list.Items[moved.Category] = append(list.Items[moved.Category], moved)
				}
				break
			}
			if found {
				break
			}
		}
		if !found {
			s.log.WithIngredient(update.IngredientName).Warn("update target not found")
		}
	}

	s.recomputeSummary(list)
	return nil
}

// UpdateFlatItems is the flat-slice variant of UpdateItems for callers that
// store items as one array instead of a category map.
func (s *shoppingListService) UpdateFlatItems(ctx context.Context, items []models.ShoppingListItem, updates []models.ItemUpdate) ([]models.ShoppingListItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, update := range updates {
		found := false
		for i := range items {
			if !strings.EqualFold(items[i].Ingredient, update.IngredientName) {
				continue
			}
			applyUpdate(&items[i], update)
			found = true
			break
		}
		if !found {
			s.log.WithIngredient(update.IngredientName).Warn("update target not found")
		}
	}
	return items, nil
}

// FilterItems returns the flattened items matching the filter.
func (s *shoppingListService) FilterItems(list *models.ShoppingList, filter ItemFilter) []models.ShoppingListItem {
	if list == nil {
		return nil
	}
	all := list.AllItems()

	var out []models.ShoppingListItem
	for _, item := range all {
		switch filter {
		case FilterNeedToBuy:
			if !item.InInventory && !item.Purchased {
				out = append(out, item)
			}
		case FilterInInventory:
			if item.InInventory {
				out = append(out, item)
			}
		case FilterPurchased:
			if item.Purchased {
				out = append(out, item)
			}
		default:
			out = append(out, item)
		}
	}
	return out
}

// RenderText renders the list as a plain-text checklist grouped by
// category, in taxonomy order.
func (s *shoppingListService) RenderText(list *models.ShoppingList) string {
	if list == nil {
		return ""
	}

	var b strings.Builder
	if list.MealPlanName != "" {
		fmt.Fprintf(&b, "Shopping list for %s\n\n", list.MealPlanName)
	}
	if list.Message != "" {
		fmt.Fprintf(&b, "%s\n", list.Message)
		return b.String()
	}

	for _, category := range list.Metadata.CategoriesUsed {
		items := list.Items[category]
		if len(items) == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s\n", category)
		for _, item := range items {
			mark := " "
			if item.Purchased {
				mark = "x"
			}
			line := item.Ingredient
			if item.Amount != "" && item.Amount != "0" {
				line = fmt.Sprintf("%s %s %s", item.Amount, item.Unit, item.Ingredient)
				line = strings.Join(strings.Fields(line), " ")
			}
			fmt.Fprintf(&b, "  [%s] %s", mark, line)
			if item.InInventory {
				b.WriteString(" [IN INVENTORY]")
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Total: %d items, %d to buy, %d on hand\n",
		list.Summary.TotalItems, list.Summary.NeedToBuy, list.Summary.InInventory)
	return b.String()
}

func (s *shoppingListService) emptyList(plan *models.MealPlan, generatedAt time.Time, message string) *models.ShoppingList {
	list := &models.ShoppingList{
		ID:          uuid.New().String(),
		Items:       map[string][]models.ShoppingListItem{},
		GeneratedAt: generatedAt,
		Message:     message,
	}
	if plan != nil {
		list.MealPlanName = plan.Name
		list.WeekStartDate = plan.WeekStartDate
	}
	return list
}

// usedCategories returns the non-empty categories in taxonomy order.
func (s *shoppingListService) usedCategories(grouped map[string][]models.ShoppingListItem) []string {
	var used []string
	for _, name := range s.taxonomy.Names() {
		if len(grouped[name]) > 0 {
			used = append(used, name)
		}
	}
	return used
}

func (s *shoppingListService) recomputeSummary(list *models.ShoppingList) {
	summary := models.ShoppingListSummary{}
	for _, items := range list.Items {
		for _, item := range items {
			summary.TotalItems++
			if item.Purchased {
				summary.Purchased++
			}
			if item.InInventory {
				summary.InInventory++
			} else if !item.Purchased {
				summary.NeedToBuy++
			}
		}
	}
	list.Summary = summary

	used := s.usedCategories(list.Items)
	list.Metadata = models.ShoppingListMetadata{
		CategoriesUsed:  used,
		TotalCategories: len(used),
	}
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// itemID derives a stable-within-generation item identifier from the
// ingredient name and generation timestamp.
func (s *shoppingListService) itemID(name string, generatedAt time.Time) string {
	slug := strings.Trim(slugStrip.ReplaceAllString(strings.ToLower(name), "-"), "-")
	return fmt.Sprintf("%s-%d", slug, generatedAt.UnixMilli())
}

func applyUpdate(item *models.ShoppingListItem, update models.ItemUpdate) {
	if update.Purchased != nil {
		item.Purchased = *update.Purchased
	}
	if update.Selected != nil {
		item.Selected = *update.Selected
	}
	if update.Amount != nil {
		item.Amount = *update.Amount
	}
	if update.Unit != nil {
		item.Unit = *update.Unit
	}
	if update.Category != nil {
		item.Category = *update.Category
	}
}

func listRecipes(recipes []models.Recipe) []models.ShoppingListRecipe {
	out := make([]models.ShoppingListRecipe, len(recipes))
	for i, r := range recipes {
		out[i] = models.ShoppingListRecipe{
			ID:       r.ID,
			Title:    r.Title,
			Servings: r.Servings,
		}
	}
	return out
}
