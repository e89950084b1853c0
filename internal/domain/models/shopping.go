package models

import "time"

// ParsedAmount is the canonical numeric form of an ingredient quantity.
// Amount is always >= 0.
type ParsedAmount struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// AlternativeAmount records a quantity that could not be summed into the
// primary amount because its unit differs. Mismatched units are preserved,
// never converted.
type AlternativeAmount struct {
	Amount  float64  `json:"amount"`
	Unit    string   `json:"unit"`
	Recipes []string `json:"recipes,omitempty"`
}

// AggregatedIngredient is the merged, scaled representation of one logical
// ingredient across all recipes in scope. Key is the lowercase-trimmed name.
type AggregatedIngredient struct {
	Key                string              `json:"key"`
	Name               string              `json:"name"`
	Amount             float64             `json:"amount"`
	Unit               string              `json:"unit"`
	AlternativeAmounts []AlternativeAmount `json:"alternative_amounts,omitempty"`
	Recipes            []string            `json:"recipes"`
	Category           string              `json:"category"`
	Optional           bool                `json:"optional,omitempty"`
}

// InventorySnapshot captures the matched inventory item's fields at
// generation time. The shopping list never re-reads the live inventory.
type InventorySnapshot struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit,omitempty"`
	Location string  `json:"location,omitempty"`
}

// ShoppingListItem is one display item on a generated shopping list. Items
// are created once at generation and mutated only through explicit updates.
type ShoppingListItem struct {
	ID            string             `json:"id"`
	Ingredient    string             `json:"ingredient"`
	Amount        string             `json:"amount"` // display string, 2 decimal places
	Unit          string             `json:"unit,omitempty"`
	Category      string             `json:"category"`
	Recipes       []string           `json:"recipes,omitempty"`
	InInventory   bool               `json:"in_inventory"`
	InventoryItem *InventorySnapshot `json:"inventory_item,omitempty"`
	Purchased     bool               `json:"purchased"`
	Selected      bool               `json:"selected"`
	Optional      bool               `json:"optional,omitempty"`
	ItemKey       string             `json:"item_key"`

	AlternativeAmounts []AlternativeAmount `json:"alternative_amounts,omitempty"`
}

// ShoppingListSummary holds the item counters for a shopping list.
type ShoppingListSummary struct {
	TotalItems  int `json:"total_items"`
	NeedToBuy   int `json:"need_to_buy"`
	InInventory int `json:"in_inventory"`
	Purchased   int `json:"purchased"`
}

// ShoppingListRecipe identifies one recipe that contributed to a list.
type ShoppingListRecipe struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Servings int    `json:"servings"`
}

// ShoppingListMetadata carries category bookkeeping for a generated list.
type ShoppingListMetadata struct {
	CategoriesUsed  []string `json:"categories_used"`
	TotalCategories int      `json:"total_categories"`
}

// ShoppingList is the categorized shopping list produced from a meal plan.
// Items maps category name to the sorted items in that category.
type ShoppingList struct {
	ID            string                        `json:"id"`
	Items         map[string][]ShoppingListItem `json:"items"`
	Summary       ShoppingListSummary           `json:"summary"`
	Recipes       []ShoppingListRecipe          `json:"recipes"`
	GeneratedAt   time.Time                     `json:"generated_at"`
	MealPlanName  string                        `json:"meal_plan_name,omitempty"`
	WeekStartDate time.Time                     `json:"week_start_date,omitempty"`
	Metadata      ShoppingListMetadata          `json:"metadata"`
	Message       string                        `json:"message,omitempty"`
}

// AllItems flattens the categorized items in category-name order.
func (l *ShoppingList) AllItems() []ShoppingListItem {
	var out []ShoppingListItem
	for _, category := range l.Metadata.CategoriesUsed {
		out = append(out, l.Items[category]...)
	}
	return out
}

// ItemUpdate is a partial update addressed to one shopping list item by
// ingredient name. Only non-nil fields are merged; everything else on the
// item is left untouched.
type ItemUpdate struct {
	IngredientName string  `json:"ingredient_name"`
	Purchased      *bool   `json:"purchased,omitempty"`
	Selected       *bool   `json:"selected,omitempty"`
	Amount         *string `json:"amount,omitempty"`
	Unit           *string `json:"unit,omitempty"`
	Category       *string `json:"category,omitempty"`
}
