// Package taxonomy implements the closed grocery category set and the
// keyword classifier that maps ingredient names onto it.
package taxonomy

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// FallbackCategory is the universal fallback; it is always part of the set.
const FallbackCategory = "Other"

// Category is one named grocery category with its match keywords.
type Category struct {
	Name     string   `mapstructure:"name"`
	Keywords []string `mapstructure:"keywords"`
}

// Taxonomy is an ordered, closed category set. Classification walks the
// categories in declaration order and the first keyword hit wins, so the
// order of the slice is part of the contract.
type Taxonomy struct {
	categories []Category
	names      map[string]struct{}
}

// New builds a Taxonomy from an ordered category list. The fallback
// category is appended when missing so it is always present.
func New(categories []Category) *Taxonomy {
	t := &Taxonomy{
		categories: categories,
		names:      make(map[string]struct{}, len(categories)+1),
	}
	for _, c := range categories {
		t.names[c.Name] = struct{}{}
	}
	if _, ok := t.names[FallbackCategory]; !ok {
		t.categories = append(t.categories, Category{Name: FallbackCategory})
		t.names[FallbackCategory] = struct{}{}
	}
	return t
}

// Classify maps an ingredient name to a category. Matching is
// case-insensitive substring matching; empty names fall through to the
// fallback.
func (t *Taxonomy) Classify(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return FallbackCategory
	}
	for _, c := range t.categories {
		for _, kw := range c.Keywords {
			if strings.Contains(lower, kw) {
				return c.Name
			}
		}
	}
	return FallbackCategory
}

// Contains reports whether a category name belongs to the closed set.
func (t *Taxonomy) Contains(name string) bool {
	_, ok := t.names[name]
	return ok
}

// Coerce returns the category itself when it is part of the set, the
// fallback otherwise.
func (t *Taxonomy) Coerce(category string) string {
	if t.Contains(category) {
		return category
	}
	return FallbackCategory
}

// Names returns the category names in declaration order.
func (t *Taxonomy) Names() []string {
	names := make([]string, len(t.categories))
	for i, c := range t.categories {
		names[i] = c.Name
	}
	return names
}

// LoadFile reads an ordered category list from an external YAML or JSON
// file, replacing the built-in set. The file holds a top-level
// `categories` list of {name, keywords} entries.
func LoadFile(path string) (*Taxonomy, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read taxonomy file: %w", err)
	}

	var def struct {
		Categories []Category `mapstructure:"categories"`
	}
	if err := v.Unmarshal(&def); err != nil {
		return nil, fmt.Errorf("parse taxonomy file: %w", err)
	}
	if len(def.Categories) == 0 {
		return nil, fmt.Errorf("taxonomy file %s defines no categories", path)
	}
	return New(def.Categories), nil
}

// Default returns the built-in grocery taxonomy, laid out in store walking
// order. Keyword order within a category is irrelevant; category order is
// not.
func Default() *Taxonomy {
	return New([]Category{
		{Name: "Fresh Vegetables", Keywords: []string{
			"onion", "garlic", "tomato", "lettuce", "spinach", "carrot", "celery",
			"pepper", "broccoli", "cauliflower", "cucumber", "potato", "mushroom",
			"cabbage", "zucchini", "kale", "squash", "herb", "cilantro", "parsley",
			"basil", "ginger",
		}},
		{Name: "Fresh Fruits", Keywords: []string{
			"apple", "banana", "orange", "lemon", "lime", "grape", "berry",
			"strawberry", "blueberry", "melon", "peach", "pear", "plum", "cherry",
			"kiwi", "mango", "pineapple", "avocado",
		}},
		{Name: "Meat & Seafood", Keywords: []string{
			"chicken", "beef", "pork", "turkey", "lamb", "ham", "bacon", "sausage",
			"steak", "fish", "salmon", "tuna", "cod", "tilapia", "shrimp", "crab",
			"lobster", "scallop", "seafood",
		}},
		{Name: "Dairy", Keywords: []string{
			"milk", "cheese", "butter", "yogurt", "cream", "cheddar", "mozzarella",
			"parmesan", "egg",
		}},
		{Name: "Bakery", Keywords: []string{
			"bread", "loaf", "bagel", "tortilla", "pita", "roll", "bun", "muffin",
		}},
		{Name: "Grains & Pasta", Keywords: []string{
			"pasta", "spaghetti", "penne", "macaroni", "linguine", "fettuccine",
			"noodle", "lasagna", "rice", "quinoa", "barley", "oats", "oatmeal",
			"cereal", "couscous",
		}},
		{Name: "Baking", Keywords: []string{
			"flour", "sugar", "baking powder", "baking soda", "vanilla", "yeast",
			"cocoa", "chocolate chip", "honey",
		}},
		{Name: "Spices & Seasonings", Keywords: []string{
			"salt", "paprika", "cumin", "chili", "oregano", "thyme", "rosemary",
			"sage", "spice", "seasoning", "garlic powder", "onion powder",
			"black pepper", "cinnamon",
		}},
		{Name: "Condiments", Keywords: []string{
			"oil", "vinegar", "ketchup", "mustard", "mayo", "mayonnaise",
			"hot sauce", "soy sauce", "worcestershire", "salsa", "dressing",
		}},
		{Name: "Frozen", Keywords: []string{
			"frozen", "ice cream",
		}},
		{Name: "Beverages", Keywords: []string{
			"juice", "soda", "coffee", "tea", "water", "wine", "beer",
		}},
		{Name: "Canned Goods", Keywords: []string{
			"canned", "can of", "jar of", "broth", "stock", "bean", "chickpea",
			"lentil",
		}},
		{Name: FallbackCategory},
	})
}
