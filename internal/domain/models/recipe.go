package models

// Ingredient is a raw recipe ingredient as authored. Amount is loosely typed
// (string, number, or nil) and must be normalized through ingredients.ParseAmount
// before any other component sees it.
type Ingredient struct {
	Name     string `json:"name"`
	Amount   any    `json:"amount,omitempty"`
	Unit     string `json:"unit,omitempty"`
	Optional bool   `json:"optional,omitempty"`
}

// Recipe represents a cooking recipe already resolved into memory.
type Recipe struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Servings    int          `json:"servings"`
	Ingredients []Ingredient `json:"ingredients"`
}

// DefaultServings returns the recipe's serving count, defaulting to 1 when
// the recipe carries no usable value. Used as the scaling denominator.
func (r *Recipe) DefaultServings() int {
	if r.Servings <= 0 {
		return 1
	}
	return r.Servings
}
