// Package prep analyzes a week of planned meals for batch cooking and
// ingredient prep opportunities, builds a prep schedule, and scores the
// resulting plan.
package prep

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/ak/mealkit/internal/domain/models"
)

// KnowledgeBase holds static prep characteristics for common ingredients,
// keyed by normalized name. It is reference data, injected into the
// analyzer so deployments can version and extend it independently.
type KnowledgeBase struct {
	version string
	entries map[string]models.PrepKnowledgeEntry
}

// NewKnowledgeBase builds a knowledge base from an entry map.
func NewKnowledgeBase(version string, entries map[string]models.PrepKnowledgeEntry) *KnowledgeBase {
	if entries == nil {
		entries = map[string]models.PrepKnowledgeEntry{}
	}
	return &KnowledgeBase{version: version, entries: entries}
}

// Version identifies the knowledge base revision in use.
func (kb *KnowledgeBase) Version() string {
	return kb.version
}

// Lookup returns the entry for a normalized ingredient name.
func (kb *KnowledgeBase) Lookup(normalized string) (models.PrepKnowledgeEntry, bool) {
	e, ok := kb.entries[normalized]
	return e, ok
}

// Vegetable returns the entry only when it belongs to the vegetable domain.
func (kb *KnowledgeBase) Vegetable(normalized string) (models.PrepKnowledgeEntry, bool) {
	e, ok := kb.entries[normalized]
	if !ok || e.Domain != models.PrepDomainVegetable {
		return models.PrepKnowledgeEntry{}, false
	}
	return e, true
}

// LoadKnowledgeFile reads a knowledge base from an external YAML or JSON
// file with a top-level `ingredients` map of normalized name to entry.
func LoadKnowledgeFile(path string) (*KnowledgeBase, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read knowledge file: %w", err)
	}

	var def struct {
		Version     string                               `mapstructure:"version"`
		Ingredients map[string]models.PrepKnowledgeEntry `mapstructure:"ingredients"`
	}
	if err := v.Unmarshal(&def); err != nil {
		return nil, fmt.Errorf("parse knowledge file: %w", err)
	}
	if len(def.Ingredients) == 0 {
		return nil, fmt.Errorf("knowledge file %s defines no ingredients", path)
	}
	return NewKnowledgeBase(def.Version, def.Ingredients), nil
}

// DefaultKnowledgeBase returns the built-in culinary knowledge base:
// proteins and grains that batch cook well, vegetables that hold up to
// advance prep.
func DefaultKnowledgeBase() *KnowledgeBase {
	return NewKnowledgeBase("builtin-v1", map[string]models.PrepKnowledgeEntry{
		"chicken breast": {
			Domain:              models.PrepDomainProtein,
			Methods:             []string{"oven_bake", "grill", "slow_cook"},
			MaxBatchSize:        "5-6 lbs",
			PrepTime:            15,
			CookTime:            25,
			ShelfLife:           "3-4 days",
			StorageInstructions: "Refrigerate in airtight container, slice when ready to use",
			ReheatingMethods:    []string{"microwave", "oven", "stovetop"},
			Tips: []string{
				"Season well before cooking",
				"Let rest 5 minutes before slicing",
				"Cook to 165F internal temp",
			},
		},
		"ground beef": {
			Domain:              models.PrepDomainProtein,
			Methods:             []string{"stovetop_brown", "oven_cook"},
			MaxBatchSize:        "3-4 lbs",
			PrepTime:            10,
			CookTime:            15,
			ShelfLife:           "3-4 days",
			StorageInstructions: "Drain fat, cool completely before refrigerating",
			ReheatingMethods:    []string{"microwave", "stovetop"},
			Tips: []string{
				"Brown in batches for better texture",
				"Season after browning",
				"Drain excess fat",
			},
		},
		"chicken thighs": {
			Domain:              models.PrepDomainProtein,
			Methods:             []string{"oven_bake", "slow_cook"},
			MaxBatchSize:        "4-5 lbs",
			PrepTime:            10,
			CookTime:            35,
			ShelfLife:           "3-4 days",
			StorageInstructions: "Store with skin on if possible, refrigerate in cooking juices",
			ReheatingMethods:    []string{"oven", "stovetop"},
			Tips: []string{
				"Crispy skin holds up well",
				"More forgiving than breast meat",
			},
		},
		"pork tenderloin": {
			Domain:              models.PrepDomainProtein,
			Methods:             []string{"oven_roast", "grill"},
			MaxBatchSize:        "3-4 pieces",
			PrepTime:            15,
			CookTime:            20,
			ShelfLife:           "3-4 days",
			StorageInstructions: "Slice when ready to serve, store whole if possible",
			ReheatingMethods:    []string{"oven", "stovetop"},
			Tips: []string{
				"Marinate for better flavor",
				"Don't overcook, very lean",
			},
		},
		"beef sirloin": {
			Domain:              models.PrepDomainProtein,
			Methods:             []string{"oven_roast", "grill", "stovetop_sear"},
			MaxBatchSize:        "3-4 lbs",
			PrepTime:            20,
			CookTime:            25,
			ShelfLife:           "3-4 days",
			StorageInstructions: "Slice against grain when ready to serve",
			ReheatingMethods:    []string{"stovetop", "oven"},
			Tips: []string{
				"Let come to room temp before cooking",
				"Rest after cooking",
			},
		},
		"onion": {
			Domain:              models.PrepDomainVegetable,
			PrepMethods:         []string{"dice", "slice", "rough_chop"},
			PrepTime:            2,
			ShelfLife:           "5-7 days",
			StorageInstructions: "Airtight container in refrigerator",
			Tips: []string{
				"Dice extra for multiple recipes",
				"Store diced onions separately by size",
			},
		},
		"bell pepper": {
			Domain:              models.PrepDomainVegetable,
			PrepMethods:         []string{"slice", "dice", "julienne"},
			PrepTime:            3,
			ShelfLife:           "4-5 days",
			StorageInstructions: "Airtight container, paper towel to absorb moisture",
			Tips: []string{
				"Remove seeds and membranes",
				"Different colors can be prepped together",
			},
		},
		"carrots": {
			Domain:              models.PrepDomainVegetable,
			PrepMethods:         []string{"slice", "dice", "julienne", "shred"},
			PrepTime:            5,
			ShelfLife:           "5-7 days",
			StorageInstructions: "Submerged in water in refrigerator",
			Tips: []string{
				"Keep in water to maintain crispness",
				"Peel before cutting",
			},
		},
		"broccoli": {
			Domain:              models.PrepDomainVegetable,
			PrepMethods:         []string{"florets", "rough_chop"},
			PrepTime:            8,
			ShelfLife:           "3-4 days",
			StorageInstructions: "Dry storage in refrigerator",
			Tips: []string{
				"Don't wash until ready to use",
				"Cut florets uniform size",
			},
		},
		"garlic": {
			Domain:              models.PrepDomainVegetable,
			PrepMethods:         []string{"mince", "chop", "whole_cloves"},
			PrepTime:            1,
			ShelfLife:           "3-4 days minced, 1 week whole",
			StorageInstructions: "Airtight container, whole cloves in pantry",
			Tips: []string{
				"Minced garlic loses potency quickly",
				"Remove green germ from center",
			},
		},
		"rice": {
			Domain:              models.PrepDomainGrain,
			Methods:             []string{"rice_cooker", "stovetop", "oven"},
			MaxBatchSize:        "6-8 cups dry",
			PrepTime:            5,
			CookTime:            20,
			ShelfLife:           "4-5 days",
			StorageInstructions: "Cool completely, refrigerate in portions",
			ReheatingMethods:    []string{"microwave", "stovetop"},
			Tips: []string{
				"Add a splash of water when reheating",
				"Freeze portions for longer storage",
			},
		},
		"pasta": {
			Domain:              models.PrepDomainGrain,
			Methods:             []string{"large_pot_boiling"},
			MaxBatchSize:        "2-3 lbs dry",
			PrepTime:            5,
			CookTime:            12,
			ShelfLife:           "3-4 days",
			StorageInstructions: "Toss with oil to prevent sticking, refrigerate",
			ReheatingMethods:    []string{"boiling_water", "microwave"},
			Tips: []string{
				"Slightly undercook for reheating",
				"Rinse with cold water to stop cooking",
			},
		},
		"quinoa": {
			Domain:              models.PrepDomainGrain,
			Methods:             []string{"stovetop", "rice_cooker"},
			MaxBatchSize:        "4-6 cups dry",
			PrepTime:            5,
			CookTime:            15,
			ShelfLife:           "4-5 days",
			StorageInstructions: "Fluff and cool completely before storing",
			ReheatingMethods:    []string{"microwave", "stovetop"},
			Tips: []string{
				"Rinse before cooking",
				"Let steam after cooking for fluffiness",
			},
		},
	})
}
