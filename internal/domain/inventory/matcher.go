// Package inventory cross-references needed ingredients against what a
// user already has on hand.
package inventory

import (
	"strings"

	"github.com/ak/mealkit/internal/domain/models"
)

// Match finds the first inventory item whose name loosely matches the
// ingredient. Names match when either lowercased name contains the other,
// so "Tomato Sauce" matches an inventory entry "tomato" and vice versa.
// Scan order follows the inventory slice, making the result deterministic
// for a given inventory ordering. Returns nil when nothing matches.
func Match(ingredientName string, items []models.InventoryItem) *models.InventoryItem {
	needle := strings.ToLower(strings.TrimSpace(ingredientName))
	if needle == "" {
		return nil
	}

	for i := range items {
		have := strings.ToLower(strings.TrimSpace(items[i].Name))
		if have == "" {
			continue
		}
		if strings.Contains(have, needle) || strings.Contains(needle, have) {
			return &items[i]
		}
	}
	return nil
}

// Snapshot copies the matched item's state into the immutable form embedded
// in shopping list items. Later inventory edits must not mutate generated
// lists.
func Snapshot(item *models.InventoryItem) *models.InventorySnapshot {
	if item == nil {
		return nil
	}
	return &models.InventorySnapshot{
		Name:     item.Name,
		Quantity: item.Quantity,
		Unit:     item.Unit,
		Location: item.Location,
	}
}
