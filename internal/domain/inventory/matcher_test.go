package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ak/mealkit/internal/domain/models"
)

func TestMatchSubstringBothWays(t *testing.T) {
	items := []models.InventoryItem{
		{Name: "tomato", Quantity: 3, Unit: "whole"},
	}

	// Ingredient name contains the inventory name.
	match := Match("Tomato Sauce", items)
	require.NotNil(t, match)
	assert.Equal(t, "tomato", match.Name)

	// Inventory name contains the ingredient name.
	match = Match("tomato", []models.InventoryItem{{Name: "Canned Tomatoes"}})
	require.NotNil(t, match)
	assert.Equal(t, "Canned Tomatoes", match.Name)
}

func TestMatchMisses(t *testing.T) {
	items := []models.InventoryItem{
		{Name: "tomato"},
		{Name: "flour"},
	}
	assert.Nil(t, Match("sugar", items))
	assert.Nil(t, Match("", items))
	assert.Nil(t, Match("sugar", nil))
}

func TestMatchFirstItemWins(t *testing.T) {
	items := []models.InventoryItem{
		{Name: "cherry tomato", Location: "fridge"},
		{Name: "tomato", Location: "pantry"},
	}
	match := Match("tomato", items)
	require.NotNil(t, match)
	assert.Equal(t, "cherry tomato", match.Name)
}

func TestMatchSkipsBlankInventoryNames(t *testing.T) {
	items := []models.InventoryItem{
		{Name: "  "},
		{Name: "rice"},
	}
	match := Match("rice", items)
	require.NotNil(t, match)
	assert.Equal(t, "rice", match.Name)
}

func TestSnapshot(t *testing.T) {
	assert.Nil(t, Snapshot(nil))

	item := &models.InventoryItem{Name: "rice", Quantity: 2, Unit: "lbs", Location: "pantry"}
	snap := Snapshot(item)
	require.NotNil(t, snap)
	assert.Equal(t, "rice", snap.Name)
	assert.InDelta(t, 2.0, snap.Quantity, 1e-9)
	assert.Equal(t, "lbs", snap.Unit)
	assert.Equal(t, "pantry", snap.Location)

	// Snapshot is detached from the live inventory item.
	item.Quantity = 0
	assert.InDelta(t, 2.0, snap.Quantity, 1e-9)
}
