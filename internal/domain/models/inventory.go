package models

// InventoryItem is one item in a user's kitchen inventory.
type InventoryItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit,omitempty"`
	Location string  `json:"location,omitempty"` // pantry, fridge, freezer
}

// UserInventory is the user's current inventory snapshot.
type UserInventory struct {
	Items []InventoryItem `json:"items"`
}
