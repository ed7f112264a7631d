package models

// InventoryEntry mirrors an assigned instance from the holder's perspective.
// It is keyed by the full (user id, item id, instance number) tuple and is
// addressable independently of the item-centric instance index.
type InventoryEntry struct {
	UserID         string
	ItemID         uint64
	InstanceNumber uint64
	Data           DataMap
}

// NewInventoryEntry constructs an entry, cloning data so the record owns its map.
func NewInventoryEntry(userID string, itemID, instanceNumber uint64, data DataMap) *InventoryEntry {
	return &InventoryEntry{
		UserID:         userID,
		ItemID:         itemID,
		InstanceNumber: instanceNumber,
		Data:           data.Clone(),
	}
}

// Clone returns a deep copy of the entry.
func (e *InventoryEntry) Clone() *InventoryEntry {
	out := *e
	out.Data = e.Data.Clone()
	return &out
}
