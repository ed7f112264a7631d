package models

// Item is a catalog record: a kind of good with total/available quantity,
// arbitrary string metadata, and a mutability gate.
//
// Quantities are taken as given on creation — the ledger only ever decrements
// AvailableQuantity, one unit per successful assignment, so the
// available <= total invariant is preserved by construction for any
// consistently-seeded item.
type Item struct {
	ID                uint64
	Name              ItemName
	TotalQuantity     uint64
	AvailableQuantity uint64
	Data              DataMap
	Gate              Gate
}

// NewItem constructs an Item, cloning data so the record owns its map.
func NewItem(id uint64, name ItemName, totalQty, availableQty uint64, data DataMap, gate Gate) *Item {
	return &Item{
		ID:                id,
		Name:              name,
		TotalQuantity:     totalQty,
		AvailableQuantity: availableQty,
		Data:              data.Clone(),
		Gate:              gate,
	}
}

// Replace overwrites every mutable field wholesale. The item id never changes
// and field-level partial update is deliberately not supported.
func (i *Item) Replace(name ItemName, totalQty, availableQty uint64, data DataMap, gate Gate) {
	i.Name = name
	i.TotalQuantity = totalQty
	i.AvailableQuantity = availableQty
	i.Data = data.Clone()
	i.Gate = gate
}

// Freeze latches the gate to permanently immutable. Idempotent.
func (i *Item) Freeze() {
	i.Gate = i.Gate.Freeze()
}

// Clone returns a deep copy of the item.
func (i *Item) Clone() *Item {
	out := *i
	out.Data = i.Data.Clone()
	return &out
}
