package models

// Instance is one unit of an item, keyed by (item id, instance number) and
// held by exactly one user at a time. Its Data is independent of the parent
// item's Data.
type Instance struct {
	ItemID         uint64
	InstanceNumber uint64
	UserID         string
	Data           DataMap
}

// NewInstance constructs a freshly assigned instance. Per the assignment
// contract the data field starts empty; it is populated later via updates.
func NewInstance(itemID, instanceNumber uint64, userID string) *Instance {
	return &Instance{
		ItemID:         itemID,
		InstanceNumber: instanceNumber,
		UserID:         userID,
		Data:           DataMap{},
	}
}

// Clone returns a deep copy of the instance.
func (in *Instance) Clone() *Instance {
	out := *in
	out.Data = in.Data.Clone()
	return &out
}
