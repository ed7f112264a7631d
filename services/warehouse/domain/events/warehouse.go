package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics for warehouse ledger events. Events are published in the
// same database transaction as the mutation they describe, so subscribers
// never observe an event for a discarded invocation.
const (
	TopicItemAdded           = "warehouse.item_added"
	TopicItemFrozen          = "warehouse.item_frozen"
	TopicInstanceAssigned    = "warehouse.instance_assigned"
	TopicInstanceTransferred = "warehouse.instance_transferred"
)

// ItemAddedEvent is published after a new catalog item is persisted.
type ItemAddedEvent struct {
	EventID           uuid.UUID         `json:"event_id"` // Unique publish-time identifier for deduplication
	Version           int               `json:"version"`  // Schema version; increment on breaking changes
	ItemID            uint64            `json:"item_id"`
	Name              string            `json:"name"`
	TotalQuantity     uint64            `json:"total_quantity"`
	AvailableQuantity uint64            `json:"available_quantity"`
	Frozen            bool              `json:"frozen"`
	Data              map[string]string `json:"data"`
	OccurredAt        time.Time         `json:"occurred_at"`
}

// ItemFrozenEvent is published after an item's gate is latched.
type ItemFrozenEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ItemID     uint64    `json:"item_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// InstanceAssignedEvent is published after an instance is created. The
// available quantity is the parent item's value after the decrement.
type InstanceAssignedEvent struct {
	EventID           uuid.UUID `json:"event_id"`
	Version           int       `json:"version"`
	ItemID            uint64    `json:"item_id"`
	InstanceNumber    uint64    `json:"instance_number"`
	UserID            string    `json:"user_id"`
	AvailableQuantity uint64    `json:"available_quantity"`
	OccurredAt        time.Time `json:"occurred_at"`
}

// InstanceTransferredEvent is published after an instance changes holder.
type InstanceTransferredEvent struct {
	EventID        uuid.UUID `json:"event_id"`
	Version        int       `json:"version"`
	ItemID         uint64    `json:"item_id"`
	InstanceNumber uint64    `json:"instance_number"`
	FromUserID     string    `json:"from_user_id"`
	ToUserID       string    `json:"to_user_id"`
	OccurredAt     time.Time `json:"occurred_at"`
}
