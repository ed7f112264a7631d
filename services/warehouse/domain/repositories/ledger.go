package repositories

import (
	"context"

	"github.com/ghuser/warehouse/services/warehouse/domain/models"
)

// LedgerView is a consistent read-only snapshot of the ledger: the item
// catalog, the item-centric instance index, the owner set, and the
// user-centric inventory index.
//
// Lookups return the domain sentinel errors (ErrItemNotFound,
// ErrInstanceNotFound) when a key is absent. InventoryEntry returns
// ErrInstanceNotFound for an absent key tuple.
type LedgerView interface {
	Item(ctx context.Context, itemID uint64) (*models.Item, error)
	Instance(ctx context.Context, itemID, instanceNumber uint64) (*models.Instance, error)
	Owners(ctx context.Context) (models.OwnerSet, error)
	InventoryEntry(ctx context.Context, userID string, itemID, instanceNumber uint64) (*models.InventoryEntry, error)
}

// LedgerTx is one staged invocation against the ledger. Mutations become
// visible to later invocations only if the enclosing Update commits; a
// returned error discards every staged write and every staged event.
//
// Put methods insert or replace; precondition checks (duplicate keys, frozen
// gates, quantity floors) belong to the application layer, which reads
// through the same transaction before writing.
type LedgerTx interface {
	LedgerView

	PutItem(ctx context.Context, item *models.Item) error
	PutInstance(ctx context.Context, instance *models.Instance) error
	PutOwners(ctx context.Context, owners models.OwnerSet) error
	PutInventoryEntry(ctx context.Context, entry *models.InventoryEntry) error

	// Publish stages a domain event on the given topic. Events are delivered
	// only when the transaction commits, so an aborted invocation publishes
	// nothing.
	Publish(topic string, payload any) error
}

// LedgerStore is the persistence substrate for the warehouse ledger.
// The domain layer owns this interface; infrastructure implements it.
//
// Update runs fn inside one all-or-nothing transaction: either every staged
// write and event applies, or none do. Invocations are serialized by the
// store — each one observes the fully committed state left by the previous.
type LedgerStore interface {
	Update(ctx context.Context, fn func(tx LedgerTx) error) error

	// View runs fn against a snapshot consistent with the most recently
	// committed invocation.
	View(ctx context.Context, fn func(v LedgerView) error) error
}
