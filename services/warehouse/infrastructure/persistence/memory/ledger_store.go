// Package memory provides a map-backed LedgerStore with stage-then-commit
// transaction semantics. It backs unit tests and local runs; the production
// substrate is the postgres package.
package memory

import (
	"context"
	"sync"

	warehousedomain "github.com/ghuser/warehouse/services/warehouse/domain"
	"github.com/ghuser/warehouse/services/warehouse/domain/models"
	"github.com/ghuser/warehouse/services/warehouse/domain/repositories"
)

type instanceKey struct {
	itemID         uint64
	instanceNumber uint64
}

type entryKey struct {
	userID         string
	itemID         uint64
	instanceNumber uint64
}

// PublishedEvent is an event that survived a committed transaction. Tests
// assert on these instead of a real broker.
type PublishedEvent struct {
	Topic   string
	Payload any
}

type state struct {
	items     map[uint64]*models.Item
	instances map[instanceKey]*models.Instance
	owners    models.OwnerSet
	inventory map[entryKey]*models.InventoryEntry
}

func newState() *state {
	return &state{
		items:     make(map[uint64]*models.Item),
		instances: make(map[instanceKey]*models.Instance),
		inventory: make(map[entryKey]*models.InventoryEntry),
	}
}

func (s *state) clone() *state {
	out := newState()
	for k, v := range s.items {
		out.items[k] = v.Clone()
	}
	for k, v := range s.instances {
		out.instances[k] = v.Clone()
	}
	for k, v := range s.inventory {
		out.inventory[k] = v.Clone()
	}
	out.owners = models.NewOwnerSet(s.owners.List()...)
	return out
}

// LedgerStore implements repositories.LedgerStore over in-process maps.
// Update clones the committed state, runs fn against the clone, and swaps it
// in only when fn returns nil — so a failed invocation leaves no trace, the
// same all-or-nothing contract the Postgres store gets from its transaction.
// The mutex serializes invocations, matching the ledger's single-writer model.
type LedgerStore struct {
	mu     sync.Mutex
	state  *state
	events []PublishedEvent
}

// NewLedgerStore returns an empty in-memory ledger.
func NewLedgerStore() *LedgerStore {
	return &LedgerStore{state: newState()}
}

// Update implements repositories.LedgerStore.
func (s *LedgerStore) Update(ctx context.Context, fn func(tx repositories.LedgerTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := s.state.clone()
	tx := &ledgerTx{state: staged}
	if err := fn(tx); err != nil {
		return err
	}
	s.state = staged
	s.events = append(s.events, tx.events...)
	return nil
}

// View implements repositories.LedgerStore.
func (s *LedgerStore) View(ctx context.Context, fn func(v repositories.LedgerView) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&ledgerTx{state: s.state})
}

// Events returns every event published by committed transactions, in commit
// order.
func (s *LedgerStore) Events() []PublishedEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]PublishedEvent, len(s.events))
	copy(out, s.events)
	return out
}

// ledgerTx operates on a staged state clone. Getters return copies so a
// caller mutating a fetched record must write it back through a Put for the
// change to stick.
type ledgerTx struct {
	state  *state
	events []PublishedEvent
}

func (t *ledgerTx) Item(_ context.Context, itemID uint64) (*models.Item, error) {
	item, ok := t.state.items[itemID]
	if !ok {
		return nil, warehousedomain.ErrItemNotFound
	}
	return item.Clone(), nil
}

func (t *ledgerTx) Instance(_ context.Context, itemID, instanceNumber uint64) (*models.Instance, error) {
	instance, ok := t.state.instances[instanceKey{itemID, instanceNumber}]
	if !ok {
		return nil, warehousedomain.ErrInstanceNotFound
	}
	return instance.Clone(), nil
}

func (t *ledgerTx) Owners(_ context.Context) (models.OwnerSet, error) {
	return t.state.owners, nil
}

func (t *ledgerTx) InventoryEntry(_ context.Context, userID string, itemID, instanceNumber uint64) (*models.InventoryEntry, error) {
	entry, ok := t.state.inventory[entryKey{userID, itemID, instanceNumber}]
	if !ok {
		return nil, warehousedomain.ErrInstanceNotFound
	}
	return entry.Clone(), nil
}

func (t *ledgerTx) PutItem(_ context.Context, item *models.Item) error {
	t.state.items[item.ID] = item.Clone()
	return nil
}

func (t *ledgerTx) PutInstance(_ context.Context, instance *models.Instance) error {
	t.state.instances[instanceKey{instance.ItemID, instance.InstanceNumber}] = instance.Clone()
	return nil
}

func (t *ledgerTx) PutOwners(_ context.Context, owners models.OwnerSet) error {
	t.state.owners = owners
	return nil
}

func (t *ledgerTx) PutInventoryEntry(_ context.Context, entry *models.InventoryEntry) error {
	t.state.inventory[entryKey{entry.UserID, entry.ItemID, entry.InstanceNumber}] = entry.Clone()
	return nil
}

func (t *ledgerTx) Publish(topic string, payload any) error {
	t.events = append(t.events, PublishedEvent{Topic: topic, Payload: payload})
	return nil
}
