package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/warehouse/pkg/cache"
	warehousedomain "github.com/ghuser/warehouse/services/warehouse/domain"
	domainevents "github.com/ghuser/warehouse/services/warehouse/domain/events"
	"github.com/ghuser/warehouse/services/warehouse/domain/models"
	"github.com/ghuser/warehouse/services/warehouse/domain/repositories"
)

// WarehouseService is the ledger's state machine: every mutating operation is
// one all-or-nothing invocation that first consults the owner set, then
// validates its preconditions against the committed state, then stages its
// writes. A failed precondition aborts the whole invocation; no partial write
// is ever observable.
//
// Reads are served from the Redis read model when available.
type WarehouseService struct {
	store repositories.LedgerStore
	cache *pkgcache.ItemCache
	now   func() time.Time
}

// NewWarehouseService returns a WarehouseService wired with the given store
// and cache. The mutability gate is evaluated against clock; pass nil for
// time.Now.
func NewWarehouseService(store repositories.LedgerStore, itemCache *pkgcache.ItemCache, clock func() time.Time) *WarehouseService {
	if clock == nil {
		clock = func() time.Time { return time.Now().UTC() }
	}
	return &WarehouseService{store: store, cache: itemCache, now: clock}
}

// AddItemParams carries the full field set for a new catalog item.
// Quantities are accepted as given; the ledger only ever decrements
// AvailableQuantity afterwards.
type AddItemParams struct {
	ItemID            uint64
	Name              string
	TotalQuantity     uint64
	AvailableQuantity uint64
	Data              models.DataMap
	Gate              models.Gate
}

// UpdateItemParams carries the replacement field set for update_item. The
// whole record is replaced except the item id.
type UpdateItemParams struct {
	ItemID            uint64
	Name              string
	TotalQuantity     uint64
	AvailableQuantity uint64
	Data              models.DataMap
	Gate              models.Gate
}

// AddItem creates a new catalog item. Fails with ErrItemAlreadyExists if the
// id is taken.
func (s *WarehouseService) AddItem(ctx context.Context, caller string, p AddItemParams) (*models.Item, error) {
	name, err := models.NewItemName(p.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", warehousedomain.ErrInvalidItemName, err)
	}

	var item *models.Item
	err = s.store.Update(ctx, func(tx repositories.LedgerTx) error {
		if err := s.authorize(ctx, tx, caller); err != nil {
			return err
		}
		if _, err := tx.Item(ctx, p.ItemID); err == nil {
			return warehousedomain.ErrItemAlreadyExists
		} else if !errors.Is(err, warehousedomain.ErrItemNotFound) {
			return fmt.Errorf("check item: %w", err)
		}

		item = models.NewItem(p.ItemID, name, p.TotalQuantity, p.AvailableQuantity, p.Data, p.Gate)
		if err := tx.PutItem(ctx, item); err != nil {
			return fmt.Errorf("put item: %w", err)
		}
		return tx.Publish(domainevents.TopicItemAdded, domainevents.ItemAddedEvent{
			EventID:           uuid.New(),
			Version:           1,
			ItemID:            item.ID,
			Name:              item.Name.String(),
			TotalQuantity:     item.TotalQuantity,
			AvailableQuantity: item.AvailableQuantity,
			Frozen:            item.Gate.Immutable(s.now()),
			Data:              item.Data,
			OccurredAt:        s.now(),
		})
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItem replaces every mutable field of an existing item wholesale.
// Fails with ErrItemNotFound if absent and ErrItemFrozen once the gate is
// immutable at the current time.
func (s *WarehouseService) UpdateItem(ctx context.Context, caller string, p UpdateItemParams) (*models.Item, error) {
	name, err := models.NewItemName(p.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", warehousedomain.ErrInvalidItemName, err)
	}

	var item *models.Item
	err = s.store.Update(ctx, func(tx repositories.LedgerTx) error {
		if err := s.authorize(ctx, tx, caller); err != nil {
			return err
		}
		item, err = tx.Item(ctx, p.ItemID)
		if err != nil {
			return err
		}
		if item.Gate.Immutable(s.now()) {
			return warehousedomain.ErrItemFrozen
		}
		item.Replace(name, p.TotalQuantity, p.AvailableQuantity, p.Data, p.Gate)
		if err := tx.PutItem(ctx, item); err != nil {
			return fmt.Errorf("put item: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.dropCached(p.ItemID)
	return item, nil
}

// FreezeItem latches the item's gate to permanently immutable. Freezing an
// already immutable item is an idempotent success; the event is published
// only on the actual transition.
func (s *WarehouseService) FreezeItem(ctx context.Context, caller string, itemID uint64) (*models.Item, error) {
	var item *models.Item
	err := s.store.Update(ctx, func(tx repositories.LedgerTx) error {
		if err := s.authorize(ctx, tx, caller); err != nil {
			return err
		}
		var err error
		item, err = tx.Item(ctx, itemID)
		if err != nil {
			return err
		}
		wasImmutable := item.Gate.Immutable(s.now())
		item.Freeze()
		if err := tx.PutItem(ctx, item); err != nil {
			return fmt.Errorf("put item: %w", err)
		}
		if wasImmutable {
			return nil
		}
		return tx.Publish(domainevents.TopicItemFrozen, domainevents.ItemFrozenEvent{
			EventID:    uuid.New(),
			Version:    1,
			ItemID:     itemID,
			OccurredAt: s.now(),
		})
	})
	if err != nil {
		return nil, err
	}
	s.dropCached(itemID)
	return item, nil
}

// AssignItem creates the (itemID, instanceNumber) instance for userID and
// decrements the parent item's available quantity by exactly one, as a single
// atomic step. Precondition order: item exists, gate immutable, quantity
// available, instance key free.
func (s *WarehouseService) AssignItem(ctx context.Context, caller string, itemID, instanceNumber uint64, userID string) (*models.Instance, error) {
	var instance *models.Instance
	err := s.store.Update(ctx, func(tx repositories.LedgerTx) error {
		if err := s.authorize(ctx, tx, caller); err != nil {
			return err
		}
		var err error
		instance, err = s.assign(ctx, tx, itemID, instanceNumber, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.dropCached(itemID)
	return instance, nil
}

// AssignItemWithInventory performs the warehouse assignment and the matching
// user-inventory entry creation as one transaction. If either side fails —
// including a duplicate inventory key — nothing is written: the quantity
// decrement is discarded along with everything else.
func (s *WarehouseService) AssignItemWithInventory(ctx context.Context, caller string, itemID, instanceNumber uint64, userID string, data models.DataMap) (*models.Instance, *models.InventoryEntry, error) {
	var (
		instance *models.Instance
		entry    *models.InventoryEntry
	)
	err := s.store.Update(ctx, func(tx repositories.LedgerTx) error {
		if err := s.authorize(ctx, tx, caller); err != nil {
			return err
		}
		var err error
		instance, err = s.assign(ctx, tx, itemID, instanceNumber, userID)
		if err != nil {
			return err
		}
		entry, err = createInventoryEntry(ctx, tx, userID, itemID, instanceNumber, data)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	s.dropCached(itemID)
	return instance, entry, nil
}

// assign stages the instance creation and quantity decrement on tx. Shared by
// AssignItem and AssignItemWithInventory so both paths enforce the same
// precondition order.
func (s *WarehouseService) assign(ctx context.Context, tx repositories.LedgerTx, itemID, instanceNumber uint64, userID string) (*models.Instance, error) {
	item, err := tx.Item(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !item.Gate.Immutable(s.now()) {
		return nil, warehousedomain.ErrItemNotFrozen
	}
	if item.AvailableQuantity == 0 {
		return nil, warehousedomain.ErrNoAvailableItem
	}
	if _, err := tx.Instance(ctx, itemID, instanceNumber); err == nil {
		return nil, warehousedomain.ErrInstanceAlreadyAssigned
	} else if !errors.Is(err, warehousedomain.ErrInstanceNotFound) {
		return nil, fmt.Errorf("check instance: %w", err)
	}

	instance := models.NewInstance(itemID, instanceNumber, userID)
	item.AvailableQuantity--

	if err := tx.PutInstance(ctx, instance); err != nil {
		return nil, fmt.Errorf("put instance: %w", err)
	}
	if err := tx.PutItem(ctx, item); err != nil {
		return nil, fmt.Errorf("put item: %w", err)
	}
	if err := tx.Publish(domainevents.TopicInstanceAssigned, domainevents.InstanceAssignedEvent{
		EventID:           uuid.New(),
		Version:           1,
		ItemID:            itemID,
		InstanceNumber:    instanceNumber,
		UserID:            userID,
		AvailableQuantity: item.AvailableQuantity,
		OccurredAt:        s.now(),
	}); err != nil {
		return nil, err
	}
	return instance, nil
}

// UpdateInstance replaces an instance's data wholesale; the holder is unchanged.
func (s *WarehouseService) UpdateInstance(ctx context.Context, caller string, itemID, instanceNumber uint64, data models.DataMap) (*models.Instance, error) {
	var instance *models.Instance
	err := s.store.Update(ctx, func(tx repositories.LedgerTx) error {
		if err := s.authorize(ctx, tx, caller); err != nil {
			return err
		}
		var err error
		instance, err = tx.Instance(ctx, itemID, instanceNumber)
		if err != nil {
			return err
		}
		instance.Data = data.Clone()
		if err := tx.PutInstance(ctx, instance); err != nil {
			return fmt.Errorf("put instance: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return instance, nil
}

// TransferInstance replaces an instance's holder; its data is unchanged.
func (s *WarehouseService) TransferInstance(ctx context.Context, caller string, itemID, instanceNumber uint64, newUserID string) (*models.Instance, error) {
	var instance *models.Instance
	err := s.store.Update(ctx, func(tx repositories.LedgerTx) error {
		if err := s.authorize(ctx, tx, caller); err != nil {
			return err
		}
		var err error
		instance, err = tx.Instance(ctx, itemID, instanceNumber)
		if err != nil {
			return err
		}
		from := instance.UserID
		instance.UserID = newUserID
		if err := tx.PutInstance(ctx, instance); err != nil {
			return fmt.Errorf("put instance: %w", err)
		}
		return tx.Publish(domainevents.TopicInstanceTransferred, domainevents.InstanceTransferredEvent{
			EventID:        uuid.New(),
			Version:        1,
			ItemID:         itemID,
			InstanceNumber: instanceNumber,
			FromUserID:     from,
			ToUserID:       newUserID,
			OccurredAt:     s.now(),
		})
	})
	if err != nil {
		return nil, err
	}
	return instance, nil
}

// AddOwner inserts an address into the owner set. Inserting an address that
// is already present is an idempotent success; insertion order is preserved
// for deterministic listing.
func (s *WarehouseService) AddOwner(ctx context.Context, caller, addr string) ([]string, error) {
	var owners models.OwnerSet
	err := s.store.Update(ctx, func(tx repositories.LedgerTx) error {
		if err := s.authorize(ctx, tx, caller); err != nil {
			return err
		}
		var err error
		owners, err = tx.Owners(ctx)
		if err != nil {
			return err
		}
		owners = owners.Add(addr)
		return tx.PutOwners(ctx, owners)
	})
	if err != nil {
		return nil, err
	}
	return owners.List(), nil
}

// RemoveOwner removes an address from the owner set. Fails with ErrLastOwner
// if the removal would empty the set; removing an absent address is a no-op.
func (s *WarehouseService) RemoveOwner(ctx context.Context, caller, addr string) ([]string, error) {
	var owners models.OwnerSet
	err := s.store.Update(ctx, func(tx repositories.LedgerTx) error {
		if err := s.authorize(ctx, tx, caller); err != nil {
			return err
		}
		var err error
		owners, err = tx.Owners(ctx)
		if err != nil {
			return err
		}
		owners, err = owners.Remove(addr)
		if err != nil {
			return err
		}
		return tx.PutOwners(ctx, owners)
	})
	if err != nil {
		return nil, err
	}
	return owners.List(), nil
}

// ListOwners returns the owner set in insertion order.
func (s *WarehouseService) ListOwners(ctx context.Context) ([]string, error) {
	var owners models.OwnerSet
	err := s.store.View(ctx, func(v repositories.LedgerView) error {
		var err error
		owners, err = v.Owners(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return owners.List(), nil
}

// EnsureInitialOwner seeds the owner set at ledger initialization. A no-op
// once any owner exists, so restarts never clobber a mutated set.
func (s *WarehouseService) EnsureInitialOwner(ctx context.Context, addr string) error {
	return s.store.Update(ctx, func(tx repositories.LedgerTx) error {
		owners, err := tx.Owners(ctx)
		if err != nil {
			return err
		}
		if owners.Len() > 0 {
			return nil
		}
		return tx.PutOwners(ctx, models.NewOwnerSet(addr))
	})
}

// GetItem retrieves a catalog item using a read-through cache pattern:
//  1. Check Redis cache first.
//  2. On cache miss (or cache error), query the ledger store.
//  3. Asynchronously warm the cache with the store result.
func (s *WarehouseService) GetItem(ctx context.Context, itemID uint64) (*models.Item, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, itemID); err == nil {
			return cachedToItem(cached)
		} else if !errors.Is(err, redis.Nil) {
			_ = err // cache error; fall through to the store
		}
	}

	var item *models.Item
	err := s.store.View(ctx, func(v repositories.LedgerView) error {
		var err error
		item, err = v.Item(ctx, itemID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		warm := itemToCached(item)
		go func() {
			_ = s.cache.Set(context.Background(), warm)
		}()
	}
	return item, nil
}

// GetInstance retrieves an instance by its (item id, instance number) key.
func (s *WarehouseService) GetInstance(ctx context.Context, itemID, instanceNumber uint64) (*models.Instance, error) {
	var instance *models.Instance
	err := s.store.View(ctx, func(v repositories.LedgerView) error {
		var err error
		instance, err = v.Instance(ctx, itemID, instanceNumber)
		return err
	})
	if err != nil {
		return nil, err
	}
	return instance, nil
}

func (s *WarehouseService) authorize(ctx context.Context, v repositories.LedgerView, caller string) error {
	owners, err := v.Owners(ctx)
	if err != nil {
		return fmt.Errorf("load owners: %w", err)
	}
	if !owners.Contains(caller) {
		return warehousedomain.ErrIllegalSender
	}
	return nil
}

// dropCached invalidates the item read model after a committed mutation; the
// worker re-warms it from the published event.
func (s *WarehouseService) dropCached(itemID uint64) {
	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), itemID)
	}
}

// cachedToItem rebuilds a domain item from the Redis read model.
func cachedToItem(c *pkgcache.CachedItem) (*models.Item, error) {
	gate := models.MutableGate()
	switch {
	case c.Frozen:
		gate = models.FrozenGate()
	case c.NoUpdateAfter != "":
		until, err := time.Parse(time.RFC3339Nano, c.NoUpdateAfter)
		if err != nil {
			return nil, fmt.Errorf("cache parse no_update_after: %w", err)
		}
		gate = models.MutableUntilGate(until)
	}
	return &models.Item{
		ID:                c.ItemID,
		Name:              models.ItemName(c.Name),
		TotalQuantity:     c.TotalQuantity,
		AvailableQuantity: c.AvailableQuantity,
		Data:              models.DataMap(c.Data).Clone(),
		Gate:              gate,
	}, nil
}

// itemToCached projects a domain item into the Redis read model.
func itemToCached(item *models.Item) *pkgcache.CachedItem {
	c := &pkgcache.CachedItem{
		ItemID:            item.ID,
		Name:              item.Name.String(),
		TotalQuantity:     item.TotalQuantity,
		AvailableQuantity: item.AvailableQuantity,
		Frozen:            item.Gate.Kind == models.GateFrozen,
		Data:              item.Data,
	}
	if item.Gate.Kind == models.GateMutableUntil {
		c.NoUpdateAfter = item.Gate.Until.UTC().Format(time.RFC3339Nano)
	}
	return c
}
