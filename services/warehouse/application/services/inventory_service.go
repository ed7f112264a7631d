package services

import (
	"context"
	"errors"
	"fmt"

	warehousedomain "github.com/ghuser/warehouse/services/warehouse/domain"
	"github.com/ghuser/warehouse/services/warehouse/domain/models"
	"github.com/ghuser/warehouse/services/warehouse/domain/repositories"
)

// InventoryService is the independently-callable surface of the user-centric
// inventory ledger. It shares the LedgerStore with the warehouse service, so
// entries written here and entries written by AssignItemWithInventory live in
// the same transactional namespace.
//
// The inventory ledger carries no owner gate and no quantity bookkeeping of
// its own: it is a pure secondary index keyed by the full
// (user id, item id, instance number) tuple.
type InventoryService struct {
	store repositories.LedgerStore
}

// NewInventoryService returns an InventoryService backed by the given store.
func NewInventoryService(store repositories.LedgerStore) *InventoryService {
	return &InventoryService{store: store}
}

// AssignEntry creates an inventory entry with the given data. Fails with
// ErrInventoryEntryExists if the key tuple is already taken.
func (s *InventoryService) AssignEntry(ctx context.Context, userID string, itemID, instanceNumber uint64, data models.DataMap) (*models.InventoryEntry, error) {
	var entry *models.InventoryEntry
	err := s.store.Update(ctx, func(tx repositories.LedgerTx) error {
		var err error
		entry, err = createInventoryEntry(ctx, tx, userID, itemID, instanceNumber, data)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// UpdateEntry replaces an existing entry's data wholesale. Fails with
// ErrInstanceNotFound if the key tuple is absent.
func (s *InventoryService) UpdateEntry(ctx context.Context, userID string, itemID, instanceNumber uint64, data models.DataMap) (*models.InventoryEntry, error) {
	var entry *models.InventoryEntry
	err := s.store.Update(ctx, func(tx repositories.LedgerTx) error {
		var err error
		entry, err = tx.InventoryEntry(ctx, userID, itemID, instanceNumber)
		if err != nil {
			return err
		}
		entry.Data = data.Clone()
		if err := tx.PutInventoryEntry(ctx, entry); err != nil {
			return fmt.Errorf("put inventory entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// GetEntry retrieves an inventory entry by its full key tuple.
func (s *InventoryService) GetEntry(ctx context.Context, userID string, itemID, instanceNumber uint64) (*models.InventoryEntry, error) {
	var entry *models.InventoryEntry
	err := s.store.View(ctx, func(v repositories.LedgerView) error {
		var err error
		entry, err = v.InventoryEntry(ctx, userID, itemID, instanceNumber)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// createInventoryEntry stages an entry creation on tx. Shared with the
// warehouse service's AssignItemWithInventory so the standalone and proxied
// paths enforce the same uniqueness check.
func createInventoryEntry(ctx context.Context, tx repositories.LedgerTx, userID string, itemID, instanceNumber uint64, data models.DataMap) (*models.InventoryEntry, error) {
	if _, err := tx.InventoryEntry(ctx, userID, itemID, instanceNumber); err == nil {
		return nil, warehousedomain.ErrInventoryEntryExists
	} else if !errors.Is(err, warehousedomain.ErrInstanceNotFound) {
		return nil, fmt.Errorf("check inventory entry: %w", err)
	}

	entry := models.NewInventoryEntry(userID, itemID, instanceNumber, data)
	if err := tx.PutInventoryEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("put inventory entry: %w", err)
	}
	return entry, nil
}
