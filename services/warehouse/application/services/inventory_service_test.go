package services

import (
	"context"
	"errors"
	"testing"

	warehousedomain "github.com/ghuser/warehouse/services/warehouse/domain"
	"github.com/ghuser/warehouse/services/warehouse/domain/models"
	"github.com/ghuser/warehouse/services/warehouse/infrastructure/persistence/memory"
)

func newInventoryService() *InventoryService {
	return NewInventoryService(memory.NewLedgerStore())
}

func TestAssignEntry(t *testing.T) {
	t.Run("creates entry with data", func(t *testing.T) {
		svc := newInventoryService()

		entry, err := svc.AssignEntry(context.Background(), "user_123", 0, 1, models.DataMap{"XP": "0"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entry.UserID != "user_123" || entry.ItemID != 0 || entry.InstanceNumber != 1 {
			t.Fatalf("unexpected entry: %+v", entry)
		}
		if entry.Data["XP"] != "0" {
			t.Fatalf("unexpected data: %v", entry.Data)
		}
	})

	t.Run("duplicate key tuple is rejected", func(t *testing.T) {
		svc := newInventoryService()

		if _, err := svc.AssignEntry(context.Background(), "user_123", 0, 1, nil); err != nil {
			t.Fatalf("first assign: %v", err)
		}
		_, err := svc.AssignEntry(context.Background(), "user_123", 0, 1, nil)
		if !errors.Is(err, warehousedomain.ErrInventoryEntryExists) {
			t.Fatalf("expected ErrInventoryEntryExists, got %v", err)
		}
	})

	t.Run("same item for different users", func(t *testing.T) {
		// The key is the full tuple; a different user id is a different entry.
		svc := newInventoryService()

		if _, err := svc.AssignEntry(context.Background(), "user_123", 0, 1, nil); err != nil {
			t.Fatalf("first assign: %v", err)
		}
		if _, err := svc.AssignEntry(context.Background(), "user_124", 0, 1, nil); err != nil {
			t.Fatalf("second assign: %v", err)
		}
	})

	t.Run("nil data becomes empty map", func(t *testing.T) {
		svc := newInventoryService()

		entry, err := svc.AssignEntry(context.Background(), "user_123", 0, 1, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entry.Data == nil || len(entry.Data) != 0 {
			t.Fatalf("expected empty data map, got %v", entry.Data)
		}
	})
}

func TestUpdateEntry(t *testing.T) {
	t.Run("replaces data wholesale", func(t *testing.T) {
		svc := newInventoryService()
		if _, err := svc.AssignEntry(context.Background(), "user_123", 0, 1, models.DataMap{"XP": "0", "level": "1"}); err != nil {
			t.Fatalf("seed: %v", err)
		}

		entry, err := svc.UpdateEntry(context.Background(), "user_123", 0, 1, models.DataMap{"XP": "98"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entry.Data["XP"] != "98" || len(entry.Data) != 1 {
			t.Fatalf("data must be replaced, not merged: %v", entry.Data)
		}
	})

	t.Run("absent key tuple is rejected", func(t *testing.T) {
		svc := newInventoryService()

		_, err := svc.UpdateEntry(context.Background(), "user_123", 0, 1, nil)
		if !errors.Is(err, warehousedomain.ErrInstanceNotFound) {
			t.Fatalf("expected ErrInstanceNotFound, got %v", err)
		}
	})
}

func TestGetEntry(t *testing.T) {
	t.Run("roundtrip", func(t *testing.T) {
		svc := newInventoryService()
		if _, err := svc.AssignEntry(context.Background(), "user_123", 7, 3, models.DataMap{"XP": "42"}); err != nil {
			t.Fatalf("seed: %v", err)
		}

		entry, err := svc.GetEntry(context.Background(), "user_123", 7, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entry.ItemID != 7 || entry.InstanceNumber != 3 || entry.Data["XP"] != "42" {
			t.Fatalf("unexpected entry: %+v", entry)
		}
	})

	t.Run("absent key tuple", func(t *testing.T) {
		svc := newInventoryService()

		_, err := svc.GetEntry(context.Background(), "user_123", 0, 1)
		if !errors.Is(err, warehousedomain.ErrInstanceNotFound) {
			t.Fatalf("expected ErrInstanceNotFound, got %v", err)
		}
	})
}
