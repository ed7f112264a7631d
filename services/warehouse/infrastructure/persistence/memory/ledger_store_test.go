package memory

import (
	"context"
	"errors"
	"testing"

	warehousedomain "github.com/ghuser/warehouse/services/warehouse/domain"
	"github.com/ghuser/warehouse/services/warehouse/domain/models"
	"github.com/ghuser/warehouse/services/warehouse/domain/repositories"
)

func TestUpdate_CommitsOnNil(t *testing.T) {
	store := NewLedgerStore()
	ctx := context.Background()

	err := store.Update(ctx, func(tx repositories.LedgerTx) error {
		return tx.PutItem(ctx, models.NewItem(1, "sword", 10, 10, nil, models.MutableGate()))
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = store.View(ctx, func(v repositories.LedgerView) error {
		item, err := v.Item(ctx, 1)
		if err != nil {
			return err
		}
		if item.Name.String() != "sword" {
			t.Fatalf("unexpected item: %+v", item)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("view: %v", err)
	}
}

func TestUpdate_DiscardsOnError(t *testing.T) {
	store := NewLedgerStore()
	ctx := context.Background()
	boom := errors.New("boom")

	err := store.Update(ctx, func(tx repositories.LedgerTx) error {
		if err := tx.PutItem(ctx, models.NewItem(1, "sword", 10, 10, nil, models.MutableGate())); err != nil {
			return err
		}
		if err := tx.Publish("topic", "payload"); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	err = store.View(ctx, func(v repositories.LedgerView) error {
		if _, err := v.Item(ctx, 1); !errors.Is(err, warehousedomain.ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound after aborted tx, got %v", err)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("view: %v", err)
	}

	if got := store.Events(); len(got) != 0 {
		t.Fatalf("aborted tx must not publish events, got %v", got)
	}
}

func TestUpdate_EventsDeliveredOnCommit(t *testing.T) {
	store := NewLedgerStore()
	ctx := context.Background()

	err := store.Update(ctx, func(tx repositories.LedgerTx) error {
		if err := tx.Publish("a", 1); err != nil {
			return err
		}
		return tx.Publish("b", 2)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	events := store.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Topic != "a" || events[1].Topic != "b" {
		t.Fatalf("events out of order: %v", events)
	}
}

func TestGetters_ReturnCopies(t *testing.T) {
	store := NewLedgerStore()
	ctx := context.Background()

	err := store.Update(ctx, func(tx repositories.LedgerTx) error {
		return tx.PutItem(ctx, models.NewItem(1, "sword", 10, 10, models.DataMap{"k": "v"}, models.MutableGate()))
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	// Mutate a fetched item without writing it back.
	err = store.Update(ctx, func(tx repositories.LedgerTx) error {
		item, err := tx.Item(ctx, 1)
		if err != nil {
			return err
		}
		item.AvailableQuantity = 0
		item.Data["k"] = "mutated"
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = store.View(ctx, func(v repositories.LedgerView) error {
		item, err := v.Item(ctx, 1)
		if err != nil {
			return err
		}
		if item.AvailableQuantity != 10 || item.Data["k"] != "v" {
			t.Fatalf("mutation without Put leaked into the store: %+v", item)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("view: %v", err)
	}
}

func TestInventoryEntry_AbsentKey(t *testing.T) {
	store := NewLedgerStore()
	ctx := context.Background()

	err := store.View(ctx, func(v repositories.LedgerView) error {
		_, err := v.InventoryEntry(ctx, "user_123", 1, 1)
		if !errors.Is(err, warehousedomain.ErrInstanceNotFound) {
			t.Fatalf("expected ErrInstanceNotFound, got %v", err)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("view: %v", err)
	}
}
