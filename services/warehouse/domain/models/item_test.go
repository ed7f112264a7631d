package models

import (
	"testing"
	"time"
)

func TestNewItem_ClonesData(t *testing.T) {
	data := DataMap{"rarity": "epic"}
	item := NewItem(1, "sword", 10, 10, data, MutableGate())

	data["rarity"] = "common"
	if item.Data["rarity"] != "epic" {
		t.Fatalf("item aliases caller-owned data: %v", item.Data)
	}
}

func TestItem_Replace(t *testing.T) {
	item := NewItem(1, "sword", 10, 10, DataMap{"rarity": "epic"}, MutableGate())
	until := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	item.Replace("axe", 5, 3, DataMap{"rarity": "rare"}, MutableUntilGate(until))

	if item.ID != 1 {
		t.Fatalf("Replace must not change the id, got %d", item.ID)
	}
	if item.Name.String() != "axe" {
		t.Fatalf("unexpected name: %q", item.Name)
	}
	if item.TotalQuantity != 5 || item.AvailableQuantity != 3 {
		t.Fatalf("unexpected quantities: %d/%d", item.AvailableQuantity, item.TotalQuantity)
	}
	if item.Data["rarity"] != "rare" || len(item.Data) != 1 {
		t.Fatalf("data must be replaced wholesale, got %v", item.Data)
	}
	if item.Gate.Kind != GateMutableUntil || !item.Gate.Until.Equal(until) {
		t.Fatalf("unexpected gate: %+v", item.Gate)
	}
}

func TestItem_Freeze(t *testing.T) {
	item := NewItem(1, "sword", 10, 10, nil, MutableGate())
	item.Freeze()
	if item.Gate.Kind != GateFrozen {
		t.Fatalf("expected GateFrozen, got %v", item.Gate.Kind)
	}

	// Idempotent.
	item.Freeze()
	if item.Gate.Kind != GateFrozen {
		t.Fatalf("expected GateFrozen after refreeze, got %v", item.Gate.Kind)
	}
}

func TestItem_Clone(t *testing.T) {
	item := NewItem(1, "sword", 10, 10, DataMap{"rarity": "epic"}, FrozenGate())
	clone := item.Clone()

	clone.Data["rarity"] = "common"
	clone.AvailableQuantity = 0

	if item.Data["rarity"] != "epic" {
		t.Fatalf("clone shares the data map: %v", item.Data)
	}
	if item.AvailableQuantity != 10 {
		t.Fatalf("clone shares scalar state: %d", item.AvailableQuantity)
	}
}
