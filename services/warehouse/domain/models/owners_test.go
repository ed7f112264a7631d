package models

import (
	"errors"
	"slices"
	"testing"

	warehousedomain "github.com/ghuser/warehouse/services/warehouse/domain"
)

func TestNewOwnerSet_DeduplicatesPreservingOrder(t *testing.T) {
	s := NewOwnerSet("tz1-a", "tz1-b", "tz1-a", "tz1-c", "tz1-b")
	want := []string{"tz1-a", "tz1-b", "tz1-c"}
	if got := s.List(); !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestOwnerSet_Add(t *testing.T) {
	t.Run("appends new address", func(t *testing.T) {
		s := NewOwnerSet("tz1-a").Add("tz1-b")
		if !s.Contains("tz1-b") {
			t.Fatal("expected tz1-b in set")
		}
		if s.Len() != 2 {
			t.Fatalf("expected 2 owners, got %d", s.Len())
		}
	})

	t.Run("duplicate is a no-op", func(t *testing.T) {
		s := NewOwnerSet("tz1-a").Add("tz1-a")
		if s.Len() != 1 {
			t.Fatalf("expected 1 owner, got %d", s.Len())
		}
	})

	t.Run("copy on write", func(t *testing.T) {
		orig := NewOwnerSet("tz1-a")
		_ = orig.Add("tz1-b")
		if orig.Len() != 1 {
			t.Fatalf("Add mutated the receiver: %v", orig.List())
		}
	})
}

func TestOwnerSet_Remove(t *testing.T) {
	t.Run("removes present address", func(t *testing.T) {
		s, err := NewOwnerSet("tz1-a", "tz1-b").Remove("tz1-a")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Contains("tz1-a") {
			t.Fatal("tz1-a still in set")
		}
		if s.Len() != 1 {
			t.Fatalf("expected 1 owner, got %d", s.Len())
		}
	})

	t.Run("absent address is a no-op", func(t *testing.T) {
		s, err := NewOwnerSet("tz1-a", "tz1-b").Remove("tz1-x")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Len() != 2 {
			t.Fatalf("expected 2 owners, got %d", s.Len())
		}
	})

	t.Run("sole owner cannot be removed", func(t *testing.T) {
		s := NewOwnerSet("tz1-a")
		_, err := s.Remove("tz1-a")
		if !errors.Is(err, warehousedomain.ErrLastOwner) {
			t.Fatalf("expected ErrLastOwner, got %v", err)
		}
		if !s.Contains("tz1-a") {
			t.Fatal("failed removal must leave the set intact")
		}
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		s, err := NewOwnerSet("tz1-a", "tz1-b", "tz1-c").Remove("tz1-b")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"tz1-a", "tz1-c"}
		if got := s.List(); !slices.Equal(got, want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})
}

func TestOwnerSet_ListReturnsCopy(t *testing.T) {
	s := NewOwnerSet("tz1-a", "tz1-b")
	list := s.List()
	list[0] = "tz1-mutated"
	if !s.Contains("tz1-a") {
		t.Fatal("mutating the listed slice changed the set")
	}
}
