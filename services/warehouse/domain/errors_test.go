package domain

import (
	"errors"
	"fmt"
	"testing"
)

// The messages ARE the wire codes; clients assert on them, so a reworded
// message is a breaking change.
func TestSentinelErrors_RejectionCodes(t *testing.T) {
	tests := []struct {
		err  error
		code string
	}{
		{ErrIllegalSender, "ILLEGAL_SENDER"},
		{ErrItemAlreadyExists, "ITEM_ID_ALREADY_EXISTS"},
		{ErrItemNotFound, "ITEM_ID_DOESNT_EXIST"},
		{ErrItemFrozen, "ITEM_IS_FROZEN"},
		{ErrItemNotFrozen, "ITEM_MUST_BE_FROZEN_BEFORE_ASSIGN"},
		{ErrNoAvailableItem, "NO_AVAILABLE_ITEM"},
		{ErrInstanceAlreadyAssigned, "INSTANCE_ALREADY_ASSIGNED"},
		{ErrInstanceNotFound, "NO_SUCH_INSTANCE"},
		{ErrInventoryEntryExists, "ITEM_INSTANCE_ALREADY_ASSIGNED"},
		{ErrLastOwner, "REQUIRES_AT_LEAST_ONE_OWNER"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if tt.err.Error() != tt.code {
				t.Fatalf("unexpected message: %q", tt.err.Error())
			}
		})
	}
}

func TestSentinelErrors_WrappedIdentity(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", ErrItemNotFound)
	if !errors.Is(wrapped, ErrItemNotFound) {
		t.Fatal("errors.Is must match wrapped ErrItemNotFound")
	}

	wrapped2 := fmt.Errorf("%w: %w", ErrInvalidItemName, errors.New("too long"))
	if !errors.Is(wrapped2, ErrInvalidItemName) {
		t.Fatal("errors.Is must match double-wrapped ErrInvalidItemName")
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrItemNotFound, ErrInstanceNotFound) {
		t.Fatal("item and instance not-found sentinels must be distinct")
	}
	if errors.Is(ErrInstanceAlreadyAssigned, ErrInventoryEntryExists) {
		t.Fatal("warehouse and inventory duplicate-key sentinels must be distinct")
	}
}
