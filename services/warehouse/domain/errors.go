package domain

import "errors"

// Sentinel errors for the warehouse ledger. The messages are the ledger's
// stable rejection codes: they travel unchanged through the HTTP surface and
// are asserted by clients, so never reword them. Use errors.Is() to check.
var (
	// ErrIllegalSender indicates the caller is not in the owner set.
	ErrIllegalSender = errors.New("ILLEGAL_SENDER")

	// ErrItemAlreadyExists indicates add_item was called with an item id already in the catalog.
	ErrItemAlreadyExists = errors.New("ITEM_ID_ALREADY_EXISTS")

	// ErrItemNotFound indicates the operation targets an item id absent from the catalog.
	ErrItemNotFound = errors.New("ITEM_ID_DOESNT_EXIST")

	// ErrItemFrozen indicates a mutation was attempted on an immutable item.
	ErrItemFrozen = errors.New("ITEM_IS_FROZEN")

	// ErrItemNotFrozen indicates assign_item was called before the item became immutable.
	ErrItemNotFrozen = errors.New("ITEM_MUST_BE_FROZEN_BEFORE_ASSIGN")

	// ErrNoAvailableItem indicates assign_item was called with available_quantity already at zero.
	ErrNoAvailableItem = errors.New("NO_AVAILABLE_ITEM")

	// ErrInstanceAlreadyAssigned indicates the (item id, instance number) key is already taken.
	ErrInstanceAlreadyAssigned = errors.New("INSTANCE_ALREADY_ASSIGNED")

	// ErrInstanceNotFound indicates an update or transfer targets an absent instance.
	ErrInstanceNotFound = errors.New("NO_SUCH_INSTANCE")

	// ErrInventoryEntryExists indicates the (user id, item id, instance number)
	// key already exists in the user inventory ledger.
	ErrInventoryEntryExists = errors.New("ITEM_INSTANCE_ALREADY_ASSIGNED")

	// ErrLastOwner indicates remove_owner would leave the owner set empty.
	ErrLastOwner = errors.New("REQUIRES_AT_LEAST_ONE_OWNER")
)

// ErrInvalidItemName is not a ledger rejection code: it belongs to the
// malformed-request class caught before an invocation reaches the state
// machine, and its message is free to change.
var ErrInvalidItemName = errors.New("invalid item name")
