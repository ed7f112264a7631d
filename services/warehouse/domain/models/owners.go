package models

import (
	"slices"

	warehousedomain "github.com/ghuser/warehouse/services/warehouse/domain"
)

// OwnerSet is the ordered, duplicate-free set of addresses authorized to
// mutate the ledger. Insertion order is preserved for deterministic listing.
// The set is never empty once the ledger is initialized.
type OwnerSet struct {
	addrs []string
}

// NewOwnerSet builds an owner set from the given addresses, dropping
// duplicates while preserving first-seen order.
func NewOwnerSet(addrs ...string) OwnerSet {
	var s OwnerSet
	for _, a := range addrs {
		s = s.Add(a)
	}
	return s
}

// Contains reports whether addr is in the set.
func (s OwnerSet) Contains(addr string) bool {
	return slices.Contains(s.addrs, addr)
}

// Add returns a set with addr appended. Adding an address already present is
// a no-op; the set stays duplicate-free.
func (s OwnerSet) Add(addr string) OwnerSet {
	if s.Contains(addr) {
		return s
	}
	out := make([]string, len(s.addrs), len(s.addrs)+1)
	copy(out, s.addrs)
	return OwnerSet{addrs: append(out, addr)}
}

// Remove returns a set with addr removed. Removing an absent address is a
// no-op. Fails with ErrLastOwner if the removal would empty the set.
func (s OwnerSet) Remove(addr string) (OwnerSet, error) {
	i := slices.Index(s.addrs, addr)
	if i < 0 {
		return s, nil
	}
	if len(s.addrs) == 1 {
		return s, warehousedomain.ErrLastOwner
	}
	out := make([]string, 0, len(s.addrs)-1)
	out = append(out, s.addrs[:i]...)
	out = append(out, s.addrs[i+1:]...)
	return OwnerSet{addrs: out}, nil
}

// List returns the addresses in insertion order. The slice is a copy.
func (s OwnerSet) List() []string {
	return slices.Clone(s.addrs)
}

// Len returns the number of owners.
func (s OwnerSet) Len() int {
	return len(s.addrs)
}
