package models

import "time"

// GateKind enumerates the mutability states an item can be in.
type GateKind int

const (
	// GateMutable allows updates indefinitely.
	GateMutable GateKind = iota
	// GateFrozen forbids updates permanently. The transition is one-way.
	GateFrozen
	// GateMutableUntil allows updates until a deadline, then behaves like GateFrozen.
	GateMutableUntil
)

// Gate is an item's mutability gate: Mutable, FrozenPermanently, or
// MutableUntil(deadline). It is evaluated against a supplied clock so the two
// historical gating schemes (boolean frozen flag and no_update_after
// timestamp) collapse into one type.
type Gate struct {
	Kind  GateKind
	Until time.Time // deadline; meaningful only when Kind == GateMutableUntil
}

// MutableGate returns a gate that permits updates indefinitely.
func MutableGate() Gate {
	return Gate{Kind: GateMutable}
}

// FrozenGate returns a permanently immutable gate.
func FrozenGate() Gate {
	return Gate{Kind: GateFrozen}
}

// MutableUntilGate returns a gate that permits updates strictly before t.
func MutableUntilGate(t time.Time) Gate {
	return Gate{Kind: GateMutableUntil, Until: t}
}

// Immutable reports whether the gate forbids updates at the given instant.
func (g Gate) Immutable(now time.Time) bool {
	switch g.Kind {
	case GateFrozen:
		return true
	case GateMutableUntil:
		return !now.Before(g.Until)
	default:
		return false
	}
}

// Freeze returns the permanently immutable gate. Freezing an already frozen
// gate yields the same gate; the latch never reopens.
func (g Gate) Freeze() Gate {
	return FrozenGate()
}
