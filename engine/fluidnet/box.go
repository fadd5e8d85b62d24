// Package fluidnet implements the per-tile fluid network: topology
// discovery between adjacent fluid boxes and one-step pressure
// equalization flow (spec.md §4.5).
package fluidnet

import "github.com/brackfield/beltworks/engine/core"

// Box is a single fluid port belonging to a structure. Invariant:
// Amount > 0 implies Kind != nil (see SetAmount).
type Box struct {
	Kind          *core.FluidKind
	Amount        float64
	MaxAmount     float64
	InputEnabled  bool
	OutputEnabled bool
	Filter        *core.FluidKind
	// Side restricts which tile side this box can connect through; nil
	// means it connects on any side a neighbor offers (the common case
	// for a structure with a single fluid box, e.g. Pipe).
	Side      *core.Rotation
	ConnectTo [4]*core.Id
}

// SetAmount assigns both amount and kind together so the invariant
// amount > 0 => kind != nil can never be violated by a partial write.
func (b *Box) SetAmount(amount float64, kind core.FluidKind) {
	if amount <= 0 {
		b.Amount = 0
		b.Kind = nil
		return
	}
	if b.Amount <= 0 {
		b.Kind = &kind
	}
	b.Amount = amount
	if b.Amount > b.MaxAmount {
		b.Amount = b.MaxAmount
	}
}

// Clear empties the box.
func (b *Box) Clear() {
	b.Amount = 0
	b.Kind = nil
}
