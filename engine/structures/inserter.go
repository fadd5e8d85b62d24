package structures

import (
	"github.com/brackfield/beltworks/engine/config"
	"github.com/brackfield/beltworks/engine/core"
	"github.com/brackfield/beltworks/engine/inventory"
)

// Inserter picks an item from the neighbor tile behind its facing (or a
// loose drop item sitting there) and deposits it into the neighbor tile
// in front (spec.md §4.8). INSERTER_TIME gates both the pickup and the
// place half of one full swing.
type Inserter struct {
	Pos             core.Position
	Rot             core.Rotation
	Cooldown        int
	Hold            *core.ItemKind
	InputStructure  *core.Id
	OutputStructure *core.Id
	cfg             *config.Config
}

// NewInserter places an idle inserter at pos facing rot.
func NewInserter(pos core.Position, rot core.Rotation, cfg *config.Config) *Inserter {
	return &Inserter{Pos: pos, Rot: rot, cfg: cfg}
}

func (ins *Inserter) Kind() Kind              { return KindInserter }
func (ins *Inserter) Position() core.Position { return ins.Pos }
func (ins *Inserter) Rotation() core.Rotation  { return ins.Rot }

// SetRotation drops any bound neighbors: rebinding happens through the
// construction-event pass the next time the structure is placed or the
// world re-derives bindings, matching the conservative policy spec.md §9
// applies to underground belts with in-flight state.
func (ins *Inserter) SetRotation(r core.Rotation) {
	ins.Rot = r
	ins.InputStructure = nil
	ins.OutputStructure = nil
}

func (ins *Inserter) inputPos() core.Position  { return ins.Pos.Add(ins.Rot.Opposite().Delta()) }
func (ins *Inserter) outputPos() core.Position { return ins.Pos.Add(ins.Rot.Delta()) }

// OnConstructionSelf binds InputStructure/OutputStructure to whatever
// structures currently occupy the tiles behind and ahead of the
// inserter's facing (spec.md §4.11).
func (ins *Inserter) OnConstructionSelf(me core.Id, others Neighbors, construct bool) {
	if !construct {
		ins.InputStructure = nil
		ins.OutputStructure = nil
		return
	}
	if id, ok := others.At(ins.inputPos()); ok {
		ins.InputStructure = &id
	}
	if id, ok := others.At(ins.outputPos()); ok {
		ins.OutputStructure = &id
	}
}

// OnConstruction rebinds InputStructure/OutputStructure when a neighbor
// appears or disappears on either side tile.
func (ins *Inserter) OnConstruction(other core.Id, _ Kind, pos core.Position, construct bool) {
	switch pos {
	case ins.inputPos():
		if construct {
			ins.InputStructure = &other
		} else if ins.InputStructure != nil && *ins.InputStructure == other {
			ins.InputStructure = nil
		}
	case ins.outputPos():
		if construct {
			ins.OutputStructure = &other
		} else if ins.OutputStructure != nil && *ins.OutputStructure == other {
			ins.OutputStructure = nil
		}
	}
}

// Tick runs one step of the hand-cooldown state machine (spec.md §4.8).
func (ins *Inserter) Tick(ctx TickContext) {
	if ins.Hold == nil && ins.Cooldown <= 1 {
		ins.tryGrab(ctx)
		return
	}
	if ins.Hold != nil && ins.Cooldown < 1 {
		ins.tryPlace(ctx)
		return
	}
	ins.Cooldown--
}

func (ins *Inserter) tryGrab(ctx TickContext) {
	inPos := ins.inputPos()

	if id, kind, ok := ctx.World.ItemAt(inPos); ok {
		if ins.acceptableToOutput(ctx, kind) {
			if _, removed := ctx.World.ConsumeItem(id); removed {
				ins.grab(kind)
			}
			return
		}
	}

	if ins.InputStructure == nil {
		return
	}
	src, ok := ctx.Others.Get(*ins.InputStructure)
	if !ok {
		ins.InputStructure = nil
		return
	}
	out, ok := src.(Outputter)
	if !ok {
		return
	}
	for kind := range out.CanOutput() {
		if !ins.acceptableToOutput(ctx, kind) {
			continue
		}
		if out.Output(kind) {
			ins.grab(kind)
		}
		return
	}
}

// acceptableToOutput reports whether kind would be accepted by whatever
// sits on the output tile, or true if nothing does (spec.md: "pick the
// first kind acceptable by the output side (or any, if the output tile
// has no structure)").
func (ins *Inserter) acceptableToOutput(ctx TickContext, kind core.ItemKind) bool {
	if ins.OutputStructure == nil {
		return true
	}
	dst, ok := ctx.Others.Get(*ins.OutputStructure)
	if !ok {
		return true
	}
	if in, ok := dst.(Inputter); ok {
		return in.CanInput(kind)
	}
	return true
}

func (ins *Inserter) grab(kind core.ItemKind) {
	k := kind
	ins.Hold = &k
	ins.Cooldown = ins.cfg.InserterTime
}

func (ins *Inserter) tryPlace(ctx TickContext) {
	kind := *ins.Hold
	outPos := ins.outputPos()

	if ins.OutputStructure != nil {
		dst, ok := ctx.Others.Get(*ins.OutputStructure)
		if !ok {
			ins.OutputStructure = nil
		} else if in, isInputter := dst.(Inputter); isInputter {
			if in.CanInput(kind) && in.Input(kind) == nil {
				ins.place(ctx, outPos)
			}
			return
		}
		// else: a structure occupies the output tile but doesn't accept
		// Input (a belt) — fall through to the drop-item path below.
	}

	tile := float64(ins.cfg.TileSize)
	cx := float64(outPos.X)*tile + tile/2
	cy := float64(outPos.Y)*tile + tile/2
	if ctx.World.HitCheck(cx, cy, nil) {
		return
	}
	ctx.World.SpawnDropItem(kind, cx, cy)
	ins.place(ctx, outPos)
}

func (ins *Inserter) place(ctx TickContext, pos core.Position) {
	ins.Hold = nil
	ins.Cooldown = ins.cfg.InserterTime
	ctx.World.Emit(core.Event{Type: core.EvtInventoryChanged, Pos: pos})
}

// DestroyInventory returns whatever the inserter's hand currently holds.
func (ins *Inserter) DestroyInventory() inventory.Inventory {
	inv := inventory.New()
	if ins.Hold != nil {
		inv.Add(*ins.Hold, 1)
	}
	return inv
}
