package world

import (
	"github.com/brackfield/beltworks/engine/commands"
	"github.com/brackfield/beltworks/engine/core"
	"github.com/brackfield/beltworks/engine/items"
	"github.com/brackfield/beltworks/engine/powernet"
	"github.com/brackfield/beltworks/engine/structures"
)

// Default energy and fluid buffer capacities for structure kinds the
// config package doesn't size individually (spec.md leaves these to
// implementation discretion; DESIGN.md records the choice).
const (
	defaultMaxEnergy = 100.0
	defaultMaxFluid  = 100.0
)

// Enqueue queues cmd to apply on the next Tick's command-application step
// (spec.md §4.10 step 1), and appends it to the attached recorder if any.
func (w *World) Enqueue(cmd commands.Command) {
	w.pending = append(w.pending, cmd)
	if w.recorder != nil {
		w.recorder.Append(cmd)
	}
}

func (w *World) applyPending() {
	cmds := w.pending
	w.pending = nil
	for _, cmd := range cmds {
		if err := w.apply(cmd); err != nil {
			w.tickErrs = append(w.tickErrs, err)
			w.log.Warn("command rejected", "type", cmd.Type, "error", err)
		}
	}
}

func (w *World) apply(cmd commands.Command) error {
	switch cmd.Type {
	case commands.PlaceStructure:
		_, err := w.PlaceStructure(cmd.Kind, cmd.Pos, cmd.Rot)
		return err
	case commands.RemoveStructure:
		return w.RemoveStructure(cmd.ID)
	case commands.RotateStructure:
		return w.RotateStructure(cmd.ID)
	case commands.SetRecipe:
		return w.SetRecipe(cmd.ID, cmd.RecipeIndex)
	case commands.MoveItem:
		return w.MoveItem(cmd.FromID, cmd.ToID, cmd.ItemKind, cmd.Count)
	case commands.AddWire:
		return w.AddWire(cmd.WireA, cmd.WireB)
	case commands.RemoveWire:
		return w.RemoveWire(cmd.WireA, cmd.WireB)
	default:
		return errInternalf("unknown command type %v", cmd.Type)
	}
}

// newStructure builds the concrete structure value for kind, or nil if
// kind is unrecognized.
func (w *World) newStructure(kind structures.Kind, pos core.Position, rot core.Rotation) structures.Structure {
	switch kind {
	case structures.KindOreMine:
		return structures.NewOreMine(pos, rot, w.cfg)
	case structures.KindFurnace:
		return structures.NewFurnace(pos, rot, w.cfg)
	case structures.KindElectricFurnace:
		return structures.NewElectricFurnace(pos, rot, defaultMaxEnergy)
	case structures.KindAssembler:
		return structures.NewAssembler(pos, rot, defaultMaxEnergy)
	case structures.KindChest:
		return structures.NewChest(pos)
	case structures.KindInserter:
		return structures.NewInserter(pos, rot, w.cfg)
	case structures.KindTransportBelt:
		return structures.NewTransportBelt(pos, rot, w.cfg)
	case structures.KindSplitter:
		return structures.NewSplitter(pos, rot, w.cfg)
	case structures.KindUndergroundBelt:
		return structures.NewUndergroundBelt(pos, rot, structures.ModeToGround, w.cfg)
	case structures.KindPipe:
		return structures.NewPipe(pos, defaultMaxFluid)
	case structures.KindUndergroundPipe:
		return structures.NewUndergroundPipe(pos, rot, defaultMaxFluid, w.cfg)
	case structures.KindWaterWell:
		return structures.NewWaterWell(pos, defaultMaxFluid)
	case structures.KindOffshorePump:
		return structures.NewOffshorePump(pos, rot, defaultMaxFluid)
	case structures.KindBoiler:
		return structures.NewBoiler(pos, rot, defaultMaxFluid, defaultMaxFluid, w.cfg)
	case structures.KindSteamEngine:
		return structures.NewSteamEngine(pos, rot, defaultMaxFluid, defaultMaxEnergy)
	case structures.KindElectPole:
		return structures.NewElectPole(pos, defaultMaxEnergy)
	case structures.KindLab:
		return structures.NewLab(pos, defaultMaxEnergy)
	default:
		return nil
	}
}

// structureKindIsPowerCapable reports whether kind can ever implement
// PowerSource or PowerSink, so placement only marks the power topology
// dirty (and runs auto-wiring) when it could actually matter.
func structureKindIsPowerCapable(kind structures.Kind) bool {
	switch kind {
	case structures.KindElectricFurnace, structures.KindAssembler, structures.KindLab,
		structures.KindSteamEngine, structures.KindElectPole:
		return true
	default:
		return false
	}
}

// PlaceStructure creates a structure of kind at pos facing rot, rejecting
// out-of-bounds tiles and occupied footprints (spec.md §4.1, §7).
func (w *World) PlaceStructure(kind structures.Kind, pos core.Position, rot core.Rotation) (core.Id, error) {
	if w.terrain != nil && !w.terrain.InBounds(pos.X, pos.Y) {
		return core.Id{}, core.ErrOutOfBounds
	}
	s := w.newStructure(kind, pos, rot)
	if s == nil {
		return core.Id{}, errInternalf("unknown structure kind %v", kind)
	}
	for _, fp := range structures.Footprint(s) {
		if w.terrain != nil && !w.terrain.InBounds(fp.X, fp.Y) {
			return core.Id{}, core.ErrOutOfBounds
		}
	}
	id, err := w.reg.Add(s)
	if err != nil {
		return core.Id{}, err
	}
	w.notifyConstruction(id, s, true)
	if structureKindIsPowerCapable(kind) {
		w.powerDirty = true
		powernet.AutoConnect(w, func(a, b core.Id) { w.wires = append(w.wires, powernet.Wire{A: a, B: b}) })
	}
	return id, nil
}

// RemoveStructure deletes id, returning its destroy inventory as loose
// drop items centered on its tile, and notifies every other structure
// (spec.md §4.4's destroy-inventory contract, §4.11).
func (w *World) RemoveStructure(id core.Id) error {
	s, ok := w.reg.Get(id)
	if !ok {
		return core.ErrNotFound
	}
	w.notifyConstruction(id, s, false)
	w.reg.Remove(id)
	w.spillInventory(s)
	w.removeWiresFor(id)
	if structureKindIsPowerCapable(s.Kind()) {
		w.powerDirty = true
	}
	return nil
}

func (w *World) spillInventory(s structures.Structure) {
	d, ok := s.(structures.Destroyable)
	if !ok {
		return
	}
	inv := d.DestroyInventory()
	var kinds []core.ItemKind
	for kind, count := range inv {
		for i := 0; i < count; i++ {
			kinds = append(kinds, kind)
		}
	}
	w.spillAt(s.Position(), kinds)
}

func (w *World) removeWiresFor(id core.Id) {
	kept := w.wires[:0]
	for _, wire := range w.wires {
		if wire.Has(id) {
			continue
		}
		kept = append(kept, wire)
	}
	w.wires = kept
}

// RotateStructure advances id's rotation by one 90-degree clockwise step.
// Rotating a paired underground belt drops the pairing (Rotatable.SetRotation
// clears Partner); any items still in flight are spilled into the world as
// drop items at the belt's own tile rather than silently discarded
// (spec.md §9's conservative option for this Open Question).
func (w *World) RotateStructure(id core.Id) error {
	s, ok := w.reg.Get(id)
	if !ok {
		return core.ErrNotFound
	}
	r, ok := s.(structures.Rotatable)
	if !ok {
		return core.ErrInvalidRotation
	}
	r.SetRotation(r.Rotation().Next())
	if u, ok := s.(*structures.UndergroundBelt); ok {
		w.spillAt(s.Position(), u.Spill())
	}
	w.notifyConstruction(id, s, false)
	w.notifyConstruction(id, s, true)
	return nil
}

// spillAt drops one loose item per entry of kinds, centered on pos's tile.
func (w *World) spillAt(pos core.Position, kinds []core.ItemKind) {
	if len(kinds) == 0 {
		return
	}
	tile := float64(w.cfg.TileSize)
	cx, cy := float64(pos.X)*tile+tile/2, float64(pos.Y)*tile+tile/2
	for _, kind := range kinds {
		w.items.Add(items.DropItem{X: cx, Y: cy, Kind: kind})
	}
}

// SetRecipe selects recipeIndex on id's recipe list.
func (w *World) SetRecipe(id core.Id, recipeIndex int) error {
	s, ok := w.reg.Get(id)
	if !ok {
		return core.ErrNotFound
	}
	sel, ok := s.(structures.RecipeSelector)
	if !ok {
		return errInternalf("structure %v does not select recipes", id)
	}
	return sel.SelectRecipe(recipeIndex)
}

// MoveItem transfers count units of kind from one inventory-backed
// structure to another (chest-to-chest transfers the host UI performs
// outside the belt network).
func (w *World) MoveItem(from, to core.Id, kind core.ItemKind, count int) error {
	fs, ok := w.reg.Get(from)
	if !ok {
		return core.ErrNotFound
	}
	ts, ok := w.reg.Get(to)
	if !ok {
		return core.ErrNotFound
	}
	out, ok := fs.(structures.Outputter)
	if !ok {
		return core.ErrNoOutput
	}
	in, ok := ts.(structures.Inputter)
	if !ok {
		return core.ErrNotInputtable
	}
	if !in.CanInput(kind) {
		return core.ErrNotInputtable
	}
	moved := 0
	for moved < count && out.Output(kind) {
		if err := in.Input(kind); err != nil {
			// Put it back; the destination stopped accepting mid-transfer.
			break
		}
		moved++
	}
	if moved < count {
		return core.ErrInsufficientInventory
	}
	return nil
}

// AddWire connects a and b directly, outside AutoConnect's reach rule
// (a player-issued manual connection).
func (w *World) AddWire(a, b core.Id) error {
	if !w.reg.Has(a) || !w.reg.Has(b) {
		return core.ErrNotFound
	}
	for _, wire := range w.wires {
		if wire.A == a && wire.B == b || wire.A == b && wire.B == a {
			return nil
		}
	}
	w.wires = append(w.wires, powernet.Wire{A: a, B: b})
	w.powerDirty = true
	return nil
}

// RemoveWire disconnects a and b, if a wire between them exists.
func (w *World) RemoveWire(a, b core.Id) error {
	kept := w.wires[:0]
	removed := false
	for _, wire := range w.wires {
		if (wire.A == a && wire.B == b) || (wire.A == b && wire.B == a) {
			removed = true
			continue
		}
		kept = append(kept, wire)
	}
	w.wires = kept
	if removed {
		w.powerDirty = true
	}
	return nil
}

