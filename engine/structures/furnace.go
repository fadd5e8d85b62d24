package structures

import (
	"github.com/brackfield/beltworks/engine/config"
	"github.com/brackfield/beltworks/engine/core"
	"github.com/brackfield/beltworks/engine/inventory"
)

// acceptsInput reports whether any recipe in candidates consumes kind.
func acceptsInput(candidates []inventory.Recipe, kind core.ItemKind) bool {
	for _, r := range candidates {
		if _, ok := r.Input[kind]; ok {
			return true
		}
	}
	return false
}

// Furnace smelts ore into plates, burning coal for energy (spec.md §3,
// §4.4 furnace-specific addition).
type Furnace struct {
	Pos    core.Position
	Rot    core.Rotation
	Factory
	Burner
	cfg *config.Config
}

// NewFurnace places a coal-burning furnace at pos.
func NewFurnace(pos core.Position, rot core.Rotation, cfg *config.Config) *Furnace {
	return &Furnace{
		Pos:     pos,
		Rot:     rot,
		Factory: NewFactory(cfg.CoalPower),
		Burner:  NewBurner(),
		cfg:     cfg,
	}
}

func (f *Furnace) Kind() Kind            { return KindFurnace }
func (f *Furnace) Position() core.Position { return f.Pos }
func (f *Furnace) Rotation() core.Rotation { return f.Rot }
func (f *Furnace) SetRotation(r core.Rotation) { f.Rot = r }

func (f *Furnace) CanInput(kind core.ItemKind) bool {
	return kind == core.ItemCoal || acceptsInput(SmeltingRecipes, kind)
}

func (f *Furnace) Input(kind core.ItemKind) error {
	if kind == core.ItemCoal {
		f.Fuel.Add(core.ItemCoal, 1)
		return nil
	}
	if !acceptsInput(SmeltingRecipes, kind) {
		return core.ErrNotInputtable
	}
	f.InputInv.Add(kind, 1)
	return nil
}

func (f *Furnace) CanOutput() inventory.Inventory { return f.OutputInv }

func (f *Furnace) Output(kind core.ItemKind) bool {
	return f.OutputInv.Remove(kind, 1)
}

func (f *Furnace) Tick(ctx TickContext) {
	f.Refuel(&f.Energy, f.cfg)
	f.autoSelect(SmeltingRecipes)
	f.step(f.Pos, ctx.World.Emit)
}

func (f *Furnace) DestroyInventory() inventory.Inventory {
	return inventory.Merge(f.destroyInventory(), f.Fuel)
}

// ElectricFurnace is functionally identical to Furnace except its energy
// buffer is refilled by the power network instead of burning coal
// (spec.md §3 ElectricFurnace variant).
type ElectricFurnace struct {
	Pos core.Position
	Rot core.Rotation
	Factory
}

// NewElectricFurnace places an electric furnace at pos.
func NewElectricFurnace(pos core.Position, rot core.Rotation, maxEnergy float64) *ElectricFurnace {
	return &ElectricFurnace{Pos: pos, Rot: rot, Factory: NewFactory(maxEnergy)}
}

func (e *ElectricFurnace) Kind() Kind              { return KindElectricFurnace }
func (e *ElectricFurnace) Position() core.Position { return e.Pos }
func (e *ElectricFurnace) Rotation() core.Rotation  { return e.Rot }
func (e *ElectricFurnace) SetRotation(r core.Rotation) { e.Rot = r }

func (e *ElectricFurnace) CanInput(kind core.ItemKind) bool {
	return acceptsInput(SmeltingRecipes, kind)
}

func (e *ElectricFurnace) Input(kind core.ItemKind) error {
	if !acceptsInput(SmeltingRecipes, kind) {
		return core.ErrNotInputtable
	}
	e.InputInv.Add(kind, 1)
	return nil
}

func (e *ElectricFurnace) CanOutput() inventory.Inventory { return e.OutputInv }

func (e *ElectricFurnace) Output(kind core.ItemKind) bool {
	return e.OutputInv.Remove(kind, 1)
}

func (e *ElectricFurnace) Tick(ctx TickContext) {
	e.autoSelect(SmeltingRecipes)
	e.step(e.Pos, ctx.World.Emit)
}

func (e *ElectricFurnace) PowerDemand() float64 {
	if e.Recipe == nil || e.Progress == nil {
		return 0
	}
	return e.Recipe.PowerCost - e.Energy.Value
}

func (e *ElectricFurnace) AddEnergy(amount float64) {
	e.Energy.Add(amount)
}

func (e *ElectricFurnace) WireReach() float64 { return 3 }

func (e *ElectricFurnace) DestroyInventory() inventory.Inventory {
	return e.destroyInventory()
}
