package structures

import (
	"github.com/brackfield/beltworks/engine/config"
	"github.com/brackfield/beltworks/engine/core"
	"github.com/brackfield/beltworks/engine/inventory"
)

// Factory is the recipe progress state machine shared by Furnace,
// ElectricFurnace, Assembler, and Lab (spec.md §4.4). Concrete structures
// embed it and supply their own recipe-selection policy.
type Factory struct {
	InputInv  inventory.Inventory
	OutputInv inventory.Inventory
	Recipe    *inventory.Recipe
	Progress  *float64
	Energy    core.Energy
}

// NewFactory returns an empty factory with the given energy buffer
// capacity.
func NewFactory(maxEnergy float64) Factory {
	return Factory{
		InputInv:  inventory.New(),
		OutputInv: inventory.New(),
		Energy:    core.Energy{Max: maxEnergy},
	}
}

// autoSelect picks the first candidate recipe whose inputs are already
// satisfied by InputInv. Callers pass the structure's fixed candidate
// list (furnace: by item kind; assemblers never call it, since they
// only run a player-selected recipe).
func (f *Factory) autoSelect(candidates []inventory.Recipe) {
	if f.Recipe != nil {
		return
	}
	for i := range candidates {
		if candidates[i].Satisfied(f.InputInv) {
			f.Recipe = &candidates[i]
			return
		}
	}
}

// step advances the recipe by one tick per spec.md §4.4 steps 2-3,
// emitting InventoryChanged through emit when a craft starts or
// completes. It reports whether a craft completed this tick.
func (f *Factory) step(pos core.Position, emit func(core.Event)) bool {
	if f.Recipe == nil {
		return false
	}
	r := *f.Recipe
	if f.Progress == nil {
		if !r.Satisfied(f.InputInv) {
			return false
		}
		f.InputInv.RemoveAll(r.Input)
		p := 0.0
		f.Progress = &p
		emit(core.Event{Type: core.EvtInventoryChanged, Pos: pos})
		return false
	}
	if f.Energy.Value < 0 {
		return false
	}
	stepAmt := 1.0
	if r.PowerCost > 0 {
		if byEnergy := f.Energy.Value / r.PowerCost; byEnergy < stepAmt {
			stepAmt = byEnergy
		}
	}
	if r.RecipeTime > 0 {
		if byTime := 1.0 / float64(r.RecipeTime); byTime < stepAmt {
			stepAmt = byTime
		}
	}
	if *f.Progress+stepAmt >= 1 {
		f.Progress = nil
		f.OutputInv.AddAll(r.Output)
		f.Recipe = nil
		emit(core.Event{Type: core.EvtInventoryChanged, Pos: pos})
		return true
	}
	*f.Progress += stepAmt
	f.Energy.Draw(stepAmt * r.PowerCost)
	return false
}

// destroyInventory implements the destroy-inventory contract: input +
// output + any recipe inputs already consumed into an in-progress craft.
func (f *Factory) destroyInventory() inventory.Inventory {
	merged := inventory.Merge(f.InputInv, f.OutputInv)
	if f.Progress != nil && f.Recipe != nil {
		merged.AddAll(f.Recipe.Input)
	}
	return merged
}

// Burner is the fuel-consuming energy source furnaces and ore mines use:
// when the energy buffer runs dry, burn one unit of coal for a fixed
// amount of energy (spec.md §4.4 furnace-specific addition).
type Burner struct {
	Fuel inventory.Inventory
}

// NewBurner returns an empty burner.
func NewBurner() Burner {
	return Burner{Fuel: inventory.New()}
}

// Refuel burns one coal into energy if the buffer has run (near) dry and
// fuel is available, per cfg's CombustionEpsilon and CoalPower.
func (b *Burner) Refuel(energy *core.Energy, cfg *config.Config) {
	if energy.Value >= cfg.CombustionEpsilon {
		return
	}
	if !b.Fuel.Has(core.ItemCoal, 1) {
		return
	}
	b.Fuel.Remove(core.ItemCoal, 1)
	energy.Max = cfg.CoalPower
	energy.Value = 0
	energy.Add(cfg.CoalPower)
}
