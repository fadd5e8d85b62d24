package inventory

import "github.com/brackfield/beltworks/engine/core"

// Recipe is the input/output contract a Factory works through: consume
// Input (and optionally InputFluid) over RecipeTime ticks drawing
// PowerCost energy per unit of progress, then produce Output (and
// optionally OutputFluid).
type Recipe struct {
	Name        string
	Input       Inventory
	InputFluid  *FluidAmount
	Output      Inventory
	OutputFluid *FluidAmount
	RecipeTime  int     // ticks to complete at full power
	PowerCost   float64 // kJ consumed per unit of progress
}

// FluidAmount pairs a fluid kind with the quantity a recipe consumes or
// produces of it.
type FluidAmount struct {
	Kind   core.FluidKind
	Amount float64
}

// Satisfied reports whether inv holds every input this recipe needs.
// Fluid inputs are intentionally not part of this check: fluid recipes
// (boiler, steam engine) are driven directly by fluid boxes, not by the
// item inventory.
func (r Recipe) Satisfied(inv Inventory) bool {
	return inv.HasAll(r.Input)
}
