package structures

import (
	"github.com/brackfield/beltworks/engine/core"
	"github.com/brackfield/beltworks/engine/inventory"
)

// Assembler crafts a player-selected recipe from AssemblerRecipes; unlike
// Furnace it never auto-selects (spec.md §4.4 step 1: "assembler:
// player-selected only").
type Assembler struct {
	Pos core.Position
	Rot core.Rotation
	Factory
}

// NewAssembler places an assembler with no recipe selected.
func NewAssembler(pos core.Position, rot core.Rotation, maxEnergy float64) *Assembler {
	return &Assembler{Pos: pos, Rot: rot, Factory: NewFactory(maxEnergy)}
}

func (a *Assembler) Kind() Kind              { return KindAssembler }
func (a *Assembler) Position() core.Position { return a.Pos }
func (a *Assembler) Rotation() core.Rotation  { return a.Rot }
func (a *Assembler) SetRotation(r core.Rotation) { a.Rot = r }

func (a *Assembler) Recipes() []inventory.Recipe { return AssemblerRecipes }

func (a *Assembler) SelectRecipe(i int) error {
	if i < 0 || i >= len(AssemblerRecipes) {
		return core.ErrRecipeIndexOutOfRange
	}
	if a.Progress != nil {
		return nil // a craft already in flight finishes on the old recipe
	}
	a.Recipe = &AssemblerRecipes[i]
	return nil
}

func (a *Assembler) SelectedRecipe() *inventory.Recipe { return a.Recipe }

func (a *Assembler) CanInput(kind core.ItemKind) bool {
	if a.Recipe == nil {
		return false
	}
	_, ok := a.Recipe.Input[kind]
	return ok
}

func (a *Assembler) Input(kind core.ItemKind) error {
	if !a.CanInput(kind) {
		return core.ErrNotInputtable
	}
	a.InputInv.Add(kind, 1)
	return nil
}

func (a *Assembler) CanOutput() inventory.Inventory { return a.OutputInv }

func (a *Assembler) Output(kind core.ItemKind) bool {
	return a.OutputInv.Remove(kind, 1)
}

// Tick advances the selected recipe. Unlike Furnace, a finished craft
// does not clear a.Recipe: the assembler keeps producing the same
// player-selected recipe until told otherwise.
func (a *Assembler) Tick(ctx TickContext) {
	if a.Recipe == nil {
		return
	}
	r := *a.Recipe
	if a.step(a.Pos, ctx.World.Emit) {
		a.Recipe = &r
	}
}

func (a *Assembler) PowerDemand() float64 {
	if a.Recipe == nil || a.Progress == nil {
		return 0
	}
	return a.Recipe.PowerCost - a.Energy.Value
}

func (a *Assembler) AddEnergy(amount float64) {
	a.Energy.Add(amount)
}

func (a *Assembler) WireReach() float64 { return 3 }

func (a *Assembler) DestroyInventory() inventory.Inventory {
	return a.destroyInventory()
}
