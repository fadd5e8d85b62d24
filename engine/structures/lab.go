package structures

import (
	"github.com/brackfield/beltworks/engine/core"
	"github.com/brackfield/beltworks/engine/inventory"
)

// Lab consumes the world's currently selected technology's inputs and,
// on each completed unit of research, emits EvtUpdateResearch so the
// world can advance its research progress counter (spec.md §4.4
// Lab-specific addition).
type Lab struct {
	Pos core.Position
	Factory
}

// NewLab places a lab with no recipe selected.
func NewLab(pos core.Position, maxEnergy float64) *Lab {
	return &Lab{Pos: pos, Factory: NewFactory(maxEnergy)}
}

func (l *Lab) Kind() Kind              { return KindLab }
func (l *Lab) Position() core.Position { return l.Pos }

func (l *Lab) CanInput(kind core.ItemKind) bool {
	if l.Recipe == nil {
		return false
	}
	_, ok := l.Recipe.Input[kind]
	return ok
}

func (l *Lab) Input(kind core.ItemKind) error {
	if !l.CanInput(kind) {
		return core.ErrNotInputtable
	}
	l.InputInv.Add(kind, 1)
	return nil
}

func (l *Lab) PowerDemand() float64 {
	if l.Recipe == nil || l.Progress == nil {
		return 0
	}
	return l.Recipe.PowerCost - l.Energy.Value
}

func (l *Lab) AddEnergy(amount float64) { l.Energy.Add(amount) }

func (l *Lab) WireReach() float64 { return 3 }

// Tick binds the lab's recipe to the world's currently selected
// technology whenever the lab has no recipe (at start and after each
// completed craft), clears it when no technology is selected, and
// advances research progress by one unit per completed craft.
func (l *Lab) Tick(ctx TickContext) {
	input, ok := ctx.World.CurrentTechnology()
	if !ok {
		l.Recipe = nil
		return
	}
	if l.Recipe == nil {
		r := inventory.Recipe{Name: "research", Input: input, RecipeTime: 30, PowerCost: 10}
		l.Recipe = &r
	}
	if l.step(l.Pos, ctx.World.Emit) {
		ctx.World.Emit(core.Event{Type: core.EvtUpdateResearch, Pos: l.Pos})
	}
}

func (l *Lab) DestroyInventory() inventory.Inventory {
	return l.destroyInventory()
}
