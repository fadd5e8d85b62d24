package structures

import (
	"github.com/brackfield/beltworks/engine/core"
	"github.com/brackfield/beltworks/engine/inventory"
)

// Chest is a passive item store: any kind may be deposited, any kind
// present may be withdrawn. It has no recipe, no energy, and does
// nothing on Tick.
type Chest struct {
	Pos core.Position
	Inv inventory.Inventory
}

// NewChest places an empty chest at pos.
func NewChest(pos core.Position) *Chest {
	return &Chest{Pos: pos, Inv: inventory.New()}
}

func (c *Chest) Kind() Kind              { return KindChest }
func (c *Chest) Position() core.Position { return c.Pos }

func (c *Chest) CanInput(core.ItemKind) bool { return true }

func (c *Chest) Input(kind core.ItemKind) error {
	c.Inv.Add(kind, 1)
	return nil
}

func (c *Chest) CanOutput() inventory.Inventory { return c.Inv }

func (c *Chest) Output(kind core.ItemKind) bool {
	return c.Inv.Remove(kind, 1)
}

func (c *Chest) DestroyInventory() inventory.Inventory {
	return c.Inv.Clone()
}
