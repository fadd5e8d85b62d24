package structures

import (
	"github.com/brackfield/beltworks/engine/config"
	"github.com/brackfield/beltworks/engine/core"
	"github.com/brackfield/beltworks/engine/inventory"
	"github.com/brackfield/beltworks/engine/terrain"
)

// OreMine sits on an ore tile and extracts it into a drop item or the
// neighbor structure facing its rotation (spec.md §4.9). It reuses the
// Factory state machine with an implicit, tile-derived recipe instead of
// a player- or kind-selected one.
type OreMine struct {
	Pos core.Position
	Rot core.Rotation
	Factory
	Burner
	cfg *config.Config
}

// NewOreMine places a coal-burning mine at pos.
func NewOreMine(pos core.Position, rot core.Rotation, cfg *config.Config) *OreMine {
	return &OreMine{
		Pos:     pos,
		Rot:     rot,
		Factory: NewFactory(cfg.CoalPower),
		Burner:  NewBurner(),
		cfg:     cfg,
	}
}

func (m *OreMine) Kind() Kind                  { return KindOreMine }
func (m *OreMine) Position() core.Position     { return m.Pos }
func (m *OreMine) Rotation() core.Rotation     { return m.Rot }
func (m *OreMine) SetRotation(r core.Rotation) { m.Rot = r }

func (m *OreMine) CanInput(kind core.ItemKind) bool { return kind == core.ItemCoal }

func (m *OreMine) Input(kind core.ItemKind) error {
	if kind != core.ItemCoal {
		return core.ErrNotInputtable
	}
	m.Fuel.Add(core.ItemCoal, 1)
	return nil
}

func (m *OreMine) CanOutput() inventory.Inventory { return m.OutputInv }

func (m *OreMine) Output(kind core.ItemKind) bool {
	return m.OutputInv.Remove(kind, 1)
}

// oreItemKind maps a terrain ore kind to the item it yields when mined.
func oreItemKind(kind terrain.OreKind) core.ItemKind {
	switch kind {
	case terrain.OreIron:
		return core.ItemIronOre
	case terrain.OreCopper:
		return core.ItemCopperOre
	case terrain.OreCoal:
		return core.ItemCoal
	case terrain.OreStone:
		return core.ItemStone
	default:
		return core.ItemIronOre
	}
}

// Tick burns fuel, ensures the implicit mining recipe matches the tile's
// current ore, advances progress, and on completion deposits one ore
// either into the neighbor structure facing Rot or, absent one, as a
// free drop item, then decrements the tile (spec.md §4.9).
func (m *OreMine) Tick(ctx TickContext) {
	m.Refuel(&m.Energy, m.cfg)

	cell := ctx.World.CellAt(m.Pos)
	if cell == nil || !cell.HasOre() {
		m.Recipe = nil
		return
	}
	item := oreItemKind(cell.Ore.Kind)
	if m.Recipe == nil {
		r := MineRecipe(item)
		m.Recipe = &r
	}

	completed := m.step(m.Pos, ctx.World.Emit)
	if !completed {
		return
	}
	cell.Mine(1)
	if cell.Ore == nil || cell.Ore.Quantity <= 0 {
		m.Recipe = nil
	}

	outPos := m.Pos.Add(m.Rot.Delta())
	if nid, ok := ctx.Others.At(outPos); ok {
		if neighbor, ok2 := ctx.Others.Get(nid); ok2 {
			if in, ok3 := neighbor.(Inputter); ok3 && in.CanInput(item) {
				in.Input(item)
				return
			}
		}
	}
	tile := float64(m.cfg.TileSize)
	ctx.World.SpawnDropItem(item, float64(outPos.X)*tile+tile/2, float64(outPos.Y)*tile+tile/2)
}

func (m *OreMine) DestroyInventory() inventory.Inventory {
	return inventory.Merge(m.destroyInventory(), m.Fuel)
}
